package model

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
)

// MaxID is the largest id a contact may carry. The id counter must be able
// to move one past every stored id without overflowing.
const MaxID = math.MaxInt - 1

var (
	// ErrInvalidID is returned when an ID cannot be parsed.
	ErrInvalidID = errors.New("invalid ID format")

	// idRegex matches contact IDs like 7, 007, #7
	idRegex = regexp.MustCompile(`^#?(\d+)$`)
)

// ParseID parses a contact ID as typed by a user.
// Accepts various formats: 7, 07, #7 all parse to 7.
// Returns ErrInvalidID if the format is invalid or the number is outside
// 1..MaxID.
func ParseID(s string) (int, error) {
	matches := idRegex.FindStringSubmatch(s)
	if matches == nil {
		return 0, fmt.Errorf("%w: %q is not a valid contact ID", ErrInvalidID, s)
	}

	id, err := strconv.Atoi(matches[1])
	if err != nil || id <= 0 || id > MaxID {
		return 0, fmt.Errorf("%w: %q has invalid number", ErrInvalidID, s)
	}

	return id, nil
}

// FormatID formats a contact ID for display, e.g. "#7".
func FormatID(id int) string {
	return fmt.Sprintf("#%d", id)
}
