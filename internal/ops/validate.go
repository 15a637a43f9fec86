package ops

import (
	"fmt"

	"github.com/jacksmith/cb/internal/model"
)

// IssueType represents the type of integrity issue.
type IssueType string

const (
	IssueDuplicateID    IssueType = "duplicate_id"
	IssueMissingName    IssueType = "missing_name"
	IssueReservedChar   IssueType = "reserved_char"
	IssueUnreadableLine IssueType = "unreadable_line"
)

// Issue represents a data integrity problem in the contact file.
type Issue struct {
	Type    IssueType
	ID      int // contact id, 0 for unreadable lines
	Line    int // 1-based line number, set for unreadable lines
	Message string
}

func (i Issue) String() string {
	if i.Type == IssueUnreadableLine {
		return fmt.Sprintf("line %d: %s - %s", i.Line, i.Type, i.Message)
	}
	return fmt.Sprintf("%s: %s - %s", model.FormatID(i.ID), i.Type, i.Message)
}

// Fix represents an auto-repair action taken.
type Fix struct {
	Type        IssueType
	ID          int
	Description string
}

// Validate checks the contact file for integrity issues.
func Validate(s Store) ([]Issue, error) {
	b, skipped, err := inspect(s)
	if err != nil {
		return nil, err
	}

	var issues []Issue
	for _, sl := range skipped {
		issues = append(issues, Issue{
			Type:    IssueUnreadableLine,
			Line:    sl.Number,
			Message: sl.Err.Error(),
		})
	}

	seen := map[int]bool{}
	for _, c := range b.List() {
		if seen[c.ID()] {
			issues = append(issues, Issue{
				Type:    IssueDuplicateID,
				ID:      c.ID(),
				Message: fmt.Sprintf("%q shares its id with an earlier contact", c.FullName()),
			})
		}
		seen[c.ID()] = true

		if err := ValidateName(c.FirstName(), c.LastName()); err != nil {
			issues = append(issues, Issue{
				Type:    IssueMissingName,
				ID:      c.ID(),
				Message: "contact has no first or last name",
			})
		}

		if err := checkNames(c.FirstName(), c.LastName(), c.Category()); err != nil {
			issues = append(issues, Issue{Type: IssueReservedChar, ID: c.ID(), Message: err.Error()})
		} else if err := checkEntries(c.Phones(), c.Emails()); err != nil {
			issues = append(issues, Issue{Type: IssueReservedChar, ID: c.ID(), Message: err.Error()})
		}
	}

	return issues, nil
}

// ValidateAndFix repairs what it can and saves the book when anything changed.
// Later contacts sharing an id get fresh ids; unreadable lines are dropped
// from the file.
func ValidateAndFix(s Store) ([]Fix, error) {
	b, skipped, err := inspect(s)
	if err != nil {
		return nil, err
	}

	var fixes []Fix
	for _, sl := range skipped {
		fixes = append(fixes, Fix{
			Type:        IssueUnreadableLine,
			Description: fmt.Sprintf("dropped unreadable line %d", sl.Number),
		})
	}

	seen := map[int]bool{}
	for _, c := range b.List() {
		if !seen[c.ID()] {
			seen[c.ID()] = true
			continue
		}
		id, err := b.Allocate()
		if err != nil {
			return nil, err
		}
		renumbered := c.WithID(id)
		b.Replace(c, renumbered)
		seen[renumbered.ID()] = true
		fixes = append(fixes, Fix{
			Type:        IssueDuplicateID,
			ID:          renumbered.ID(),
			Description: fmt.Sprintf("moved %q from %s to %s", c.FullName(), model.FormatID(c.ID()), model.FormatID(renumbered.ID())),
		})
	}

	if len(fixes) == 0 {
		return nil, nil
	}
	if err := s.SaveBook(b); err != nil {
		return nil, err
	}
	return fixes, nil
}
