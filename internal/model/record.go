package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Record line layout:
//
//	<id>|<first>|<last>|<category>|PHONES:<type>,<number>;...|EMAILS:<type>,<address>;...
//
// There is no escaping. A value containing one of the delimiters will
// not survive a save/load cycle; see ReservedChars.
const (
	fieldSep  = "|"
	entrySep  = ";"
	pairSep   = ","
	phonesTag = "PHONES:"
	emailsTag = "EMAILS:"

	minFields = 4
)

var (
	// ErrShortRecord is returned when a record line has fewer than four fields.
	ErrShortRecord = errors.New("record has too few fields")

	// ErrReservedChar is returned by CheckField when a value contains a delimiter.
	ErrReservedChar = errors.New("value contains a reserved character")
)

// Field identifies which part of a record a value is written to.
type Field int

const (
	// FieldName covers first name, last name and category.
	FieldName Field = iota
	// FieldEntryType covers the type label of a phone or email entry.
	FieldEntryType
	// FieldEntryValue covers a phone number or an email address.
	FieldEntryValue
)

// ReservedChars returns the characters that cannot appear in a value
// written to the given field without corrupting the record line.
// Entry values are split at the first comma, so only the type may not
// contain one.
func ReservedChars(f Field) string {
	switch f {
	case FieldEntryType:
		return "|;,\r\n"
	case FieldEntryValue:
		return "|;\r\n"
	default:
		return "|\r\n"
	}
}

// CheckField reports whether value can be stored in field f unchanged.
func CheckField(f Field, value string) error {
	if i := strings.IndexAny(value, ReservedChars(f)); i >= 0 {
		return fmt.Errorf("%w %q", ErrReservedChar, value[i:i+1])
	}
	return nil
}

// EncodeRecord serializes a contact to a record line (without newline).
func EncodeRecord(c *Contact) string {
	var b strings.Builder

	b.WriteString(strconv.Itoa(c.id))
	for _, s := range []string{c.firstName, c.lastName, c.category} {
		b.WriteString(fieldSep)
		b.WriteString(s)
	}

	b.WriteString(fieldSep + phonesTag)
	for _, p := range c.phones {
		b.WriteString(p.Type + pairSep + p.Number + entrySep)
	}

	b.WriteString(fieldSep + emailsTag)
	for _, e := range c.emails {
		b.WriteString(e.Type + pairSep + e.Address + entrySep)
	}

	return b.String()
}

// DecodeRecord parses a record line into a contact.
// Lines with fewer than four fields fail with ErrShortRecord; an id that is
// not a decimal integer in 1..MaxID fails with ErrInvalidID. A PHONES or EMAILS field
// without its tag is ignored, as are fields past the sixth.
func DecodeRecord(line string) (*Contact, error) {
	line = strings.TrimSuffix(line, "\r")

	fields := strings.Split(line, fieldSep)
	if len(fields) < minFields {
		return nil, fmt.Errorf("%w: got %d, need %d", ErrShortRecord, len(fields), minFields)
	}

	id, err := strconv.Atoi(strings.TrimSpace(fields[0]))
	if err != nil {
		return nil, fmt.Errorf("%w: %q is not a number", ErrInvalidID, fields[0])
	}
	if id <= 0 || id > MaxID {
		return nil, fmt.Errorf("%w: %d is out of range", ErrInvalidID, id)
	}

	c := NewContact(id, fields[1], fields[2], fields[3])

	if len(fields) > 4 {
		if rest, ok := strings.CutPrefix(fields[4], phonesTag); ok {
			for _, pair := range splitPairs(rest) {
				c.AddPhone(pair[0], pair[1])
			}
		}
	}
	if len(fields) > 5 {
		if rest, ok := strings.CutPrefix(fields[5], emailsTag); ok {
			for _, pair := range splitPairs(rest) {
				c.AddEmail(pair[0], pair[1])
			}
		}
	}

	return c, nil
}

// splitPairs parses "a,b;c,d;" into [[a b] [c d]].
// Empty items and items without a comma are dropped.
func splitPairs(s string) [][2]string {
	var pairs [][2]string
	for _, item := range strings.Split(s, entrySep) {
		if item == "" {
			continue
		}
		typ, value, ok := strings.Cut(item, pairSep)
		if !ok {
			continue
		}
		pairs = append(pairs, [2]string{typ, value})
	}
	return pairs
}
