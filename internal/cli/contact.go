package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/jacksmith/cb/internal/model"
)

// PrintContact writes the full details of a contact.
func PrintContact(w io.Writer, c *model.Contact) {
	fmt.Fprintf(w, "%s %s\n", Cyan(model.FormatID(c.ID())), Bold(c.FullName()))
	if c.Category() != "" {
		fmt.Fprintf(w, "Category: %s\n", c.Category())
	}

	phones := c.Phones()
	if len(phones) > 0 {
		fmt.Fprintln(w, "Phones:")
		for _, p := range phones {
			fmt.Fprintf(w, "  %s: %s\n", Gray(p.Type), p.Number)
		}
	}

	emails := c.Emails()
	if len(emails) > 0 {
		fmt.Fprintln(w, "Emails:")
		for _, e := range emails {
			fmt.Fprintf(w, "  %s: %s\n", Gray(e.Type), e.Address)
		}
	}
}

// ContactTable builds a one-line-per-contact summary table.
func ContactTable(contacts []*model.Contact) *Table {
	t := NewTable()
	t.SetHeader("ID", "NAME", "CATEGORY", "PHONE", "EMAIL")
	t.SetMaxWidth(1, DefaultMaxNameWidth)
	for _, c := range contacts {
		t.AddRow(
			Cyan(model.FormatID(c.ID())),
			c.FullName(),
			c.Category(),
			firstPhone(c),
			firstEmail(c),
		)
	}
	return t
}

func firstPhone(c *model.Contact) string {
	phones := c.Phones()
	if len(phones) == 0 {
		return ""
	}
	return more(phones[0].Number, len(phones))
}

func firstEmail(c *model.Contact) string {
	emails := c.Emails()
	if len(emails) == 0 {
		return ""
	}
	return more(emails[0].Address, len(emails))
}

// more appends a "+N" marker when a list has entries beyond the first.
func more(s string, n int) string {
	if n <= 1 {
		return s
	}
	return s + " " + Gray(fmt.Sprintf("+%d", n-1))
}

// Plural returns "1 contact" or "3 contacts".
func Plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %s", n, strings.TrimSuffix(noun, "s")+"s")
}
