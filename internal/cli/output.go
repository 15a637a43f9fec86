package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorBold   = "\033[1m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
	colorGray   = "\033[90m"
)

// colorEnabled is set from terminal detection at startup and can be overridden.
var colorEnabled = IsTerminal(os.Stdout)

// SetColorEnabled allows overriding the color output setting.
func SetColorEnabled(enabled bool) {
	colorEnabled = enabled
}

// ColorEnabled returns whether color output is currently enabled.
func ColorEnabled() bool {
	return colorEnabled
}

// IsTerminal returns true if w is a terminal.
func IsTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

func paint(code, s string) string {
	if !colorEnabled || s == "" {
		return s
	}
	return code + s + colorReset
}

// Bold returns s in bold if colors are enabled.
func Bold(s string) string { return paint(colorBold, s) }

// Green returns s wrapped in green ANSI codes if colors are enabled.
func Green(s string) string { return paint(colorGreen, s) }

// Red returns s wrapped in red ANSI codes if colors are enabled.
func Red(s string) string { return paint(colorRed, s) }

// Yellow returns s wrapped in yellow ANSI codes if colors are enabled.
func Yellow(s string) string { return paint(colorYellow, s) }

// Cyan returns s wrapped in cyan ANSI codes if colors are enabled.
func Cyan(s string) string { return paint(colorCyan, s) }

// Gray returns s wrapped in gray ANSI codes if colors are enabled.
func Gray(s string) string { return paint(colorGray, s) }

// DefaultMaxNameWidth is the default maximum visible width for name columns.
const DefaultMaxNameWidth = 40

// Table formats columnar output with automatic column width calculation.
type Table struct {
	header    []string
	rows      [][]string
	colWidths []int
	maxWidths map[int]int // optional per-column max visible width
}

// NewTable creates a new empty table.
func NewTable() *Table {
	return &Table{maxWidths: map[int]int{}}
}

// SetHeader sets column titles, rendered in gray above the rows.
func (t *Table) SetHeader(cols ...string) {
	t.header = cols
	t.track(cols)
}

// SetMaxWidth sets the maximum visible width for a column.
// Content exceeding the limit is truncated with an ellipsis ("...").
func (t *Table) SetMaxWidth(col, maxWidth int) {
	t.maxWidths[col] = maxWidth
}

// AddRow adds a row to the table.
func (t *Table) AddRow(cols ...string) {
	t.track(cols)
	t.rows = append(t.rows, cols)
}

// Len returns the number of rows, not counting the header.
func (t *Table) Len() int {
	return len(t.rows)
}

// track widens colWidths to fit cols, honoring per-column limits.
func (t *Table) track(cols []string) {
	for len(t.colWidths) < len(cols) {
		t.colWidths = append(t.colWidths, 0)
	}
	for i, col := range cols {
		width := visibleWidth(col)
		if maxW, ok := t.maxWidths[i]; ok && width > maxW {
			width = maxW
		}
		t.colWidths[i] = max(t.colWidths[i], width)
	}
}

// Render writes the table to w with columns separated by two spaces.
func (t *Table) Render(w io.Writer) {
	if len(t.header) > 0 {
		fmt.Fprintln(w, t.line(t.header, Gray))
	}
	for _, row := range t.rows {
		fmt.Fprintln(w, t.line(row, nil))
	}
}

func (t *Table) line(row []string, style func(string) string) string {
	parts := make([]string, len(row))
	for i, col := range row {
		if maxW, ok := t.maxWidths[i]; ok {
			col = Truncate(col, maxW)
		}
		// Pad every column except the last
		if i < len(row)-1 {
			col += strings.Repeat(" ", t.colWidths[i]-visibleWidth(col))
		}
		if style != nil {
			col = style(col)
		}
		parts[i] = col
	}
	return strings.TrimRight(strings.Join(parts, "  "), " ")
}

// Truncate returns s truncated to maxWidth visible characters. If s exceeds
// maxWidth, it is cut and "..." is appended (counted within the limit).
// ANSI escape codes are kept up to the cut and closed with a reset.
// Below four columns there is no room for the ellipsis and s is hard-cut.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if visibleWidth(s) <= maxWidth {
		return s
	}

	const ellipsis = "..."
	limit, tail := maxWidth, ""
	if maxWidth >= len(ellipsis)+1 {
		limit, tail = maxWidth-len(ellipsis), ellipsis
	}

	var b strings.Builder
	visible := 0
	inEscape, hasAnsi := false, false
	for _, r := range s {
		switch {
		case r == '\033':
			inEscape, hasAnsi = true, true
			b.WriteRune(r)
		case inEscape:
			b.WriteRune(r)
			inEscape = r != 'm'
		case visible < limit:
			b.WriteRune(r)
			visible++
		}
		if !inEscape && visible >= limit && r != '\033' {
			break
		}
	}

	b.WriteString(tail)
	if hasAnsi {
		b.WriteString(colorReset)
	}
	return b.String()
}

// visibleWidth returns the visible width of s, excluding ANSI escape codes.
func visibleWidth(s string) int {
	width := 0
	inEscape := false
	for _, r := range s {
		switch {
		case r == '\033':
			inEscape = true
		case inEscape:
			inEscape = r != 'm'
		default:
			width++
		}
	}
	return width
}
