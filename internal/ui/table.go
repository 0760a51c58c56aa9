package ui

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Table provides minimal table rendering with simple spacing alignment
// and no borders. The optional header row renders bold with a muted
// underline.

// Table represents a simple table structure
type Table struct {
	header     []string
	rows       [][]string
	colWidths  []int
	colPadding int
}

// NewTable creates a new table with the specified number of columns
func NewTable(cols int) *Table {
	return &Table{
		colWidths:  make([]int, cols),
		colPadding: 2,
	}
}

// SetHeader sets the header row.
func (t *Table) SetHeader(cells ...string) {
	t.header = t.fit(cells)
}

// AddRow adds a row to the table
func (t *Table) AddRow(cells ...string) {
	t.rows = append(t.rows, t.fit(cells))
}

// fit pads or truncates cells to the column count, tracking max widths.
// Widths are measured in runes, not bytes, so multi-byte cells line up.
func (t *Table) fit(cells []string) []string {
	row := make([]string, len(t.colWidths))
	for i := 0; i < len(t.colWidths) && i < len(cells); i++ {
		row[i] = cells[i]
		if w := utf8.RuneCountInString(cells[i]); w > t.colWidths[i] {
			t.colWidths[i] = w
		}
	}
	return row
}

// String renders the table as a string
func (t *Table) String() string {
	if len(t.rows) == 0 && len(t.header) == 0 {
		return ""
	}

	var sb strings.Builder
	padding := strings.Repeat(" ", t.colPadding)

	writeRow := func(row []string, style func(string) string) {
		for i, cell := range row {
			if i > 0 {
				sb.WriteString(padding)
			}
			if i < len(row)-1 {
				sb.WriteString(style(cell))
				sb.WriteString(strings.Repeat(" ", t.colWidths[i]-utf8.RuneCountInString(cell)))
			} else {
				sb.WriteString(style(cell))
			}
		}
		sb.WriteString("\n")
	}

	if len(t.header) > 0 {
		writeRow(t.header, func(s string) string { return Bold.Render(s) })
		underline := make([]string, len(t.header))
		for i := range underline {
			underline[i] = strings.Repeat("─", t.colWidths[i])
		}
		writeRow(underline, func(s string) string { return Muted.Render(s) })
	}
	for _, row := range t.rows {
		writeRow(row, func(s string) string { return s })
	}

	return sb.String()
}

// FormatValue renders a result cell for display. Nil renders as a muted
// placeholder.
func FormatValue(v any) string {
	if v == nil {
		return Muted.Render("·")
	}
	return fmt.Sprintf("%v", v)
}
