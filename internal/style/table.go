package style

import (
	"fmt"
	"regexp"
	"strings"
)

// Align controls horizontal cell alignment within a column.
type Align int

const (
	AlignLeft Align = iota
	AlignRight
	AlignCenter
)

// Column describes a table column: header text, fixed display width,
// and cell alignment.
type Column struct {
	Name  string
	Width int
	Align Align
}

// Table renders rows of fixed-width columns with a styled header.
// Cells longer than the column width are truncated with "...".
type Table struct {
	columns   []Column
	rows      [][]string
	headerSep bool
	indent    string
}

// NewTable creates a table with the given columns. Defaults: two-space
// indent, header separator enabled.
func NewTable(columns ...Column) *Table {
	return &Table{
		columns:   columns,
		headerSep: true,
		indent:    "  ",
	}
}

// SetIndent sets the prefix prepended to every rendered line.
func (t *Table) SetIndent(indent string) *Table {
	t.indent = indent
	return t
}

// SetHeaderSeparator toggles the line drawn between header and rows.
func (t *Table) SetHeaderSeparator(on bool) *Table {
	t.headerSep = on
	return t
}

// AddRow appends a row. Missing trailing cells are padded with empty
// strings; extra cells are dropped.
func (t *Table) AddRow(cells ...string) *Table {
	row := make([]string, len(t.columns))
	for i := range row {
		if i < len(cells) {
			row[i] = cells[i]
		}
	}
	t.rows = append(t.rows, row)
	return t
}

// Render returns the table as a newline-terminated string, or the
// empty string if the table has no columns.
func (t *Table) Render() string {
	if len(t.columns) == 0 {
		return ""
	}

	var b strings.Builder

	header := make([]string, len(t.columns))
	for i, col := range t.columns {
		header[i] = t.pad(Header.Render(col.Name), col.Name, col.Width, col.Align)
	}
	b.WriteString(t.indent + strings.Join(header, "  ") + "\n")

	if t.headerSep {
		sep := make([]string, len(t.columns))
		for i, col := range t.columns {
			sep[i] = Dim.Render(strings.Repeat("─", col.Width))
		}
		b.WriteString(t.indent + strings.Join(sep, "  ") + "\n")
	}

	for _, row := range t.rows {
		cells := make([]string, len(t.columns))
		for i, col := range t.columns {
			plain := truncate(row[i], col.Width)
			cells[i] = t.pad(plain, plain, col.Width, col.Align)
		}
		b.WriteString(t.indent + strings.Join(cells, "  ") + "\n")
	}

	return b.String()
}

// Print writes the rendered table to stdout.
func (t *Table) Print() {
	fmt.Print(t.Render())
}

// pad pads styled text to width based on the display width of its
// plain form. Text at or beyond the width is returned unchanged.
func (t *Table) pad(styled, plain string, width int, align Align) string {
	gap := width - len(plain)
	if gap <= 0 {
		return styled
	}
	switch align {
	case AlignRight:
		return strings.Repeat(" ", gap) + styled
	case AlignCenter:
		left := gap / 2
		return strings.Repeat(" ", left) + styled + strings.Repeat(" ", gap-left)
	default:
		return styled + strings.Repeat(" ", gap)
	}
}

// truncate shortens s to width runes, ending with "..." when cut.
func truncate(s string, width int) string {
	if len(s) <= width {
		return s
	}
	if width <= 3 {
		return s[:width]
	}
	return s[:width-3] + "..."
}

var ansiRe = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// stripAnsi removes ANSI SGR escape sequences.
func stripAnsi(s string) string {
	return ansiRe.ReplaceAllString(s, "")
}
