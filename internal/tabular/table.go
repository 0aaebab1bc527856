package tabular

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// Table accumulates columns and renders them as fixed-width aligned text.
// Headers may span multiple lines ("\n" separated). Header cells are
// left-justified, data cells right-justified, columns one space apart, and
// columns grow to their widest content — there is no truncation.
type Table struct {
	cols []column
}

type column struct {
	header []string // one entry per header line
	cells  []string
}

// New returns an empty table.
func New() *Table { return &Table{} }

// Column appends a column with the given header and cells and returns the
// table for chaining.
func (t *Table) Column(header string, cells []string) *Table {
	t.cols = append(t.cols, column{
		header: strings.Split(header, "\n"),
		cells:  cells,
	})
	return t
}

// Render writes the aligned table to w. Columns shorter than the longest
// one render missing cells as "-".
func (t *Table) Render(w io.Writer) {
	if len(t.cols) == 0 {
		return
	}

	widths := make([]int, len(t.cols))
	headerLines, rows := 0, 0
	for i, col := range t.cols {
		for _, h := range col.header {
			widths[i] = max(widths[i], utf8.RuneCountInString(h))
		}
		for _, c := range col.cells {
			widths[i] = max(widths[i], utf8.RuneCountInString(c))
		}
		headerLines = max(headerLines, len(col.header))
		rows = max(rows, len(col.cells))
	}

	line := make([]string, len(t.cols))

	// Header rows. Shorter header sets are padded from the top so every
	// column's last label lines up on the same physical row.
	for li := 0; li < headerLines; li++ {
		for ci, col := range t.cols {
			label := ""
			if idx := li - (headerLines - len(col.header)); idx >= 0 {
				label = col.header[idx]
			}
			line[ci] = ljust(label, widths[ci])
		}
		fmt.Fprintln(w, strings.TrimRight(strings.Join(line, " "), " "))
	}

	for ri := 0; ri < rows; ri++ {
		for ci, col := range t.cols {
			cell := "-"
			if ri < len(col.cells) {
				cell = col.cells[ri]
			}
			line[ci] = rjust(cell, widths[ci])
		}
		fmt.Fprintln(w, strings.TrimRight(strings.Join(line, " "), " "))
	}
}

// String renders the table into a string.
func (t *Table) String() string {
	var sb strings.Builder
	t.Render(&sb)
	return sb.String()
}

func ljust(s string, width int) string {
	return s + pad(width-utf8.RuneCountInString(s))
}

func rjust(s string, width int) string {
	return pad(width-utf8.RuneCountInString(s)) + s
}

func pad(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}
