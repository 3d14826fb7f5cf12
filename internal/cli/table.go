// Package cli provides command-line interface utilities.
package cli

import "strings"

// Table is a simple table formatter with dynamic column widths.
type Table struct {
	headers   []string
	rows      [][]string
	padding   int
	maxWidths map[int]int // Maximum width per column index (0 = no limit)
}

// NewTable creates a new table with the given headers.
func NewTable(headers []string) *Table {
	return &Table{
		headers:   headers,
		rows:      make([][]string, 0),
		padding:   2,
		maxWidths: make(map[int]int),
	}
}

// SetColumnMaxWidth sets a maximum width for a specific column.
// Text longer than this is wrapped to multiple lines.
func (t *Table) SetColumnMaxWidth(colIndex, maxWidth int) {
	t.maxWidths[colIndex] = maxWidth
}

// AddRow adds a row to the table, padding or truncating it to the header count.
func (t *Table) AddRow(row []string) {
	if len(row) != len(t.headers) {
		newRow := make([]string, len(t.headers))
		copy(newRow, row)
		t.rows = append(t.rows, newRow)
		return
	}
	t.rows = append(t.rows, row)
}

// Render formats and returns the table as a string.
func (t *Table) Render() string {
	if len(t.headers) == 0 {
		return ""
	}

	// Wrap cells that exceed their column's max width.
	wrapped := make([][][]string, len(t.rows))
	for rowIdx, row := range t.rows {
		wrapped[rowIdx] = make([][]string, len(row))
		for colIdx, cell := range row {
			if maxWidth := t.maxWidths[colIdx]; maxWidth > 0 {
				wrapped[rowIdx][colIdx] = wrapText(cell, maxWidth)
			} else {
				wrapped[rowIdx][colIdx] = []string{cell}
			}
		}
	}

	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = len(h)
	}
	for _, row := range wrapped {
		for i, cell := range row {
			for _, line := range cell {
				if len(line) > widths[i] {
					widths[i] = len(line)
				}
			}
		}
	}

	var sb strings.Builder
	pad := strings.Repeat(" ", t.padding)

	for i, h := range t.headers {
		if i > 0 {
			sb.WriteString(pad)
		}
		sb.WriteString(padRight(h, widths[i]))
	}
	sb.WriteString("\n")

	for i, w := range widths {
		if i > 0 {
			sb.WriteString(pad)
		}
		sb.WriteString(strings.Repeat("-", w))
	}
	sb.WriteString("\n")

	for _, row := range wrapped {
		// A row renders as many physical lines as its tallest cell.
		height := 1
		for _, cell := range row {
			if len(cell) > height {
				height = len(cell)
			}
		}
		for line := 0; line < height; line++ {
			for i := range t.headers {
				if i > 0 {
					sb.WriteString(pad)
				}
				text := ""
				if i < len(row) && line < len(row[i]) {
					text = row[i][line]
				}
				sb.WriteString(padRight(text, widths[i]))
			}
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

// padRight pads s with spaces to the given width.
func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// wrapText wraps text at word boundaries to fit within maxWidth.
// Words longer than maxWidth are hard-broken.
func wrapText(text string, maxWidth int) []string {
	if maxWidth <= 0 || len(text) <= maxWidth {
		return []string{text}
	}

	var lines []string
	var line string
	for _, word := range strings.Fields(text) {
		for len(word) > maxWidth {
			if line != "" {
				lines = append(lines, line)
				line = ""
			}
			lines = append(lines, word[:maxWidth])
			word = word[maxWidth:]
		}
		switch {
		case line == "":
			line = word
		case len(line)+1+len(word) <= maxWidth:
			line += " " + word
		default:
			lines = append(lines, line)
			line = word
		}
	}
	if line != "" {
		lines = append(lines, line)
	}
	if len(lines) == 0 {
		return []string{""}
	}
	return lines
}
