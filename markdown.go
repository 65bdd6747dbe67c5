package rainbow

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// writeMarkdown renders a GitHub-flavored table. The first row becomes the
// header.
func writeMarkdown(w io.Writer, v view) error {
	numCols := v.table.ColumnCount
	for _, row := range v.table.Rows {
		numCols = max(numCols, len(row.Cells))
	}
	rows := make([][]string, len(v.table.Rows))
	for i, row := range v.table.Rows {
		cells := make([]string, numCols)
		for j, cell := range row.Cells {
			cells[j] = escapeMarkdown(cell)
		}
		rows[i] = cells
	}

	// Minimum width 3 keeps the separator row valid.
	widths := make([]int, numCols)
	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	for i := range widths {
		if widths[i] < 3 {
			widths[i] = 3
		}
	}

	if err := writeMarkdownRow(w, rows[0], widths); err != nil {
		return err
	}
	sep := make([]string, numCols)
	for i, width := range widths {
		sep[i] = strings.Repeat("-", width)
	}
	if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(sep, " | ")); err != nil {
		return err
	}
	for _, row := range rows[1:] {
		if err := writeMarkdownRow(w, row, widths); err != nil {
			return err
		}
	}
	if v.notice != "" {
		if _, err := fmt.Fprintf(w, "\n_%s_\n", v.notice); err != nil {
			return err
		}
	}
	return nil
}

func writeMarkdownRow(w io.Writer, cells []string, widths []int) error {
	padded := make([]string, len(widths))
	for i, width := range widths {
		var cell string
		if i < len(cells) {
			cell = cells[i]
		}
		padded[i] = alignCell(cell, width, alignLeft)
	}
	_, err := fmt.Fprintf(w, "| %s |\n", strings.Join(padded, " | "))
	return err
}

var markdownEscaper = strings.NewReplacer(`\`, `\\`, `|`, `\|`)

func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}
