package rainbow

import (
	"fmt"
	"io"
	"strings"
)

var tsvEscaper = strings.NewReplacer("\t", " ", "\r", " ")

func writeTSV(w io.Writer, v view) error {
	for _, row := range v.table.Rows {
		cells := make([]string, len(row.Cells))
		for i, cell := range row.Cells {
			cells[i] = tsvEscaper.Replace(cell)
		}
		if _, err := fmt.Fprintln(w, strings.Join(cells, "\t")); err != nil {
			return err
		}
	}
	return nil
}
