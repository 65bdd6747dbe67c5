package rainbow

import (
	"fmt"
	"io"
	"strings"
)

func writeANSI(w io.Writer, v view) error {
	p := v.opts.Profile
	if v.notice != "" {
		if _, err := fmt.Fprintln(w, p.String(v.notice).Foreground(p.Color(warningColor)).Italic().String()); err != nil {
			return err
		}
	}
	delim := string(v.table.Delimiter)
	var sb strings.Builder
	for _, row := range v.table.Rows {
		sb.Reset()
		for i, cell := range row.Cells {
			if i > 0 {
				sb.WriteString(delim)
			}
			sb.WriteString(v.opts.colorize(cell, i))
		}
		if _, err := fmt.Fprintln(w, sb.String()); err != nil {
			return err
		}
	}
	return nil
}
