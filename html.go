package rainbow

import (
	"fmt"
	"html"
	"io"
	"strings"
)

func writeHTML(w io.Writer, v view) error {
	if _, err := fmt.Fprintln(w, `<div class="rainbow-csv-code-block">`); err != nil {
		return err
	}
	if v.notice != "" {
		if _, err := fmt.Fprintf(w, "<div class=\"rainbow-csv-warning\">%s</div>\n", html.EscapeString(v.notice)); err != nil {
			return err
		}
	}

	delim := html.EscapeString(string(v.table.Delimiter))
	var sb strings.Builder
	sb.WriteString("<pre><code>")
	for r, row := range v.table.Rows {
		if r > 0 {
			sb.WriteString("\n")
		}
		for i, cell := range row.Cells {
			if i > 0 {
				sb.WriteString(delim)
			}
			fmt.Fprintf(&sb, `<span class="%s">%s</span>`, ColumnClass(i, v.opts.PaletteSize), html.EscapeString(cell))
		}
	}
	sb.WriteString("</code></pre>")
	if _, err := fmt.Fprintln(w, sb.String()); err != nil {
		return err
	}

	_, err := fmt.Fprintln(w, "</div>")
	return err
}
