package rainbow

import (
	"fmt"
	"io"
	"text/template"
)

func writeGoTemplate(w io.Writer, tmplStr string, v view) error {
	tmpl, err := template.New("").Parse(tmplStr)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidTemplate, err)
	}
	delim := string(v.table.Delimiter)
	for i, row := range v.table.Rows {
		data := TemplateRow{Index: i, Cells: row.Cells, Raw: row.Raw, Delimiter: delim}
		if err := tmpl.Execute(w, data); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}
