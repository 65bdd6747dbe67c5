package rainbow

import (
	"io"
	"strings"
)

func writePlain(w io.Writer, v view) error {
	lines := make([]string, len(v.table.Rows))
	for i, row := range v.table.Rows {
		lines[i] = row.Raw
	}
	return writeRaw(w, strings.Join(lines, "\n"))
}

// writeRaw writes text unchanged, adding a final newline when it is missing.
func writeRaw(w io.Writer, text string) error {
	if text != "" && !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	_, err := io.WriteString(w, text)
	return err
}
