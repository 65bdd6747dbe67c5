package rainbow

import (
	"encoding/json"
	"io"
)

func writeJSON(w io.Writer, v view) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v.document())
}
