package rainbow

import (
	"encoding/json"
	"io"
)

// writeJSONL writes one row object per line.
func writeJSONL(w io.Writer, v view) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	for _, row := range v.table.Rows {
		if err := enc.Encode(row); err != nil {
			return err
		}
	}
	return nil
}
