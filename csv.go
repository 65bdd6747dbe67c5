package rainbow

import (
	"encoding/csv"
	"io"
)

// writeCSV re-encodes the table with standard quoting, converting to
// Options.OutputDelimiter when set.
func writeCSV(w io.Writer, v view) error {
	cw := csv.NewWriter(w)
	cw.Comma = v.table.Delimiter
	if v.opts.OutputDelimiter != 0 {
		cw.Comma = v.opts.OutputDelimiter
	}
	for _, row := range v.table.Rows {
		if err := cw.Write(row.Cells); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
