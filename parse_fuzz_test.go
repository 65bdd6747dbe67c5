package rainbow_test

import (
	"strings"
	"testing"

	"github.com/bjaus/rainbow"
)

func FuzzParse(f *testing.F) {
	seeds := []string{
		"",
		"\n\n",
		"a,b,c\n1,2,3",
		"a;b;c",
		`"hello, world",2`,
		`a\,b,c`,
		`"unterminated,quote`,
		"trailing\\",
		"a\tb|c;d,e",
		"\uFEFFx,y\r\n",
	}
	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, input string) {
		got := rainbow.Parse(input)
		if got.Delimiter != rainbow.DetectDelimiter(input) {
			t.Fatalf("delimiter %q does not match detection", got.Delimiter)
		}
		if len(got.Rows) > len(strings.Split(input, "\n")) {
			t.Fatalf("%d rows from %d lines", len(got.Rows), len(strings.Split(input, "\n")))
		}
		maxCells := 0
		for _, row := range got.Rows {
			if len(row.Cells) == 0 {
				t.Fatalf("row %q has no cells", row.Raw)
			}
			if strings.TrimSpace(row.Raw) == "" {
				t.Fatalf("blank line produced a row")
			}
			for _, cell := range row.Cells {
				if strings.TrimSpace(cell) != cell {
					t.Fatalf("cell %q is not trimmed", cell)
				}
			}
			maxCells = max(maxCells, len(row.Cells))
		}
		if got.ColumnCount != maxCells {
			t.Fatalf("column count %d, want %d", got.ColumnCount, maxCells)
		}
	})
}
