package rainbow

import (
	"fmt"
	"strings"
)

// DefaultPalette holds the column colors, in column order.
var DefaultPalette = []string{
	"#e06c75", "#e5c07b", "#98c379", "#56b6c2", "#61afef",
	"#c678dd", "#d19a66", "#be5046", "#7ec699", "#f08d49",
	"#67cdcc", "#cc99cd", "#f8c555", "#6196cc", "#ec5f67",
	"#99c794", "#fac863", "#5fb3b3", "#ab7967", "#c594c5",
}

// warningColor is used for the truncation notice.
const warningColor = "#e5c07b"

// ClassPrefix prefixes the HTML class of every column.
const ClassPrefix = "rainbow-csv-col-"

// ColorIndex maps a column index to its palette slot.
func ColorIndex(col, size int) int {
	if size <= 0 {
		return 0
	}
	return col % size
}

// ColumnClass returns the HTML class of column col.
func ColumnClass(col, size int) string {
	return fmt.Sprintf("%s%d", ClassPrefix, ColorIndex(col, size))
}

// Stylesheet returns CSS rules for the first size column classes, taking
// colors from palette (DefaultPalette when nil).
func Stylesheet(palette []string, size int) string {
	if palette == nil {
		palette = DefaultPalette
	}
	size = min(size, len(palette))
	var sb strings.Builder
	sb.WriteString(".rainbow-csv-code-block pre { white-space: pre; }\n")
	sb.WriteString(".rainbow-csv-warning { color: " + warningColor + "; font-style: italic; }\n")
	for i := range size {
		fmt.Fprintf(&sb, ".%s%d { color: %s; }\n", ClassPrefix, i, palette[i])
	}
	return sb.String()
}
