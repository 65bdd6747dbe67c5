package rainbow

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

// BorderStyle controls table format border characters.
type BorderStyle int

const (
	BorderRounded BorderStyle = iota // ╭─╮╰╯│┬┴├┤┼
	BorderNone                       // No borders, space-separated columns
	BorderASCII                      // +-+|
	BorderHeavy                      // ┏━┓┗┛┃┳┻┣┫╋
	BorderDouble                     // ╔═╗╚╝║╦╩╠╣╬
)

var borderNames = map[BorderStyle]string{
	BorderRounded: "rounded",
	BorderNone:    "none",
	BorderASCII:   "ascii",
	BorderHeavy:   "heavy",
	BorderDouble:  "double",
}

// String returns the border style name.
func (b BorderStyle) String() string {
	if name, ok := borderNames[b]; ok {
		return name
	}
	return "BorderStyle(" + strconv.Itoa(int(b)) + ")"
}

// ParseBorder parses a border style name such as "rounded" or "ascii".
func ParseBorder(s string) (BorderStyle, error) {
	for b, name := range borderNames {
		if name == s {
			return b, nil
		}
	}
	return 0, fmt.Errorf("%w: border style %q", ErrInvalidOption, s)
}

type borderChars struct {
	topLeft, topRight, bottomLeft, bottomRight string
	horizontal, vertical                       string
	topTee, bottomTee, leftTee, rightTee       string
	cross                                      string
}

var borderSets = map[BorderStyle]borderChars{
	BorderRounded: {
		topLeft: "╭", topRight: "╮", bottomLeft: "╰", bottomRight: "╯",
		horizontal: "─", vertical: "│",
		topTee: "┬", bottomTee: "┴", leftTee: "├", rightTee: "┤",
		cross: "┼",
	},
	BorderASCII: {
		topLeft: "+", topRight: "+", bottomLeft: "+", bottomRight: "+",
		horizontal: "-", vertical: "|",
		topTee: "+", bottomTee: "+", leftTee: "+", rightTee: "+",
		cross: "+",
	},
	BorderHeavy: {
		topLeft: "┏", topRight: "┓", bottomLeft: "┗", bottomRight: "┛",
		horizontal: "━", vertical: "┃",
		topTee: "┳", bottomTee: "┻", leftTee: "┣", rightTee: "┫",
		cross: "╋",
	},
	BorderDouble: {
		topLeft: "╔", topRight: "╗", bottomLeft: "╚", bottomRight: "╝",
		horizontal: "═", vertical: "║",
		topTee: "╦", bottomTee: "╩", leftTee: "╠", rightTee: "╣",
		cross: "╬",
	},
}

type alignment int

const (
	alignLeft alignment = iota
	alignRight
)

// grid is a table laid out for the table format: every row padded to the
// same number of columns.
type grid struct {
	header []string
	rows   [][]string
	widths []int
	aligns []alignment
	styles []func(string) string
}

func newGrid(v view) grid {
	numCols := v.table.ColumnCount
	rows := make([][]string, len(v.table.Rows))
	for i, row := range v.table.Rows {
		rows[i] = padCells(row.Cells, numCols)
	}

	g := grid{
		aligns: make([]alignment, numCols),
		styles: make([]func(string) string, numCols),
	}
	for i := range numCols {
		col := i
		g.styles[i] = func(s string) string { return v.opts.colorize(s, col) }
	}
	if v.opts.Header && len(rows) > 0 {
		g.header, rows = rows[0], rows[1:]
	}

	if v.opts.Numbered {
		if g.header != nil {
			g.header = append([]string{"#"}, g.header...)
		}
		for i, row := range rows {
			rows[i] = append([]string{strconv.Itoa(i + 1)}, row...)
		}
		g.aligns = append([]alignment{alignRight}, g.aligns...)
		g.styles = append([]func(string) string{nil}, g.styles...)
	}
	g.rows = rows
	g.widths = computeWidths(len(g.aligns), g.header, g.rows)

	if limit := v.opts.MaxCellWidth; limit > 0 {
		for i := range g.widths {
			g.widths[i] = min(g.widths[i], limit)
		}
	}
	return g
}

func padCells(cells []string, n int) []string {
	if len(cells) >= n {
		return cells
	}
	padded := make([]string, n)
	copy(padded, cells)
	return padded
}

// writeGrid renders the table format. A truncation notice is printed as a
// caption below the table.
func writeGrid(w io.Writer, v view) error {
	g := newGrid(v)
	var err error
	if v.opts.Border == BorderNone {
		err = renderPlainGrid(w, g)
	} else {
		err = renderBorderedGrid(w, g, v.opts.Border)
	}
	if err != nil {
		return err
	}
	if v.notice != "" {
		if _, err := fmt.Fprintln(w, v.notice); err != nil {
			return err
		}
	}
	return nil
}

func computeWidths(numCols int, header []string, rows [][]string) []int {
	widths := make([]int, numCols)
	for i, h := range header {
		if w := runewidth.StringWidth(h); w > widths[i] {
			widths[i] = w
		}
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); i < numCols && w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

// --- Plain grid (BorderNone) ---

func renderPlainGrid(w io.Writer, g grid) error {
	if len(g.header) > 0 {
		if err := writePlainRow(w, g.header, g); err != nil {
			return err
		}
		if err := writePlainSep(w, g.widths); err != nil {
			return err
		}
	}
	for _, row := range g.rows {
		if err := writePlainRow(w, row, g); err != nil {
			return err
		}
	}
	return nil
}

func writePlainSep(w io.Writer, widths []int) error {
	sep := make([]string, len(widths))
	for i, width := range widths {
		sep[i] = strings.Repeat("-", width)
	}
	_, err := fmt.Fprintln(w, strings.Join(sep, "  "))
	return err
}

func writePlainRow(w io.Writer, cells []string, g grid) error {
	parts := make([]string, len(g.widths))
	for i, width := range g.widths {
		parts[i] = g.cell(cells, i, width)
	}
	line := strings.TrimRight(strings.Join(parts, "  "), " ")
	_, err := fmt.Fprintln(w, line)
	return err
}

// --- Bordered grid ---

func renderBorderedGrid(w io.Writer, g grid, style BorderStyle) error {
	bc := borderSets[style]

	if err := drawHLine(w, g.widths, bc.topLeft, bc.horizontal, bc.topTee, bc.topRight); err != nil {
		return err
	}

	if len(g.header) > 0 {
		if err := drawBorderedRow(w, g.header, g, bc.vertical); err != nil {
			return err
		}
		if err := drawHLine(w, g.widths, bc.leftTee, bc.horizontal, bc.cross, bc.rightTee); err != nil {
			return err
		}
	}

	for _, row := range g.rows {
		if err := drawBorderedRow(w, row, g, bc.vertical); err != nil {
			return err
		}
	}

	return drawHLine(w, g.widths, bc.bottomLeft, bc.horizontal, bc.bottomTee, bc.bottomRight)
}

func drawHLine(w io.Writer, widths []int, left, fill, mid, right string) error {
	var sb strings.Builder
	sb.WriteString(left)
	for i, width := range widths {
		sb.WriteString(strings.Repeat(fill, width+2))
		if i < len(widths)-1 {
			sb.WriteString(mid)
		}
	}
	sb.WriteString(right)
	_, err := fmt.Fprintln(w, sb.String())
	return err
}

func drawBorderedRow(w io.Writer, cells []string, g grid, vert string) error {
	var sb strings.Builder
	sb.WriteString(vert)
	for i, width := range g.widths {
		sb.WriteString(" ")
		sb.WriteString(g.cell(cells, i, width))
		sb.WriteString(" ")
		if i < len(g.widths)-1 {
			sb.WriteString(vert)
		}
	}
	sb.WriteString(vert)
	_, err := fmt.Fprintln(w, sb.String())
	return err
}

// cell formats column i of cells. Styling runs last so escape sequences
// never count toward the width.
func (g grid) cell(cells []string, i, width int) string {
	s := ""
	if i < len(cells) {
		s = cells[i]
	}
	s = formatCell(s, width, g.aligns[i])
	if g.styles[i] != nil {
		s = g.styles[i](s)
	}
	return s
}

func formatCell(s string, width int, align alignment) string {
	if width > 0 && runewidth.StringWidth(s) > width {
		if width <= 3 {
			s = runewidth.Truncate(s, width, "")
		} else {
			s = runewidth.Truncate(s, width, "...")
		}
	}
	return alignCell(s, width, align)
}

func alignCell(s string, width int, align alignment) string {
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	switch align {
	case alignRight:
		return strings.Repeat(" ", pad) + s
	default:
		return s + strings.Repeat(" ", pad)
	}
}
