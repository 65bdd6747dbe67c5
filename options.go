package rainbow

import (
	"fmt"

	"github.com/muesli/termenv"
)

// Bounds for the configurable settings.
const (
	MinPaletteSize     = 5
	MaxPaletteSize     = 20
	DefaultPaletteSize = 15

	MinMaxRows     = 100
	MaxMaxRows     = 2000
	DefaultMaxRows = 500
)

// LargeInputLines is the physical line count above which a [Renderer]
// truncates its input to Options.MaxRows lines.
const LargeInputLines = 1000

// Options controls how a table is presented. The zero value is not valid;
// start from [DefaultOptions].
type Options struct {
	// Enabled switches colorizing on. When false a Renderer writes the input
	// unchanged and never parses it.
	Enabled bool
	// PaletteSize is the number of distinct column colors. Column i uses
	// color i mod PaletteSize.
	PaletteSize int
	// MaxRows is the number of lines kept from inputs longer than
	// LargeInputLines.
	MaxRows int
	// Palette lists hex colors. Nil means DefaultPalette.
	Palette []string
	// Profile selects the terminal color depth for the ansi and table
	// formats. termenv.Ascii disables escape sequences.
	Profile termenv.Profile
	// Border is the table format border style.
	Border BorderStyle
	// Header renders the first row as a header in the table format.
	Header bool
	// Numbered prepends a row number column in the table format.
	Numbered bool
	// MaxCellWidth truncates table format cells with "...". Zero means no
	// limit.
	MaxCellWidth int
	// Delimiter forces a delimiter instead of detecting one. Zero means
	// detect.
	Delimiter rune
	// OutputDelimiter is the csv format field separator. Zero keeps the
	// table's delimiter.
	OutputDelimiter rune
}

// DefaultOptions returns the default presentation settings.
func DefaultOptions() Options {
	return Options{
		Enabled:     true,
		PaletteSize: DefaultPaletteSize,
		MaxRows:     DefaultMaxRows,
		Profile:     termenv.TrueColor,
		Border:      BorderRounded,
	}
}

// Validate checks that every setting is within range.
func (o Options) Validate() error {
	if o.PaletteSize < MinPaletteSize || o.PaletteSize > MaxPaletteSize {
		return fmt.Errorf("%w: palette size %d outside [%d, %d]", ErrInvalidOption, o.PaletteSize, MinPaletteSize, MaxPaletteSize)
	}
	if n := len(o.palette()); o.PaletteSize > n {
		return fmt.Errorf("%w: palette size %d exceeds %d palette colors", ErrInvalidOption, o.PaletteSize, n)
	}
	if o.MaxRows < MinMaxRows || o.MaxRows > MaxMaxRows {
		return fmt.Errorf("%w: max rows %d outside [%d, %d]", ErrInvalidOption, o.MaxRows, MinMaxRows, MaxMaxRows)
	}
	if o.MaxCellWidth < 0 {
		return fmt.Errorf("%w: max cell width %d is negative", ErrInvalidOption, o.MaxCellWidth)
	}
	if o.Profile < termenv.TrueColor || o.Profile > termenv.Ascii {
		return fmt.Errorf("%w: unknown color profile %d", ErrInvalidOption, o.Profile)
	}
	if _, ok := borderSets[o.Border]; !ok && o.Border != BorderNone {
		return fmt.Errorf("%w: unknown border style %d", ErrInvalidOption, o.Border)
	}
	if o.Delimiter != 0 && !ValidDelimiter(o.Delimiter) {
		return fmt.Errorf("%w: delimiter %q", ErrInvalidOption, o.Delimiter)
	}
	if o.OutputDelimiter != 0 && !ValidDelimiter(o.OutputDelimiter) {
		return fmt.Errorf("%w: output delimiter %q", ErrInvalidOption, o.OutputDelimiter)
	}
	return nil
}

func (o Options) palette() []string {
	if o.Palette == nil {
		return DefaultPalette
	}
	return o.Palette
}

// columnColor returns the hex color of column col.
func (o Options) columnColor(col int) string {
	return o.palette()[ColorIndex(col, o.PaletteSize)]
}

// colorize wraps s in the foreground color of column col for the configured
// profile.
func (o Options) colorize(s string, col int) string {
	return o.Profile.String(s).Foreground(o.Profile.Color(o.columnColor(col))).String()
}
