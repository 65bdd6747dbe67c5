// Package rainbow tokenizes delimiter-separated text without a schema and
// renders each column in its own color.
//
// The package has two layers. The parser is a set of pure functions:
//
//   - [DetectDelimiter] picks a delimiter from comma, tab, semicolon and
//     pipe by looking at the first non-blank line
//   - [Parse] and [ParseWith] split text into a [Table] of trimmed cells
//   - [ParseLine] tokenizes a single line with a known delimiter
//
// Double quotes are stripped and protect delimiters between them. A
// backslash makes the next character literal. Quoting never spans lines and
// an unterminated quote is not an error. Blank lines produce no rows.
//
//	t := rainbow.Parse("name;age\nAlice;30")
//	// t.Delimiter == ';', t.ColumnCount == 2
//
// The presentation layer maps column i to palette color i mod
// [Options].PaletteSize and writes the table in one of several formats:
//
//   - [ANSI]: colored terminal text joined with the original delimiter
//   - [HTML]: <span class="rainbow-csv-col-N"> markup, see [Stylesheet]
//   - [Grid]: a bordered, column-aligned table
//   - [Markdown], [CSV], [TSV]: re-encoded text
//   - [JSON], [YAML], [JSONL]: the [Document] form of the table
//   - [GoTemplate]: a per-row text/template
//   - [Plain]: the input unchanged
//
// A [Renderer] wraps both layers: it skips parsing when disabled, keeps the
// first Options.MaxRows lines of inputs longer than [LargeInputLines], and
// falls back to plain text when the input has no rows.
//
//	r, err := rainbow.NewRenderer(rainbow.DefaultOptions())
//	if err != nil { ... }
//	err = r.Render(os.Stdout, rainbow.ANSI, text)
//
// # Errors
//
// The parser never fails. The presentation layer exports sentinel errors:
//
//   - [ErrUnsupportedFormat]: unknown format string
//   - [ErrInvalidTemplate]: invalid go-template syntax
//   - [ErrInvalidOption]: an [Options] field is out of range
//   - [ErrEmptyTable]: a display format was given a table with no rows
package rainbow
