package rainbow

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultDelimiter is returned by [DetectDelimiter] when the sample has no
// usable signal.
const DefaultDelimiter = ','

const (
	escapeMarker = '\\'
	quoteChar    = '"'
)

// delimiters is the candidate set in tie-break priority order.
var delimiters = []rune{',', '\t', ';', '|'}

// Delimiters returns the candidate delimiters in priority order.
func Delimiters() []rune {
	out := make([]rune, len(delimiters))
	copy(out, delimiters)
	return out
}

var delimiterNames = map[rune]string{
	',':  "comma",
	'\t': "tab",
	';':  "semicolon",
	'|':  "pipe",
}

// DelimiterName returns a readable name for r, such as "tab". Runes outside
// the candidate set are returned quoted.
func DelimiterName(r rune) string {
	if name, ok := delimiterNames[r]; ok {
		return name
	}
	return strconv.QuoteRune(r)
}

// ParseDelimiter accepts a candidate name ("comma", "tab", ...), an escape
// such as `\t`, or a single character.
func ParseDelimiter(s string) (rune, bool) {
	for r, name := range delimiterNames {
		if s == name {
			return r, true
		}
	}
	if s == `\t` {
		return '\t', true
	}
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || size != len(s) || !ValidDelimiter(r) {
		return 0, false
	}
	return r, true
}

// ValidDelimiter reports whether r can separate cells. Characters with a
// meaning to the tokenizer (quote, escape marker, line breaks) are rejected.
func ValidDelimiter(r rune) bool {
	return r != 0 && r != quoteChar && r != escapeMarker && r != '\r' && r != '\n' &&
		utf8.ValidRune(r) && r != utf8.RuneError
}

// Row is one non-blank physical line of input.
type Row struct {
	// Cells holds the trimmed cell values. It always has at least one entry.
	Cells []string `json:"cells" yaml:"cells"`
	// Raw is the original line, before trimming or splitting.
	Raw string `json:"raw" yaml:"raw"`
}

// Table is the result of a parse. It is built once and owned by the caller.
type Table struct {
	Rows      []Row
	Delimiter rune
	// ColumnCount is the largest number of cells in any row, or 0 for an
	// empty table.
	ColumnCount int
}

// Empty reports whether the table has no rows. An empty table has nothing
// to colorize and should be displayed as plain text.
func (t Table) Empty() bool { return len(t.Rows) == 0 }

// Parse detects the delimiter of text and tokenizes every non-blank line.
func Parse(text string) Table {
	return ParseWith(text, DetectDelimiter(text))
}

// ParseWith tokenizes text using delim, skipping detection.
func ParseWith(text string, delim rune) Table {
	t := Table{Delimiter: delim}
	for _, line := range strings.Split(text, "\n") {
		if isBlank(line) {
			continue
		}
		cells := ParseLine(line, delim)
		t.Rows = append(t.Rows, Row{Cells: cells, Raw: line})
		if len(cells) > t.ColumnCount {
			t.ColumnCount = len(cells)
		}
	}
	return t
}

// ParseLine splits a single line into trimmed cells. Quotes are stripped and
// toggle whether delim separates cells; a backslash makes the next character
// literal. A line that ends inside quotes or after a dangling backslash is
// accepted as-is.
func ParseLine(line string, delim rune) []string {
	_, cells := scanLine(line, delim, scanExtract)
	return cells
}

// DetectDelimiter picks the candidate with the most unquoted, unescaped
// occurrences on the first non-blank line. Ties go to the earlier
// candidate; with no lines or no occurrences the result is a comma.
func DetectDelimiter(text string) rune {
	sample, ok := firstNonBlank(text)
	if !ok {
		return DefaultDelimiter
	}
	best, bestCount := DefaultDelimiter, 0
	for _, d := range delimiters {
		if n, _ := scanLine(sample, d, scanCount); n > bestCount {
			best, bestCount = d, n
		}
	}
	return best
}

type scanMode int

const (
	scanCount scanMode = iota
	scanExtract
)

// scanLine runs the quote/escape state machine over one line. In count mode
// it only tallies delimiters that close a cell; in extract mode it also
// returns the cells.
func scanLine(line string, delim rune, mode scanMode) (int, []string) {
	var (
		count      int
		cells      []string
		buf        strings.Builder
		inQuotes   bool
		escapeNext bool
	)
	write := func(r rune) {
		if mode == scanExtract {
			buf.WriteRune(r)
		}
	}
	for _, r := range line {
		switch {
		case escapeNext:
			write(r)
			escapeNext = false
		case r == escapeMarker:
			escapeNext = true
		case r == quoteChar:
			inQuotes = !inQuotes
		case !inQuotes && r == delim:
			count++
			if mode == scanExtract {
				cells = append(cells, trim(buf.String()))
				buf.Reset()
			}
		default:
			write(r)
		}
	}
	if mode == scanExtract {
		cells = append(cells, trim(buf.String()))
	}
	return count, cells
}

func firstNonBlank(text string) (string, bool) {
	for _, line := range strings.Split(text, "\n") {
		if !isBlank(line) {
			return line, true
		}
	}
	return "", false
}

func isBlank(s string) bool { return trim(s) == "" }

// trim strips white space and byte-order marks from both ends. NEL (U+0085)
// is kept as cell content.
func trim(s string) string {
	return strings.TrimFunc(s, isTrimSpace)
}

func isTrimSpace(r rune) bool {
	return (unicode.IsSpace(r) && r != '\u0085') || r == '\uFEFF'
}
