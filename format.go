package rainbow

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrInvalidTemplate   = errors.New("invalid template")
	ErrInvalidOption     = errors.New("invalid option")
	ErrEmptyTable        = errors.New("empty table")
)

// Format represents an output format.
type Format string

const (
	Plain    Format = "plain"
	ANSI     Format = "ansi"
	HTML     Format = "html"
	Grid     Format = "table"
	Markdown Format = "markdown"
	CSV      Format = "csv"
	TSV      Format = "tsv"
	JSON     Format = "json"
	YAML     Format = "yaml"
	JSONL    Format = "jsonl"
)

const goTemplatePrefix = "go-template="

var formats = []Format{Plain, ANSI, HTML, Grid, Markdown, CSV, TSV, JSON, YAML, JSONL}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all supported static format names.
// GoTemplate is not included because it is parameterized.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// GoTemplate returns a Format that renders each row using a Go text/template.
// The template sees a [TemplateRow].
func GoTemplate(tmpl string) Format {
	return Format(goTemplatePrefix + tmpl)
}

// ParseFormat parses a format string. Recognizes all static formats and
// go-template=<tmpl> strings.
func ParseFormat(s string) (Format, error) {
	if strings.HasPrefix(s, goTemplatePrefix) {
		return Format(s), nil
	}
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// Structured reports whether f serializes the table document rather than
// displaying it. Structured formats accept empty tables.
func (f Format) Structured() bool {
	switch f {
	case JSON, YAML, JSONL:
		return true
	default:
		return false
	}
}

// view is what a format writer receives: the table plus the presentation
// settings of the caller.
type view struct {
	table  Table
	opts   Options
	notice string
}

// Write renders an already-parsed table in format f. Display formats reject
// an empty table with [ErrEmptyTable]; use a [Renderer] to get the plain
// text fallback instead.
func Write(w io.Writer, f Format, t Table, opts Options) error {
	if err := opts.Validate(); err != nil {
		return err
	}
	return write(w, f, view{table: t, opts: opts})
}

func write(w io.Writer, f Format, v view) error {
	if v.table.Empty() && f != Plain && !f.Structured() {
		return fmt.Errorf("%w: format %q needs at least one row", ErrEmptyTable, f)
	}
	switch f {
	case Plain:
		return writePlain(w, v)
	case ANSI:
		return writeANSI(w, v)
	case HTML:
		return writeHTML(w, v)
	case Grid:
		return writeGrid(w, v)
	case Markdown:
		return writeMarkdown(w, v)
	case CSV:
		return writeCSV(w, v)
	case TSV:
		return writeTSV(w, v)
	case JSON:
		return writeJSON(w, v)
	case YAML:
		return writeYAML(w, v)
	case JSONL:
		return writeJSONL(w, v)
	default:
		if tmpl, ok := strings.CutPrefix(string(f), goTemplatePrefix); ok {
			return writeGoTemplate(w, tmpl, v)
		}
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// MarshalTable renders t in format f and returns the bytes.
func MarshalTable(f Format, t Table, opts Options) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, f, t, opts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
