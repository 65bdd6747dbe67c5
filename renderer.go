package rainbow

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// Renderer turns raw tabular text into display output. It decides whether to
// parse at all, truncates large inputs and falls back to plain text when
// there is nothing to colorize. A Renderer is safe for concurrent use.
type Renderer struct {
	opts Options
}

// NewRenderer returns a Renderer using opts.
func NewRenderer(opts Options) (*Renderer, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Renderer{opts: opts}, nil
}

// Options returns the settings the renderer was built with.
func (r *Renderer) Options() Options { return r.opts }

// Render writes text to w in format f.
func (r *Renderer) Render(w io.Writer, f Format, text string) error {
	if !r.opts.Enabled {
		return writeRaw(w, text)
	}
	body, notice := r.truncate(text)
	var t Table
	if r.opts.Delimiter != 0 {
		t = ParseWith(body, r.opts.Delimiter)
	} else {
		t = Parse(body)
	}
	if t.Empty() && !f.Structured() {
		if notice != "" {
			if _, err := fmt.Fprintln(w, notice); err != nil {
				return err
			}
		}
		return writeRaw(w, body)
	}
	return write(w, f, view{table: t, opts: r.opts, notice: notice})
}

// Marshal renders text in format f and returns the bytes.
func (r *Renderer) Marshal(f Format, text string) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.Render(&buf, f, text); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// truncate keeps the first MaxRows lines of inputs longer than
// LargeInputLines and describes the cut.
func (r *Renderer) truncate(text string) (string, string) {
	lines := strings.Split(text, "\n")
	if len(lines) <= LargeInputLines {
		return text, ""
	}
	keep := min(r.opts.MaxRows, len(lines))
	notice := fmt.Sprintf("Large CSV detected (%d rows). Showing first %d rows for performance.", len(lines), keep)
	return strings.Join(lines[:keep], "\n"), notice
}

// Render writes text to w in format f using [DefaultOptions].
func Render(w io.Writer, f Format, text string) error {
	r := &Renderer{opts: DefaultOptions()}
	return r.Render(w, f, text)
}
