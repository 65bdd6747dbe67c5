package cli

import (
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/bjaus/rainbow"
	"github.com/bjaus/rainbow/internal/ui"
)

type renderFlags struct {
	format          string
	paletteSize     int
	maxRows         int
	border          string
	header          bool
	numbered        bool
	maxWidth        int
	delimiter       string
	outputDelimiter string
	plain           bool
	query           string
}

func (f *renderFlags) register(fs *pflag.FlagSet) {
	fs.StringVarP(&f.format, "format", "f", "", "Output format: "+formatList()+" or go-template=<tmpl> (default ansi)")
	fs.IntVar(&f.paletteSize, "palette-size", rainbow.DefaultPaletteSize, "Number of column colors before they repeat (5-20)")
	fs.IntVar(&f.maxRows, "max-rows", rainbow.DefaultMaxRows, "Lines kept from inputs over 1000 lines (100-2000)")
	fs.StringVar(&f.border, "border", "", "Table border: rounded|none|ascii|heavy|double")
	fs.BoolVar(&f.header, "header", false, "Treat the first row as a header (table format)")
	fs.BoolVar(&f.numbered, "numbered", false, "Number rows (table format)")
	fs.IntVar(&f.maxWidth, "max-width", 0, "Truncate table cells wider than this (0 = no limit)")
	fs.StringVar(&f.delimiter, "delimiter", "", "Force the input delimiter: comma, tab, semicolon, pipe or one character")
	fs.StringVar(&f.outputDelimiter, "output-delimiter", "", "Field separator for csv output")
	fs.BoolVar(&f.plain, "plain", false, "Print input unchanged")
	fs.StringVarP(&f.query, "query", "q", "", "JQ expression applied to json or jsonl output")
}

func formatList() string {
	fs := rainbow.Formats()
	names := make([]string, len(fs))
	for i, f := range fs {
		names[i] = f.String()
	}
	return strings.Join(names, "|")
}

// options applies the render flags over the config file settings.
func (s *session) options(fs *pflag.FlagSet, f *renderFlags) (rainbow.Options, rainbow.Format, error) {
	opts, err := s.baseOptions()
	if err != nil {
		return opts, "", err
	}
	if fs.Changed("palette-size") {
		opts.PaletteSize = f.paletteSize
	}
	if fs.Changed("max-rows") {
		opts.MaxRows = f.maxRows
	}
	if f.border != "" {
		b, err := rainbow.ParseBorder(f.border)
		if err != nil {
			return opts, "", WrapUserError(err, "invalid --border", "use rounded, none, ascii, heavy or double")
		}
		opts.Border = b
	}
	opts.Header = f.header
	opts.Numbered = f.numbered
	opts.MaxCellWidth = f.maxWidth
	if f.plain {
		opts.Enabled = false
	}
	if f.delimiter != "" {
		d, ok := rainbow.ParseDelimiter(f.delimiter)
		if !ok {
			return opts, "", NewUserError("invalid --delimiter "+f.delimiter, "use comma, tab, semicolon, pipe or a single character")
		}
		opts.Delimiter = d
	}
	if f.outputDelimiter != "" {
		d, ok := rainbow.ParseDelimiter(f.outputDelimiter)
		if !ok {
			return opts, "", NewUserError("invalid --output-delimiter "+f.outputDelimiter, "use comma, tab, semicolon, pipe or a single character")
		}
		opts.OutputDelimiter = d
	}

	mode, err := s.colorMode()
	if err != nil {
		return opts, "", err
	}
	opts.Profile = ui.Profile(s.app.Stdout, mode)

	name := f.format
	if name == "" {
		name = s.cfg.Format
	}
	if name == "" {
		name = rainbow.ANSI.String()
	}
	format, err := rainbow.ParseFormat(name)
	if err != nil {
		return opts, "", WrapUserError(err, "invalid --format", "use one of "+formatList())
	}

	if err := opts.Validate(); err != nil {
		return opts, "", WrapUserError(err, "invalid options", "")
	}
	return opts, format, nil
}

func (s *session) render(cmd *cobra.Command, f *renderFlags, args []string) error {
	opts, format, err := s.options(cmd.Flags(), f)
	if err != nil {
		return err
	}

	var q *query
	if f.query != "" {
		if format != rainbow.JSON && format != rainbow.JSONL {
			return NewUserError("--query needs json or jsonl output", "add --format json")
		}
		if !opts.Enabled {
			return NewUserError("--query needs coloring enabled", "drop --plain or set enabled: true in the config file")
		}
		if q, err = compileQuery(f.query); err != nil {
			return err
		}
	}

	r, err := rainbow.NewRenderer(opts)
	if err != nil {
		return WrapUserError(err, "invalid options", "")
	}

	for _, name := range inputNames(args) {
		if err := cmd.Context().Err(); err != nil {
			return err
		}
		text, err := s.readInput(name)
		if err != nil {
			return err
		}
		slog.Debug("rendering",
			"source", name,
			"format", format.String(),
			"delimiter", rainbow.DelimiterName(rainbow.DetectDelimiter(text)),
			"enabled", opts.Enabled)
		if n := strings.Count(text, "\n") + 1; opts.Enabled && n > rainbow.LargeInputLines {
			slog.Debug("large input truncated", "lines", n, "kept", min(opts.MaxRows, n))
		}

		if q != nil {
			err = q.run(s.app.Stdout, r, format, text)
		} else {
			err = r.Render(s.app.Stdout, format, text)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
