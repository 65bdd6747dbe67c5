package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bjaus/rainbow"
	"github.com/bjaus/rainbow/internal/config"
	"github.com/bjaus/rainbow/internal/logging"
	"github.com/bjaus/rainbow/internal/ui"
)

// session holds the global flags and the loaded config for one invocation.
type session struct {
	app *App

	configFlag string
	debug      bool
	logJSON    bool
	color      string

	cfg     *config.Config
	cfgPath string
}

func newRootCmd(app *App) *cobra.Command {
	s := &session{app: app}
	rf := &renderFlags{}

	root := &cobra.Command{
		Use:   "rainbow [file...]",
		Short: "Color delimited text by column",
		Long: `Detect the delimiter of CSV, TSV, semicolon or pipe separated text and
print it with one color per column. Reads the named files, or stdin when no
file (or "-") is given.`,
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		Version:       app.Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return s.setup()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.render(cmd, rf, args)
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetVersionTemplate("rainbow {{.Version}}\n")
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return WrapUserError(err, "invalid flag", "run rainbow --help for usage")
	})

	pf := root.PersistentFlags()
	pf.StringVar(&s.configFlag, "config", "", "Config file (default ~/.config/rainbow/config.yaml)")
	pf.BoolVar(&s.debug, "debug", false, "Enable debug logging")
	pf.BoolVar(&s.logJSON, "log-json", false, "Write logs as JSON")
	pf.StringVar(&s.color, "color", "", "Color mode: auto|always|never (default auto)")

	rf.register(root.Flags())

	root.AddCommand(newDetectCmd(s))
	root.AddCommand(newToggleCmd(s))
	root.AddCommand(newConfigCmd(s))
	root.AddCommand(newCSSCmd(s))
	root.AddCommand(newMCPCmd(s))
	root.AddCommand(newVersionCmd(s))

	return root
}

// setup configures logging and loads the config file.
func (s *session) setup() error {
	if s.logJSON {
		logging.SetupJSON(s.debug, s.app.Stderr)
	} else {
		logging.Setup(s.debug, s.app.Stderr)
	}

	s.cfgPath = s.configFlag
	if s.cfgPath == "" {
		path, err := config.DefaultConfigPath()
		if err != nil {
			slog.Debug("no config location", "error", err)
			s.cfg = &config.Config{}
			return nil
		}
		s.cfgPath = path
	}

	cfg, err := config.LoadFromPath(s.cfgPath)
	if err != nil {
		return WrapUserError(err, "failed to load config", "fix or remove "+s.cfgPath)
	}
	slog.Debug("config loaded", "path", s.cfgPath)
	s.cfg = cfg
	return nil
}

func (s *session) colorMode() (ui.ColorMode, error) {
	name := s.color
	if name == "" {
		name = s.cfg.Color
	}
	mode, err := ui.ParseColorMode(name)
	if err != nil {
		return mode, WrapUserError(err, "invalid color mode", "use auto, always or never")
	}
	return mode, nil
}

// ui returns a message printer on stderr.
func (s *session) ui() *ui.UI {
	mode, err := s.colorMode()
	if err != nil {
		mode = ui.ColorAuto
	}
	return ui.New(s.app.Stderr, mode)
}

// baseOptions returns the config file settings merged onto the defaults.
func (s *session) baseOptions() (rainbow.Options, error) {
	opts, err := s.cfg.Options()
	if err != nil {
		return opts, WrapUserError(err, "invalid config", "check "+s.cfgPath)
	}
	return opts, nil
}

// inputNames returns args, or stdin when there are none.
func inputNames(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}

func (s *session) readInput(name string) (string, error) {
	var (
		data []byte
		err  error
	)
	if name == "-" {
		data, err = io.ReadAll(s.app.Stdin)
	} else {
		data, err = os.ReadFile(name)
	}
	if errors.Is(err, os.ErrNotExist) {
		return "", WrapUserError(err, "cannot read input", "check the file path")
	}
	if err != nil {
		return "", fmt.Errorf("read %s: %w", name, err)
	}
	text := string(data)
	slog.Debug("input read", "source", name, "bytes", len(data), "lines", strings.Count(text, "\n")+1)
	return text, nil
}
