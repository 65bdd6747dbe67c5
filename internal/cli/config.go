package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newConfigCmd(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the config file",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective settings as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := s.baseOptions()
			if err != nil {
				return err
			}
			mode, err := s.colorMode()
			if err != nil {
				return err
			}
			format := s.cfg.Format
			if format == "" {
				format = "ansi"
			}
			effective := struct {
				Enabled     bool     `yaml:"enabled"`
				PaletteSize int      `yaml:"palette_size"`
				MaxRows     int      `yaml:"max_rows"`
				Palette     []string `yaml:"palette,omitempty"`
				Format      string   `yaml:"format"`
				Color       string   `yaml:"color"`
				Border      string   `yaml:"border"`
			}{
				Enabled:     opts.Enabled,
				PaletteSize: opts.PaletteSize,
				MaxRows:     opts.MaxRows,
				Palette:     s.cfg.Palette,
				Format:      format,
				Color:       mode.String(),
				Border:      opts.Border.String(),
			}
			data, err := yaml.Marshal(effective)
			if err != nil {
				return err
			}
			_, err = s.app.Stdout.Write(data)
			return err
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the config file location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if s.cfgPath == "" {
				return NewUserError("no config file location", "pass --config <path>")
			}
			_, err := fmt.Fprintln(s.app.Stdout, s.cfgPath)
			return err
		},
	})
	return cmd
}
