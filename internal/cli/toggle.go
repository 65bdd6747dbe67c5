package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
)

func newToggleCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle",
		Short: "Turn column coloring on or off",
		Long: `Flip the enabled setting in the config file. While disabled, rainbow prints
its input unchanged.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if s.cfgPath == "" {
				return NewUserError("no config file location", "pass --config <path>")
			}
			s.cfg.SetEnabled(!s.cfg.IsEnabled())
			if err := s.cfg.SaveToPath(s.cfgPath); err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}
			slog.Debug("config saved", "path", s.cfgPath, "enabled", s.cfg.IsEnabled())

			if s.cfg.IsEnabled() {
				s.ui().Success("Rainbow CSV enabled")
			} else {
				s.ui().Success("Rainbow CSV disabled")
			}
			return nil
		},
	}
}
