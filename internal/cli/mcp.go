package cli

import (
	"log/slog"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/bjaus/rainbow/internal/mcpserver"
)

func newMCPCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve the parser and renderer as MCP tools over stdio",
		Long: `Run a Model Context Protocol server on stdin/stdout with the tools
detect_delimiter, parse_table and render_table. Rendering defaults come from
the config file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := s.baseOptions()
			if err != nil {
				return err
			}
			// Tool results are text, not a terminal.
			opts.Profile = termenv.Ascii
			slog.Debug("mcp server starting", "version", s.app.Version)
			return mcpserver.Serve(cmd.Context(), mcpserver.New(s.app.Version, opts), s.app.Stdin, s.app.Stdout)
		},
	}
}
