package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newVersionCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(s.app.Stdout, "rainbow %s\n", s.app.Version)
			return err
		},
	}
}
