package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/bjaus/rainbow"
)

func newCSSCmd(s *session) *cobra.Command {
	var size int
	cmd := &cobra.Command{
		Use:   "css",
		Short: "Print the stylesheet for html output",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := s.baseOptions()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("palette-size") {
				opts.PaletteSize = size
				if err := opts.Validate(); err != nil {
					return WrapUserError(err, "invalid --palette-size", "use a value from 5 to 20")
				}
			}
			_, err = io.WriteString(s.app.Stdout, rainbow.Stylesheet(opts.Palette, opts.PaletteSize))
			return err
		},
	}
	cmd.Flags().IntVar(&size, "palette-size", rainbow.DefaultPaletteSize, "Number of column classes (5-20)")
	return cmd
}
