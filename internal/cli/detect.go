package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/bjaus/rainbow"
)

func newDetectCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "detect [file...]",
		Short: "Print the detected delimiter",
		Long: `Print the delimiter (comma, tab, semicolon or pipe) that rainbow would use
for each input. With several inputs each line is prefixed by the file name.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs := inputNames(args)
			for _, name := range inputs {
				text, err := s.readInput(name)
				if err != nil {
					return err
				}
				d := rainbow.DetectDelimiter(text)
				slog.Debug("delimiter detected", "source", name, "delimiter", string(d))
				if len(inputs) > 1 {
					_, err = fmt.Fprintf(s.app.Stdout, "%s\t%s\n", name, rainbow.DelimiterName(d))
				} else {
					_, err = fmt.Fprintln(s.app.Stdout, rainbow.DelimiterName(d))
				}
				if err != nil {
					return err
				}
			}
			return nil
		},
	}
}
