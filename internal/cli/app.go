// Package cli implements the rainbow command line.
package cli

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/bjaus/rainbow/internal/ui"
)

// App owns CLI wiring and execution configuration.
type App struct {
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
	Version string
}

// NewApp constructs an App with default settings.
func NewApp() *App {
	return &App{
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Version: "dev",
	}
}

// Execute runs the CLI with the provided args.
func (a *App) Execute(ctx context.Context, args []string) error {
	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetIn(a.Stdin)
	root.SetOut(a.Stdout)
	root.SetErr(a.Stderr)

	if err := root.ExecuteContext(ctx); err != nil {
		a.printError(err)
		return err
	}
	return nil
}

// RootCommand exposes the root Cobra command for embedding/tests.
func (a *App) RootCommand() *cobra.Command {
	return newRootCmd(a)
}

func (a *App) printError(err error) {
	if errors.Is(err, context.Canceled) {
		return
	}
	u := ui.New(a.Stderr, ui.ColorAuto)
	u.Error("%s", err)
	var ue *UserError
	if errors.As(err, &ue) && ue.Suggestion != "" {
		u.Warning("%s", ue.Suggestion)
	}
}
