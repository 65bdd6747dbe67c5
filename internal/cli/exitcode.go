package cli

import (
	"context"
	"errors"

	"github.com/bjaus/rainbow"
)

const (
	ExitOK       = 0
	ExitSystem   = 1
	ExitUser     = 2
	ExitCanceled = 130
)

// ExitCode maps a command error to a stable process exit code for automation.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	if errors.Is(err, context.Canceled) {
		return ExitCanceled
	}

	var ue *UserError
	if errors.As(err, &ue) {
		return ExitUser
	}
	if errors.Is(err, rainbow.ErrInvalidOption) ||
		errors.Is(err, rainbow.ErrUnsupportedFormat) ||
		errors.Is(err, rainbow.ErrInvalidTemplate) {
		return ExitUser
	}

	return ExitSystem
}
