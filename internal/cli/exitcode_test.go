package cli

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bjaus/rainbow"
)

func TestExitCode(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		err  error
		want int
	}{
		"nil":                {err: nil, want: ExitOK},
		"canceled":           {err: context.Canceled, want: ExitCanceled},
		"wrapped canceled":   {err: fmt.Errorf("read: %w", context.Canceled), want: ExitCanceled},
		"user":               {err: NewUserError("bad", "hint"), want: ExitUser},
		"wrapped user":       {err: fmt.Errorf("outer: %w", WrapUserError(errors.New("x"), "bad", "")), want: ExitUser},
		"invalid option":     {err: fmt.Errorf("%w: palette", rainbow.ErrInvalidOption), want: ExitUser},
		"unsupported format": {err: fmt.Errorf("%w: xml", rainbow.ErrUnsupportedFormat), want: ExitUser},
		"invalid template":   {err: fmt.Errorf("%w: {{", rainbow.ErrInvalidTemplate), want: ExitUser},
		"empty table":        {err: rainbow.ErrEmptyTable, want: ExitSystem},
		"other":              {err: errors.New("disk full"), want: ExitSystem},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}

func TestUserError(t *testing.T) {
	t.Parallel()
	inner := errors.New("boom")
	err := WrapUserError(inner, "cannot read input", "check the file path")
	assert.Equal(t, "cannot read input: boom", err.Error())
	assert.ErrorIs(t, err, inner)
	assert.Equal(t, "bad", NewUserError("bad", "").Error())
}
