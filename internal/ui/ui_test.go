package ui

import (
	"bytes"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColorMode(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input   string
		want    ColorMode
		wantErr require.ErrorAssertionFunc
	}{
		"empty":   {input: "", want: ColorAuto, wantErr: require.NoError},
		"auto":    {input: "auto", want: ColorAuto, wantErr: require.NoError},
		"always":  {input: "always", want: ColorAlways, wantErr: require.NoError},
		"never":   {input: "never", want: ColorNever, wantErr: require.NoError},
		"unknown": {input: "sometimes", want: ColorAuto, wantErr: require.Error},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseColorMode(tt.input)
			tt.wantErr(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestColorModeString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "always", ColorAlways.String())
	assert.Equal(t, "ColorMode(7)", ColorMode(7).String())
}

func TestProfile(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	var buf bytes.Buffer
	assert.Equal(t, termenv.Ascii, Profile(&buf, ColorNever))
	assert.Equal(t, termenv.Ascii, Profile(&buf, ColorAuto))
	assert.NotEqual(t, termenv.Ascii, Profile(&buf, ColorAlways))
}

func TestProfileNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, termenv.Ascii, Profile(&bytes.Buffer{}, ColorAlways))
}

func TestIsTerminal(t *testing.T) {
	t.Parallel()
	assert.False(t, IsTerminal(&bytes.Buffer{}))
}

func TestUIMessagesWithoutColor(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	var buf bytes.Buffer
	u := New(&buf, ColorNever)
	u.Success("enabled %s", "rainbow")
	u.Warning("careful")
	u.Error("failed")
	assert.Equal(t, "✓ enabled rainbow\n⚠ careful\n✗ failed\n", buf.String())
}
