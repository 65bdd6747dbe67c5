// Package ui picks terminal color profiles and prints status messages.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// ColorMode determines when to use colored output.
type ColorMode int

const (
	// ColorAuto colors output only when it goes to a terminal.
	ColorAuto ColorMode = iota
	// ColorAlways forces colored output.
	ColorAlways
	// ColorNever disables colored output.
	ColorNever
)

var colorModeNames = []string{"auto", "always", "never"}

// String returns the mode name used by flags and the config file.
func (m ColorMode) String() string {
	if int(m) >= 0 && int(m) < len(colorModeNames) {
		return colorModeNames[m]
	}
	return fmt.Sprintf("ColorMode(%d)", int(m))
}

// ParseColorMode parses "auto", "always" or "never". The empty string means
// auto.
func ParseColorMode(s string) (ColorMode, error) {
	if s == "" {
		return ColorAuto, nil
	}
	for i, name := range colorModeNames {
		if name == s {
			return ColorMode(i), nil
		}
	}
	return ColorAuto, fmt.Errorf("invalid color mode %q (want auto, always or never)", s)
}

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Profile returns the color profile to use for output written to w. It
// respects the NO_COLOR environment variable.
func Profile(w io.Writer, mode ColorMode) termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		mode = ColorNever
	}
	switch mode {
	case ColorNever:
		return termenv.Ascii
	case ColorAlways:
		profile := termenv.NewOutput(w).ColorProfile()
		// Use at least ANSI256 if forcing colors
		if profile == termenv.Ascii {
			profile = termenv.ANSI256
		}
		return profile
	default:
		if !IsTerminal(w) {
			return termenv.Ascii
		}
		return termenv.NewOutput(w).EnvColorProfile()
	}
}

// UI prints status messages, normally to stderr so stdout stays data only.
type UI struct {
	out *termenv.Output
}

// New returns a UI writing to w with colors chosen by mode.
func New(w io.Writer, mode ColorMode) *UI {
	return &UI{out: termenv.NewOutput(w, termenv.WithProfile(Profile(w, mode)))}
}

// Success prints a success message in green.
func (u *UI) Success(format string, args ...any) {
	u.print("✓ ", termenv.ANSIGreen, format, args...)
}

// Warning prints a warning message in yellow.
func (u *UI) Warning(format string, args ...any) {
	u.print("⚠ ", termenv.ANSIYellow, format, args...)
}

// Error prints an error message in red.
func (u *UI) Error(format string, args ...any) {
	u.print("✗ ", termenv.ANSIRed, format, args...)
}

func (u *UI) print(prefix string, color termenv.ANSIColor, format string, args ...any) {
	msg := prefix + fmt.Sprintf(format, args...)
	_, _ = fmt.Fprintln(u.out, u.out.String(msg).Foreground(color))
}
