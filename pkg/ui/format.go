package ui

import (
	"os"
	"strings"

	"github.com/arthur-debert/gitcal/pkg/errors"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// ColorMode selects whether the calendar is written with color escapes
type ColorMode int

const (
	// ColorAuto colors output only when writing to a color-capable terminal
	ColorAuto ColorMode = iota
	// ColorAlways forces 24-bit color escapes, even when piped
	ColorAlways
	// ColorNever writes plain glyphs without any escapes
	ColorNever
)

// String returns the string representation of the color mode
func (m ColorMode) String() string {
	switch m {
	case ColorAuto:
		return "auto"
	case ColorAlways:
		return "always"
	case ColorNever:
		return "never"
	default:
		return "unknown"
	}
}

// ColorModeNames lists the accepted values for --color
func ColorModeNames() []string {
	return []string{ColorAuto.String(), ColorAlways.String(), ColorNever.String()}
}

// ParseColorMode parses a string into a ColorMode value
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "auto", "":
		return ColorAuto, nil
	case "always", "force":
		return ColorAlways, nil
	case "never", "none", "off":
		return ColorNever, nil
	default:
		return ColorAuto, errors.Newf(errors.ErrConfigValid, "unknown color mode: %s", s).
			WithDetail("value", s)
	}
}

// Profile returns the termenv profile the calendar should be painted with
// when writing to output.
func (m ColorMode) Profile(output *os.File) termenv.Profile {
	switch m {
	case ColorAlways:
		return termenv.TrueColor
	case ColorNever:
		return termenv.Ascii
	default:
		return DetectProfile(output)
	}
}

// DetectProfile determines the color profile based on environment and terminal capabilities
func DetectProfile(output *os.File) termenv.Profile {
	// Check if NO_COLOR is set
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}

	if output == nil {
		return termenv.Ascii
	}

	// Check if we're being piped or redirected
	if !isatty.IsTerminal(output.Fd()) && !isatty.IsCygwinTerminal(output.Fd()) {
		return termenv.Ascii
	}

	return termenv.NewOutput(output).EnvColorProfile()
}
