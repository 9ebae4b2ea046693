package palette

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/gitcal/pkg/errors"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/lucasb-eyer/go-colorful"
)

// Color is a 24-bit RGB color.
type Color struct {
	R, G, B uint8
}

// RGB builds a Color from its components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// ParseHexColor parses a six digit RGB hex string such as "1f432b" or
// "#1F432B". Shorthand forms ("#fff") and named colors are rejected.
func ParseHexColor(s string) (Color, error) {
	digits := strings.TrimPrefix(s, "#")
	if len(digits) != 6 || strings.IndexFunc(digits, notHexDigit) >= 0 {
		return Color{}, errors.Newf(errors.ErrInvalidColor,
			"invalid color %q: expected six hex digits", s).
			WithDetail("value", s)
	}

	c, err := colorful.Hex("#" + digits)
	if err != nil {
		return Color{}, errors.Wrapf(err, errors.ErrInvalidColor,
			"invalid color %q", s).
			WithDetail("value", s)
	}

	r, g, b := c.RGB255()
	return Color{R: r, G: g, B: b}, nil
}

// MustParseHexColor is like ParseHexColor but panics on malformed input.
// Only meant for literals.
func MustParseHexColor(s string) Color {
	c, err := ParseHexColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex returns the color as "#rrggbb".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// String implements fmt.Stringer
func (c Color) String() string {
	return c.Hex()
}

// Lipgloss returns the color in the form lipgloss styles expect.
func (c Color) Lipgloss() lipgloss.Color {
	return lipgloss.Color(c.Hex())
}

// ANSI returns the color as a 24-bit SGR color. Channels are kept as is,
// with no float round trip.
func (c Color) ANSI() ansi.TrueColor {
	return ansi.TrueColor(uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B))
}

func notHexDigit(r rune) bool {
	switch {
	case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		return false
	}
	return true
}
