// Package palette holds the colors gitcal paints with: a text color, a
// base (background) color and one color per contribution level.
//
// Palettes are values. The With* methods return a modified copy, so a
// palette can be built by chaining overrides on top of Default() or a
// named Theme:
//
//	p, err := palette.Default().WithBase("#000000")
//	p, err = p.WithLevel(4, "ff00ff")
//
// Every user supplied color goes through ParseHexColor, which accepts six
// hex digits with an optional leading '#'.
package palette
