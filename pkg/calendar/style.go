package calendar

import (
	"strings"

	"github.com/arthur-debert/gitcal/pkg/errors"
)

// TileStyle selects the glyph drawn for each day.
type TileStyle int

const (
	StyleSmallSquare TileStyle = iota
	StyleFullBlock
	StyleHalfBlock
	StyleCircle
)

type tileSpec struct {
	name  string
	glyph string
	// width is the number of terminal columns one week occupies
	width int
	// endcap pads each row with an extra base-colored column on both
	// sides so the rounded tiles do not touch the block's edge
	endcap bool
}

var tileSpecs = [...]tileSpec{
	StyleSmallSquare: {name: "square", glyph: " ■", width: 2},
	StyleFullBlock:   {name: "block", glyph: " █", width: 2},
	StyleHalfBlock:   {name: "half", glyph: "█", width: 1},
	// Powerline rounded separators; needs a patched (Nerd) font
	StyleCircle: {name: "circle", glyph: "\ue0b6\ue0b4", width: 2, endcap: true},
}

func (s TileStyle) spec() tileSpec {
	if s < StyleSmallSquare || s > StyleCircle {
		return tileSpecs[StyleSmallSquare]
	}
	return tileSpecs[s]
}

// Tile returns the glyph(s) drawn for one day.
func (s TileStyle) Tile() string { return s.spec().glyph }

// Width returns how many terminal columns one week column takes.
func (s TileStyle) Width() int { return s.spec().width }

// Endcap reports whether rows get an extra column of base padding.
func (s TileStyle) Endcap() bool { return s.spec().endcap }

// String returns the configuration name of the style.
func (s TileStyle) String() string { return s.spec().name }

// TileStyleNames lists the accepted configuration names.
func TileStyleNames() []string {
	names := make([]string, len(tileSpecs))
	for i, spec := range tileSpecs {
		names[i] = spec.name
	}
	return names
}

// ParseTileStyle parses a configuration name. The empty string selects
// the default small square.
func ParseTileStyle(name string) (TileStyle, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return StyleSmallSquare, nil
	}
	for i, spec := range tileSpecs {
		if spec.name == name {
			return TileStyle(i), nil
		}
	}
	return StyleSmallSquare, errors.Newf(errors.ErrInvalidStyle,
		"unknown tile style %q (available: %s)", name, strings.Join(TileStyleNames(), ", ")).
		WithDetail("style", name)
}

// SelectTileStyle turns the three mutually exclusive style switches into
// a TileStyle. Asking for more than one is an error; asking for none
// gives the small square.
func SelectTileStyle(block, half, circle bool) (TileStyle, error) {
	var selected []string
	style := StyleSmallSquare
	if block {
		selected = append(selected, "block")
		style = StyleFullBlock
	}
	if half {
		selected = append(selected, "half")
		style = StyleHalfBlock
	}
	if circle {
		selected = append(selected, "circle")
		style = StyleCircle
	}
	if len(selected) > 1 {
		return StyleSmallSquare, errors.Newf(errors.ErrConflicting,
			"only one tile style may be selected, got %s", strings.Join(selected, ", ")).
			WithDetail("styles", selected)
	}
	return style, nil
}

// DisplayOptions toggles the optional parts of the calendar.
type DisplayOptions struct {
	// ShowWeekdays adds the left gutter with Mon/Wed/Fri labels.
	ShowWeekdays bool
	// ShowMonths adds the month header and the closing spacer row.
	ShowMonths bool
	// ShowLegend adds a "Less ... More" line below the calendar.
	ShowLegend bool
}

// DefaultDisplayOptions shows weekday labels and the month header.
func DefaultDisplayOptions() DisplayOptions {
	return DisplayOptions{ShowWeekdays: true, ShowMonths: true}
}
