package palette

import (
	"github.com/arthur-debert/gitcal/pkg/errors"
)

// LevelCount is the number of contribution levels a palette colors,
// from "no contributions" (0) to the highest quartile (4).
const LevelCount = 5

// Palette is the full set of colors used to draw a calendar.
type Palette struct {
	// Text colors month names and weekday labels.
	Text Color
	// Base is the background of the whole calendar block.
	Base Color
	// Levels holds one tile color per contribution level.
	Levels [LevelCount]Color
}

// Default returns the built-in dark palette with a green ramp.
func Default() Palette {
	return Palette{
		Text: RGB(255, 255, 255),
		Base: RGB(14, 17, 33),
		Levels: [LevelCount]Color{
			RGB(23, 27, 33),
			RGB(31, 67, 43),
			RGB(46, 108, 56),
			RGB(81, 163, 78),
			RGB(108, 208, 99),
		},
	}
}

// Level returns the tile color for level i. i must be in [0, LevelCount).
func (p Palette) Level(i int) Color {
	return p.Levels[i]
}

// WithText returns a copy of p with the text color replaced.
func (p Palette) WithText(hex string) (Palette, error) {
	c, err := ParseHexColor(hex)
	if err != nil {
		return p, withSlot(err, "text")
	}
	p.Text = c
	return p, nil
}

// WithBase returns a copy of p with the base color replaced.
func (p Palette) WithBase(hex string) (Palette, error) {
	c, err := ParseHexColor(hex)
	if err != nil {
		return p, withSlot(err, "base")
	}
	p.Base = c
	return p, nil
}

// WithLevel returns a copy of p with the color of level i replaced.
func (p Palette) WithLevel(i int, hex string) (Palette, error) {
	if i < 0 || i >= LevelCount {
		return p, errors.Newf(errors.ErrInvalidInput,
			"level %d out of range [0, %d)", i, LevelCount)
	}
	c, err := ParseHexColor(hex)
	if err != nil {
		return p, withSlot(err, SlotName(i))
	}
	p.Levels[i] = c
	return p, nil
}

// Overrides carries optional hex strings for each palette slot. Empty
// strings leave the slot untouched.
type Overrides struct {
	Text   string
	Base   string
	Levels [LevelCount]string
}

// IsZero reports whether no slot is overridden.
func (o Overrides) IsZero() bool {
	return o == Overrides{}
}

// WithOverrides applies every non-empty slot of o, base first, then text,
// then color0..color4. It stops at the first malformed color.
func (p Palette) WithOverrides(o Overrides) (Palette, error) {
	var err error
	if o.Base != "" {
		if p, err = p.WithBase(o.Base); err != nil {
			return p, err
		}
	}
	if o.Text != "" {
		if p, err = p.WithText(o.Text); err != nil {
			return p, err
		}
	}
	for i, hex := range o.Levels {
		if hex == "" {
			continue
		}
		if p, err = p.WithLevel(i, hex); err != nil {
			return p, err
		}
	}
	return p, nil
}

// SlotName returns the user-facing name of level slot i ("color0" ...).
func SlotName(i int) string {
	return "color" + string(rune('0'+i))
}

func withSlot(err error, slot string) error {
	if e, ok := err.(*errors.GitcalError); ok {
		return e.WithDetail("slot", slot)
	}
	return err
}
