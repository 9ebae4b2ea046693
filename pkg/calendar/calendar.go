package calendar

import (
	"github.com/arthur-debert/gitcal/pkg/errors"
	"github.com/arthur-debert/gitcal/pkg/palette"
	"github.com/muesli/termenv"
)

// Calendar bundles everything needed to draw one contribution calendar.
// It is built with New and the With* methods, each of which returns a
// modified copy.
type Calendar struct {
	grid    Grid
	months  []Month
	palette palette.Palette
	style   TileStyle
	options DisplayOptions
	profile termenv.Profile
}

// New returns an empty calendar with the default palette, the small
// square style, weekday and month labels on, and true color output.
func New() Calendar {
	return Calendar{
		palette: palette.Default(),
		style:   StyleSmallSquare,
		options: DefaultDisplayOptions(),
		profile: termenv.TrueColor,
	}
}

func (c Calendar) WithGrid(grid Grid) Calendar {
	c.grid = grid
	return c
}

func (c Calendar) WithMonths(months []Month) Calendar {
	c.months = months
	return c
}

func (c Calendar) WithPalette(p palette.Palette) Calendar {
	c.palette = p
	return c
}

func (c Calendar) WithStyle(style TileStyle) Calendar {
	c.style = style
	return c
}

func (c Calendar) WithOptions(options DisplayOptions) Calendar {
	c.options = options
	return c
}

func (c Calendar) WithShowWeekdays(show bool) Calendar {
	c.options.ShowWeekdays = show
	return c
}

func (c Calendar) WithShowMonths(show bool) Calendar {
	c.options.ShowMonths = show
	return c
}

func (c Calendar) WithLegend(show bool) Calendar {
	c.options.ShowLegend = show
	return c
}

// WithColorProfile sets the terminal color profile used for escape
// sequences. termenv.Ascii produces plain text with the same layout.
func (c Calendar) WithColorProfile(profile termenv.Profile) Calendar {
	c.profile = profile
	return c
}

func (c Calendar) Grid() Grid { return c.grid }
func (c Calendar) Months() []Month { return c.months }
func (c Calendar) Palette() palette.Palette { return c.palette }
func (c Calendar) Style() TileStyle { return c.style }
func (c Calendar) Options() DisplayOptions { return c.options }
func (c Calendar) ColorProfile() termenv.Profile { return c.profile }

// Validate checks the shape assumptions the renderer relies on: seven
// rows of equal length, and, when the month header is shown, positive
// month spans that add up to the number of weeks. Render does not call
// it; a calendar that fails validation still renders, misaligned.
func (c Calendar) Validate() error {
	if len(c.grid) != DaysPerWeek {
		return errors.Newf(errors.ErrGridShape,
			"grid has %d weekday rows, want %d", len(c.grid), DaysPerWeek).
			WithDetail("rows", len(c.grid))
	}

	weeks := c.grid.Weeks()
	for weekday, row := range c.grid {
		if len(row) != weeks {
			return errors.Newf(errors.ErrGridShape,
				"weekday %d has %d weeks, want %d", weekday, len(row), weeks).
				WithDetail("weekday", weekday)
		}
		for week, level := range row {
			if !level.Valid() {
				return errors.Newf(errors.ErrInvalidLevel,
					"invalid level %d at weekday %d, week %d", int(level), weekday, week)
			}
		}
	}

	if !c.options.ShowMonths {
		return nil
	}

	span := 0
	for _, m := range c.months {
		if m.Weeks <= 0 {
			return errors.Newf(errors.ErrGridShape,
				"month %q spans %d weeks", m.Name, m.Weeks).
				WithDetail("month", m.Name)
		}
		span += m.Weeks
	}
	if span != weeks {
		return errors.Newf(errors.ErrGridShape,
			"months span %d weeks but the grid has %d", span, weeks).
			WithDetail("monthWeeks", span).
			WithDetail("gridWeeks", weeks)
	}
	return nil
}
