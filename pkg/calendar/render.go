package calendar

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/gitcal/pkg/palette"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
)

const (
	// gutterWidth is the width of the weekday label column
	gutterWidth = 4
)

// weekdayLabels are the only weekday rows that get a label
var weekdayLabels = map[int]string{
	1: " Mon",
	3: " Wed",
	5: " Fri",
}

// Render draws grid with the given months, palette, style and options
// using true color escape sequences. See Calendar.String for the layout.
func Render(grid Grid, months []Month, p palette.Palette, style TileStyle, options DisplayOptions) string {
	return New().
		WithGrid(grid).
		WithMonths(months).
		WithPalette(p).
		WithStyle(style).
		WithOptions(options).
		String()
}

// String renders the calendar.
//
// Layout, top to bottom:
//   - month header (ShowMonths): gutter, one space, then each month name
//     padded to Weeks*Width columns; a name that does not fit is left out
//     entirely rather than truncated
//   - seven weekday rows: gutter, endcap, one tile per week, one space
//   - spacer row (ShowMonths) as wide as a weekday row
//   - legend (ShowLegend)
//
// Every line ends with a newline. The grid must have seven rows of equal
// length and hold only valid levels; anything else is the caller's bug.
func (c Calendar) String() string {
	var b strings.Builder
	c.render(&b)
	return b.String()
}

// WriteTo writes the rendered calendar to w.
func (c Calendar) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, c.String())
	return int64(n), err
}

func (c Calendar) render(b *strings.Builder) {
	pt := c.painter()
	weeks := c.grid.Weeks()
	tileWidth := c.style.Width()
	endcap := c.style.Endcap()

	if c.options.ShowMonths {
		if c.options.ShowWeekdays {
			b.WriteString(pt.fill(gutterWidth))
		}
		b.WriteString(pt.fill(1))
		for _, m := range c.months {
			span := m.Weeks * tileWidth
			nameWidth := ansi.StringWidth(m.Name)
			if span > nameWidth {
				b.WriteString(pt.label(m.Name))
				b.WriteString(pt.fill(span - nameWidth))
			} else {
				b.WriteString(pt.fill(span))
			}
		}
		if endcap {
			b.WriteString(pt.fill(1))
		}
		b.WriteByte('\n')
	}

	for weekday, row := range c.grid {
		if c.options.ShowWeekdays {
			if label, ok := weekdayLabels[weekday]; ok {
				b.WriteString(pt.label(label))
			} else {
				b.WriteString(pt.fill(gutterWidth))
			}
		}
		if endcap {
			b.WriteString(pt.fill(1))
		}
		for _, level := range row {
			b.WriteString(pt.tile(level))
		}
		b.WriteString(pt.fill(1))
		b.WriteByte('\n')
	}

	if c.options.ShowMonths {
		b.WriteString(pt.fill(c.rowWidth(weeks)))
		b.WriteByte('\n')
	}

	if c.options.ShowLegend {
		b.WriteString(c.legend(pt))
		b.WriteByte('\n')
	}
}

// rowWidth is the width in columns of a weekday row: gutter, endcap,
// tiles and the trailing space.
func (c Calendar) rowWidth(weeks int) int {
	width := weeks*c.style.Width() + 1
	if c.options.ShowWeekdays {
		width += gutterWidth
	}
	if c.style.Endcap() {
		width++
	}
	return width
}

// brush paints a run of text in one foreground/background pair
type brush func(string) string

// painter holds the brushes for one render pass
type painter struct {
	base  brush
	text  brush
	glyph string
	tiles [palette.LevelCount]brush
}

// painter builds the brushes for the calendar's color profile. True color
// output writes the palette's exact RGB values as SGR parameters; degraded
// profiles go through lipgloss, which maps each color to the nearest one
// the profile supports, and Ascii drops color altogether.
func (c Calendar) painter() painter {
	pt := painter{glyph: c.style.Tile()}
	if c.profile == termenv.TrueColor {
		bg := c.palette.Base.ANSI()
		pt.base = ansi.Style{}.BackgroundColor(bg).Styled
		pt.text = ansi.Style{}.ForegroundColor(c.palette.Text.ANSI()).BackgroundColor(bg).Styled
		for i := range pt.tiles {
			pt.tiles[i] = ansi.Style{}.ForegroundColor(c.palette.Level(i).ANSI()).BackgroundColor(bg).Styled
		}
		return pt
	}

	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(c.profile)
	base := r.NewStyle().Background(c.palette.Base.Lipgloss())
	pt.base = lipglossBrush(base)
	pt.text = lipglossBrush(base.Foreground(c.palette.Text.Lipgloss()))
	for i := range pt.tiles {
		pt.tiles[i] = lipglossBrush(base.Foreground(c.palette.Level(i).Lipgloss()))
	}
	return pt
}

func lipglossBrush(s lipgloss.Style) brush {
	return func(str string) string { return s.Render(str) }
}

// fill returns n columns of base-colored blanks
func (pt painter) fill(n int) string {
	if n <= 0 {
		return ""
	}
	return pt.base(strings.Repeat(" ", n))
}

func (pt painter) label(s string) string {
	return pt.text(s)
}

func (pt painter) tile(level Level) string {
	if !level.Valid() {
		panic(fmt.Sprintf("calendar: invalid level %d", int(level)))
	}
	return pt.tiles[level](pt.glyph)
}
