package calendar

import "strings"

// Legend renders the single "Less ... More" line that explains the tile
// colors, aligned with the weekday rows.
func (c Calendar) Legend() string {
	return c.legend(c.painter())
}

func (c Calendar) legend(pt painter) string {
	var b strings.Builder
	if c.options.ShowWeekdays {
		b.WriteString(pt.fill(gutterWidth))
	}
	if c.style.Endcap() {
		b.WriteString(pt.fill(1))
	}
	b.WriteString(pt.label(" Less"))
	for _, level := range Levels() {
		b.WriteString(pt.tile(level))
	}
	b.WriteString(pt.label(" More"))
	b.WriteString(pt.fill(1))
	return b.String()
}
