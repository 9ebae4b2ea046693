package cli

import (
	"github.com/arthur-debert/gitcal/pkg/calendar"
	"github.com/arthur-debert/gitcal/pkg/github"
	"github.com/arthur-debert/gitcal/pkg/palette"
	"github.com/spf13/pflag"
)

// renderFlags are the flags that shape what is fetched and drawn. They
// are shared by the root command and `gitcal config`.
type renderFlags struct {
	username string
	block    bool
	half     bool
	circle   bool
	ytd      bool
	month    bool
	theme    string
	text     string
	base     string
	colors   [palette.LevelCount]string

	hideDays   bool
	hideMonths bool
	legend     bool
	colorMode  string
}

// stringFlagKeys maps string flags to their configuration keys
var stringFlagKeys = map[string]string{
	"username": "username",
	"theme":    "theme",
	"color":    "color",
	"base":     "colors.base",
	"text":     "colors.text",
	"color0":   "colors.color0",
	"color1":   "colors.color1",
	"color2":   "colors.color2",
	"color3":   "colors.color3",
	"color4":   "colors.color4",
}

var colorFlagUsage = [palette.LevelCount]string{
	MsgFlagColor0, MsgFlagColor1, MsgFlagColor2, MsgFlagColor3, MsgFlagColor4,
}

func (f *renderFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.username, "username", "", MsgFlagUsername)

	fs.BoolVar(&f.block, "block", false, MsgFlagBlock)
	fs.BoolVar(&f.half, "half", false, MsgFlagHalf)
	fs.BoolVar(&f.circle, "circle", false, MsgFlagCircle)

	fs.BoolVar(&f.ytd, "ytd", false, MsgFlagYTD)
	fs.BoolVar(&f.month, "month", false, MsgFlagMonth)

	fs.StringVar(&f.theme, "theme", "", MsgFlagTheme)
	fs.StringVar(&f.base, "base", "", MsgFlagBase)
	fs.StringVar(&f.text, "text", "", MsgFlagText)
	for i := range f.colors {
		fs.StringVar(&f.colors[i], palette.SlotName(i), "", colorFlagUsage[i])
	}

	fs.BoolVar(&f.hideDays, "hide-days", false, MsgFlagHideDays)
	fs.BoolVar(&f.hideMonths, "hide-months", false, MsgFlagHideMonths)
	fs.BoolVar(&f.legend, "legend", false, MsgFlagLegend)
	fs.StringVar(&f.colorMode, "color", "", MsgFlagColor)
}

// overrides turns the flags the user actually set into configuration
// keys. The style and window switches are checked for conflicts here,
// before any configuration is read.
func (f *renderFlags) overrides(fs *pflag.FlagSet) (map[string]interface{}, error) {
	out := map[string]interface{}{}

	style, err := calendar.SelectTileStyle(f.block, f.half, f.circle)
	if err != nil {
		return nil, err
	}
	if f.block || f.half || f.circle {
		out["style"] = style.String()
	}

	window, err := github.SelectWindow(f.ytd, f.month)
	if err != nil {
		return nil, err
	}
	if f.ytd || f.month {
		out["window"] = window.String()
	}

	for flag, key := range stringFlagKeys {
		if fs.Changed(flag) {
			value, err := fs.GetString(flag)
			if err != nil {
				return nil, err
			}
			out[key] = value
		}
	}

	if fs.Changed("hide-days") {
		out["display.show_days"] = !f.hideDays
	}
	if fs.Changed("hide-months") {
		out["display.show_months"] = !f.hideMonths
	}
	if fs.Changed("legend") {
		out["display.legend"] = f.legend
	}

	return out, nil
}
