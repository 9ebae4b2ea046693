package config

import (
	"time"

	"github.com/arthur-debert/gitcal/pkg/calendar"
	"github.com/arthur-debert/gitcal/pkg/errors"
	"github.com/arthur-debert/gitcal/pkg/github"
	"github.com/arthur-debert/gitcal/pkg/palette"
	"github.com/arthur-debert/gitcal/pkg/ui"
)

// Config is the decoded configuration, before any value is interpreted
type Config struct {
	Theme     string  `koanf:"theme"`
	Style     string  `koanf:"style"`
	Window    string  `koanf:"window"`
	ColorMode string  `koanf:"color"`
	Username  string  `koanf:"username"`
	Colors    Colors  `koanf:"colors"`
	Display   Display `koanf:"display"`
	API       API     `koanf:"api"`

	// file the user layer was read from, empty when none was found
	source string
}

// Colors holds hex overrides for the palette slots
type Colors struct {
	Text   string `koanf:"text"`
	Base   string `koanf:"base"`
	Color0 string `koanf:"color0"`
	Color1 string `koanf:"color1"`
	Color2 string `koanf:"color2"`
	Color3 string `koanf:"color3"`
	Color4 string `koanf:"color4"`
}

// Display toggles the optional parts of the calendar
type Display struct {
	ShowDays   bool `koanf:"show_days"`
	ShowMonths bool `koanf:"show_months"`
	Legend     bool `koanf:"legend"`
}

// API configures the GitHub GraphQL endpoint
type API struct {
	URL     string        `koanf:"url"`
	Timeout time.Duration `koanf:"timeout"`
}

// Settings is a Config with every value parsed and checked
type Settings struct {
	Palette   palette.Palette
	Style     calendar.TileStyle
	Window    github.Window
	Options   calendar.DisplayOptions
	ColorMode ui.ColorMode
	Username  string
	Endpoint  string
	Timeout   time.Duration
}

// Source returns the path of the user configuration file that was loaded,
// or an empty string when only defaults and the environment were used.
func (c *Config) Source() string {
	return c.source
}

// Overrides returns the color overrides in palette form
func (c Colors) Overrides() palette.Overrides {
	return palette.Overrides{
		Text:   c.Text,
		Base:   c.Base,
		Levels: [palette.LevelCount]string{c.Color0, c.Color1, c.Color2, c.Color3, c.Color4},
	}
}

// Resolve interprets the configuration. Every error is a configuration
// error raised before anything is fetched or rendered.
func (c *Config) Resolve() (Settings, error) {
	var s Settings

	style, err := calendar.ParseTileStyle(c.Style)
	if err != nil {
		return s, err
	}

	window, err := github.ParseWindow(c.Window)
	if err != nil {
		return s, err
	}

	mode, err := ui.ParseColorMode(c.ColorMode)
	if err != nil {
		return s, err
	}

	themeName := c.Theme
	if themeName == "" {
		themeName = palette.DefaultTheme
	}
	p, err := palette.Theme(themeName)
	if err != nil {
		return s, err
	}
	p, err = p.WithOverrides(c.Colors.Overrides())
	if err != nil {
		return s, err
	}

	if c.API.URL == "" {
		return s, errors.New(errors.ErrConfigValid, "api.url must not be empty")
	}
	if c.API.Timeout <= 0 {
		return s, errors.Newf(errors.ErrConfigValid, "api.timeout must be positive, got %s", c.API.Timeout).
			WithDetail("value", c.API.Timeout.String())
	}

	s = Settings{
		Palette: p,
		Style:   style,
		Window:  window,
		Options: calendar.DisplayOptions{
			ShowWeekdays: c.Display.ShowDays,
			ShowMonths:   c.Display.ShowMonths,
			ShowLegend:   c.Display.Legend,
		},
		ColorMode: mode,
		Username:  c.Username,
		Endpoint:  c.API.URL,
		Timeout:   c.API.Timeout,
	}
	return s, nil
}
