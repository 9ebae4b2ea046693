package config

import (
	gotoml "github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/gitcal/pkg/errors"
)

type fileView struct {
	Theme    string      `toml:"theme"`
	Style    string      `toml:"style"`
	Window   string      `toml:"window"`
	Color    string      `toml:"color"`
	Username string      `toml:"username"`
	Colors   colorsView  `toml:"colors"`
	Display  displayView `toml:"display"`
	API      apiView     `toml:"api"`
}

type colorsView struct {
	Text   string `toml:"text"`
	Base   string `toml:"base"`
	Color0 string `toml:"color0"`
	Color1 string `toml:"color1"`
	Color2 string `toml:"color2"`
	Color3 string `toml:"color3"`
	Color4 string `toml:"color4"`
}

type displayView struct {
	ShowDays   bool `toml:"show_days"`
	ShowMonths bool `toml:"show_months"`
	Legend     bool `toml:"legend"`
}

type apiView struct {
	URL     string `toml:"url"`
	Timeout string `toml:"timeout"`
}

// TOML renders the effective configuration in the format of config.toml
func (c *Config) TOML() (string, error) {
	view := fileView{
		Theme:    c.Theme,
		Style:    c.Style,
		Window:   c.Window,
		Color:    c.ColorMode,
		Username: c.Username,
		Colors:   colorsView(c.Colors),
		Display:  displayView(c.Display),
		API:      apiView{URL: c.API.URL, Timeout: c.API.Timeout.String()},
	}
	out, err := gotoml.Marshal(view)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to encode configuration")
	}
	return string(out), nil
}
