package palette

import (
	_ "embed"
	"fmt"
	"sort"
	"sync"

	"github.com/arthur-debert/gitcal/pkg/errors"
	"gopkg.in/yaml.v3"
)

// DefaultTheme is the theme whose colors match Default().
const DefaultTheme = "github-dark"

//go:embed themes.yaml
var embeddedThemes []byte

// themeDef is a theme as written in themes.yaml
type themeDef struct {
	Text   string   `yaml:"text"`
	Base   string   `yaml:"base"`
	Levels []string `yaml:"levels"`
}

type themeFile struct {
	Themes map[string]themeDef `yaml:"themes"`
}

var (
	themesOnce sync.Once
	themes     map[string]Palette
	themesErr  error
)

// Theme returns the named palette.
func Theme(name string) (Palette, error) {
	loaded, err := loadedThemes()
	if err != nil {
		return Palette{}, err
	}
	p, ok := loaded[name]
	if !ok {
		return Palette{}, errors.Newf(errors.ErrConfigValid,
			"unknown theme %q (available: %v)", name, ThemeNames()).
			WithDetail("theme", name)
	}
	return p, nil
}

// ThemeNames lists the available themes in alphabetical order.
func ThemeNames() []string {
	loaded, err := loadedThemes()
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(loaded))
	for name := range loaded {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func loadedThemes() (map[string]Palette, error) {
	themesOnce.Do(func() {
		themes, themesErr = parseThemes(embeddedThemes)
	})
	return themes, themesErr
}

// parseThemes decodes a themes document and validates every color in it.
func parseThemes(data []byte) (map[string]Palette, error) {
	var file themeFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to parse themes")
	}

	parsed := make(map[string]Palette, len(file.Themes))
	for name, def := range file.Themes {
		p, err := def.palette()
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "invalid theme %q", name)
		}
		parsed[name] = p
	}
	return parsed, nil
}

func (d themeDef) palette() (Palette, error) {
	if len(d.Levels) != LevelCount {
		return Palette{}, fmt.Errorf("expected %d levels, got %d", LevelCount, len(d.Levels))
	}

	o := Overrides{Text: d.Text, Base: d.Base}
	copy(o.Levels[:], d.Levels)
	if o.Text == "" || o.Base == "" {
		return Palette{}, fmt.Errorf("text and base colors are required")
	}
	return Palette{}.WithOverrides(o)
}
