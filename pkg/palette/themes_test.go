package palette

import (
	"testing"

	"github.com/arthur-debert/gitcal/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedThemes(t *testing.T) {
	names := ThemeNames()
	assert.Equal(t, []string{"dracula", "github-dark", "github-light", "halloween"}, names)

	for _, name := range names {
		_, err := Theme(name)
		assert.NoError(t, err, name)
	}
}

func TestDefaultThemeMatchesDefault(t *testing.T) {
	p, err := Theme(DefaultTheme)
	require.NoError(t, err)
	assert.Equal(t, Default(), p)
}

func TestUnknownTheme(t *testing.T) {
	_, err := Theme("solarized")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
	assert.Contains(t, err.Error(), "solarized")
}

func TestParseThemes(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		parsed, err := parseThemes([]byte(`
themes:
  mono:
    text: "#ffffff"
    base: "#000000"
    levels: ["#111111", "#333333", "#555555", "#777777", "#999999"]
`))
		require.NoError(t, err)
		require.Contains(t, parsed, "mono")
		assert.Equal(t, RGB(0x99, 0x99, 0x99), parsed["mono"].Level(4))
	})

	t.Run("wrong level count", func(t *testing.T) {
		_, err := parseThemes([]byte(`
themes:
  short:
    text: "#ffffff"
    base: "#000000"
    levels: ["#111111"]
`))
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
	})

	t.Run("bad color", func(t *testing.T) {
		_, err := parseThemes([]byte(`
themes:
  broken:
    text: "white"
    base: "#000000"
    levels: ["#111111", "#333333", "#555555", "#777777", "#999999"]
`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "broken")
	})

	t.Run("not yaml", func(t *testing.T) {
		_, err := parseThemes([]byte("themes: [unclosed"))
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
	})
}
