package cli

import (
	"strings"
	"testing"

	"github.com/arthur-debert/gitcal/internal/version"
	"github.com/arthur-debert/gitcal/pkg/palette"
	"github.com/arthur-debert/gitcal/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCmd(t *testing.T) {
	setupCLIEnv(t)

	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "gitcal "+version.Version+" (commit "+version.Commit+", built "+version.Date+")\n", out)
}

func TestConfigCmd(t *testing.T) {
	t.Run("defaults with flag overrides", func(t *testing.T) {
		server := setupCLIEnv(t)

		out, err := execute(t, "config", "--theme", "dracula", "--circle")
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(out, "# no configuration file found"))
		assert.Contains(t, out, "dracula")
		assert.Contains(t, out, "circle")
		assert.Contains(t, out, server.URL)
		assert.Equal(t, 0, server.requests())
	})

	t.Run("reports the file it loaded", func(t *testing.T) {
		setupCLIEnv(t)
		path := testutil.CreateFile(t, t.TempDir(), "config.yaml", "window: month\n")

		out, err := execute(t, "--config", path, "config")
		require.NoError(t, err)

		assert.Contains(t, out, "# loaded from "+path)
		assert.Contains(t, out, "month")
	})

	t.Run("rejects invalid values", func(t *testing.T) {
		setupCLIEnv(t)

		_, err := execute(t, "config", "--text", "white")
		assert.Error(t, err)
	})
}

func TestThemesCmd(t *testing.T) {
	setupCLIEnv(t)

	out, err := execute(t, "themes")
	require.NoError(t, err)

	got := lines(out)
	require.Len(t, got, len(palette.ThemeNames()))
	for i, name := range palette.ThemeNames() {
		assert.True(t, strings.HasPrefix(got[i], name), "line %d: %q", i, got[i])
		assert.Contains(t, got[i], "Less")
		assert.Contains(t, got[i], "More")
	}
	assert.Contains(t, out, palette.DefaultTheme)
	assert.Contains(t, out, "(default)")
}

func TestCompletionCmd(t *testing.T) {
	setupCLIEnv(t)

	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		out, err := execute(t, "completion", shell)
		require.NoError(t, err, shell)
		assert.Contains(t, out, "gitcal", shell)
	}

	_, err := execute(t, "completion", "tcsh")
	assert.Error(t, err)
}
