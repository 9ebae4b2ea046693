package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigTOML(t *testing.T) {
	cfg := defaultTestConfig(t)
	cfg.Theme = "halloween"
	cfg.Colors.Base = "#123456"

	out, err := cfg.TOML()
	require.NoError(t, err)

	assert.Contains(t, out, "halloween")
	assert.Contains(t, out, "#123456")
	assert.Contains(t, out, "[colors]")
	assert.Contains(t, out, "[display]")
	assert.Contains(t, out, "show_days = true")
	assert.Contains(t, out, "[api]")
	assert.Contains(t, out, "30s")
}
