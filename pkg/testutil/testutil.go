package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
)

// XDGDirs are the temporary base directories set up by IsolateXDG
type XDGDirs struct {
	ConfigHome string
	StateHome  string
}

// IsolateXDG points the XDG config and state directories at fresh
// temporary directories for the duration of the test. The xdg package
// is reloaded from the restored environment when the test ends.
func IsolateXDG(t *testing.T) XDGDirs {
	t.Helper()
	// Registered before t.Setenv so it runs after the env is restored
	t.Cleanup(xdg.Reload)

	dirs := XDGDirs{
		ConfigHome: t.TempDir(),
		StateHome:  t.TempDir(),
	}
	t.Setenv("XDG_CONFIG_HOME", dirs.ConfigHome)
	// An empty system config dir keeps /etc/xdg out of the search
	t.Setenv("XDG_CONFIG_DIRS", filepath.Join(dirs.ConfigHome, "system"))
	t.Setenv("XDG_STATE_HOME", dirs.StateHome)
	xdg.Reload()

	return dirs
}

// CreateFile creates a file with the given content in the specified directory.
// It fails the test if the file cannot be created.
func CreateFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)

	// Create parent directories if needed
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create parent directories for %s: %v", path, err)
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create file %s: %v", path, err)
	}

	return path
}
