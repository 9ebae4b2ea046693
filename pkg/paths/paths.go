package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const (
	// AppName is the directory name used under every XDG base directory
	AppName = "gitcal"

	// LogFileName is the name of the log file under the state directory
	LogFileName = "gitcal.log"

	// EnvStateHome, when set at call time, takes precedence over xdg.StateHome
	EnvStateHome = "XDG_STATE_HOME"
)

// ConfigFileNames are the user configuration files looked for, in order
var ConfigFileNames = []string{"config.toml", "config.yaml", "config.yml"}

// ConfigDir returns the user configuration directory for gitcal
func ConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// DefaultConfigFile is where a new configuration file should be created
func DefaultConfigFile() string {
	return filepath.Join(ConfigDir(), ConfigFileNames[0])
}

// FindConfigFile returns the first existing configuration file in the
// XDG config directories, or an empty string when there is none.
func FindConfigFile() string {
	for _, name := range ConfigFileNames {
		if path, err := xdg.SearchConfigFile(filepath.Join(AppName, name)); err == nil {
			return path
		}
	}
	return ""
}

// LogFile returns the path of the log file
func LogFile() string {
	stateHome := os.Getenv(EnvStateHome)
	if stateHome == "" {
		stateHome = xdg.StateHome
	}
	return filepath.Join(stateHome, AppName, LogFileName)
}
