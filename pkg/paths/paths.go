package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

// Environment variable names
const (
	// EnvConfigFile points at an explicit configuration file
	EnvConfigFile = "SHLIB_CONFIG"

	// EnvConfigDir overrides the XDG config directory for shlib
	EnvConfigDir = "SHLIB_CONFIG_DIR"

	// EnvStateDir overrides the XDG state directory for shlib
	EnvStateDir = "SHLIB_STATE_DIR"
)

const (
	// AppDirName is the directory name used under each XDG base directory
	AppDirName = "shlib"

	// LogFileName is the name of the log file
	LogFileName = "shlib.log"
)

// ConfigFileNames are the candidate configuration files, in lookup order
var ConfigFileNames = []string{"config.toml", "config.yaml", "config.yml"}

// Paths holds the resolved shlib directories
type Paths struct {
	configDir string
	stateDir  string
}

// New resolves the shlib directories from the environment. XDG variables are
// re-read on every call so that overrides set after process start are honored.
func New() *Paths {
	xdg.Reload()

	p := &Paths{}
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		p.configDir = expandHome(dir)
	} else {
		p.configDir = filepath.Join(xdg.ConfigHome, AppDirName)
	}
	if dir := os.Getenv(EnvStateDir); dir != "" {
		p.stateDir = expandHome(dir)
	} else {
		p.stateDir = filepath.Join(xdg.StateHome, AppDirName)
	}
	return p
}

// ConfigDir returns the shlib configuration directory
func (p *Paths) ConfigDir() string {
	return p.configDir
}

// StateDir returns the shlib state directory
func (p *Paths) StateDir() string {
	return p.stateDir
}

// LogFilePath returns the path of the optional log file
func (p *Paths) LogFilePath() string {
	return filepath.Join(p.stateDir, LogFileName)
}

// ConfigFile returns the configuration file to load, or "" when none exists.
// An explicit SHLIB_CONFIG is returned even if it does not exist, so that the
// loader can report it.
func (p *Paths) ConfigFile() string {
	if explicit := os.Getenv(EnvConfigFile); explicit != "" {
		return expandHome(explicit)
	}
	for _, name := range ConfigFileNames {
		candidate := filepath.Join(p.configDir, name)
		if info, err := os.Stat(candidate); err == nil && info.Mode().IsRegular() {
			return candidate
		}
	}
	return ""
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path
}
