// Package paths resolves the configuration directory and the event data
// file location.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// DefaultDataFileName is the event document filename under the data directory.
const DefaultDataFileName = "events.json"

// Environment variable names for location overrides.
const (
	EnvConfigDir = "CALCTL_CONFIG_DIR"
	EnvDataFile  = "CALCTL_DATA_FILE"
)

// platformDir holds platform-detection functions that can be overridden in tests.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// DefaultConfigDir returns the platform-specific default configuration
// directory.
//
// Linux:   $XDG_CONFIG_HOME/calctl (fallback ~/.config/calctl)
// macOS:   ~/Library/Application Support/calctl
// Windows: %APPDATA%/calctl
func DefaultConfigDir() (string, error) {
	switch runtime.GOOS {
	case "linux":
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "calctl"), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", "calctl"), nil
	default:
		// macOS and Windows use os.UserConfigDir which returns
		// ~/Library/Application Support on macOS and %APPDATA% on Windows.
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, "calctl"), nil
	}
}

// DefaultDataFile returns the platform-specific default event file path.
//
// Linux:   $XDG_DATA_HOME/calctl/events.json (fallback ~/.local/share/calctl/events.json)
// macOS:   ~/Library/Application Support/calctl/events.json
// Windows: %APPDATA%/calctl/events.json
func DefaultDataFile() (string, error) {
	switch runtime.GOOS {
	case "linux":
		if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
			return filepath.Join(xdg, "calctl", DefaultDataFileName), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".local", "share", "calctl", DefaultDataFileName), nil
	default:
		// macOS and Windows: same base as the config dir.
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, "calctl", DefaultDataFileName), nil
	}
}

// ResolveConfigDir returns the configuration directory following the
// precedence chain: flag > CALCTL_CONFIG_DIR env > DefaultConfigDir().
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultConfigDir()
}

// ResolveDataFile returns the event file path following the precedence
// chain: flag > config.yaml data_file > CALCTL_DATA_FILE env >
// DefaultDataFile().
func ResolveDataFile(flag, configValue string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if configValue != "" {
		return filepath.Abs(configValue)
	}
	if env := os.Getenv(EnvDataFile); env != "" {
		return filepath.Abs(env)
	}
	return DefaultDataFile()
}
