package app

import (
	"fmt"
	"os"
	"path/filepath"
)

// Environment variables that override the default locations.
const (
	EnvConfigPath = "PROFILEKIT_CONFIG_PATH"
	EnvHome       = "PROFILEKIT_HOME"
)

// Paths are the default on-disk locations of the application.
type Paths struct {
	ConfigPath string
	BaseDir    string
	LogDir     string
}

// GetDefaults resolves the default paths. PROFILEKIT_CONFIG_PATH overrides
// ~/.config/profilekit.toml and PROFILEKIT_HOME overrides
// ~/.local/share/profilekit.
func GetDefaults() (Paths, error) {
	homeDir, homeErr := os.UserHomeDir()

	resolve := func(env string, fallback ...string) (string, error) {
		if v := os.Getenv(env); v != "" {
			return v, nil
		}
		if homeErr != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", homeErr)
		}
		return filepath.Join(append([]string{homeDir}, fallback...)...), nil
	}

	configPath, err := resolve(EnvConfigPath, ".config", "profilekit.toml")
	if err != nil {
		return Paths{}, err
	}
	baseDir, err := resolve(EnvHome, ".local", "share", "profilekit")
	if err != nil {
		return Paths{}, err
	}

	return Paths{
		ConfigPath: configPath,
		BaseDir:    baseDir,
		LogDir:     filepath.Join(baseDir, "log"),
	}, nil
}
