// Package config reads the optional launcher settings file. Everything in it
// has a flag equivalent; the file only supplies defaults.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Settings are launcher preferences read from <config dir>/radux/launch.yaml.
type Settings struct {
	// MenuBin overrides the resolved radux-menu path.
	MenuBin string `yaml:"menu_bin"`
	// CLIConfig is a default configuration override, applied when the
	// --cli flag is absent. An explicit flag always wins.
	CLIConfig string `yaml:"cli_config"`
}

// Path returns the settings file location, honoring XDG_CONFIG_HOME.
func Path() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "radux", "launch.yaml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve config path: %w", err)
	}
	return filepath.Join(home, ".config", "radux", "launch.yaml"), nil
}

// Load reads the settings file. A missing file yields zero Settings; a
// malformed one is an error.
func Load() (Settings, error) {
	path, err := Path()
	if err != nil {
		return Settings{}, err
	}
	return loadFile(path)
}

func loadFile(path string) (Settings, error) {
	var s Settings

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return s, err
	}

	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("parse %s: %w", path, err)
	}
	return s, nil
}
