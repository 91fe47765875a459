// Package config loads locgrid settings by layering defaults, a user file,
// a project file, an explicit file and finally LOCGRID_* environment
// variables. Files may be YAML or TOML, chosen by extension.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"locgrid/internal/logging"
)

// ErrUnknownFormat is returned for config files that are neither YAML nor TOML.
var ErrUnknownFormat = errors.New("unknown config format")

// For mocking in tests
var osUserHomeDir = os.UserHomeDir
var osGetwd = os.Getwd

const (
	userConfigDir    = ".config/locgrid"
	projectConfigDir = ".locgrid"
	configFileName   = "config.yaml"
)

// Load layers defaults, ~/.config/locgrid/config.yaml, ./.locgrid/config.yaml,
// the explicit file (if non-empty) and the environment. Missing user and
// project files are skipped; a missing explicit file is an error.
func Load(explicit string) (Config, error) {
	cfg := Default()

	if path, err := userConfigPath(); err != nil {
		logging.Warn("config", "could not determine user config path: %v", err)
	} else if err := decodeIfExists(path, &cfg); err != nil {
		return Config{}, err
	}

	if path, err := projectConfigPath(); err != nil {
		logging.Warn("config", "could not determine project config path: %v", err)
	} else if err := decodeIfExists(path, &cfg); err != nil {
		return Config{}, err
	}

	if explicit != "" {
		if err := decodeFile(explicit, &cfg); err != nil {
			return Config{}, err
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

func userConfigPath() (string, error) {
	home, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, userConfigDir, configFileName), nil
}

func projectConfigPath() (string, error) {
	wd, err := osGetwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, projectConfigDir, configFileName), nil
}

func decodeIfExists(path string, cfg *Config) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return decodeFile(path, cfg)
}

// decodeFile decodes path on top of cfg; keys absent from the file keep
// their current values and key maps are merged.
func decodeFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("error loading config from %s: %w", path, err)
	}
	var unmarshal func([]byte, any) error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		unmarshal = yaml.Unmarshal
	case ".toml":
		unmarshal = toml.Unmarshal
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
	var own Config
	if err := unmarshal(data, &own); err != nil {
		return fmt.Errorf("error loading config from %s: %w", path, err)
	}
	if err := unmarshal(data, cfg); err != nil {
		return fmt.Errorf("error loading config from %s: %w", path, err)
	}
	rebind(&cfg.Keys, own.Keys)
	logging.Debug("config", "loaded %s", path)
	return nil
}

// rebind drops keys that a file binds in one map from the other two maps,
// so a file can move a key between groups. Keys the file itself binds twice
// are left for validation to reject.
func rebind(keys *KeySettings, file KeySettings) {
	groups := []struct {
		file   map[string]int
		merged map[string]int
	}{
		{file.Columns, keys.Columns},
		{file.Rows, keys.Rows},
		{file.Boundaries, keys.Boundaries},
	}
	for i, g := range groups {
		for k := range g.file {
			for j, other := range groups {
				if j == i {
					continue
				}
				if _, boundByFile := other.file[k]; !boundByFile {
					delete(other.merged, k)
				}
			}
		}
	}
}
