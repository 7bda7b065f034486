package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

const (
	appDir         = "rollcube"
	configFileName = "rollcube.yaml"
)

// Load loads the puzzle configuration.
// Search order: customPath -> $XDG_CONFIG_HOME/rollcube/rollcube.yaml ->
// ./configs/rollcube.yaml -> embedded default -> hardcoded default.
// Files only need to set the keys they change.
func Load(customPath string) (RollcubeConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return RollcubeConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return RollcubeConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath, err := xdg.SearchConfigFile(filepath.Join(appDir, configFileName)); err == nil {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", configFileName)); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultRollcubeYAML)
	if err != nil {
		return DefaultRollcubeConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parse decodes data over the hardcoded defaults and validates the result.
func parse(data []byte) (RollcubeConfig, error) {
	cfg := DefaultRollcubeConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RollcubeConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return RollcubeConfig{}, err
	}
	return cfg, nil
}

// UserConfigPath returns where the user config file lives, creating the
// parent directory if needed.
func UserConfigPath() (string, error) {
	path, err := xdg.ConfigFile(filepath.Join(appDir, configFileName))
	if err != nil {
		return "", fmt.Errorf("resolve config path: %w", err)
	}
	return path, nil
}

// ErrExists is returned by WriteDefault when the target file already exists.
var ErrExists = errors.New("config file already exists")

// WriteDefault writes the embedded default config to path unless a file is
// already there.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("write %s: %w", path, ErrExists)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, defaultRollcubeYAML, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// DataFile returns the path of a file in the rollcube data directory
// (database, host key, screenshots), creating parent directories.
func DataFile(name string) (string, error) {
	path, err := xdg.DataFile(filepath.Join(appDir, name))
	if err != nil {
		return "", fmt.Errorf("resolve data path %s: %w", name, err)
	}
	return path, nil
}
