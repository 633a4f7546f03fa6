package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Load discovers a config file, merges it with defaults, applies environment
// variable overrides, validates the result, and returns the final config.
func Load() (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("getting working directory: %w", err)
	}
	return LoadFrom(cwd)
}

// LoadFrom loads config using dir as the starting point for file discovery.
func LoadFrom(dir string) (*Config, error) {
	path, err := discoverConfigPath(dir)
	if err != nil {
		return nil, fmt.Errorf("config discovery: %w", err)
	}
	return LoadFile(path)
}

// LoadFile loads an explicit config file. An empty path means defaults only.
func LoadFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		override, err := loadFromFile(path)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", path, err)
		}
		merge(&cfg, override)
	}

	applyEnvOverrides(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return &cfg, nil
}

// discoverConfigPath searches the discovery chain and returns the first config
// file that exists. Returns empty string if none found (defaults-only mode).
func discoverConfigPath(dir string) (string, error) {
	for _, name := range []string{"relwatch.yaml", "relwatch.toml"} {
		local := filepath.Join(dir, name)
		if _, err := os.Stat(local); err == nil {
			return local, nil
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", nil // can't resolve home, skip
	}
	user := filepath.Join(home, ".config", "relwatch", "config.yaml")
	if _, err := os.Stat(user); err == nil {
		return user, nil
	}

	return "", nil
}

// loadFromFile reads a YAML or TOML config file, chosen by extension.
func loadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}

	var cfg Config
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parsing TOML: %w", err)
		}
		return &cfg, nil
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}
	return &cfg, nil
}

// merge overlays override onto base. Scalars override when non-zero,
// pointer-to-bool fields when non-nil.
func merge(base *Config, override *Config) {
	if override.Update.Repo != "" {
		base.Update.Repo = override.Update.Repo
	}
	if override.Update.Enabled != nil {
		base.Update.Enabled = override.Update.Enabled
	}
	if override.Update.Timeout != 0 {
		base.Update.Timeout = override.Update.Timeout
	}
	if override.Update.Prerelease != nil {
		base.Update.Prerelease = override.Update.Prerelease
	}
	if override.Update.APIToken != "" {
		base.Update.APIToken = override.Update.APIToken
	}

	if override.UI.Theme != "" {
		base.UI.Theme = override.UI.Theme
	}
	if override.UI.NotesScrollSpeed != 0 {
		base.UI.NotesScrollSpeed = override.UI.NotesScrollSpeed
	}

	if override.Log.Level != "" {
		base.Log.Level = override.Log.Level
	}
	if override.Log.Path != "" {
		base.Log.Path = override.Log.Path
	}
}

// applyEnvOverrides applies RELWATCH_* environment variables on top of the config.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("RELWATCH_REPO"); v != "" {
		cfg.Update.Repo = v
	}
	if v := os.Getenv("RELWATCH_TIMEOUT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Update.Timeout = n
		} else {
			fmt.Fprintf(os.Stderr, "warning: RELWATCH_TIMEOUT=%q is not a valid integer, ignoring\n", v)
		}
	}
	if v := os.Getenv("RELWATCH_NO_UPDATE_CHECK"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Update.Enabled = boolPtr(!b)
		} else {
			fmt.Fprintf(os.Stderr, "warning: RELWATCH_NO_UPDATE_CHECK=%q is not a valid boolean, ignoring\n", v)
		}
	}
	if v := os.Getenv("RELWATCH_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if cfg.Update.APIToken == "" {
		if v := os.Getenv("GITHUB_TOKEN"); v != "" {
			cfg.Update.APIToken = v
		}
	}
}
