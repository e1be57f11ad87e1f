// Package config loads gymtrack settings from an optional YAML file with
// GYMTRACK_* environment overrides, and builds the process logger.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	EnvConfig      = "GYMTRACK_CONFIG"
	EnvDB          = "GYMTRACK_DB"
	EnvLogLevel    = "GYMTRACK_LOG_LEVEL"
	EnvLogFormat   = "GYMTRACK_LOG_FORMAT"
	EnvLogUseCases = "GYMTRACK_LOG_USECASES"
)

type Config struct {
	DBPath string    `yaml:"db"`
	Log    LogConfig `yaml:"log"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	// UseCases logs one line per service call.
	UseCases bool `yaml:"use_cases"`
}

// Dir is the per-user data directory, ~/.gymtrack.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".gymtrack"), nil
}

// Default returns the built-in configuration rooted at dir.
func Default(dir string) Config {
	return Config{
		DBPath: filepath.Join(dir, "gymtrack.db"),
		Log:    LogConfig{Level: "warn", Format: "text"},
	}
}

// Load builds the effective configuration. The file at path (or
// $GYMTRACK_CONFIG, or ~/.gymtrack/config.yaml) is optional unless named
// explicitly; environment variables override file values.
func Load(path string) (*Config, error) {
	dir, err := Dir()
	if err != nil {
		return nil, err
	}
	cfg := Default(dir)

	explicit := path != ""
	if !explicit {
		if v := os.Getenv(EnvConfig); v != "" {
			path, explicit = v, true
		} else {
			path = filepath.Join(dir, "config.yaml")
		}
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	case errors.Is(err, fs.ErrNotExist) && !explicit:
	default:
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	applyEnvOverrides(&cfg)

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	cfg.DBPath = expandHome(cfg.DBPath)
	return &cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv(EnvDB); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		cfg.Log.Format = v
	}
	if v := os.Getenv(EnvLogUseCases); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Log.UseCases = b
		}
	}
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.DBPath) == "" {
		return fmt.Errorf("db is required")
	}
	if _, ok := parseLevel(c.Log.Level); !ok {
		return fmt.Errorf("log.level %q is not one of debug, info, warn, error", c.Log.Level)
	}
	switch normalize(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("log.format %q is not one of text, json", c.Log.Format)
	}
	return nil
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

func normalize(v string) string {
	return strings.ToLower(strings.TrimSpace(v))
}
