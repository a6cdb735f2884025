package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// ErrNotConfigured indicates the required configuration file is absent.
var ErrNotConfigured = errors.New("uzbekistan configuration is required")

// Cache controls the response cache and its health check.
type Cache struct {
	Enabled        bool   `toml:"enabled"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
	KeyPrefix      string `toml:"key_prefix"`
	Capacity       int    `toml:"capacity"`
}

// Prepopulate controls the fixture population path.
type Prepopulate struct {
	Enabled        bool `toml:"enabled"`
	AutoPopulate   bool `toml:"auto_populate"`
	ForceOnStartup bool `toml:"force_on_startup"`
}

// Server contains HTTP listener configuration.
type Server struct {
	Bind                string `toml:"bind"`
	ReadTimeoutSeconds  int    `toml:"read_timeout_seconds"`
	WriteTimeoutSeconds int    `toml:"write_timeout_seconds"`
}

// Storage contains database location configuration.
type Storage struct {
	DataDir string `toml:"data_dir"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for uzbekistan.
//
// Models and Views map lower-case entity names to enabled flags; absent
// tables mean everything is disabled. Presence and truthiness alone gate
// behavior, so unknown keys are tolerated and simply never match an entity.
type Config struct {
	Models      map[string]bool `toml:"models"`
	Views       map[string]bool `toml:"views"`
	Cache       Cache           `toml:"cache"`
	Prepopulate Prepopulate     `toml:"prepopulate"`
	Server      Server          `toml:"server"`
	Storage     Storage         `toml:"storage"`
	Logging     Logging         `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration
// file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/uzbekistan/config.toml")
}

// Load locates, parses, and validates the configuration file. A missing file
// is fatal: the settings root is required by every downstream component and
// must surface immediately rather than be defaulted away.
func Load(path string) (*Config, string, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", err
	}
	if !exists {
		return nil, resolvedPath, fmt.Errorf(
			"%w: create %s (see `uzbekistan config init`) or pass --config", ErrNotConfigured, resolvedPath)
	}

	file, err := os.Open(resolvedPath)
	if err != nil {
		return nil, "", fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	decoder := toml.NewDecoder(file)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, "", fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", err
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", err
	}

	return &cfg, resolvedPath, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("uzbekistan.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// EnsureDirectories creates the directories required for daemon operation.
func (c *Config) EnsureDirectories() error {
	if err := os.MkdirAll(c.Storage.DataDir, 0o755); err != nil {
		return fmt.Errorf("create directory %q: %w", c.Storage.DataDir, err)
	}
	return nil
}

// CacheSettings returns the cache sub-configuration with defaults applied.
// It is usable on a zero Config so callers can inspect cache defaults without
// loading a file.
func (c *Config) CacheSettings() Cache {
	settings := c.Cache
	if settings.TimeoutSeconds <= 0 {
		settings.TimeoutSeconds = defaultCacheTimeoutSeconds
	}
	if strings.TrimSpace(settings.KeyPrefix) == "" {
		settings.KeyPrefix = defaultCacheKeyPrefix
	}
	if settings.Capacity <= 0 {
		settings.Capacity = defaultCacheCapacity
	}
	return settings
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
