package config

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	defaultServerBind          = "127.0.0.1:8744"
	defaultReadTimeoutSeconds  = 15
	defaultWriteTimeoutSeconds = 30
	defaultCacheTimeoutSeconds = 3600
	defaultCacheKeyPrefix      = "uzbekistan"
	defaultCacheCapacity       = 1024
	defaultLogFormat           = "console"
	defaultLogLevel            = "info"
)

// Default returns a Config populated with repository defaults. The models and
// views tables start empty: enabling entities is a deliberate host decision,
// and the cache ships disabled.
func Default() Config {
	return Config{
		Cache: Cache{
			TimeoutSeconds: defaultCacheTimeoutSeconds,
			KeyPrefix:      defaultCacheKeyPrefix,
			Capacity:       defaultCacheCapacity,
		},
		Server: Server{
			Bind:                defaultServerBind,
			ReadTimeoutSeconds:  defaultReadTimeoutSeconds,
			WriteTimeoutSeconds: defaultWriteTimeoutSeconds,
		},
		Storage: Storage{
			DataDir: defaultDataDir(),
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}

func defaultDataDir() string {
	if base, ok := os.LookupEnv("XDG_DATA_HOME"); ok && strings.TrimSpace(base) != "" {
		return filepath.Join(base, "uzbekistan")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "~/.local/share/uzbekistan"
	}
	return filepath.Join(home, ".local", "share", "uzbekistan")
}
