package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizeStorage(); err != nil {
		return err
	}
	c.normalizeServer()
	c.normalizeCache()
	c.normalizeEnabledTables()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizeStorage() error {
	var err error
	if strings.TrimSpace(c.Storage.DataDir) == "" {
		c.Storage.DataDir = defaultDataDir()
	}
	if c.Storage.DataDir, err = expandPath(c.Storage.DataDir); err != nil {
		return fmt.Errorf("storage.data_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeServer() {
	c.Server.Bind = strings.TrimSpace(c.Server.Bind)
	if c.Server.Bind == "" {
		c.Server.Bind = defaultServerBind
	}
	if c.Server.ReadTimeoutSeconds <= 0 {
		c.Server.ReadTimeoutSeconds = defaultReadTimeoutSeconds
	}
	if c.Server.WriteTimeoutSeconds <= 0 {
		c.Server.WriteTimeoutSeconds = defaultWriteTimeoutSeconds
	}
}

func (c *Config) normalizeCache() {
	c.Cache = c.CacheSettings()
}

// normalizeEnabledTables lower-cases entity keys so lookups against the
// derived sets are case-insensitive, matching the lower-case convention of
// the enabled-set resolver.
func (c *Config) normalizeEnabledTables() {
	c.Models = lowerKeys(c.Models)
	c.Views = lowerKeys(c.Views)
}

func lowerKeys(table map[string]bool) map[string]bool {
	if len(table) == 0 {
		return table
	}
	normalized := make(map[string]bool, len(table))
	for name, enabled := range table {
		normalized[strings.ToLower(strings.TrimSpace(name))] = enabled
	}
	return normalized
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
