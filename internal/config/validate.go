package config

import (
	"fmt"
)

// Validate ensures the configuration is usable. Entity dependency rules
// (district needs region, village needs district) are deliberately not
// checked here; they are enforced at use time so a host can stage partial
// configurations without being locked out of the rest of the system.
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validateCache(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateServer() error {
	if c.Server.Bind == "" {
		return fmt.Errorf("server.bind must not be empty")
	}
	return nil
}

func (c *Config) validateCache() error {
	if c.Cache.TimeoutSeconds <= 0 {
		return fmt.Errorf("cache.timeout_seconds must be positive, got %d", c.Cache.TimeoutSeconds)
	}
	if c.Cache.Capacity <= 0 {
		return fmt.Errorf("cache.capacity must be positive, got %d", c.Cache.Capacity)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
