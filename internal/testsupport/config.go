package testsupport

import (
	"path/filepath"
	"testing"

	"uzbekistan/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with a unique temp data directory and
// every entity enabled. It clears the memoized enabled sets before returning
// and registers cleanup so one test's configuration never leaks into the
// next through the process-wide slots.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	cfg := config.Default()
	cfg.Storage.DataDir = filepath.Join(t.TempDir(), "data")
	cfg.Server.Bind = "127.0.0.1:0"
	cfg.Models = map[string]bool{"region": true, "district": true, "village": true}
	cfg.Views = map[string]bool{"region": true, "district": true, "village": true}
	cfg.Prepopulate.Enabled = true

	for _, opt := range opts {
		opt(&cfg)
	}

	config.InvalidateEnabledSets()
	t.Cleanup(config.InvalidateEnabledSets)

	return &cfg
}

// WithModels replaces the models table on the test config.
func WithModels(models map[string]bool) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Models = models
	}
}

// WithViews replaces the views table on the test config.
func WithViews(views map[string]bool) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Views = views
	}
}

// WithCacheEnabled switches the response cache on.
func WithCacheEnabled() ConfigOption {
	return func(cfg *config.Config) {
		cfg.Cache.Enabled = true
	}
}

// WithPrepopulateDisabled switches the prepopulate gate off.
func WithPrepopulateDisabled() ConfigOption {
	return func(cfg *config.Config) {
		cfg.Prepopulate.Enabled = false
	}
}
