package cache

import (
	"context"
	"errors"
	"time"

	"uzbekistan/internal/config"
)

// ErrMisconfigured indicates the cache backend failed its health check.
var ErrMisconfigured = errors.New("cache: incorrectly configured")

// Settings captures the cache sub-configuration in native units.
type Settings struct {
	Enabled   bool
	Timeout   time.Duration
	KeyPrefix string
	Capacity  uint64
}

// SettingsFromConfig converts the cache table of cfg, defaults applied.
func SettingsFromConfig(cfg *config.Config) Settings {
	raw := cfg.CacheSettings()
	return Settings{
		Enabled:   raw.Enabled,
		Timeout:   time.Duration(raw.TimeoutSeconds) * time.Second,
		KeyPrefix: raw.KeyPrefix,
		Capacity:  uint64(raw.Capacity),
	}
}

// Backend is the minimal key-value surface the cache requires.
type Backend interface {
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Delete(ctx context.Context, key string) error
}

// Cache wraps a Backend with prefix handling, enablement gating, and a
// memoized health check.
type Cache struct {
	settings Settings
	backend  Backend

	check checkState
}

// New builds a Cache over the default in-process TTL backend. A disabled
// cache is still a valid object; every operation is a no-op.
func New(settings Settings) *Cache {
	return NewWithBackend(settings, newTTLBackend(settings))
}

// NewWithBackend builds a Cache over a caller-supplied backend.
func NewWithBackend(settings Settings, backend Backend) *Cache {
	return &Cache{settings: settings, backend: backend}
}

// Enabled reports whether caching is switched on.
func (c *Cache) Enabled() bool {
	return c != nil && c.settings.Enabled
}

// Settings returns the effective cache settings.
func (c *Cache) Settings() Settings {
	if c == nil {
		return Settings{}
	}
	return c.settings
}

// GetResponse fetches a cached payload. Misses and disabled caches both
// report false.
func (c *Cache) GetResponse(ctx context.Context, key string) ([]byte, bool) {
	if !c.Enabled() {
		return nil, false
	}
	payload, ok, err := c.backend.Get(ctx, key)
	if err != nil || !ok {
		return nil, false
	}
	return payload, true
}

// SetResponse stores a payload under the configured timeout.
func (c *Cache) SetResponse(ctx context.Context, key string, payload []byte) {
	if !c.Enabled() {
		return
	}
	_ = c.backend.Set(ctx, key, payload, c.settings.Timeout)
}
