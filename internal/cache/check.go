package cache

import (
	"bytes"
	"context"
	"fmt"
	"sync"
	"time"
)

const (
	healthCheckSuffix = "_cache_health_check"
	healthCheckValue  = "alive"
	healthCheckTTL    = time.Minute
)

type checkState struct {
	mu   sync.Mutex
	done bool
	err  error
}

// Check verifies the backend with a sentinel round-trip: set a prefixed key
// to a known value, read it back, delete it, and compare. The outcome is
// memoized; call InvalidateCheck to force a re-run. A disabled cache always
// passes.
func (c *Cache) Check(ctx context.Context) error {
	if !c.Enabled() {
		return nil
	}
	c.check.mu.Lock()
	defer c.check.mu.Unlock()
	if c.check.done {
		return c.check.err
	}
	c.check.done = true
	c.check.err = c.roundTrip(ctx)
	return c.check.err
}

// InvalidateCheck clears the memoized health check result.
func (c *Cache) InvalidateCheck() {
	c.check.mu.Lock()
	defer c.check.mu.Unlock()
	c.check.done = false
	c.check.err = nil
}

func (c *Cache) roundTrip(ctx context.Context) error {
	key := c.settings.KeyPrefix + healthCheckSuffix
	if err := c.backend.Set(ctx, key, []byte(healthCheckValue), healthCheckTTL); err != nil {
		return fmt.Errorf("%w: health check set failed: %v", ErrMisconfigured, err)
	}
	payload, ok, err := c.backend.Get(ctx, key)
	if err != nil {
		return fmt.Errorf("%w: health check get failed: %v", ErrMisconfigured, err)
	}
	if deleteErr := c.backend.Delete(ctx, key); deleteErr != nil {
		return fmt.Errorf("%w: health check delete failed: %v", ErrMisconfigured, deleteErr)
	}
	if !ok || !bytes.Equal(payload, []byte(healthCheckValue)) {
		return fmt.Errorf("%w: sentinel round-trip returned %q", ErrMisconfigured, payload)
	}
	return nil
}
