package cache_test

import (
	"context"
	"errors"
	"net/url"
	"testing"
	"time"

	"uzbekistan/internal/cache"
)

func enabledSettings() cache.Settings {
	return cache.Settings{
		Enabled:   true,
		Timeout:   time.Hour,
		KeyPrefix: "uzbekistan",
		Capacity:  64,
	}
}

type flakyBackend struct {
	setErr    error
	getErr    error
	deleteErr error
	corrupt   bool
	getCalls  int
	store     map[string][]byte
}

func newFlakyBackend() *flakyBackend {
	return &flakyBackend{store: map[string][]byte{}}
}

func (b *flakyBackend) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	if b.setErr != nil {
		return b.setErr
	}
	b.store[key] = value
	return nil
}

func (b *flakyBackend) Get(_ context.Context, key string) ([]byte, bool, error) {
	b.getCalls++
	if b.getErr != nil {
		return nil, false, b.getErr
	}
	value, ok := b.store[key]
	if b.corrupt {
		value = []byte("garbage")
	}
	return value, ok, nil
}

func (b *flakyBackend) Delete(_ context.Context, key string) error {
	if b.deleteErr != nil {
		return b.deleteErr
	}
	delete(b.store, key)
	return nil
}

func TestCheckDisabledCacheAlwaysPasses(t *testing.T) {
	c := cache.New(cache.Settings{Enabled: false})
	if err := c.Check(context.Background()); err != nil {
		t.Fatalf("Check on disabled cache: %v", err)
	}
}

func TestCheckRoundTripSucceeds(t *testing.T) {
	c := cache.New(enabledSettings())
	if err := c.Check(context.Background()); err != nil {
		t.Fatalf("Check: %v", err)
	}
	// The sentinel key must be cleaned up afterwards.
	if _, ok := c.GetResponse(context.Background(), "uzbekistan_cache_health_check"); ok {
		t.Fatal("sentinel key should have been deleted")
	}
}

func TestCheckSurfacesBackendFailure(t *testing.T) {
	backend := newFlakyBackend()
	backend.getErr = errors.New("connection refused")
	c := cache.NewWithBackend(enabledSettings(), backend)

	if err := c.Check(context.Background()); !errors.Is(err, cache.ErrMisconfigured) {
		t.Fatalf("expected ErrMisconfigured, got %v", err)
	}
}

func TestCheckSurfacesValueMismatch(t *testing.T) {
	backend := newFlakyBackend()
	backend.corrupt = true
	c := cache.NewWithBackend(enabledSettings(), backend)

	if err := c.Check(context.Background()); !errors.Is(err, cache.ErrMisconfigured) {
		t.Fatalf("expected ErrMisconfigured, got %v", err)
	}
}

func TestCheckMemoizesUntilInvalidated(t *testing.T) {
	backend := newFlakyBackend()
	backend.getErr = errors.New("down")
	c := cache.NewWithBackend(enabledSettings(), backend)
	ctx := context.Background()

	if err := c.Check(ctx); !errors.Is(err, cache.ErrMisconfigured) {
		t.Fatalf("expected ErrMisconfigured, got %v", err)
	}
	if err := c.Check(ctx); !errors.Is(err, cache.ErrMisconfigured) {
		t.Fatalf("memoized check should return the same error, got %v", err)
	}
	if backend.getCalls != 1 {
		t.Fatalf("expected a single backend round-trip, got %d", backend.getCalls)
	}

	backend.getErr = nil
	c.InvalidateCheck()
	if err := c.Check(ctx); err != nil {
		t.Fatalf("Check after recovery: %v", err)
	}
}

func TestResponseRoundTrip(t *testing.T) {
	c := cache.New(enabledSettings())
	ctx := context.Background()
	key := cache.ResponseKey("uzbekistan", "region-list", url.Values{})

	if _, ok := c.GetResponse(ctx, key); ok {
		t.Fatal("expected miss on empty cache")
	}
	c.SetResponse(ctx, key, []byte(`[{"id":1}]`))
	payload, ok := c.GetResponse(ctx, key)
	if !ok || string(payload) != `[{"id":1}]` {
		t.Fatalf("unexpected cached payload: %q ok=%v", payload, ok)
	}
}

func TestDisabledCacheNeverStores(t *testing.T) {
	c := cache.New(cache.Settings{Enabled: false, Timeout: time.Hour, KeyPrefix: "uzbekistan", Capacity: 8})
	ctx := context.Background()

	c.SetResponse(ctx, "key", []byte("value"))
	if _, ok := c.GetResponse(ctx, "key"); ok {
		t.Fatal("disabled cache should not serve hits")
	}
}

func TestResponseKeyStableAcrossParameterOrder(t *testing.T) {
	a := url.Values{}
	a.Set("name", "toshkent")
	a.Set("region_id", "3")
	b := url.Values{}
	b.Set("region_id", "3")
	b.Set("name", "toshkent")

	if cache.ResponseKey("p", "district-list", a) != cache.ResponseKey("p", "district-list", b) {
		t.Fatal("key should not depend on parameter order")
	}
	if cache.ResponseKey("p", "district-list", a) == cache.ResponseKey("p", "village-list", a) {
		t.Fatal("key should depend on the view name")
	}
	c := url.Values{}
	c.Set("name", "samarqand")
	if cache.ResponseKey("p", "district-list", a) == cache.ResponseKey("p", "district-list", c) {
		t.Fatal("key should depend on parameter values")
	}
}
