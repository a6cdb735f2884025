package cache

import (
	"context"
	"time"

	"github.com/jellydator/ttlcache/v3"
)

// ttlBackend adapts jellydator/ttlcache to the Backend interface.
type ttlBackend struct {
	items *ttlcache.Cache[string, []byte]
}

func newTTLBackend(settings Settings) *ttlBackend {
	items := ttlcache.New[string, []byte](
		ttlcache.WithTTL[string, []byte](settings.Timeout),
		ttlcache.WithCapacity[string, []byte](settings.Capacity),
		ttlcache.WithDisableTouchOnHit[string, []byte](),
	)
	go items.Start()
	return &ttlBackend{items: items}
}

func (b *ttlBackend) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	b.items.Set(key, value, ttl)
	return nil
}

func (b *ttlBackend) Get(_ context.Context, key string) ([]byte, bool, error) {
	item := b.items.Get(key)
	if item == nil || item.IsExpired() {
		return nil, false, nil
	}
	return item.Value(), true, nil
}

func (b *ttlBackend) Delete(_ context.Context, key string) error {
	b.items.Delete(key)
	return nil
}
