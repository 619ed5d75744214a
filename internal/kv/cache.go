package kv

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"
)

var _ Store = (*CachedStore)(nil)

// CachedStore keeps recently read values in memory so repeated snapshot loads
// during one session do not hit the backing database.
type CachedStore struct {
	next  Store
	cache *cache.Cache
}

func Cached(next Store, ttl time.Duration) *CachedStore {
	cleanup := 2 * ttl
	if cleanup <= 0 {
		cleanup = time.Minute
	}
	return &CachedStore{
		next:  next,
		cache: cache.New(ttl, cleanup),
	}
}

func (c *CachedStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if cached, ok := c.cache.Get(key); ok {
		return cloneBytes(cached.([]byte)), true, nil
	}
	value, ok, err := c.next.Get(ctx, key)
	if err != nil || !ok {
		return value, ok, err
	}
	c.cache.SetDefault(key, cloneBytes(value))
	return value, true, nil
}

func (c *CachedStore) Set(ctx context.Context, key string, value []byte) error {
	c.cache.Delete(key)
	if err := c.next.Set(ctx, key, value); err != nil {
		return err
	}
	c.cache.SetDefault(key, cloneBytes(value))
	return nil
}

func (c *CachedStore) Delete(ctx context.Context, key string) error {
	c.cache.Delete(key)
	return c.next.Delete(ctx, key)
}

func (c *CachedStore) Keys(ctx context.Context) ([]string, error) {
	return c.next.Keys(ctx)
}

func (c *CachedStore) Close(ctx context.Context) error {
	c.cache.Flush()
	return c.next.Close(ctx)
}

func cloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
