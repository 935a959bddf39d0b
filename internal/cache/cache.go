package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Cache is a best-effort JSON cache over a Store. Reads that fail for any
// reason are misses and writes never fail the caller. A nil Store disables
// caching entirely.
type Cache struct {
	store Store
	log   zerolog.Logger
}

// New creates a Cache. store may be nil.
func New(store Store, log zerolog.Logger) *Cache {
	return &Cache{store: store, log: log}
}

// Enabled reports whether a backing store is configured.
func (c *Cache) Enabled() bool {
	return c != nil && c.store != nil
}

// Get decodes the value stored under key into dst and reports a hit.
// Unconfigured store, unset key, read error and undecodable value are all
// reported as a miss.
func (c *Cache) Get(ctx context.Context, key string, dst any) bool {
	if !c.Enabled() {
		return false
	}

	raw, err := c.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			c.log.Warn().Err(err).Str("key", key).Msg("Cache read failed")
		}
		return false
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("Cache value is not valid JSON")
		return false
	}
	return true
}

// Put stores value under key for ttl. Failures are logged and dropped.
func (c *Cache) Put(ctx context.Context, key string, value any, ttl time.Duration) {
	if !c.Enabled() {
		return
	}

	raw, err := json.Marshal(value)
	if err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("Cache value could not be encoded")
		return
	}

	if err := c.store.Set(ctx, key, raw, ttl); err != nil {
		c.log.Warn().Err(err).Str("key", key).Dur("ttl", ttl).Msg("Cache write failed")
	}
}

// Invalidate deletes keys concurrently. Every delete is attempted regardless
// of the others; the first failure is returned after all have finished.
func (c *Cache) Invalidate(ctx context.Context, keys []string) error {
	if !c.Enabled() {
		return nil
	}

	var g errgroup.Group
	for _, key := range keys {
		g.Go(func() error {
			if err := c.store.Delete(ctx, key); err != nil {
				c.log.Warn().Err(err).Str("key", key).Msg("Cache delete failed")
				return err
			}
			return nil
		})
	}
	return g.Wait()
}

// Close releases the backing store.
func (c *Cache) Close() error {
	if !c.Enabled() {
		return nil
	}
	return c.store.Close()
}
