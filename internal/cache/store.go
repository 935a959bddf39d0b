package cache

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrNotFound is returned by a Store when the key is unset or expired.
var ErrNotFound = errors.New("cache: key not found")

// Fixed cache keys, one per data route.
const (
	KeyTransactions = "transactions_v1"
	KeyBudgets      = "budgets_v1"
	KeyCategories   = "categories_v1"
)

// Expiry of each route's entry.
const (
	TTLTransactions = 10 * time.Minute
	TTLBudgets      = time.Hour
	TTLCategories   = time.Hour
)

// Keys returns every key the service writes, in invalidation order.
func Keys() []string {
	return []string{KeyTransactions, KeyBudgets, KeyCategories}
}

// Store is a string-keyed byte store with per-key expiry. Expiry is enforced
// by the store itself.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Open returns the Store described by rawURL. An empty URL returns a nil
// Store, which callers treat as "caching disabled".
func Open(rawURL string) (Store, error) {
	switch {
	case rawURL == "":
		return nil, nil
	case strings.HasPrefix(rawURL, "memory://"):
		return NewMemoryStore(), nil
	case strings.HasPrefix(rawURL, "redis://"), strings.HasPrefix(rawURL, "rediss://"):
		store, err := NewRedisStore(rawURL)
		if err != nil {
			return nil, fmt.Errorf("Open: %w", err)
		}
		return store, nil
	default:
		return nil, fmt.Errorf("Open: unsupported cache URL scheme in %q", schemeOf(rawURL))
	}
}

func schemeOf(rawURL string) string {
	if i := strings.Index(rawURL, "://"); i >= 0 {
		return rawURL[:i]
	}
	return rawURL
}
