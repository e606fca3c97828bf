// Package cache holds serialized analytics results for a bounded time.
package cache

import (
	"context"
	"time"
)

// Cache stores opaque values under string keys with a per-entry time-to-live.
// Implementations must be safe for concurrent use.
type Cache interface {
	// Get returns the value stored under key. Expired entries are reported as absent.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores value under key for ttl, measured from now.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// Evict removes key if present.
	Evict(ctx context.Context, key string) error
}
