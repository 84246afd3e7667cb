package cache

import (
	"context"
	"time"
)

// Cache defines the interface for cache implementations
type Cache[V any] interface {
	// Get retrieves a value and extends its expiry
	Get(ctx context.Context, key string) (V, bool)

	// Set stores a value with a TTL; ttl <= 0 uses the cache default
	Set(ctx context.Context, key string, value V, ttl time.Duration) error

	// Delete removes a value from the cache
	Delete(ctx context.Context, key string) error

	// Len returns the number of live entries
	Len() int
}

// CacheStats provides statistics about cache usage
type CacheStats struct {
	Hits      int64 `json:"hits"`
	Misses    int64 `json:"misses"`
	Sets      int64 `json:"sets"`
	Deletes   int64 `json:"deletes"`
	Evictions int64 `json:"evictions"`
	Size      int64 `json:"size"`
	MaxSize   int64 `json:"max_size"`
}

// StatsProvider interface for caches that provide statistics
type StatsProvider interface {
	Stats() CacheStats
}
