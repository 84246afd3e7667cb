package cache

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// Options configures a MemoryCache
type Options[V any] struct {
	// DefaultTTL applies when Set is called with ttl <= 0
	DefaultTTL time.Duration

	// CleanupInterval is how often expired entries are swept
	CleanupInterval time.Duration

	// MaxEntries bounds the number of entries; 0 means unbounded
	MaxEntries int

	// OnEvict is called without the lock held for entries that expire or are
	// pushed out by MaxEntries
	OnEvict func(key string, value V)
}

// MemoryCache implements an in-memory cache with sliding expiry
type MemoryCache[V any] struct {
	mu      sync.RWMutex
	items   map[string]*cacheItem[V]
	opts    Options[V]
	stats   CacheStats
	stopCh  chan struct{}
	stopped sync.Once
	wg      sync.WaitGroup
	now     func() time.Time
}

type cacheItem[V any] struct {
	value      V
	ttl        time.Duration
	expiry     time.Time
	lastAccess time.Time
}

// NewMemoryCache creates a new in-memory cache and starts its cleanup goroutine
func NewMemoryCache[V any](opts Options[V]) *MemoryCache[V] {
	if opts.DefaultTTL <= 0 {
		opts.DefaultTTL = 30 * time.Minute
	}
	if opts.CleanupInterval <= 0 {
		opts.CleanupInterval = time.Minute
	}

	mc := &MemoryCache[V]{
		items:  make(map[string]*cacheItem[V]),
		opts:   opts,
		stopCh: make(chan struct{}),
		now:    time.Now,
	}

	mc.wg.Add(1)
	go mc.cleanupExpired()

	return mc
}

// Get retrieves a value from the cache and extends its expiry
func (mc *MemoryCache[V]) Get(ctx context.Context, key string) (V, bool) {
	var zero V
	now := mc.now()

	mc.mu.Lock()
	item, exists := mc.items[key]
	if !exists {
		mc.mu.Unlock()
		atomic.AddInt64(&mc.stats.Misses, 1)
		return zero, false
	}
	if now.After(item.expiry) {
		delete(mc.items, key)
		mc.mu.Unlock()
		atomic.AddInt64(&mc.stats.Misses, 1)
		atomic.AddInt64(&mc.stats.Evictions, 1)
		mc.evicted(key, item.value)
		return zero, false
	}
	item.lastAccess = now
	item.expiry = now.Add(item.ttl)
	value := item.value
	mc.mu.Unlock()

	atomic.AddInt64(&mc.stats.Hits, 1)
	return value, true
}

// Set stores a value in the cache with a TTL
func (mc *MemoryCache[V]) Set(ctx context.Context, key string, value V, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = mc.opts.DefaultTTL
	}
	now := mc.now()

	mc.mu.Lock()
	var pushed map[string]V
	if _, replacing := mc.items[key]; !replacing {
		pushed = mc.makeRoomLocked(now)
	}
	mc.items[key] = &cacheItem[V]{
		value:      value,
		ttl:        ttl,
		expiry:     now.Add(ttl),
		lastAccess: now,
	}
	mc.mu.Unlock()

	atomic.AddInt64(&mc.stats.Sets, 1)
	for k, v := range pushed {
		mc.evicted(k, v)
	}
	return nil
}

// Delete removes a value from the cache
func (mc *MemoryCache[V]) Delete(ctx context.Context, key string) error {
	mc.mu.Lock()
	if _, exists := mc.items[key]; exists {
		delete(mc.items, key)
		atomic.AddInt64(&mc.stats.Deletes, 1)
	}
	mc.mu.Unlock()
	return nil
}

// Len returns the number of stored entries
func (mc *MemoryCache[V]) Len() int {
	mc.mu.RLock()
	defer mc.mu.RUnlock()
	return len(mc.items)
}

// Stats returns cache statistics
func (mc *MemoryCache[V]) Stats() CacheStats {
	stats := CacheStats{
		Hits:      atomic.LoadInt64(&mc.stats.Hits),
		Misses:    atomic.LoadInt64(&mc.stats.Misses),
		Sets:      atomic.LoadInt64(&mc.stats.Sets),
		Deletes:   atomic.LoadInt64(&mc.stats.Deletes),
		Evictions: atomic.LoadInt64(&mc.stats.Evictions),
		Size:      int64(mc.Len()),
		MaxSize:   int64(mc.opts.MaxEntries),
	}
	return stats
}

// Stop gracefully shuts down the cache
func (mc *MemoryCache[V]) Stop() {
	mc.stopped.Do(func() {
		close(mc.stopCh)
	})
	mc.wg.Wait()
}

// cleanupExpired removes expired items periodically
func (mc *MemoryCache[V]) cleanupExpired() {
	defer mc.wg.Done()
	ticker := time.NewTicker(mc.opts.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			mc.removeExpired()
		case <-mc.stopCh:
			return
		}
	}
}

// removeExpired removes all expired items
func (mc *MemoryCache[V]) removeExpired() {
	now := mc.now()
	expired := make(map[string]V)

	mc.mu.Lock()
	for key, item := range mc.items {
		if now.After(item.expiry) {
			delete(mc.items, key)
			expired[key] = item.value
			atomic.AddInt64(&mc.stats.Evictions, 1)
		}
	}
	mc.mu.Unlock()

	for k, v := range expired {
		mc.evicted(k, v)
	}
}

// makeRoomLocked frees one slot when MaxEntries is reached: expired entries
// first, then the least recently accessed one. Caller holds mu.
func (mc *MemoryCache[V]) makeRoomLocked(now time.Time) map[string]V {
	if mc.opts.MaxEntries <= 0 || len(mc.items) < mc.opts.MaxEntries {
		return nil
	}

	removed := make(map[string]V)
	for key, item := range mc.items {
		if now.After(item.expiry) {
			delete(mc.items, key)
			removed[key] = item.value
			atomic.AddInt64(&mc.stats.Evictions, 1)
		}
	}

	for len(mc.items) >= mc.opts.MaxEntries {
		var oldestKey string
		var oldest time.Time
		for key, item := range mc.items {
			if oldestKey == "" || item.lastAccess.Before(oldest) {
				oldestKey, oldest = key, item.lastAccess
			}
		}
		removed[oldestKey] = mc.items[oldestKey].value
		delete(mc.items, oldestKey)
		atomic.AddInt64(&mc.stats.Evictions, 1)
	}
	return removed
}

func (mc *MemoryCache[V]) evicted(key string, value V) {
	if mc.opts.OnEvict != nil {
		mc.opts.OnEvict(key, value)
	}
}
