package cache

import "context"

// EvictCallback is called when an entry is evicted from the cache.
// The redis provider never calls it; Redis expires keys on its own.
type EvictCallback func(key string, value []byte)

// Cache is a byte-oriented key/value store with bounded lifetime entries.
type Cache interface {
	// Get returns the value and true on a hit, nil and false on a miss.
	Get(ctx context.Context, key string) ([]byte, bool)

	// Set stores value under key, overwriting any previous entry.
	Set(ctx context.Context, key string, value []byte)

	Len() int

	// Close releases network connections held by the cache.
	Close() error
}
