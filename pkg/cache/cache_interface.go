package cache

import (
	"context"
	"time"
)

// Cache is the contract for the read-through cache layer.
// Allows swapping implementations (Redis for deployments, in-memory
// for single-instance setups and tests).
type Cache interface {
	// Get reads the value at key and unmarshals it into dest.
	// Returns: (found bool, error)
	// - found = true: cache hit, data unmarshaled into dest
	// - found = false: cache miss, dest untouched
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set stores value at key with a TTL (0 = no expiry).
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete removes keys from the cache.
	Delete(ctx context.Context, keys ...string) error

	// Ping verifies the backing store is reachable.
	Ping(ctx context.Context) error
}
