package cache

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned by Get when the key does not exist or has expired.
var ErrNotFound = errors.New("key not found")

// Cache defines the key/value operations interface following hexagonal architecture.
// This is a port that can be implemented by different providers (Redis, in-memory, etc.).
type Cache interface {
	// Get retrieves a value by key.
	// Returns ErrNotFound (wrapped) when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value with the specified key and TTL.
	// TTL of 0 means no expiration.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a value by key.
	Delete(ctx context.Context, key string) error

	// Ping checks if the cache service is reachable.
	Ping(ctx context.Context) error

	// Close closes the cache connection.
	Close() error
}

// Counters defines integer counters grouped under a hash key.
type Counters interface {
	// IncrementFieldOnce adds delta to field within key unless marker already exists.
	// The marker is written only after the increment succeeds, and both run atomically,
	// so a failed call can be retried with the same marker. A non-zero ttl (re)sets the
	// expiration of key and applies to marker.
	// It reports whether the increment was applied.
	IncrementFieldOnce(ctx context.Context, marker, key, field string, delta int64, ttl time.Duration) (bool, error)

	// Fields returns every field of key. A missing key yields an empty map.
	Fields(ctx context.Context, key string) (map[string]string, error)
}
