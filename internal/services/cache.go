package services

import (
	"context"
	"time"
)

// Cache defines the interface for the key-value cache backing exemplar
// embedding warm-up. The engine works without it; a cold or missing
// cache only costs recomputation.
type Cache interface {
	// Ping tests the cache connection
	Ping(ctx context.Context) error

	// Set stores a key-value pair with optional expiration
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error

	// Get retrieves a value by key. A missing key returns ("", nil).
	Get(ctx context.Context, key string) (string, error)

	// Del deletes one or more keys
	Del(ctx context.Context, keys ...string) error

	// Close closes the cache connection
	Close() error
}
