// Package cache provides a small byte cache with pluggable backends.
//
// The dev server uses it to cache rendered pages and computed file
// hashes. The in-memory backend is the default; Redis is available for
// deployments with multiple worker processes, and the null backend
// disables caching entirely.
package cache

import (
	"context"
	"time"
)

// Cache stores opaque byte values under string keys with an optional
// TTL. Implementations must be safe for concurrent use.
type Cache interface {
	// Get retrieves a value. The second return value reports whether
	// the key was present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores a value. A zero ttl means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases backend resources.
	Close() error
}
