// Package cache stores rendered chart artifacts.
//
// Artifacts are pure functions of the chart document, the style config and
// the output options, so they are cached under a hash of those inputs. The
// CLI uses [FileCache] under the XDG cache directory; the HTTP service can
// share a [RedisCache] between instances. [NullCache] disables caching.
//
// Nothing in a cache is authoritative: every entry can be rebuilt, and
// backends may drop entries at any time.
package cache

import (
	"context"
	"time"
)

// Cache is a byte store with optional expiry.
type Cache interface {
	// Get returns the value for key and whether it was found.
	// A miss is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A zero ttl never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases the backend's resources.
	Close() error
}
