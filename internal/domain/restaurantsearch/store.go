package restaurantsearch

import (
	"context"
	"time"
)

// Store is the cache backend behind the proximity cache. Entries are
// immutable once written and expire after their TTL. Implementations need
// no stronger guarantee than per-key atomicity; concurrent writers racing
// on the same key are acceptable because both compute the same value.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// Available reports whether the backend is reachable. A false answer
	// makes the read path bypass the cache entirely.
	Available(ctx context.Context) bool
}
