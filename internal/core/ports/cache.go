package ports

import (
	"context"
	"time"
)

// Cache defines a minimal key-value cache contract with expiry.
// Implementations return transport errors as-is; the caller is the fail-open
// boundary and must be able to fall back to the primary datastore on any
// error. A missing key is never an error.
type Cache interface {
	// Get returns the raw bytes for key. ok=false if not found.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores value for key with TTL (0 or negative means no expiration if supported).
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// Delete removes the key; absence is not an error.
	Delete(ctx context.Context, key string) error
	// DeleteByPattern removes every key matching the glob pattern.
	// Matching zero keys is a normal outcome, not an error.
	DeleteByPattern(ctx context.Context, pattern string) error
}
