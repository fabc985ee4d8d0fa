// Package cache stores computed coloring results so repeated runs over the
// same graph are answered without searching again.
//
// Keys are derived from the graph fingerprint plus the search parameters
// (see [Key]), so any change to the graph, strategy, or color bound misses.
// Backends: [FileCache] for the CLI, [RedisCache] for server deployments,
// and [NullCache] to disable caching.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"
)

// Cache is the interface shared by all backends. A miss is (nil, false,
// nil); errors are reserved for backend failures.
type Cache interface {
	// Get retrieves the value stored under key.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes the value stored under key, if any.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Key builds a cache key by hashing the parts under a prefix.
// The format is prefix:hash(parts...).
func Key(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	return fmt.Sprintf("%s:%s", prefix, Hash(data))
}

// Hash computes the SHA-256 hash of data as a 64-character hex string.
// The full digest is kept to prevent collisions.
func Hash(data []byte) string {
	h := sha256.Sum256(data)
	return hex.EncodeToString(h[:])
}
