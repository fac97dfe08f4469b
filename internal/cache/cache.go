package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"
)

// Cache stores encoded values for a bounded time.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration)
}

// Key hashes the parts into a namespaced cache key. Parts are separated by a
// NUL so ("ab", "c") and ("a", "bc") never collide.
func Key(namespace string, parts ...string) string {
	hash := sha256.Sum256([]byte(strings.Join(parts, "\x00")))
	return "cardsmith:" + namespace + ":" + hex.EncodeToString(hash[:])
}
