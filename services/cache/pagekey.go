package cache

import (
	"crypto/sha1"
	"encoding/hex"
)

// PageKey derives a cache key for a fetched page. Product page URLs exceed
// memcache's key length limit and contain characters it rejects, so the URL
// is hashed.
func PageKey(url string) string {
	sum := sha1.Sum([]byte(url))
	return "page:" + hex.EncodeToString(sum[:])
}
