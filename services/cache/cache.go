package cache

import (
	"time"
)

// CacheService represents a generic byte cache. The crawl driver keeps
// fetched pages behind it so that a name preview followed by a crawl within
// the TTL hits the source site once.
type CacheService interface {
	// Get retrieves a value from the cache
	Get(key string) ([]byte, error)

	// Set stores a value in the cache with an expiration time
	Set(key string, value []byte, expiration time.Duration) error

	// Delete removes a value from the cache
	Delete(key string) error
}
