package cache

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestMemcacheService requires a running memcache instance; skipped when the
// default address does not answer.
func TestMemcacheService(t *testing.T) {
	svc := NewMemcacheService("localhost:11211")

	key := PageKey("https://example.com/tovary/test/")
	err := svc.Set(key, []byte("<html>page</html>"), 10*time.Second)
	if err != nil {
		t.Skip("memcache not available:", err)
	}

	val, err := svc.Get(key)
	assert.NoError(t, err)
	assert.Equal(t, []byte("<html>page</html>"), val)

	assert.NoError(t, svc.Delete(key))
	_, err = svc.Get(key)
	assert.Error(t, err)
}

func TestPageKey(t *testing.T) {
	long := "https://example.com/" + strings.Repeat("very-long-path/", 40)
	key := PageKey(long)

	assert.True(t, strings.HasPrefix(key, "page:"))
	assert.Less(t, len(key), 250)
	assert.NotContains(t, key, " ")

	// Stable and distinct
	assert.Equal(t, key, PageKey(long))
	assert.NotEqual(t, key, PageKey(long+"x"))
}
