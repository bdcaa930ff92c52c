package publisher

import (
	"context"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRedisPublisher requires a running Redis instance; skipped when the
// default address does not answer.
func TestRedisPublisher(t *testing.T) {
	ctx := context.Background()
	pub := NewRedisPublisher(ctx, "localhost:6379", 15, "pricewatch:test", 10)
	defer pub.Close()

	obs := Observation{
		Name:  "GeForce RTX 3060",
		URL:   "https://example.com/tovary/rtx3060/",
		Date:  "2021.09.16 19:32",
		Price: "43990",
	}
	if err := pub.Publish(obs); err != nil {
		t.Skip("redis not available:", err)
	}

	client := redis.NewClient(&redis.Options{Addr: "localhost:6379", DB: 15})
	defer func() {
		client.Del(ctx, "pricewatch:test")
		client.Close()
	}()

	entries, err := client.XRange(ctx, "pricewatch:test", "-", "+").Result()
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	last := entries[len(entries)-1]
	assert.Contains(t, last.Values["observation"], "43990")
	assert.Contains(t, last.Values["observation"], "GeForce RTX 3060")
}
