package redisclient

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"
)

// NewRedisFromURL creates a Redis client from a redis:// URL and verifies
// connectivity. A failed ping is logged, not fatal: the view counter
// degrades to zero counts when the store is unreachable.
func NewRedisFromURL(ctx context.Context, url string) *redis.Client {
	opts, err := redis.ParseURL(url)
	if err != nil {
		log.Printf("invalid REDIS_URL, view counters disabled: %v", err)
		return nil
	}
	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("redis ping failed, view counters may be unavailable: %v", err)
	}
	return rdb
}

// Close closes the client, tolerating a nil one.
func Close(rdb *redis.Client) {
	if rdb == nil {
		return
	}
	if err := rdb.Close(); err != nil {
		log.Printf("error closing redis client: %v", err)
	}
}
