package cache

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"
)

// ConnectRedis initializes the Redis client backing the session tracking tier.
// Returns an error instead of failing hard: the service degrades to in-memory
// session storage when Redis is not configured.
func ConnectRedis(redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("[tracking][redis] invalid REDIS_URL err=%v", err)
		return nil, err
	}

	client := redis.NewClient(opts)
	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Printf("[tracking][redis] ping failed err=%v", err)
		return nil, err
	}
	log.Printf("[tracking][redis] connected")
	return client, nil
}
