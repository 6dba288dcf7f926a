package cache

import (
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/berberhaus/barbershop-api/internal/config"
)

// NewRedisClient connects to Redis for booking-flow session storage. A nil
// return means Redis is unreachable; callers fall back to in-memory sessions
// so the booking flow keeps working on a single instance.
func NewRedisClient(cfg *config.Config) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("redis unavailable (%v), using in-memory flow sessions", err)
		return nil
	}
	return client
}
