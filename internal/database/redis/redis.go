package redis

import (
	"context"
	"fmt"
	"log"
	"time"

	"aquarium-service/internal/config"

	"github.com/redis/go-redis/v9"
)

// NewClient builds the shared Redis client used for session storage. A failed
// ping is logged, not fatal: the service still starts and sessions recover
// once Redis is reachable.
func NewClient(cfg config.RedisConfig) *redis.Client {
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("Warning: Redis connection failed: %v", err)
	}

	return rdb
}
