// File: utils/cache.go
package utils

import (
	"context"
	"fmt"
	"time"

	"github.com/velaug24it-bit/serviceswebiste/config"

	"github.com/go-redis/redis/v8"
)

// NewAuthCacheClient connects the Redis client used for session revocation.
// It returns nil, nil when no Redis address is configured.
func NewAuthCacheClient(cfg config.Config) (*redis.Client, error) {
	if cfg.RedisAddr == "" {
		return nil, nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisAuthDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis (Auth Cache): %w", err)
	}
	return client, nil
}
