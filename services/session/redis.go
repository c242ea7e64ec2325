package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/velaug24it-bit/serviceswebiste/utils"

	"github.com/go-redis/redis/v8"
)

// RedisStore keeps revoked token hashes in Redis with a TTL.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func key(token string) string {
	return utils.RevokedTokenPrefix + utils.HashToken(token)
}

func (r *RedisStore) Revoke(ctx context.Context, token string, ttl time.Duration) error {
	if err := r.client.Set(ctx, key(token), "1", ttl).Err(); err != nil {
		return fmt.Errorf("failed to revoke session: %w", err)
	}
	return nil
}

func (r *RedisStore) IsRevoked(ctx context.Context, token string) (bool, error) {
	err := r.client.Get(ctx, key(token)).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check session: %w", err)
	}
	return true, nil
}
