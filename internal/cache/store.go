package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store is the keyed get/put cache injected into the aggregation engine.
// Implementations must report a missing key as (false, nil), never as an
// error, so callers can distinguish misses from outages.
type Store interface {
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}) error
	Delete(ctx context.Context, keys ...string) error
}

// redisStore serializes values as JSON into Redis with a fixed TTL. Decimal
// fields survive the round trip because shopspring/decimal marshals to a
// quoted string.
type redisStore struct {
	redis *RedisCache
	ttl   time.Duration
}

// NewStore creates a Redis-backed Store with the given entry TTL
func NewStore(r *RedisCache, ttl time.Duration) Store {
	return &redisStore{
		redis: r,
		ttl:   ttl,
	}
}

func (s *redisStore) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	data, err := s.redis.Get(ctx, key)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("failed to get from cache: %w", err)
	}

	if err := json.Unmarshal([]byte(data), dest); err != nil {
		return false, fmt.Errorf("failed to unmarshal cached value: %w", err)
	}

	return true, nil
}

func (s *redisStore) Set(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value: %w", err)
	}

	return s.redis.Set(ctx, key, data, s.ttl)
}

func (s *redisStore) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return s.redis.Del(ctx, keys...)
}
