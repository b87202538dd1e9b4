// README: Issued-quote cache backed by Redis string keys with TTL.
package quote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const quoteKeyPrefix = "shipcost:quote:%s"

type RedisCache struct {
	redis *redis.Client
}

func NewRedisCache(redis *redis.Client) *RedisCache {
	return &RedisCache{redis: redis}
}

func (c *RedisCache) Save(ctx context.Context, q *Issued, ttl time.Duration) error {
	b, err := json.Marshal(q)
	if err != nil {
		return fmt.Errorf("encode quote: %w", err)
	}
	return c.redis.Set(ctx, quoteKey(q.ID), b, ttl).Err()
}

func (c *RedisCache) Get(ctx context.Context, id string) (*Issued, error) {
	b, err := c.redis.Get(ctx, quoteKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	var q Issued
	if err := json.Unmarshal(b, &q); err != nil {
		return nil, fmt.Errorf("decode quote %s: %w", id, err)
	}
	return &q, nil
}

func quoteKey(id string) string {
	return fmt.Sprintf(quoteKeyPrefix, id)
}
