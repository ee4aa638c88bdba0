package cache

import (
	"context"
	"encoding/json"
	"time"

	"topup_store/internal/infrastructure/logger"
	"topup_store/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "topup:"

// NewRedisClient returns nil when addr is empty; callers then run without a cache.
func NewRedisClient(addr string) *redis.Client {
	if addr == "" {
		return nil
	}
	return redis.NewClient(&redis.Options{
		Addr:         addr,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  time.Second,
		WriteTimeout: time.Second,
	})
}

type RedisChannelCache struct {
	rdb *redis.Client
	ttl time.Duration
}

var _ interfaces.IChannelCache = (*RedisChannelCache)(nil)

func NewRedisChannelCache(rdb *redis.Client, ttl time.Duration) *RedisChannelCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &RedisChannelCache{rdb: rdb, ttl: ttl}
}

func (c *RedisChannelCache) Get(ctx context.Context, key string) (json.RawMessage, bool) {
	if c == nil || c.rdb == nil {
		return nil, false
	}
	b, err := c.rdb.Get(ctx, keyPrefix+key).Bytes()
	if err != nil {
		if err != redis.Nil {
			logger.L().Warnf("[cache][redis] get failed key=%s err=%v", key, err)
		}
		return nil, false
	}
	if !json.Valid(b) {
		return nil, false
	}
	return json.RawMessage(b), true
}

func (c *RedisChannelCache) Set(ctx context.Context, key string, payload json.RawMessage) {
	if c == nil || c.rdb == nil || len(payload) == 0 {
		return
	}
	if err := c.rdb.Set(ctx, keyPrefix+key, []byte(payload), c.ttl).Err(); err != nil {
		logger.L().Warnf("[cache][redis] set failed key=%s err=%v", key, err)
	}
}
