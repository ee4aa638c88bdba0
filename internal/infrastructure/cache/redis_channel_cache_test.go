package cache

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestNewRedisClient_EmptyAddr(t *testing.T) {
	assert.Nil(t, NewRedisClient(""))
}

func TestRedisChannelCache_NilClientIsAlwaysMiss(t *testing.T) {
	c := NewRedisChannelCache(nil, 0)
	c.Set(context.Background(), "k", json.RawMessage(`{}`))
	_, ok := c.Get(context.Background(), "k")
	assert.False(t, ok)
	assert.Equal(t, 5*time.Minute, c.ttl)
}

func TestRedisChannelCache_UnreachableServerIsMiss(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 200 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer rdb.Close()
	c := NewRedisChannelCache(rdb, time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	c.Set(ctx, "channels:sandbox:T0001", json.RawMessage(`{"success":true}`))
	_, ok := c.Get(ctx, "channels:sandbox:T0001")
	assert.False(t, ok)
}
