package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type entry struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func unreachableClient() *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
}

func TestCacheService_MarshalError(t *testing.T) {
	s := NewCacheService(unreachableClient(), time.Minute)
	defer s.Close()

	err := s.Set(context.Background(), "k", make(chan int))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to marshal cache value")
}

func TestCacheService_Unreachable(t *testing.T) {
	s := NewCacheService(unreachableClient(), time.Minute)
	defer s.Close()

	found, err := s.Get(context.Background(), "k", &entry{})
	assert.False(t, found)
	assert.Error(t, err)
	assert.Error(t, s.HealthCheck(context.Background()))
}

func TestCacheService_DeleteNoKeys(t *testing.T) {
	s := NewCacheService(unreachableClient(), time.Minute)
	defer s.Close()

	assert.NoError(t, s.Delete(context.Background()))
}

func TestNewRedisClient(t *testing.T) {
	client := NewRedisClient(&RedisConfig{Host: "cache", Port: "6380", DB: 2})
	defer client.Close()

	assert.Equal(t, "cache:6380", client.Options().Addr)
	assert.Equal(t, 2, client.Options().DB)
}

// Requires a running Redis, for example TEST_REDIS_ADDR=localhost:6379.
func TestCacheService_RoundTrip(t *testing.T) {
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR not set")
	}
	s := NewCacheService(redis.NewClient(&redis.Options{Addr: addr}), time.Minute)
	defer s.Close()
	ctx := context.Background()

	require.NoError(t, s.HealthCheck(ctx))
	require.NoError(t, s.Set(ctx, "cardcheck:test", entry{Name: "a", Count: 2}))

	var got entry
	found, err := s.Get(ctx, "cardcheck:test", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, entry{Name: "a", Count: 2}, got)

	require.NoError(t, s.Delete(ctx, "cardcheck:test"))
	found, err = s.Get(ctx, "cardcheck:test", &got)
	require.NoError(t, err)
	assert.False(t, found)
}
