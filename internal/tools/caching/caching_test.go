package caching

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func compressed(t *testing.T, value any) []byte {
	t.Helper()

	marshalled, err := json.Marshal(value)
	require.NoError(t, err)

	deflated, err := deflate(marshalled)
	require.NoError(t, err)

	return deflated
}

func TestMemoryCache(t *testing.T) {
	t.Run("stores and fetches a token", func(t *testing.T) {
		cache := NewMemoryCache()

		err := cache.Store(context.Background(), "booker-auth-token:test-admin", "abc123", time.Minute)
		require.NoError(t, err)

		var token string
		ok := cache.Fetch(context.Background(), "booker-auth-token:test-admin", &token)

		assert.True(t, ok)
		assert.Equal(t, "abc123", token)
	})

	t.Run("misses on unknown keys", func(t *testing.T) {
		cache := NewMemoryCache()

		var token string
		ok := cache.Fetch(context.Background(), "nope", &token)

		assert.False(t, ok)
	})

	t.Run("expires entries after their ttl", func(t *testing.T) {
		cache := NewMemoryCache()

		err := cache.Store(context.Background(), "short", "abc123", time.Millisecond)
		require.NoError(t, err)

		time.Sleep(5 * time.Millisecond)

		var token string
		ok := cache.Fetch(context.Background(), "short", &token)

		assert.False(t, ok)
	})
}

func TestRedisCache(t *testing.T) {
	t.Run("stores through setex", func(t *testing.T) {
		redisClient, mock := redismock.NewClientMock()
		cache := NewRedisCache(redisClient)

		mock.ExpectSetEx("booker-auth-token:test-admin", compressed(t, "abc123"), time.Minute).SetVal("")

		err := cache.Store(context.Background(), "booker-auth-token:test-admin", "abc123", time.Minute)

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("fetches and inflates", func(t *testing.T) {
		redisClient, mock := redismock.NewClientMock()
		cache := NewRedisCache(redisClient)

		mock.ExpectGet("booker-auth-token:test-admin").SetVal(string(compressed(t, "abc123")))

		var token string
		ok := cache.Fetch(context.Background(), "booker-auth-token:test-admin", &token)

		assert.True(t, ok)
		assert.Equal(t, "abc123", token)
	})

	t.Run("misses when the key is gone", func(t *testing.T) {
		redisClient, mock := redismock.NewClientMock()
		cache := NewRedisCache(redisClient)

		mock.ExpectGet("booker-auth-token:test-admin").RedisNil()

		var token string
		ok := cache.Fetch(context.Background(), "booker-auth-token:test-admin", &token)

		assert.False(t, ok)
	})
}
