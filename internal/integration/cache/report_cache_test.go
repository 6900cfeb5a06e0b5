package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecotrack/backend/config"
)

func newMiniRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestRedisReportCache(t *testing.T) {
	ctx := context.Background()
	mr, client := newMiniRedis(t)
	c := NewReportCache(client, time.Minute)
	userID := uuid.New()

	_, ok, err := c.Get(ctx, userID, "impact:3")
	require.NoError(t, err)
	assert.False(t, ok)

	generation, err := c.Generation(ctx, userID)
	require.NoError(t, err)
	assert.Zero(t, generation)

	require.NoError(t, c.Set(ctx, userID, "impact:3", []byte(`{"total":30}`), generation))
	require.NoError(t, c.Set(ctx, userID, "summary", []byte(`{"total":30}`), generation))

	payload, ok, err := c.Get(ctx, userID, "impact:3")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.JSONEq(t, `{"total":30}`, string(payload))

	t.Run("ttl applies to the user hash", func(t *testing.T) {
		assert.Equal(t, time.Minute, mr.TTL(keyPrefix+userID.String()))
	})

	t.Run("users are isolated", func(t *testing.T) {
		_, ok, err := c.Get(ctx, uuid.New(), "impact:3")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("invalidate drops every report of the user", func(t *testing.T) {
		require.NoError(t, c.Invalidate(ctx, userID))
		for _, key := range []string{"impact:3", "summary"} {
			_, ok, err := c.Get(ctx, userID, key)
			require.NoError(t, err)
			assert.False(t, ok, key)
		}
		generation, err := c.Generation(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), generation)
	})

	t.Run("writes from an older generation are dropped", func(t *testing.T) {
		require.NoError(t, c.Set(ctx, userID, "impact:3", []byte(`{"total":30}`), 0))
		_, ok, err := c.Get(ctx, userID, "impact:3")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.False(t, mr.Exists(keyPrefix+userID.String()))
	})

	t.Run("entries expire", func(t *testing.T) {
		require.NoError(t, c.Set(ctx, userID, "impact:5", []byte(`{}`), 1))
		mr.FastForward(2 * time.Minute)
		_, ok, err := c.Get(ctx, userID, "impact:5")
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestRedisReportCacheLaterWritesKeepFirstExpiry(t *testing.T) {
	ctx := context.Background()
	mr, client := newMiniRedis(t)
	c := NewReportCache(client, 10*time.Minute)
	userID := uuid.New()

	require.NoError(t, c.Set(ctx, userID, "impact:3", []byte("old"), 0))
	mr.FastForward(9 * time.Minute)
	require.NoError(t, c.Set(ctx, userID, "impact:5", []byte("new"), 0))
	assert.Equal(t, time.Minute, mr.TTL(keyPrefix+userID.String()))

	mr.FastForward(2 * time.Minute)
	_, ok, err := c.Get(ctx, userID, "impact:3")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisReportCacheServerDown(t *testing.T) {
	mr, client := newMiniRedis(t)
	c := NewReportCache(client, time.Minute)
	mr.Close()

	_, _, err := c.Get(context.Background(), uuid.New(), "impact:3")
	assert.Error(t, err)
	_, err = c.Generation(context.Background(), uuid.New())
	assert.Error(t, err)
}

func TestNewRedisClient(t *testing.T) {
	client, err := NewRedisClient(&config.RedisConfig{URL: "redis://localhost:6379/2", Password: "pw"})
	require.NoError(t, err)
	defer client.Close()

	assert.Equal(t, 2, client.Options().DB)
	assert.Equal(t, "pw", client.Options().Password)

	_, err = NewRedisClient(&config.RedisConfig{URL: "not a url"})
	assert.Error(t, err)
}

func TestNoopReportCache(t *testing.T) {
	ctx := context.Background()
	c := NewNoopReportCache()
	userID := uuid.New()

	require.NoError(t, c.Set(ctx, userID, "k", []byte("v"), 0))
	_, ok, err := c.Get(ctx, userID, "k")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, c.Invalidate(ctx, userID))
}
