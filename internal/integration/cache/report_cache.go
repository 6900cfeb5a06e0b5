// Package cache implements the report cache on top of Redis.
package cache

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/ecotrack/backend/config"
	"github.com/ecotrack/backend/internal/application/adapter"
)

const (
	keyPrefix        = "ecotrack:reports:"
	generationPrefix = "ecotrack:reportgen:"
)

// redisReportCache keeps every cached report of a user in one hash so that a
// single DEL invalidates all of them. A separate counter per user guards
// against writing back a report computed before the last invalidation.
type redisReportCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisClient builds a client from the Redis config. Password and DB
// override whatever the URL carries.
func NewRedisClient(cfg *config.RedisConfig) (*redis.Client, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	if cfg.Password != "" {
		opts.Password = cfg.Password
	}
	if cfg.DB != 0 {
		opts.DB = cfg.DB
	}
	return redis.NewClient(opts), nil
}

// NewReportCache creates a Redis-backed report cache.
func NewReportCache(client *redis.Client, ttl time.Duration) adapter.ReportCache {
	return &redisReportCache{client: client, ttl: ttl}
}

func userKey(userID uuid.UUID) string {
	return keyPrefix + userID.String()
}

func generationKey(userID uuid.UUID) string {
	return generationPrefix + userID.String()
}

func readGeneration(cmd *redis.StringCmd) (int64, error) {
	generation, err := cmd.Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return generation, err
}

func (c *redisReportCache) Get(ctx context.Context, userID uuid.UUID, key string) ([]byte, bool, error) {
	payload, err := c.client.HGet(ctx, userKey(userID), key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return payload, true, nil
}

func (c *redisReportCache) Generation(ctx context.Context, userID uuid.UUID) (int64, error) {
	return readGeneration(c.client.Get(ctx, generationKey(userID)))
}

func (c *redisReportCache) Set(ctx context.Context, userID uuid.UUID, key string, payload []byte, generation int64) error {
	hashKey := userKey(userID)
	genKey := generationKey(userID)
	err := c.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := readGeneration(tx.Get(ctx, genKey))
		if err != nil {
			return err
		}
		if current != generation {
			slog.Debug("Skipping stale report cache write", "user_id", userID, "key", key)
			return nil
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, hashKey, key, payload)
			// The hash lives at most ttl from its first entry.
			pipe.ExpireNX(ctx, hashKey, c.ttl)
			return nil
		})
		return err
	}, genKey)
	if errors.Is(err, redis.TxFailedErr) {
		// Invalidated between the check and EXEC.
		return nil
	}
	return err
}

func (c *redisReportCache) Invalidate(ctx context.Context, userID uuid.UUID) error {
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, generationKey(userID))
		pipe.Del(ctx, userKey(userID))
		return nil
	})
	return err
}

type noopReportCache struct{}

// NewNoopReportCache returns a cache that never stores anything. It is used
// when Redis is disabled or unreachable.
func NewNoopReportCache() adapter.ReportCache {
	slog.Info("Report cache disabled")
	return noopReportCache{}
}

func (noopReportCache) Get(context.Context, uuid.UUID, string) ([]byte, bool, error) {
	return nil, false, nil
}

func (noopReportCache) Generation(context.Context, uuid.UUID) (int64, error) { return 0, nil }

func (noopReportCache) Set(context.Context, uuid.UUID, string, []byte, int64) error { return nil }

func (noopReportCache) Invalidate(context.Context, uuid.UUID) error { return nil }
