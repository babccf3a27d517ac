// Package cache keeps the aggregated menu tree in Redis between writes.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sangkips/menu-api/internal/config"
	domainRepo "github.com/sangkips/menu-api/internal/domain/repository"
)

const generationKey = "menu:tree:generation"

func treeKey(generation int64) string {
	return fmt.Sprintf("menu:tree:%d", generation)
}

// Connect creates a Redis client and verifies the connection with a ping.
func Connect(ctx context.Context, cfg *config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return client, nil
}

type redisTreeCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

// NewTreeCache stores one tree per generation with the given TTL.
func NewTreeCache(client redis.Cmdable, ttl time.Duration) domainRepo.TreeCache {
	return &redisTreeCache{client: client, ttl: ttl}
}

func (c *redisTreeCache) Get(ctx context.Context) ([]byte, int64, error) {
	generation, err := c.client.Get(ctx, generationKey).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, 0, err
	}

	data, err := c.client.Get(ctx, treeKey(generation)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, generation, nil
	}
	return data, generation, err
}

// Set writes under the generation's own key, so a tree built before an
// Invalidate lands on a key no reader asks for and expires with the TTL.
func (c *redisTreeCache) Set(ctx context.Context, generation int64, tree []byte) error {
	return c.client.Set(ctx, treeKey(generation), tree, c.ttl).Err()
}

func (c *redisTreeCache) Invalidate(ctx context.Context) error {
	return c.client.Incr(ctx, generationKey).Err()
}

type noopTreeCache struct{}

// NewNoopTreeCache returns a cache that never hits.
func NewNoopTreeCache() domainRepo.TreeCache {
	return noopTreeCache{}
}

func (noopTreeCache) Get(context.Context) ([]byte, int64, error) { return nil, 0, nil }
func (noopTreeCache) Set(context.Context, int64, []byte) error   { return nil }
func (noopTreeCache) Invalidate(context.Context) error           { return nil }
