package cache

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryRedis implements the few Cmdable calls the tree cache makes
type memoryRedis struct {
	redis.Cmdable
	values map[string]string
	ttls   map[string]time.Duration
	err    error
}

func newMemoryRedis() *memoryRedis {
	return &memoryRedis{values: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (m *memoryRedis) Get(_ context.Context, key string) *redis.StringCmd {
	if m.err != nil {
		return redis.NewStringResult("", m.err)
	}
	v, ok := m.values[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (m *memoryRedis) Set(_ context.Context, key string, value interface{}, ttl time.Duration) *redis.StatusCmd {
	m.values[key] = string(value.([]byte))
	m.ttls[key] = ttl
	return redis.NewStatusResult("OK", nil)
}

func (m *memoryRedis) Del(_ context.Context, keys ...string) *redis.IntCmd {
	var n int64
	for _, k := range keys {
		if _, ok := m.values[k]; ok {
			delete(m.values, k)
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

func (m *memoryRedis) Incr(_ context.Context, key string) *redis.IntCmd {
	n, _ := strconv.ParseInt(m.values[key], 10, 64)
	n++
	m.values[key] = strconv.FormatInt(n, 10)
	return redis.NewIntResult(n, nil)
}

func TestTreeCache_RoundTrip(t *testing.T) {
	client := newMemoryRedis()
	c := NewTreeCache(client, time.Minute)
	ctx := context.Background()

	data, generation, err := c.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, data, "a miss is not an error")
	assert.Equal(t, int64(0), generation)

	require.NoError(t, c.Set(ctx, generation, []byte(`[{"name":"Drinks"}]`)))
	assert.Equal(t, time.Minute, client.ttls[treeKey(0)])

	data, _, err = c.Get(ctx)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"name":"Drinks"}]`, string(data))

	require.NoError(t, c.Invalidate(ctx))
	data, generation, err = c.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, data)
	assert.Equal(t, int64(1), generation)
}

func TestTreeCache_SetAfterInvalidateIsNeverServed(t *testing.T) {
	c := NewTreeCache(newMemoryRedis(), time.Minute)
	ctx := context.Background()

	_, before, err := c.Get(ctx)
	require.NoError(t, err)
	require.NoError(t, c.Invalidate(ctx))
	require.NoError(t, c.Set(ctx, before, []byte(`["stale"]`)))

	data, _, err := c.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestTreeCache_ReportsErrors(t *testing.T) {
	client := newMemoryRedis()
	client.err = errors.New("connection refused")

	_, _, err := NewTreeCache(client, time.Minute).Get(context.Background())
	assert.EqualError(t, err, "connection refused")
}

func TestNoopTreeCache_NeverHits(t *testing.T) {
	c := NewNoopTreeCache()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, 0, []byte(`[]`)))
	data, _, err := c.Get(ctx)
	assert.NoError(t, err)
	assert.Nil(t, data)
	assert.NoError(t, c.Invalidate(ctx))
}
