package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) (*miniredis.Miniredis, *Redis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, NewRedis(client, "test:")
}

func TestRedis_SetGetExpire(t *testing.T) {
	mr, c := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "maintenance-trend:6", []byte(`[{"month":"2024-01"}]`), 300*time.Second))
	assert.True(t, mr.Exists("test:maintenance-trend:6"))

	got, ok, err := c.Get(ctx, "maintenance-trend:6")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"month":"2024-01"}]`, string(got))

	mr.FastForward(301 * time.Second)

	_, ok, err = c.Get(ctx, "maintenance-trend:6")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedis_Evict(t *testing.T) {
	mr, c := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", []byte("v"), time.Minute))
	require.NoError(t, c.Evict(ctx, "k"))
	assert.False(t, mr.Exists("test:k"))
}

func TestRedis_ErrorWhenUnavailable(t *testing.T) {
	mr, c := setupTestRedis(t)
	mr.Close()

	_, ok, err := c.Get(context.Background(), "k")
	assert.Error(t, err)
	assert.False(t, ok)
}
