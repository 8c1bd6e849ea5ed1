package cache

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
)

// startRedis spins up a disposable Redis container. Skipped in short mode.
func startRedis(t *testing.T) string {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping container-backed test in short mode")
	}

	ctx := context.Background()
	container, err := tcredis.Run(ctx, "redis:7-alpine")
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate redis container: %v", err)
		}
	})

	connStr, err := container.ConnectionString(ctx)
	require.NoError(t, err)

	opts, err := redis.ParseURL(connStr)
	require.NoError(t, err)

	return opts.Addr
}

func TestRedisClient_RoundTrip(t *testing.T) {
	addr := startRedis(t)

	client, err := NewRedisClient(RedisConfig{Addr: addr})
	require.NoError(t, err)
	defer client.Close()

	ctx := context.Background()

	require.NoError(t, client.Set(ctx, "k", []byte("v"), time.Minute))

	val, err := client.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), val)

	n, err := client.Len(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	require.NoError(t, client.Delete(ctx, "k"))
	_, err = client.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestRedisClient_TTLExpiry(t *testing.T) {
	addr := startRedis(t)

	client, err := NewRedisClient(RedisConfig{Addr: addr})
	require.NoError(t, err)
	defer client.Close()

	ctx := context.Background()

	require.NoError(t, client.Set(ctx, "short", []byte("v"), 100*time.Millisecond))
	time.Sleep(300 * time.Millisecond)

	_, err = client.Get(ctx, "short")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestRedisClient_PrefixIsolation(t *testing.T) {
	addr := startRedis(t)

	a, err := NewRedisClient(RedisConfig{Addr: addr, Prefix: "a:"})
	require.NoError(t, err)
	defer a.Close()

	b, err := NewRedisClient(RedisConfig{Addr: addr, Prefix: "b:"})
	require.NoError(t, err)
	defer b.Close()

	ctx := context.Background()
	require.NoError(t, a.Set(ctx, "k", []byte("v"), time.Minute))

	_, err = b.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrCacheMiss, "prefixes must isolate keyspaces")
}
