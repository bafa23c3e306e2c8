package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func TestFakeCache(t *testing.T) {
	ctx := context.Background()
	c := &FakeCache{}
	require.Panics(t, func() { c.Get(ctx, "k") })
	require.Panics(t, func() { c.Set(ctx, "k", 1, 0) })
	require.Panics(t, func() { c.Del(ctx, "k") })
	require.Panics(t, func() { c.Ping(ctx) })
	require.NoError(t, c.Close())

	var deleted []string
	c.GetFn = func(context.Context, string) *redis.StringCmd { return redis.NewStringResult("v", nil) }
	c.SetFn = func(context.Context, string, any, time.Duration) *redis.StatusCmd { return redis.NewStatusResult("OK", nil) }
	c.DelFn = func(_ context.Context, keys ...string) *redis.IntCmd {
		deleted = append(deleted, keys...)
		return redis.NewIntResult(int64(len(keys)), nil)
	}
	c.PingFn = func(context.Context) *redis.StatusCmd { return redis.NewStatusResult("PONG", nil) }
	c.CloseFn = func() error { return errors.New("close") }

	require.Equal(t, "v", c.Get(ctx, "k").Val())
	require.Equal(t, "OK", c.Set(ctx, "k", 1, 0).Val())
	require.EqualValues(t, 2, c.Del(ctx, "a", "b").Val())
	require.Equal(t, []string{"a", "b"}, deleted)
	require.Equal(t, "PONG", c.Ping(ctx).Val())
	require.EqualError(t, c.Close(), "close")
}

func TestMemoryCache(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()

	_, err := c.Get(ctx, "session:x").Result()
	require.ErrorIs(t, err, redis.Nil)

	require.NoError(t, c.Set(ctx, "session:x", []byte(`{"user_id":1}`), time.Hour).Err())
	require.NoError(t, c.Set(ctx, "plain", "v", 0).Err())
	require.Error(t, c.Set(ctx, "bad", 42, 0).Err())

	v, err := c.Get(ctx, "session:x").Result()
	require.NoError(t, err)
	require.Equal(t, `{"user_id":1}`, v)

	require.EqualValues(t, 1, c.Del(ctx, "session:x", "missing").Val())
	_, err = c.Get(ctx, "session:x").Result()
	require.ErrorIs(t, err, redis.Nil)
	require.NoError(t, c.Ping(ctx).Err())
}
