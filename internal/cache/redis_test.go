package cache

import (
	"context"
	"errors"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func restoreRedis() {
	redisNewClient = func(o *redis.Options) Cache { return redis.NewClient(o) }
}

func TestNewRedisClient(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		t.Cleanup(restoreRedis)
		var opts *redis.Options
		stub := &FakeCache{PingFn: func(context.Context) *redis.StatusCmd { return redis.NewStatusResult("PONG", nil) }}
		redisNewClient = func(o *redis.Options) Cache {
			opts = o
			return stub
		}

		c, err := NewRedisClient("127.0.0.1:6379", "secret", 1)
		require.NoError(t, err)
		require.Same(t, stub, c)
		require.Equal(t, "127.0.0.1:6379", opts.Addr)
		require.Equal(t, "secret", opts.Password)
		require.Equal(t, 1, opts.DB)
	})

	t.Run("ping fail closes client", func(t *testing.T) {
		t.Cleanup(restoreRedis)
		closed := false
		redisNewClient = func(*redis.Options) Cache {
			return &FakeCache{
				PingFn:  func(context.Context) *redis.StatusCmd { return redis.NewStatusResult("", errors.New("fail")) },
				CloseFn: func() error { closed = true; return nil },
			}
		}

		c, err := NewRedisClient("addr", "", 0)
		require.Error(t, err)
		require.Nil(t, c)
		require.True(t, closed)
	})
}
