package redis_test

import (
	"context"
	"net"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/lareferencia/harvester/pkg/redis"
)

// refusedAddr returns an address nothing listens on.
func refusedAddr(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())
	return addr
}

func TestConnect(t *testing.T) {
	t.Parallel()

	t.Run("malformed URL", func(t *testing.T) {
		cfg := redis.Config{
			ConnectionURL:  "not-a-redis-url",
			RetryAttempts:  1,
			RetryInterval:  time.Millisecond,
			ConnectTimeout: time.Second,
		}
		_, err := redis.Connect(context.Background(), cfg)
		require.ErrorIs(t, err, redis.ErrFailedToParseRedisConnString)
	})

	t.Run("gives up after the configured retries", func(t *testing.T) {
		cfg := redis.Config{
			ConnectionURL:  "redis://" + refusedAddr(t),
			RetryAttempts:  2,
			RetryInterval:  time.Millisecond,
			ConnectTimeout: 5 * time.Second,
		}
		_, err := redis.Connect(context.Background(), cfg)
		require.ErrorIs(t, err, redis.ErrRedisNotReady)
	})
}

func TestHealthcheckReportsUnreachableServer(t *testing.T) {
	t.Parallel()

	client := goredis.NewClient(&goredis.Options{Addr: refusedAddr(t)})
	t.Cleanup(func() { _ = client.Close() })

	err := redis.Healthcheck(client)(context.Background())
	require.ErrorIs(t, err, redis.ErrHealthcheckFailed)
}
