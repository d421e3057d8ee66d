package pg_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/lareferencia/harvester/pkg/pg"
)

func TestConnect(t *testing.T) {
	t.Parallel()

	t.Run("empty connection string", func(t *testing.T) {
		_, err := pg.Connect(context.Background(), pg.Config{})
		require.ErrorIs(t, err, pg.ErrEmptyConnectionString)
	})

	t.Run("malformed connection string", func(t *testing.T) {
		cfg := pg.Config{
			ConnectionString: "port=not-a-number",
			RetryAttempts:    1,
			RetryInterval:    time.Millisecond,
		}
		_, err := pg.Connect(context.Background(), cfg)
		require.ErrorIs(t, err, pg.ErrFailedToParseDBConfig)
	})
}
