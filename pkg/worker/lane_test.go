package worker_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lareferencia/harvester/pkg/worker"
)

func TestMemoryLaneController(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("caps concurrent permits per lane", func(t *testing.T) {
		c := worker.NewMemoryLaneController(2)

		first, err := c.Acquire(ctx, "validation")
		require.NoError(t, err)
		_, err = c.Acquire(ctx, "validation")
		require.NoError(t, err)

		_, err = c.Acquire(ctx, "validation")
		require.ErrorIs(t, err, worker.ErrLaneSaturated)

		require.NoError(t, first.Release(ctx))
		_, err = c.Acquire(ctx, "validation")
		require.NoError(t, err)
	})

	t.Run("lanes are independent", func(t *testing.T) {
		c := worker.NewMemoryLaneController(1)

		_, err := c.Acquire(ctx, "validation")
		require.NoError(t, err)

		_, err = c.Acquire(ctx, "download")
		require.NoError(t, err)
	})

	t.Run("release is idempotent", func(t *testing.T) {
		c := worker.NewMemoryLaneController(1)

		p, err := c.Acquire(ctx, "validation")
		require.NoError(t, err)

		require.NoError(t, p.Release(ctx))
		require.NoError(t, p.Release(ctx))

		p2, err := c.Acquire(ctx, "validation")
		require.NoError(t, err)

		// A double release must not have freed a second slot.
		_, err = c.Acquire(ctx, "validation")
		assert.ErrorIs(t, err, worker.ErrLaneSaturated)
		require.NoError(t, p2.Release(ctx))
	})
}
