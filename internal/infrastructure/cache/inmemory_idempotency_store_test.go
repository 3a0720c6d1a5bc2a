package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryIdempotencyStore(t *testing.T) {
	ctx := context.Background()

	t.Run("first mark wins", func(t *testing.T) {
		store := NewInMemoryIdempotencyStore()
		defer store.Close()

		marked, err := store.MarkProcessed(ctx, "approval:abc", time.Hour)
		require.NoError(t, err)
		assert.True(t, marked)

		marked, err = store.MarkProcessed(ctx, "approval:abc", time.Hour)
		require.NoError(t, err)
		assert.False(t, marked)
	})

	t.Run("is processed reflects marks", func(t *testing.T) {
		store := NewInMemoryIdempotencyStore()
		defer store.Close()

		processed, err := store.IsProcessed(ctx, "approval:abc")
		require.NoError(t, err)
		assert.False(t, processed)

		_, err = store.MarkProcessed(ctx, "approval:abc", time.Hour)
		require.NoError(t, err)

		processed, err = store.IsProcessed(ctx, "approval:abc")
		require.NoError(t, err)
		assert.True(t, processed)
	})

	t.Run("expired entries can be re-marked", func(t *testing.T) {
		store := NewInMemoryIdempotencyStore()
		defer store.Close()

		_, err := store.MarkProcessed(ctx, "approval:abc", time.Nanosecond)
		require.NoError(t, err)
		time.Sleep(2 * time.Millisecond)

		processed, err := store.IsProcessed(ctx, "approval:abc")
		require.NoError(t, err)
		assert.False(t, processed)

		marked, err := store.MarkProcessed(ctx, "approval:abc", time.Hour)
		require.NoError(t, err)
		assert.True(t, marked)
	})

	t.Run("close is idempotent", func(t *testing.T) {
		store := NewInMemoryIdempotencyStore()
		require.NoError(t, store.Close())
		require.NoError(t, store.Close())
	})
}
