package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollection(t *testing.T) {
	t.Run("empty on creation", func(t *testing.T) {
		coll := New[string]()
		records, err := coll.List(context.Background())
		require.NoError(t, err)
		assert.NotNil(t, records)
		assert.Empty(t, records)
	})

	t.Run("preserves insertion order", func(t *testing.T) {
		coll := New[string]()
		ctx := context.Background()

		for _, s := range []string{"c", "a", "b"} {
			require.NoError(t, coll.Append(ctx, s))
		}

		records, err := coll.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"c", "a", "b"}, records)

		n, err := coll.Len(ctx)
		require.NoError(t, err)
		assert.Equal(t, 3, n)
	})

	t.Run("list returns a snapshot", func(t *testing.T) {
		coll := New[string]()
		ctx := context.Background()
		require.NoError(t, coll.Append(ctx, "a"))

		records, _ := coll.List(ctx)
		records[0] = "mutated"

		again, _ := coll.List(ctx)
		assert.Equal(t, "a", again[0])
	})

	t.Run("duplicates are kept", func(t *testing.T) {
		coll := New[string]()
		ctx := context.Background()
		require.NoError(t, coll.Append(ctx, "same"))
		require.NoError(t, coll.Append(ctx, "same"))

		n, _ := coll.Len(ctx)
		assert.Equal(t, 2, n)
	})

	t.Run("cancelled context", func(t *testing.T) {
		coll := New[string]()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		assert.ErrorIs(t, coll.Append(ctx, "a"), context.Canceled)
		_, err := coll.List(ctx)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestCollection_ConcurrentAppend(t *testing.T) {
	coll := New[string]()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			coll.Append(ctx, fmt.Sprintf("record-%d", i))
		}(i)
	}
	wg.Wait()

	n, err := coll.Len(ctx)
	require.NoError(t, err)
	assert.Equal(t, 50, n)
}
