package sqlite_test

import (
	"context"
	"sync"
	"testing"

	"github.com/fwojciec/definer"
	"github.com/fwojciec/definer/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *sqlite.DB {
	t.Helper()
	db := sqlite.NewDB(":memory:")
	require.NoError(t, db.Open())
	t.Cleanup(func() { db.Close() })
	return db
}

func TestStore_Get(t *testing.T) {
	t.Parallel()

	t.Run("returns stored value", func(t *testing.T) {
		t.Parallel()

		store := sqlite.NewStore(setupTestDB(t))
		ctx := context.Background()

		require.NoError(t, store.Set(ctx, "word:dog", `{"last_updated":1}`))

		value, err := store.Get(ctx, "word:dog")
		require.NoError(t, err)
		assert.Equal(t, `{"last_updated":1}`, value)
	})

	t.Run("returns ENOTFOUND for missing key", func(t *testing.T) {
		t.Parallel()

		store := sqlite.NewStore(setupTestDB(t))

		_, err := store.Get(context.Background(), "word:missing")
		require.Error(t, err)
		assert.Equal(t, definer.ENOTFOUND, definer.ErrorCode(err))
	})

	t.Run("does not return counters as values", func(t *testing.T) {
		t.Parallel()

		store := sqlite.NewStore(setupTestDB(t))
		ctx := context.Background()

		_, err := store.Incr(ctx, "lookups:dog")
		require.NoError(t, err)

		_, err = store.Get(ctx, "lookups:dog")
		assert.Equal(t, definer.ENOTFOUND, definer.ErrorCode(err))
	})
}

func TestStore_Set(t *testing.T) {
	t.Parallel()

	t.Run("replaces existing value", func(t *testing.T) {
		t.Parallel()

		store := sqlite.NewStore(setupTestDB(t))
		ctx := context.Background()

		require.NoError(t, store.Set(ctx, "word:dog", "old"))
		require.NoError(t, store.Set(ctx, "word:dog", "new"))

		value, err := store.Get(ctx, "word:dog")
		require.NoError(t, err)
		assert.Equal(t, "new", value)
	})

	t.Run("records value hash", func(t *testing.T) {
		t.Parallel()

		store := sqlite.NewStore(setupTestDB(t))
		ctx := context.Background()

		require.NoError(t, store.Set(ctx, "word:dog", "one"))
		first, err := store.FindEntry(ctx, "word:dog")
		require.NoError(t, err)

		require.NoError(t, store.Set(ctx, "word:dog", "one"))
		same, err := store.FindEntry(ctx, "word:dog")
		require.NoError(t, err)

		require.NoError(t, store.Set(ctx, "word:dog", "two"))
		changed, err := store.FindEntry(ctx, "word:dog")
		require.NoError(t, err)

		assert.Len(t, first.Hash, 16)
		assert.Equal(t, first.Hash, same.Hash)
		assert.Equal(t, first.UpdatedAt, same.UpdatedAt)
		assert.NotEqual(t, first.Hash, changed.Hash)
		assert.False(t, changed.UpdatedAt.IsZero())
	})

	t.Run("returns EINVALID for empty key", func(t *testing.T) {
		t.Parallel()

		store := sqlite.NewStore(setupTestDB(t))

		err := store.Set(context.Background(), "", "value")
		assert.Equal(t, definer.EINVALID, definer.ErrorCode(err))
	})
}

func TestStore_Exists(t *testing.T) {
	t.Parallel()

	t.Run("reports presence of value", func(t *testing.T) {
		t.Parallel()

		store := sqlite.NewStore(setupTestDB(t))
		ctx := context.Background()

		exists, err := store.Exists(ctx, "word:dog")
		require.NoError(t, err)
		assert.False(t, exists)

		require.NoError(t, store.Set(ctx, "word:dog", "{}"))

		exists, err = store.Exists(ctx, "word:dog")
		require.NoError(t, err)
		assert.True(t, exists)
	})
}

func TestStore_Incr(t *testing.T) {
	t.Parallel()

	t.Run("starts missing counters at zero", func(t *testing.T) {
		t.Parallel()

		store := sqlite.NewStore(setupTestDB(t))
		ctx := context.Background()

		n, err := store.Count(ctx, "lookups:dog")
		require.NoError(t, err)
		assert.Equal(t, int64(0), n)

		n, err = store.Incr(ctx, "lookups:dog")
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)

		n, err = store.Incr(ctx, "lookups:dog")
		require.NoError(t, err)
		assert.Equal(t, int64(2), n)
	})

	t.Run("counts concurrent increments", func(t *testing.T) {
		t.Parallel()

		store := sqlite.NewStore(setupTestDB(t))
		ctx := context.Background()

		var wg sync.WaitGroup
		for range 20 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := store.Incr(ctx, "lookups:dog")
				assert.NoError(t, err)
			}()
		}
		wg.Wait()

		n, err := store.Count(ctx, "lookups:dog")
		require.NoError(t, err)
		assert.Equal(t, int64(20), n)
	})

	t.Run("keeps counters independent", func(t *testing.T) {
		t.Parallel()

		store := sqlite.NewStore(setupTestDB(t))
		ctx := context.Background()

		_, err := store.Incr(ctx, "lookups:dog")
		require.NoError(t, err)

		n, err := store.Count(ctx, "lookups:cat")
		require.NoError(t, err)
		assert.Equal(t, int64(0), n)
	})
}

func TestStore_CountEntries(t *testing.T) {
	t.Parallel()

	t.Run("counts entries by key prefix", func(t *testing.T) {
		t.Parallel()

		store := sqlite.NewStore(setupTestDB(t))
		ctx := context.Background()

		require.NoError(t, store.Set(ctx, "word:dog", "{}"))
		require.NoError(t, store.Set(ctx, "word:cat", "{}"))
		require.NoError(t, store.Set(ctx, "other:x", "{}"))

		n, err := store.CountEntries(ctx, "word:")
		require.NoError(t, err)
		assert.Equal(t, 2, n)
	})
}

func TestStore_FindEntry(t *testing.T) {
	t.Parallel()

	t.Run("returns ENOTFOUND for missing key", func(t *testing.T) {
		t.Parallel()

		_, err := sqlite.NewStore(setupTestDB(t)).FindEntry(context.Background(), "word:missing")
		assert.Equal(t, definer.ENOTFOUND, definer.ErrorCode(err))
	})
}

func BenchmarkStore_Set(b *testing.B) {
	db := sqlite.NewDB(":memory:")
	if err := db.Open(); err != nil {
		b.Fatal(err)
	}
	defer db.Close()

	store := sqlite.NewStore(db)
	ctx := context.Background()

	for i := 0; b.Loop(); i++ {
		if err := store.Set(ctx, "word:dog", string(rune('a'+i%26))); err != nil {
			b.Fatal(err)
		}
	}
}
