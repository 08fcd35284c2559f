package kvstore_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"jobify-backend/pkg/kvstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStores(t *testing.T) {
	file, err := kvstore.NewFile(t.TempDir())
	require.NoError(t, err)

	stores := map[string]kvstore.Store{
		"memory": kvstore.NewMemory(),
		"file":   file,
	}

	for name, store := range stores {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			_, found, err := store.Get(ctx, "jobify_jobs")
			require.NoError(t, err)
			assert.False(t, found)

			require.NoError(t, store.Set(ctx, "jobify_jobs", `[{"id":"1"}]`))
			v, found, err := store.Get(ctx, "jobify_jobs")
			require.NoError(t, err)
			assert.True(t, found)
			assert.Equal(t, `[{"id":"1"}]`, v)

			require.NoError(t, store.Set(ctx, "jobify_jobs", `[]`))
			v, _, _ = store.Get(ctx, "jobify_jobs")
			assert.Equal(t, `[]`, v)

			require.NoError(t, store.Delete(ctx, "jobify_jobs"))
			_, found, err = store.Get(ctx, "jobify_jobs")
			require.NoError(t, err)
			assert.False(t, found)

			// deleting a missing key is not an error
			assert.NoError(t, store.Delete(ctx, "jobify_jobs"))
		})
	}
}

func TestFileRejectsUnsafeKeys(t *testing.T) {
	store, err := kvstore.NewFile(t.TempDir())
	require.NoError(t, err)

	for _, key := range []string{"", ".", "..", "../escape", `a\b`, "a/b"} {
		t.Run(key, func(t *testing.T) {
			err := store.Set(context.Background(), key, "x")
			assert.ErrorIs(t, err, kvstore.ErrInvalidKey)
		})
	}
}

func TestFileLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	store, err := kvstore.NewFile(dir)
	require.NoError(t, err)

	require.NoError(t, store.Set(context.Background(), "jobify_cvs", `[]`))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "jobify_cvs.json", entries[0].Name())

	raw, err := os.ReadFile(filepath.Join(dir, "jobify_cvs.json"))
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(raw))
}
