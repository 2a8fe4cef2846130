package filesystem

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedSource_Fetch(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"seed.json": {Data: []byte(`{"websites":[{"name":"Go","description":"","url":"https://go.dev","category":"Docs"}]}`)},
		"bad.json":  {Data: []byte(`[1,2,3]`)},
	}

	t.Run("reads entries", func(t *testing.T) {
		t.Parallel()

		entries, err := NewSeedSource(fsys, "seed.json").Fetch(context.Background())
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "Go", entries[0].Name)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := NewSeedSource(fsys, "nope.json").Fetch(context.Background())
		require.Error(t, err)
	})

	t.Run("wrong shape", func(t *testing.T) {
		t.Parallel()

		_, err := NewSeedSource(fsys, "bad.json").Fetch(context.Background())
		require.Error(t, err)
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := NewSeedSource(fsys, "seed.json").Fetch(ctx)
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestFileSeedSource(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "web.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"websites":[]}`), 0o644))

	entries, err := NewFileSeedSource(path).Fetch(context.Background())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestDefaultSeedSource(t *testing.T) {
	t.Parallel()

	entries, err := NewDefaultSeedSource().Fetch(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, entries)
	for _, e := range entries {
		assert.NotEmpty(t, e.Name)
		assert.NotEmpty(t, e.URL)
		assert.NotEmpty(t, e.Category)
	}
}
