package diskv_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"webdir/internal/adapters/diskv"
	"webdir/internal/ports"
)

func TestCache_GetSetDelete(t *testing.T) {
	t.Parallel()

	cache, err := diskv.Open(t.TempDir())
	require.NoError(t, err)
	defer cache.Close()

	_, ok, err := cache.Get(ports.KeyTheme)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, cache.Set(ports.KeyTheme, "dark"))
	require.NoError(t, cache.Set(ports.KeyTheme, "light"))

	value, ok, err := cache.Get(ports.KeyTheme)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "light", value)

	require.NoError(t, cache.Delete(ports.KeyTheme))
	require.NoError(t, cache.Delete(ports.KeyTheme))
	_, ok, err = cache.Get(ports.KeyTheme)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCache_PersistsAcrossOpen(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	first, err := diskv.Open(dir)
	require.NoError(t, err)
	require.NoError(t, first.Set(ports.KeyEntries, `[]`))

	second, err := diskv.Open(dir)
	require.NoError(t, err)
	value, ok, err := second.Get(ports.KeyEntries)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[]`, value)
}
