package config

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"webdir/internal/ports"
)

func TestDataDir(t *testing.T) {
	t.Run("env override", func(t *testing.T) {
		t.Setenv(EnvDataDir, "/tmp/webdir-test")
		assert.Equal(t, "/tmp/webdir-test", DataDir())
	})

	t.Run("xdg default", func(t *testing.T) {
		t.Setenv(EnvDataDir, "")
		t.Setenv("XDG_DATA_HOME", "/tmp/xdg")
		assert.Equal(t, filepath.Join("/tmp/xdg", "webdir"), DataDir())
	})

	t.Run("home expansion", func(t *testing.T) {
		home, err := os.UserHomeDir()
		require.NoError(t, err)
		t.Setenv(EnvDataDir, "~/webdir")
		assert.Equal(t, filepath.Join(home, "webdir"), DataDir())
	})
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"":      slog.LevelInfo,
		"debug": slog.LevelDebug,
		"WARN":  slog.LevelWarn,
		"error": slog.LevelError,
		"loud":  slog.LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), "ParseLevel(%q)", in)
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv(EnvCache, "")
	t.Setenv(EnvSeed, "")
	t.Setenv(EnvLogLevel, "")

	cfg := Load()
	assert.Equal(t, CacheSQLite, cfg.Cache)
	assert.Empty(t, cfg.Seed)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
}

func TestOpenCache(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)

	for _, backend := range []string{CacheSQLite, CacheDiskv} {
		t.Run(backend, func(t *testing.T) {
			cfg := Config{DataDir: t.TempDir(), Cache: backend}
			cache, err := cfg.OpenCache(logger)
			require.NoError(t, err)
			t.Cleanup(func() { cache.Close() })

			require.NoError(t, cache.Set(ports.KeyTheme, "light"))
			got, ok, err := cache.Get(ports.KeyTheme)
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, "light", got)
		})
	}

	t.Run("unknown backend", func(t *testing.T) {
		cfg := Config{DataDir: t.TempDir(), Cache: "redis"}
		_, err := cfg.OpenCache(logger)
		assert.ErrorContains(t, err, "unknown cache backend")
	})
}

func TestSeedSource(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)
	ctx := context.Background()

	t.Run("embedded default", func(t *testing.T) {
		entries, err := Config{}.SeedSource(logger).Fetch(ctx)
		require.NoError(t, err)
		assert.NotEmpty(t, entries)
	})

	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "seed.json")
		doc := `{"websites":[{"name":"Go","description":"d","url":"https://go.dev","category":"Docs"}]}`
		require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

		entries, err := Config{Seed: path}.SeedSource(logger).Fetch(ctx)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "Go", entries[0].Name)
	})

	t.Run("http", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"websites":[{"name":"A","url":"https://a.dev","category":"X"}]}`))
		}))
		t.Cleanup(srv.Close)

		entries, err := Config{Seed: srv.URL}.SeedSource(logger).Fetch(ctx)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "A", entries[0].Name)
	})
}

func TestOpenLogFile(t *testing.T) {
	cfg := Config{DataDir: filepath.Join(t.TempDir(), "nested")}

	f, err := cfg.OpenLogFile()
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })

	assert.Equal(t, filepath.Join(cfg.DataDir, LogFileName), f.Name())
}
