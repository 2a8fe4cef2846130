package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	webhttp "webdir/internal/adapters/http"
)

func TestSeedSource_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("decodes websites list", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"websites":[{"name":"Go","description":"The Go language","url":"https://go.dev","category":"Docs"}]}`))
		}))
		defer server.Close()

		entries, err := webhttp.NewSeedSource(server.URL + "/web.json").Fetch(context.Background())
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "Go", entries[0].Name)
		assert.Equal(t, "https://go.dev", entries[0].URL)
		assert.Equal(t, "Docs", entries[0].Category)
	})

	t.Run("returns error on non-200 status", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		_, err := webhttp.NewSeedSource(server.URL).Fetch(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "404")
	})

	t.Run("returns error on malformed body", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("<html>not json</html>"))
		}))
		defer server.Close()

		_, err := webhttp.NewSeedSource(server.URL).Fetch(context.Background())
		require.Error(t, err)
	})

	t.Run("respects custom timeout option", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(100 * time.Millisecond)
			_, _ = w.Write([]byte(`{"websites":[]}`))
		}))
		defer server.Close()

		source := webhttp.NewSeedSource(server.URL, webhttp.WithTimeout(10*time.Millisecond))
		_, err := source.Fetch(context.Background())
		require.Error(t, err)
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(100 * time.Millisecond)
			_, _ = w.Write([]byte(`{"websites":[]}`))
		}))
		defer server.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := webhttp.NewSeedSource(server.URL).Fetch(ctx)
		require.Error(t, err)
	})
}
