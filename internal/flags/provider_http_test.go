package flags

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPProviderFetch(t *testing.T) {
	t.Run("decodes a flat flag document", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{
				"enable-digital-credentials": true,
				"supported-dissolution-entities": ["BEN", "CP"],
				"banner-text": "maintenance at noon"
			}`))
		}))
		defer srv.Close()

		p := NewHTTPProvider(srv.URL, time.Second)
		set, err := p.Fetch(context.Background())
		require.NoError(t, err)

		assert.Equal(t, true, set["enable-digital-credentials"])
		assert.Equal(t, "maintenance at noon", set["banner-text"])
	})

	t.Run("non-200 is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer srv.Close()

		p := NewHTTPProvider(srv.URL, time.Second)
		_, err := p.Fetch(context.Background())
		assert.Error(t, err)
	})

	t.Run("timeout surfaces as an error, gate then keeps defaults", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
		}))
		defer srv.Close()

		p := NewHTTPProvider(srv.URL, 10*time.Millisecond)
		_, err := p.Fetch(context.Background())
		require.Error(t, err)

		g := NewGate()
		g.Init(context.Background(), p)
		assert.False(t, g.RemoteLoaded())
		assert.True(t, g.ListContains(FlagSupportedDissolutionEntities, "BEN"))
	})
}
