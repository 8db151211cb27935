package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"filings-gateway/internal/entityconfig"
)

func newTestRouter(t *testing.T) chi.Router {
	t.Helper()
	h := New(slog.New(slog.NewTextHandler(io.Discard, nil)))
	r := chi.NewRouter()
	h.Register(r)
	return r
}

func TestHandleConfig(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/entities/BEN/config", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var cfg entityconfig.Config
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cfg))
	assert.Equal(t, "BC Benefit Company", cfg.DisplayName)
	assert.NotEmpty(t, cfg.Flows)
}

func TestHandleConfig_UnknownType(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/entities/XX/config", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleDirectorWarnings(t *testing.T) {
	r := newTestRouter(t)

	body := `{"directors":[{"deliveryAddress":{"addressRegion":"ON","addressCountry":"CA"},"mailingAddress":{"addressRegion":"ON","addressCountry":"CA"}}]}`
	req := httptest.NewRequest(http.MethodPost, "/entities/CP/director-warnings", strings.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp DirectorWarningsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Warning)
	assert.Equal(t, "BC Resident Director Required", resp.Warning.Title)
}

func TestHandleDirectorWarnings_NoWarning(t *testing.T) {
	r := newTestRouter(t)

	body := `{"directors":[{"deliveryAddress":{"addressRegion":"BC","addressCountry":"CA"},"mailingAddress":{"addressRegion":"BC","addressCountry":"CA"}}]}`
	req := httptest.NewRequest(http.MethodPost, "/entities/BEN/director-warnings", strings.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp DirectorWarningsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Nil(t, resp.Warning)
}

func TestHandleDirectorWarnings_MissingDirectors(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/entities/BEN/director-warnings", strings.NewReader(`{}`))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
