package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"filings-gateway/internal/allowable"
	allowablehandler "filings-gateway/internal/allowable/handler"
	"filings-gateway/internal/entity"
	entityhandler "filings-gateway/internal/entity/handler"
	entitystore "filings-gateway/internal/entity/store"
	filinghandler "filings-gateway/internal/filing/handler"
	filingservice "filings-gateway/internal/filing/service"
	filingstore "filings-gateway/internal/filing/store"
	"filings-gateway/internal/flags"
	"filings-gateway/internal/jwttoken"
	"filings-gateway/pkg/platform/audit"
)

func buildRouter(t *testing.T, ready func(context.Context) error) (http.Handler, *jwttoken.JWTService) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	jwtService := jwttoken.NewJWTService("test-key", "filings-gateway", "business-registry")

	businesses := entitystore.NewMemory()
	require.NoError(t, businesses.Save(context.Background(), &entity.Business{
		Identifier:   "BC1234567",
		LegalType:    entity.TypeBenefitCompany,
		State:        entity.StateActive,
		GoodStanding: true,
	}))
	drafts := filingstore.NewMemory()

	gate := flags.NewGate()
	gate.Init(context.Background(), nil)

	sink := audit.NewMemoryPublisher()

	resolver, err := allowable.NewService(businesses, drafts, gate, allowable.WithAudit(sink), allowable.WithLogger(logger))
	require.NoError(t, err)
	filingSvc, err := filingservice.NewService(businesses, drafts, filingservice.WithLogger(logger))
	require.NoError(t, err)

	hash, err := bcrypt.GenerateFromPassword([]byte("letmein"), bcrypt.MinCost)
	require.NoError(t, err)

	router := NewRouter(Deps{
		Logger:         logger,
		TokenValidator: jwttoken.NewValidator(jwtService),
		AdminKeyHash:   string(hash),
		Public: []Registrar{
			allowablehandler.New(resolver, logger),
			filinghandler.New(filingSvc, logger),
		},
		AdminRoutes: []Registrar{
			entityhandler.New(businesses, sink, logger),
		},
		Ready: ready,
	})
	return router, jwtService
}

func TestRouter_HealthAndReady(t *testing.T) {
	router, _ := buildRouter(t, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_ReadyFailure(t *testing.T) {
	router, _ := buildRouter(t, func(context.Context) error {
		return errors.New("postgres unreachable")
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestRouter_AnonymousResolve(t *testing.T) {
	router, _ := buildRouter(t, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/businesses/BC1234567/allowable-actions", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp allowablehandler.ResolveResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	// Anonymous callers get no staff actions.
	assert.Equal(t, "DENY", resp.Actions[string(allowable.ActionAddStaffComment)])
	assert.Equal(t, "ALLOW", resp.Actions[string(allowable.ActionEditBusinessProfile)])
}

func TestRouter_StaffTokenUnlocksStaffActions(t *testing.T) {
	router, jwtService := buildRouter(t, nil)

	token, err := jwtService.GenerateAccessToken("acct-1", []string{"staff"}, time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/businesses/BC1234567/allowable-actions", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp allowablehandler.ResolveResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ALLOW", resp.Actions[string(allowable.ActionAddStaffComment)])
	assert.Equal(t, "ALLOW", resp.Actions[string(allowable.ActionFileCorrection)])
}

func TestRouter_InvalidTokenFallsBackToAnonymous(t *testing.T) {
	router, _ := buildRouter(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/businesses/BC1234567/allowable-actions", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp allowablehandler.ResolveResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "DENY", resp.Actions[string(allowable.ActionAddStaffComment)])
}

func TestRouter_AdminRoutesRequireKey(t *testing.T) {
	router, _ := buildRouter(t, nil)

	body := `{"legalType":"BC","state":"ACTIVE"}`

	req := httptest.NewRequest(http.MethodPut, "/admin/businesses/BC7654321", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req = httptest.NewRequest(http.MethodPut, "/admin/businesses/BC7654321", strings.NewReader(body))
	req.Header.Set("X-Admin-Key", "letmein")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestRouter_RequestIDPropagates(t *testing.T) {
	router, _ := buildRouter(t, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.NotEmpty(t, w.Header().Get("X-Request-Id"))
}

func TestRouter_MetricsEndpoint(t *testing.T) {
	router, _ := buildRouter(t, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "go_goroutines")
}
