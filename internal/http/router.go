// Package httpapi assembles the HTTP surface: middleware chain, domain
// handlers, health probes, and the metrics endpoint.
package httpapi

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"filings-gateway/pkg/platform/audit"
	"filings-gateway/pkg/platform/httputil"
	"filings-gateway/pkg/platform/middleware/admin"
	"filings-gateway/pkg/platform/middleware/auth"
	"filings-gateway/pkg/platform/middleware/metadata"
	"filings-gateway/pkg/platform/middleware/request"
	"filings-gateway/pkg/platform/middleware/requesttime"
	"filings-gateway/pkg/platform/middleware/routename"
)

// Registrar is the common shape of the domain handlers: each mounts its own
// routes on the router.
type Registrar interface {
	Register(r chi.Router)
}

// AuditArchive reads audit events back for staff review. Optional: only the
// postgres audit sink provides one.
type AuditArchive interface {
	ListByBusiness(ctx context.Context, businessID string, limit int) ([]audit.Event, error)
}

// Deps carries everything the router mounts.
type Deps struct {
	Logger         *slog.Logger
	TokenValidator auth.TokenValidator

	// AdminKeyHash gates the admin routes; empty disables them.
	AdminKeyHash string

	Public      []Registrar
	AdminRoutes []Registrar

	// Archive enables GET /admin/businesses/{identifier}/audit-events.
	Archive AuditArchive

	// Ready reports whether downstream dependencies are reachable.
	Ready func(ctx context.Context) error
}

// NewRouter builds the chi router with the full middleware chain.
func NewRouter(deps Deps) chi.Router {
	r := chi.NewRouter()

	r.Use(request.Middleware)
	r.Use(requesttime.Middleware)
	r.Use(metadata.ClientMetadata)
	r.Use(routename.Middleware)
	r.Use(auth.IdentifyRoles(deps.TokenValidator, deps.Logger))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Get("/readyz", func(w http.ResponseWriter, req *http.Request) {
		if deps.Ready != nil {
			if err := deps.Ready(req.Context()); err != nil {
				deps.Logger.WarnContext(req.Context(), "readiness check failed", "error", err)
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
	})
	r.Handle("/metrics", promhttp.Handler())

	for _, reg := range deps.Public {
		reg.Register(r)
	}

	if deps.AdminKeyHash != "" {
		r.Group(func(g chi.Router) {
			g.Use(admin.RequireAdminKey(deps.AdminKeyHash, deps.Logger))
			for _, reg := range deps.AdminRoutes {
				reg.Register(g)
			}
			if deps.Archive != nil {
				g.Get("/admin/businesses/{identifier}/audit-events", auditEventsHandler(deps.Archive))
			}
		})
	}

	return r
}

func auditEventsHandler(archive AuditArchive) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identifier := chi.URLParam(r, "identifier")
		events, err := archive.ListByBusiness(r.Context(), identifier, 100)
		if err != nil {
			httputil.WriteError(w, err)
			return
		}
		httputil.WriteJSON(w, http.StatusOK, map[string]any{
			"business_id": identifier,
			"events":      events,
		})
	}
}
