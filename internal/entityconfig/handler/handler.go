// Package handler serves the entity-type configuration resource.
package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"filings-gateway/internal/entity"
	"filings-gateway/internal/entityconfig"
	dErrors "filings-gateway/pkg/domain-errors"
	"filings-gateway/pkg/platform/httputil"
	"filings-gateway/pkg/requestcontext"
)

// Handler serves configuration lookups. The resource is static, so the
// handler has no service layer behind it.
type Handler struct {
	logger *slog.Logger
}

// New constructs the configuration handler.
func New(logger *slog.Logger) *Handler {
	return &Handler{logger: logger}
}

// Register mounts the configuration endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/entities/{legalType}/config", h.HandleConfig)
	r.Post("/entities/{legalType}/director-warnings", h.HandleDirectorWarnings)
}

// HandleConfig handles GET /entities/{legalType}/config.
func (h *Handler) HandleConfig(w http.ResponseWriter, r *http.Request) {
	legalType, err := entity.ParseType(chi.URLParam(r, "legalType"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	cfg, err := entityconfig.For(legalType)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, cfg)
}

// HandleDirectorWarnings handles POST /entities/{legalType}/director-warnings.
func (h *Handler) HandleDirectorWarnings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	legalType, err := entity.ParseType(chi.URLParam(r, "legalType"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	if _, err := entityconfig.For(legalType); err != nil {
		httputil.WriteError(w, err)
		return
	}

	req, ok := httputil.DecodeAndPrepare[DirectorWarningsRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	warning := entityconfig.DirectorWarning(legalType, req.Directors)
	httputil.WriteJSON(w, http.StatusOK, DirectorWarningsResponse{Warning: warning})
}

// DirectorWarningsRequest is the HTTP request for POST .../director-warnings.
type DirectorWarningsRequest struct {
	Directors []entityconfig.Director `json:"directors"`
}

// Validate rejects a missing directors field; an explicit empty list is a
// legitimate query (it asks about the minimum-count requirement).
func (r *DirectorWarningsRequest) Validate() error {
	if r.Directors == nil {
		return dErrors.New(dErrors.CodeValidation, "directors is required")
	}
	return nil
}

// DirectorWarningsResponse is the HTTP response for POST .../director-warnings.
// Warning is null when every requirement passes.
type DirectorWarningsResponse struct {
	Warning *entityconfig.Warning `json:"warning"`
}
