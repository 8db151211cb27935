// Package handler wires the eligibility endpoints to the resolver service.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"filings-gateway/internal/allowable"
	"filings-gateway/pkg/platform/httputil"
	"filings-gateway/pkg/requestcontext"
)

//go:generate mockgen -source=handler.go -destination=mocks/handler_mock.go -package=mocks Service

// Service defines the resolver operations the handler needs.
type Service interface {
	Resolve(ctx context.Context, businessID string) (*allowable.Report, error)
	Check(ctx context.Context, businessID string, action allowable.Action) (allowable.Outcome, error)
}

// Handler serves the allowable-action endpoints.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs the handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Register mounts the eligibility endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/businesses/{identifier}/allowable-actions", h.HandleResolve)
	r.Post("/businesses/{identifier}/allowable-actions/check", h.HandleCheck)
}

// HandleResolve handles GET /businesses/{identifier}/allowable-actions.
func (h *Handler) HandleResolve(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	identifier := chi.URLParam(r, "identifier")

	report, err := h.service.Resolve(ctx, identifier)
	if err != nil {
		h.logger.ErrorContext(ctx, "allowable-action resolution failed",
			"request_id", requestID,
			"business_id", identifier,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "allowable actions served",
		"request_id", requestID,
		"business_id", identifier,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	httputil.WriteJSON(w, http.StatusOK, FromReport(report))
}

// HandleCheck handles POST /businesses/{identifier}/allowable-actions/check.
func (h *Handler) HandleCheck(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	identifier := chi.URLParam(r, "identifier")

	req, ok := httputil.DecodeAndPrepare[CheckRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	outcome, err := h.service.Check(ctx, identifier, req.ParsedAction())
	if err != nil {
		h.logger.ErrorContext(ctx, "allowable-action check failed",
			"request_id", requestID,
			"business_id", identifier,
			"action", req.Action,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, CheckResponse{
		Action:  req.Action,
		Outcome: string(outcome),
		Allowed: outcome.Allowed(),
	})
}
