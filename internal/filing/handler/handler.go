// Package handler wires the draft filing-data endpoints to the filing
// service.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"filings-gateway/internal/filing"
	"filings-gateway/internal/filing/service"
	dErrors "filings-gateway/pkg/domain-errors"
	"filings-gateway/pkg/platform/httputil"
	"filings-gateway/pkg/requestcontext"
)

// Service defines the filing-data operations the handler needs.
type Service interface {
	Update(ctx context.Context, businessID string, op service.UpdateOp) ([]filing.Entry, error)
	Get(ctx context.Context, businessID string) ([]filing.Entry, error)
	Clear(ctx context.Context, businessID string) error
}

// Handler serves the draft filing-data endpoints.
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

// Register mounts the filing-data endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Put("/businesses/{identifier}/filing-data", h.HandleUpdate)
	r.Get("/businesses/{identifier}/filing-data", h.HandleGet)
	r.Delete("/businesses/{identifier}/filing-data", h.HandleClear)
}

// UpdateRequest is the HTTP request for PUT .../filing-data.
type UpdateRequest struct {
	Action     string `json:"action"`
	FilingCode string `json:"filingCode,omitempty"`
	Priority   *bool  `json:"priority,omitempty"`
	WaiveFees  *bool  `json:"waiveFees,omitempty"`
}

// Validate checks the update action.
func (r *UpdateRequest) Validate() error {
	switch filing.UpdateAction(r.Action) {
	case filing.ActionAdd, filing.ActionRemove:
		return nil
	default:
		return dErrors.New(dErrors.CodeValidation, "action must be add or remove")
	}
}

// EntriesResponse is the HTTP response carrying a draft entry set.
type EntriesResponse struct {
	BusinessID string         `json:"business_id"`
	Entries    []filing.Entry `json:"entries"`
}

// HandleUpdate handles PUT /businesses/{identifier}/filing-data.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	identifier := chi.URLParam(r, "identifier")

	req, ok := httputil.DecodeAndPrepare[UpdateRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	entries, err := h.service.Update(ctx, identifier, service.UpdateOp{
		Action:     filing.UpdateAction(req.Action),
		FilingCode: req.FilingCode,
		Priority:   req.Priority,
		WaiveFees:  req.WaiveFees,
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "filing data update failed",
			"request_id", requestID,
			"business_id", identifier,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, EntriesResponse{
		BusinessID: identifier,
		Entries:    entries,
	})
}

// HandleGet handles GET /businesses/{identifier}/filing-data.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	identifier := chi.URLParam(r, "identifier")

	entries, err := h.service.Get(ctx, identifier)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, EntriesResponse{
		BusinessID: identifier,
		Entries:    entries,
	})
}

// HandleClear handles DELETE /businesses/{identifier}/filing-data.
func (h *Handler) HandleClear(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	identifier := chi.URLParam(r, "identifier")

	if err := h.service.Clear(ctx, identifier); err != nil {
		httputil.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
