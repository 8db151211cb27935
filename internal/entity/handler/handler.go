// Package handler serves the admin snapshot-ingestion endpoints. Snapshots
// normally arrive from the upstream registry sync; these endpoints are the
// manual path, gated by the admin key middleware at the router.
package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"filings-gateway/internal/entity"
	"filings-gateway/internal/entity/store"
	dErrors "filings-gateway/pkg/domain-errors"
	"filings-gateway/pkg/platform/audit"
	"filings-gateway/pkg/platform/httputil"
	"filings-gateway/pkg/requestcontext"
)

// Handler serves business snapshot ingestion.
type Handler struct {
	store  store.Store
	audit  audit.Publisher
	logger *slog.Logger
}

// New constructs the snapshot handler.
func New(s store.Store, publisher audit.Publisher, logger *slog.Logger) *Handler {
	return &Handler{
		store:  s,
		audit:  publisher,
		logger: logger,
	}
}

// Register mounts the snapshot endpoints on the router. The caller is
// expected to mount these behind the admin key middleware.
func (h *Handler) Register(r chi.Router) {
	r.Put("/admin/businesses/{identifier}", h.HandleUpsert)
	r.Delete("/admin/businesses/{identifier}", h.HandleDelete)
}

// SnapshotRequest is the HTTP request for PUT /admin/businesses/{identifier}.
type SnapshotRequest struct {
	LegalType      string                 `json:"legalType"`
	State          string                 `json:"state"`
	GoodStanding   bool                   `json:"goodStanding"`
	AdminFreeze    bool                   `json:"adminFreeze"`
	PendingTasks   int                    `json:"pendingTasks"`
	PendingFilings []entity.PendingFiling `json:"pendingFilings,omitempty"`

	legalType entity.Type
	state     entity.State
}

// Validate parses the legal type and state.
func (r *SnapshotRequest) Validate() error {
	legalType, err := entity.ParseType(r.LegalType)
	if err != nil {
		return err
	}
	state, err := entity.ParseState(r.State)
	if err != nil {
		return err
	}
	if r.PendingTasks < 0 {
		return dErrors.New(dErrors.CodeValidation, "pendingTasks must not be negative")
	}
	r.legalType = legalType
	r.state = state
	return nil
}

// HandleUpsert handles PUT /admin/businesses/{identifier}.
func (h *Handler) HandleUpsert(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	identifier := chi.URLParam(r, "identifier")

	req, ok := httputil.DecodeAndPrepare[SnapshotRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	business := &entity.Business{
		Identifier:     identifier,
		LegalType:      req.legalType,
		State:          req.state,
		GoodStanding:   req.GoodStanding,
		AdminFreeze:    req.AdminFreeze,
		PendingTasks:   req.PendingTasks,
		PendingFilings: req.PendingFilings,
		UpdatedAt:      requestcontext.Now(ctx),
	}

	if err := h.store.Save(ctx, business); err != nil {
		h.logger.ErrorContext(ctx, "snapshot save failed",
			"request_id", requestID,
			"business_id", identifier,
			"error", err,
		)
		httputil.WriteError(w, dErrors.Wrap(err, dErrors.CodeInternal, "save business snapshot"))
		return
	}

	if err := h.audit.Emit(ctx, audit.Event{
		Category:   audit.CategoryOperations,
		Timestamp:  requestcontext.Now(ctx),
		BusinessID: identifier,
		Action:     string(audit.EventBusinessLoaded),
		RequestID:  requestID,
		ActorID:    requestcontext.AccountID(ctx),
		ClientIP:   requestcontext.ClientIP(ctx),
		Device:     requestcontext.Device(ctx),
	}); err != nil {
		h.logger.WarnContext(ctx, "audit emit failed",
			"event", audit.EventBusinessLoaded,
			"error", err,
		)
	}

	h.logger.InfoContext(ctx, "business snapshot loaded",
		"request_id", requestID,
		"business_id", identifier,
		"legal_type", req.LegalType,
		"state", req.State,
	)
	w.WriteHeader(http.StatusNoContent)
}

// HandleDelete handles DELETE /admin/businesses/{identifier}.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	identifier := chi.URLParam(r, "identifier")

	if err := h.store.Delete(ctx, identifier); err != nil {
		httputil.WriteError(w, dErrors.Wrap(err, dErrors.CodeInternal, "delete business snapshot"))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
