// Package service applies accumulator mutations against persisted draft
// filing data. Each update loads the stored entries, replays them into an
// accumulator, applies the mutation, and writes the whole set back.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"filings-gateway/internal/entity"
	"filings-gateway/internal/filing"
	dErrors "filings-gateway/pkg/domain-errors"
	"filings-gateway/pkg/platform/audit"
	"filings-gateway/pkg/platform/sentinel"
	"filings-gateway/pkg/requestcontext"
)

// BusinessReader resolves the business a draft belongs to. New entries
// inherit the business's legal type.
type BusinessReader interface {
	FindByIdentifier(ctx context.Context, identifier string) (*entity.Business, error)
}

// DraftStore persists the accumulator entries per business.
type DraftStore interface {
	Replace(ctx context.Context, businessID string, entries []filing.Entry) error
	Load(ctx context.Context, businessID string) ([]filing.Entry, error)
	Clear(ctx context.Context, businessID string) error
}

// UpdateOp is one accumulator mutation as received from a caller.
type UpdateOp struct {
	Action     filing.UpdateAction
	FilingCode string
	Priority   *bool
	WaiveFees  *bool
}

// Service owns draft filing-data state for all businesses.
type Service struct {
	businesses BusinessReader
	drafts     DraftStore
	audit      audit.Publisher
	logger     *slog.Logger
}

// Option configures the Service.
type Option func(*Service)

// WithLogger sets the service logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithAudit sets the audit publisher.
func WithAudit(a audit.Publisher) Option {
	return func(s *Service) {
		s.audit = a
	}
}

// NewService creates the filing-data service.
func NewService(businesses BusinessReader, drafts DraftStore, opts ...Option) (*Service, error) {
	if businesses == nil {
		return nil, fmt.Errorf("business reader is required")
	}
	if drafts == nil {
		return nil, fmt.Errorf("draft store is required")
	}

	s := &Service{
		businesses: businesses,
		drafts:     drafts,
		audit:      audit.NopPublisher{},
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Update applies one mutation to a business's draft and returns the resulting
// entry set. The business must be loaded: new entries record its legal type.
func (s *Service) Update(ctx context.Context, businessID string, op UpdateOp) ([]filing.Entry, error) {
	business, err := s.businesses.FindByIdentifier(ctx, businessID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "business "+businessID+" is not loaded")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "load business snapshot")
	}

	stored, err := s.drafts.Load(ctx, businessID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "load draft filing data")
	}

	acc := filing.NewAccumulator(business.LegalType)
	acc.Restore(stored)
	acc.Update(op.Action, op.FilingCode, op.Priority, op.WaiveFees)

	entries := acc.Entries()
	if err := s.drafts.Replace(ctx, businessID, entries); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "persist draft filing data")
	}

	s.emit(ctx, businessID, audit.EventFilingDataUpdated, string(op.Action), op.FilingCode)

	s.logger.InfoContext(ctx, "filing data updated",
		"business_id", businessID,
		"action", op.Action,
		"filing_code", op.FilingCode,
		"entries", len(entries),
	)
	return entries, nil
}

// Get returns the current draft entries for a business. An unknown business
// has an empty draft.
func (s *Service) Get(ctx context.Context, businessID string) ([]filing.Entry, error) {
	entries, err := s.drafts.Load(ctx, businessID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "load draft filing data")
	}
	return entries, nil
}

// Clear abandons the draft for a business.
func (s *Service) Clear(ctx context.Context, businessID string) error {
	if err := s.drafts.Clear(ctx, businessID); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "clear draft filing data")
	}
	s.emit(ctx, businessID, audit.EventFilingDataCleared, "", "")
	return nil
}

// emit publishes an operations audit event; failures are logged, not
// propagated, since draft bookkeeping is not a compliance record.
func (s *Service) emit(ctx context.Context, businessID string, event audit.AuditEvent, decision, reason string) {
	err := s.audit.Emit(ctx, audit.Event{
		Category:   audit.CategoryOperations,
		Timestamp:  requestcontext.Now(ctx),
		BusinessID: businessID,
		Action:     string(event),
		Decision:   decision,
		Reason:     reason,
		RequestID:  requestcontext.RequestID(ctx),
		ActorID:    requestcontext.AccountID(ctx),
		ActorRoles: requestcontext.Roles(ctx),
		ClientIP:   requestcontext.ClientIP(ctx),
		Device:     requestcontext.Device(ctx),
	})
	if err != nil {
		s.logger.WarnContext(ctx, "audit emit failed",
			"event", event,
			"error", err,
		)
	}
}
