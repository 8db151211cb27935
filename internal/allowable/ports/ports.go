// Package ports defines the interfaces the eligibility service pulls its
// decision context through. They are defined here rather than on the store
// packages to keep the module's boundary explicit.
package ports

import (
	"context"

	"filings-gateway/internal/entity"
	"filings-gateway/internal/filing"
	"filings-gateway/pkg/platform/audit"
)

//go:generate mockgen -source=ports.go -destination=../mocks/ports_mock.go -package=mocks

// BusinessReader loads the business snapshot a decision evaluates against.
type BusinessReader interface {
	// FindByIdentifier returns the snapshot or sentinel.ErrNotFound.
	FindByIdentifier(ctx context.Context, identifier string) (*entity.Business, error)
}

// DraftReader loads the in-progress filing entries for a business.
type DraftReader interface {
	// Load returns the stored entries; an unknown business yields an empty set.
	Load(ctx context.Context, businessID string) ([]filing.Entry, error)
}

// AuditPort emits audit events. Matches audit.Publisher but is declared here
// to keep the dependency direction pointing outward.
type AuditPort interface {
	Emit(ctx context.Context, event audit.Event) error
}
