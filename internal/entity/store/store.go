// Package store persists business snapshots.
//
// The memory implementation backs tests and single-node development; the
// postgres implementation backs real deployments. Both return sentinel errors
// so services can translate them into coded domain errors.
package store

import (
	"context"

	"filings-gateway/internal/entity"
)

// Store persists business snapshots keyed by identifier.
type Store interface {
	// Save inserts or replaces a snapshot.
	Save(ctx context.Context, business *entity.Business) error
	// FindByIdentifier returns the snapshot or sentinel.ErrNotFound.
	FindByIdentifier(ctx context.Context, identifier string) (*entity.Business, error)
	// Delete removes a snapshot. Deleting an absent snapshot is a no-op.
	Delete(ctx context.Context, identifier string) error
}
