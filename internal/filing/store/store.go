// Package store persists draft filing data so an in-progress transaction
// survives a restart. One row per (business, filing code).
package store

import (
	"context"

	"filings-gateway/internal/filing"
)

// Store persists accumulator entries per business.
type Store interface {
	// Replace swaps the whole entry set for a business in one step.
	Replace(ctx context.Context, businessID string, entries []filing.Entry) error
	// Load returns the stored entries; an unknown business yields an empty set.
	Load(ctx context.Context, businessID string) ([]filing.Entry, error)
	// Clear drops the draft for a business. Unknown business is a no-op.
	Clear(ctx context.Context, businessID string) error
}
