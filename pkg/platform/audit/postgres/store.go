// Package postgres persists audit events to an audit_events table. It serves
// two roles: a durable Publisher sink for deployments without a broker, and
// the queryable archive registry staff read decisions back from.
package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"filings-gateway/pkg/platform/audit"
)

// Store writes and reads audit events through a pgx pool.
type Store struct {
	pool *pgxpool.Pool
}

// New creates the store. The pool is owned by the caller.
func New(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// Open connects a pool and returns a store backed by it.
func Open(ctx context.Context, dsn string) (*Store, *pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("connect audit store: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("ping audit store: %w", err)
	}
	return New(pool), pool, nil
}

// Emit appends one event. Implements audit.Publisher; the insert is
// synchronous, so compliance events are durable once Emit returns.
func (s *Store) Emit(ctx context.Context, event audit.Event) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO audit_events
			(category, occurred_at, business_id, action, decision, reason,
			 request_id, actor_id, actor_roles, client_ip, device)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		string(event.Category),
		event.Timestamp,
		event.BusinessID,
		event.Action,
		event.Decision,
		event.Reason,
		event.RequestID,
		event.ActorID,
		event.ActorRoles,
		event.ClientIP,
		event.Device,
	)
	if err != nil {
		return fmt.Errorf("insert audit event: %w", err)
	}
	return nil
}

// ListByBusiness returns the most recent events for a business, newest first.
func (s *Store) ListByBusiness(ctx context.Context, businessID string, limit int) ([]audit.Event, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := s.pool.Query(ctx, `
		SELECT category, occurred_at, business_id, action, decision, reason,
		       request_id, actor_id, actor_roles, client_ip, device
		FROM audit_events
		WHERE business_id = $1
		ORDER BY occurred_at DESC, id DESC
		LIMIT $2`,
		businessID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query audit events: %w", err)
	}
	defer rows.Close()

	var events []audit.Event
	for rows.Next() {
		var (
			ev       audit.Event
			category string
			ts       time.Time
		)
		if err := rows.Scan(
			&category, &ts, &ev.BusinessID, &ev.Action, &ev.Decision, &ev.Reason,
			&ev.RequestID, &ev.ActorID, &ev.ActorRoles, &ev.ClientIP, &ev.Device,
		); err != nil {
			return nil, fmt.Errorf("scan audit event: %w", err)
		}
		ev.Category = audit.EventCategory(category)
		ev.Timestamp = ts
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate audit events: %w", err)
	}
	return events, nil
}
