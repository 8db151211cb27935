package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"filings-gateway/internal/entity"
	"filings-gateway/pkg/platform/sentinel"
)

// PostgresStore persists business snapshots in PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed snapshot store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Save(ctx context.Context, business *entity.Business) error {
	filings, err := json.Marshal(business.PendingFilings)
	if err != nil {
		return fmt.Errorf("marshal pending filings: %w", err)
	}

	query := `
		INSERT INTO businesses (identifier, legal_type, state, good_standing, admin_freeze, pending_tasks, pending_filings, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (identifier) DO UPDATE SET
			legal_type      = EXCLUDED.legal_type,
			state           = EXCLUDED.state,
			good_standing   = EXCLUDED.good_standing,
			admin_freeze    = EXCLUDED.admin_freeze,
			pending_tasks   = EXCLUDED.pending_tasks,
			pending_filings = EXCLUDED.pending_filings,
			updated_at      = EXCLUDED.updated_at
	`
	_, err = s.db.ExecContext(ctx, query,
		business.Identifier,
		string(business.LegalType),
		string(business.State),
		business.GoodStanding,
		business.AdminFreeze,
		business.PendingTasks,
		filings,
		business.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("save business %s: %w", business.Identifier, err)
	}
	return nil
}

func (s *PostgresStore) FindByIdentifier(ctx context.Context, identifier string) (*entity.Business, error) {
	query := `
		SELECT identifier, legal_type, state, good_standing, admin_freeze, pending_tasks, pending_filings, updated_at
		FROM businesses
		WHERE identifier = $1
	`
	var (
		b          entity.Business
		legalType  string
		state      string
		rawFilings []byte
	)
	err := s.db.QueryRowContext(ctx, query, identifier).Scan(
		&b.Identifier,
		&legalType,
		&state,
		&b.GoodStanding,
		&b.AdminFreeze,
		&b.PendingTasks,
		&rawFilings,
		&b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find business %s: %w", identifier, err)
	}

	b.LegalType = entity.Type(legalType)
	b.State = entity.State(state)
	if err := json.Unmarshal(rawFilings, &b.PendingFilings); err != nil {
		return nil, fmt.Errorf("unmarshal pending filings for %s: %w", identifier, err)
	}
	return &b, nil
}

func (s *PostgresStore) Delete(ctx context.Context, identifier string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM businesses WHERE identifier = $1`, identifier)
	if err != nil {
		return fmt.Errorf("delete business %s: %w", identifier, err)
	}
	return nil
}
