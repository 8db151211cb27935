package store

import (
	"context"
	"database/sql"
	"fmt"

	"filings-gateway/internal/entity"
	"filings-gateway/internal/filing"
)

// PostgresStore persists draft filing data in PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed draft store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Replace swaps the stored entry set inside one transaction so readers never
// observe a half-written draft.
func (s *PostgresStore) Replace(ctx context.Context, businessID string, entries []filing.Entry) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin replace draft: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM filing_data WHERE business_identifier = $1`, businessID); err != nil {
		return fmt.Errorf("clear draft for %s: %w", businessID, err)
	}

	for _, e := range entries {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO filing_data (business_identifier, filing_type_code, entity_type, priority, waive_fees, updated_at)
			VALUES ($1, $2, $3, $4, $5, now())
		`, businessID, e.FilingTypeCode, string(e.EntityType), e.Priority, e.WaiveFees); err != nil {
			return fmt.Errorf("insert draft entry %s for %s: %w", e.FilingTypeCode, businessID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace draft: %w", err)
	}
	return nil
}

func (s *PostgresStore) Load(ctx context.Context, businessID string) ([]filing.Entry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT filing_type_code, entity_type, priority, waive_fees
		FROM filing_data
		WHERE business_identifier = $1
		ORDER BY filing_type_code
	`, businessID)
	if err != nil {
		return nil, fmt.Errorf("load draft for %s: %w", businessID, err)
	}
	defer rows.Close()

	var entries []filing.Entry
	for rows.Next() {
		var (
			e          filing.Entry
			entityType string
		)
		if err := rows.Scan(&e.FilingTypeCode, &entityType, &e.Priority, &e.WaiveFees); err != nil {
			return nil, fmt.Errorf("scan draft entry for %s: %w", businessID, err)
		}
		e.EntityType = entity.Type(entityType)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate draft entries for %s: %w", businessID, err)
	}
	return entries, nil
}

func (s *PostgresStore) Clear(ctx context.Context, businessID string) error {
	if _, err := s.db.ExecContext(ctx,
		`DELETE FROM filing_data WHERE business_identifier = $1`, businessID); err != nil {
		return fmt.Errorf("clear draft for %s: %w", businessID, err)
	}
	return nil
}
