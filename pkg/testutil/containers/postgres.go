//go:build integration

package containers

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"testing"
	"time"

	_ "github.com/lib/pq"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// schema bootstraps the tables the stores expect. Kept here so every
// integration suite runs against the same DDL.
const schema = `
CREATE TABLE IF NOT EXISTS businesses (
    identifier      TEXT PRIMARY KEY,
    legal_type      TEXT NOT NULL,
    state           TEXT NOT NULL,
    good_standing   BOOLEAN NOT NULL DEFAULT FALSE,
    admin_freeze    BOOLEAN NOT NULL DEFAULT FALSE,
    pending_tasks   INTEGER NOT NULL DEFAULT 0,
    pending_filings JSONB NOT NULL DEFAULT '[]',
    updated_at      TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS filing_data (
    business_identifier TEXT NOT NULL,
    filing_type_code    TEXT NOT NULL,
    entity_type         TEXT NOT NULL,
    priority            BOOLEAN NOT NULL DEFAULT FALSE,
    waive_fees          BOOLEAN NOT NULL DEFAULT FALSE,
    updated_at          TIMESTAMPTZ NOT NULL DEFAULT now(),
    PRIMARY KEY (business_identifier, filing_type_code)
);

CREATE TABLE IF NOT EXISTS audit_events (
    id          BIGSERIAL PRIMARY KEY,
    category    TEXT NOT NULL,
    occurred_at TIMESTAMPTZ NOT NULL,
    business_id TEXT NOT NULL,
    action      TEXT NOT NULL,
    decision    TEXT,
    reason      TEXT,
    request_id  TEXT,
    actor_id    TEXT,
    actor_roles TEXT[],
    client_ip   TEXT,
    device      TEXT
);
`

// PostgresContainer wraps a testcontainers Postgres instance.
type PostgresContainer struct {
	Container testcontainers.Container
	DSN       string
	DB        *sql.DB
}

// NewPostgresContainer starts a new Postgres container and applies the schema.
func NewPostgresContainer(t *testing.T) *PostgresContainer {
	t.Helper()

	ctx := context.Background()

	container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("filings"),
		tcpostgres.WithUsername("filings"),
		tcpostgres.WithPassword("filings"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = container.Terminate(ctx)
		t.Fatalf("failed to get postgres connection string: %v", err)
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		_ = container.Terminate(ctx)
		t.Fatalf("failed to open postgres connection: %v", err)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		_ = container.Terminate(ctx)
		t.Fatalf("failed to ping postgres: %v", err)
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		_ = container.Terminate(ctx)
		t.Fatalf("failed to apply schema: %v", err)
	}

	return &PostgresContainer{
		Container: container,
		DSN:       dsn,
		DB:        db,
	}
}

// TruncateTables empties the given tables. Use between tests for isolation.
func (p *PostgresContainer) TruncateTables(ctx context.Context, tables ...string) error {
	if len(tables) == 0 {
		return nil
	}
	_, err := p.DB.ExecContext(ctx,
		fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", strings.Join(tables, ", ")))
	return err
}
