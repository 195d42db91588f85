//go:build integration

package db

import (
	"database/sql"
	"testing"

	"github.com/ferdiebergado/gopherkit/env"
	"github.com/ferdiebergado/riskapi/internal/config"
	timex "github.com/ferdiebergado/riskapi/internal/pkg/time"
)

// Setup connects to the database named by ../../.env.testing, brings the schema
// up to date and returns a transaction that is rolled back when the test ends.
func Setup(t *testing.T) (*sql.DB, *sql.Tx) {
	t.Helper()

	const projRoot = "../../"

	if err := env.Load(projRoot + ".env.testing"); err != nil {
		t.Fatalf("failed to load environment file: %v", err)
	}

	connCfg, err := config.LoadConn()
	if err != nil {
		t.Fatalf("failed to load database config: %v", err)
	}

	opts := &config.DB{
		Driver:       "pgx",
		MaxOpenConns: 5,
		MaxIdleConns: 2,
		PingTimeout:  timex.Duration{Duration: 5e9},
	}

	conn, err := Connect(t.Context(), opts, connCfg)
	if err != nil {
		t.Fatalf("failed to connect to database: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	migrator, err := NewMigrator(conn)
	if err != nil {
		t.Fatalf("failed to create migrator: %v", err)
	}

	if _, err := migrator.Up(t.Context()); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	tx, err := conn.BeginTx(t.Context(), nil)
	if err != nil {
		t.Fatalf("failed to begin transaction: %v", err)
	}

	t.Cleanup(func() {
		if err := tx.Rollback(); err != nil {
			t.Logf("failed to rollback transaction: %v", err)
		}
	})

	return conn, tx
}
