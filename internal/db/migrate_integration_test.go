//go:build integration

package db_test

import (
	"testing"

	"github.com/ferdiebergado/riskapi/internal/db"
)

func TestIntegrationMigrator_UpIsIdempotent(t *testing.T) {
	conn, _ := db.Setup(t)

	migrator, err := db.NewMigrator(conn)
	if err != nil {
		t.Fatalf("db.NewMigrator() = %v, want: %v", err, nil)
	}

	applied, err := migrator.Up(t.Context())
	if err != nil {
		t.Fatalf("migrator.Up() = %v, want: %v", err, nil)
	}

	if applied != 0 {
		t.Errorf("migrator.Up() applied %d migrations on an up to date schema, want: 0", applied)
	}

	states, err := migrator.Status(t.Context())
	if err != nil {
		t.Fatalf("migrator.Status() = %v, want: %v", err, nil)
	}

	for _, st := range states {
		if !st.Applied {
			t.Errorf("migration %d (%s) is pending, want applied", st.Version, st.Path)
		}
	}

	version, err := migrator.Version(t.Context())
	if err != nil {
		t.Fatalf("migrator.Version() = %v, want: %v", err, nil)
	}

	if version < 1 {
		t.Errorf("migrator.Version() = %d, want >= 1", version)
	}
}
