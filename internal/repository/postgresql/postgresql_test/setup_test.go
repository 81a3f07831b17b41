package postgresql_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/gastrodesk/backoffice-api/internal/pkg/database"
)

const migrationsDir = "../../../../migrations"

// newTestDatabase connects to TEST_DATABASE_URL and recreates the schema.
// Tests are skipped when the variable is unset.
func newTestDatabase(t *testing.T) *database.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping integration test")
	}

	ctx := context.Background()
	db, err := database.NewPostgreSQLDB(ctx, dsn)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}
	t.Cleanup(db.Close)

	for _, name := range []string{"000001_init.down.sql", "000001_init.up.sql"} {
		if err := execFile(ctx, db, filepath.Join(migrationsDir, name)); err != nil {
			t.Fatalf("failed to apply %s: %v", name, err)
		}
	}
	return db
}

func execFile(ctx context.Context, db *database.DB, path string) error {
	sql, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if _, err := db.Exec(ctx, string(sql)); err != nil {
		return fmt.Errorf("exec %s: %w", path, err)
	}
	return nil
}
