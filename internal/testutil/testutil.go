// Package testutil provides shared test helpers for config files and migrated test databases.
package testutil

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/jakefish18/wanikani-parser/internal/config"
	"github.com/jakefish18/wanikani-parser/internal/database"
)

// SetupTestConfig creates a config file pointing at baseURL, a sqlite database
// and a local media directory inside tmpDir.
// Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir, baseURL string) string {
	t.Helper()

	for _, d := range []string{"media", "export"} {
		require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, d), 0755))
	}

	configContent := fmt.Sprintf(`source:
  base_url: %s
  timeout_seconds: 5
ingest:
  concurrency: 4
  supervisor:
    max_attempts: 1
    backoff_seconds: 0
database:
  driver: sqlite3
  path: %s
media:
  driver: local
  directory: %s
export:
  directory: %s
`,
		baseURL,
		filepath.Join(tmpDir, "wanikani.db"),
		filepath.Join(tmpDir, "media"),
		filepath.Join(tmpDir, "export"),
	)

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}

// OpenTestDB opens an in-memory sqlite database with every migration applied.
// The database is closed when the test finishes.
func OpenTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	db, err := database.Open(config.DatabaseConfig{Driver: database.DriverSQLite3, Path: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})

	_, err = database.Migrate(context.Background(), db)
	require.NoError(t, err)
	return db
}

// CountRows returns the number of rows in table.
func CountRows(t *testing.T, db *sqlx.DB, table string) int {
	t.Helper()

	var count int
	require.NoError(t, db.Get(&count, "SELECT COUNT(*) FROM "+table))
	return count
}
