// Package dbtest opens throwaway, fully migrated databases for tests.
package dbtest

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/pokereview/internal/platform/config"
	"github.com/taibuivan/pokereview/internal/platform/migration"
	"github.com/taibuivan/pokereview/internal/platform/sqlite"
)

// Logger returns a logger that discards everything.
func Logger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// New creates a SQLite file in a temp dir, applies every migration and
// returns an open handle that is closed when the test ends.
func New(t testing.TB) *sqlx.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	logger := Logger()

	require.NoError(t, migration.RunUp(config.DriverSQLite, path, logger))

	db, err := sqlite.Open(context.Background(), path, logger)
	require.NoError(t, err)

	t.Cleanup(func() { _ = db.Close() })
	return db
}
