// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package database opens the shared storage handle used by every repository.

Repositories are written once against [sqlx.DB] with "?" placeholders and
call Rebind, so the same queries run on both supported drivers:

  - postgres: a pgxpool pool exposed through the pgx database/sql bridge.
  - sqlite: an embedded modernc.org/sqlite file.
*/
package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"

	"github.com/taibuivan/pokereview/internal/platform/config"
	pgstore "github.com/taibuivan/pokereview/internal/platform/postgres"
	"github.com/taibuivan/pokereview/internal/platform/sqlite"
)

const pingTimeout = 2 * time.Second

// Open connects to the configured driver and returns the handle plus a
// cleanup function that releases every underlying resource.
func Open(ctx context.Context, driver, databaseURL string, logger *slog.Logger) (*sqlx.DB, func(), error) {
	switch driver {
	case config.DriverPostgres:
		pool, err := pgstore.NewPool(ctx, databaseURL, logger)
		if err != nil {
			return nil, nil, err
		}

		db := sqlx.NewDb(stdlib.OpenDBFromPool(pool), "pgx")
		cleanup := func() {
			_ = db.Close()
			pool.Close()
		}
		return db, cleanup, nil

	case config.DriverSQLite:
		db, err := sqlite.Open(ctx, databaseURL, logger)
		if err != nil {
			return nil, nil, err
		}
		return db, func() { _ = db.Close() }, nil

	default:
		return nil, nil, fmt.Errorf("database: unsupported driver %q", driver)
	}
}

// Ping verifies that the storage handle is healthy.
func Ping(ctx context.Context, db *sqlx.DB) error {
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		return fmt.Errorf("database: ping failed: %w", err)
	}
	return nil
}
