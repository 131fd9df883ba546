// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package sqlite opens an embedded SQLite database file through the pure-Go
// modernc.org/sqlite driver.
//
// It is used for local development without a PostgreSQL server and by the
// repository test suites.
package sqlite

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"
	// Registers the "sqlite" database/sql driver.
	_ "modernc.org/sqlite"
)

// DriverName is the database/sql driver name registered by modernc.org/sqlite.
const DriverName = "sqlite"

func init() {
	sqlx.BindDriver(DriverName, sqlx.QUESTION)
}

const pingTimeout = 2 * time.Second

// DSN appends the connection pragmas every handle needs to a database file path.
//
// Foreign keys are off by default in SQLite and must be enabled per connection.
func DSN(path string) string {
	return path + "?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
}

// Open opens the database file at path and verifies it is reachable.
//
// The handle is limited to a single connection; SQLite serialises writers anyway.
func Open(ctx context.Context, path string, logger *slog.Logger) (*sqlx.DB, error) {
	db, err := sqlx.Open(DriverName, DSN(path))
	if err != nil {
		return nil, fmt.Errorf("sqlite: open %s: %w", path, err)
	}

	db.SetMaxOpenConns(1)

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite: ping failed: %w", err)
	}

	logger.Info("sqlite database opened", slog.String("path", path))
	return db, nil
}
