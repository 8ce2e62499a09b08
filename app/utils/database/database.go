// Package database opens short-lived database/sql connections for
// maintenance tooling such as schema migrations. The service itself
// talks to Postgres through the pgx pool in driver/postgres.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/lib/pq"
)

const connectTimeout = 10 * time.Second

// Open establishes a database/sql connection and verifies it with a
// ping. The handle is tuned for a single maintenance session, not for
// serving traffic.
func Open(dsn string, logger *slog.Logger) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	db.SetMaxOpenConns(2)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info("maintenance database connection established")
	return db, nil
}
