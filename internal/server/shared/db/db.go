// Package db owns the process-wide database handle: opening it,
// waiting for the server to become reachable, and closing it on
// shutdown. The handle is passed down to components explicitly rather
// than living in package-level state.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/sethvargo/go-retry"
)

const (
	pingBackoffBase = 500 * time.Millisecond
	pingMaxRetries  = 5
)

// Open opens a pgx database handle for the given DSN and pings it with
// exponential backoff until it responds or the retry budget runs out.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	backoff := retry.WithMaxRetries(pingMaxRetries, retry.NewExponential(pingBackoffBase))
	if err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		if err := db.PingContext(ctx); err != nil {
			return retry.RetryableError(err)
		}
		return nil
	}); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db ping error: %w", err)
	}

	return db, nil
}
