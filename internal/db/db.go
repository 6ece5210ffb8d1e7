package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// NewPool creates a new pgx connection pool using the provided DSN.
// It pings the database to ensure the connection is valid.
func NewPool(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create database pool: %w", err)
	}

	// Use a short-lived context for the initial ping.
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return pool, nil
}

// schema defines the three tables the booking core relies on. The
// UNIQUE keys on the lock tables are what turn double-lock attempts
// into conflicts, and the bookings primary key rejects duplicate
// client-supplied ids.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS public.locked_dates (
		date       text PRIMARY KEY,
		reason     text NOT NULL DEFAULT '',
		created_at timestamptz NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS public.locked_time_slots (
		date       text NOT NULL,
		time       text NOT NULL,
		reason     text NOT NULL DEFAULT '',
		created_at timestamptz NOT NULL DEFAULT now(),
		PRIMARY KEY (date, time)
	)`,
	`CREATE TABLE IF NOT EXISTS public.bookings (
		id             text PRIMARY KEY,
		customer_name  text NOT NULL,
		customer_phone text NOT NULL,
		customer_email text NOT NULL,
		services       jsonb NOT NULL,
		date           text NOT NULL,
		time           text NOT NULL,
		notes          text NOT NULL DEFAULT '',
		status         text NOT NULL DEFAULT 'pending',
		total_price    integer NOT NULL,
		total_duration integer NOT NULL,
		created_at     timestamptz NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS bookings_date_time_idx ON public.bookings (date, time)`,
}

// EnsureSchema creates the tables if they do not exist yet.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schema {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}
