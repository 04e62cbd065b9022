// Package store persists raw assessment decks. The valuation core itself is
// stateless; every calculate pass reloads the raw records from here and
// recomputes all derived figures from scratch.
package store

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	pool *pgxpool.Pool
	once sync.Once
)

// InitDB initializes the shared connection pool from the DATABASE_URL
// environment variable and verifies connectivity.
func InitDB(ctx context.Context) error {
	var err error
	once.Do(func() {
		dbURL := os.Getenv("DATABASE_URL")
		if dbURL == "" {
			err = fmt.Errorf("DATABASE_URL environment variable not set")
			return
		}

		config, parseErr := pgxpool.ParseConfig(dbURL)
		if parseErr != nil {
			err = fmt.Errorf("failed to parse database config: %w", parseErr)
			return
		}

		pool, err = pgxpool.NewWithConfig(ctx, config)
		if err != nil {
			return
		}
		err = pool.Ping(ctx)
	})
	return err
}

// GetPool returns the shared connection pool, nil before InitDB.
func GetPool() *pgxpool.Pool {
	return pool
}

// Close tears down the pool.
func Close() {
	if pool != nil {
		pool.Close()
	}
}
