// Package database wires the generated ent client to a pgx-backed
// connection pool and applies embedded SQL migrations on startup.
package database

import (
	"context"
	stdsql "database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/jackc/pgx/v5/stdlib" // registers the pgx driver under database/sql

	"github.com/sirmick/alfrd/ent"
	"github.com/sirmick/alfrd/internal/config"
)

//go:embed migrations
var migrationsFS embed.FS

// Client wraps the generated ent client and exposes the underlying
// *sql.DB for health checks, advisory locks, and raw DDL.
type Client struct {
	*ent.Client
	db *stdsql.DB
}

// DB returns the underlying *sql.DB, used by internal/locks for
// pg_advisory_lock and by internal/database for GIN index management.
func (c *Client) DB() *stdsql.DB {
	return c.db
}

// NewClientFromEnt wraps an already-open ent client, used by tests that
// provision a client against a testcontainers-go Postgres instance.
func NewClientFromEnt(entClient *ent.Client, db *stdsql.DB) *Client {
	return &Client{Client: entClient, db: db}
}

// NewClient opens a pooled connection, runs pending migrations, creates the
// GIN indexes ent's schema DSL cannot express, and returns a ready client.
func NewClient(ctx context.Context, cfg config.DatabaseConfig) (*Client, error) {
	db, err := stdsql.Open("pgx", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	drv := entsql.OpenDB(dialect.Postgres, db)
	entClient := ent.NewClient(ent.Driver(drv))

	if err := runMigrations(ctx, db, cfg, drv); err != nil {
		_ = entClient.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &Client{Client: entClient, db: db}, nil
}

// runMigrations applies embedded *.sql migrations with golang-migrate, then
// creates the full-text-search and JSON GIN indexes those migrations don't
// express directly (kept separate so CreateGINIndexes can be re-run
// idempotently without a new migration version).
func runMigrations(ctx context.Context, db *stdsql.DB, cfg config.DatabaseConfig, drv *entsql.Driver) error {
	hasMigrations, err := hasEmbeddedMigrations()
	if err != nil {
		return fmt.Errorf("failed to check embedded migrations: %w", err)
	}
	if !hasMigrations {
		return fmt.Errorf("no embedded migration files found, binary built incorrectly")
	}

	migrateCfg := &postgres.Config{MigrationsTable: cfg.MigrationsTable}
	driver, err := postgres.WithInstance(db, migrateCfg)
	if err != nil {
		return fmt.Errorf("failed to create postgres migrate driver: %w", err)
	}

	sourceDriver, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to create migration source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", sourceDriver, "alfrd", driver)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	// Do not call m.Close(): that closes driver, which closes the shared
	// *sql.DB handed to postgres.WithInstance, taking down the ent client
	// with it. Only the source side needs closing.
	if err := sourceDriver.Close(); err != nil {
		return fmt.Errorf("failed to close migration source: %w", err)
	}

	if err := CreateGINIndexes(ctx, drv); err != nil {
		return fmt.Errorf("failed to create GIN indexes: %w", err)
	}

	return nil
}

func hasEmbeddedMigrations() (bool, error) {
	entries, err := fs.ReadDir(migrationsFS, "migrations")
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read embedded migrations: %w", err)
	}
	for _, entry := range entries {
		if !entry.IsDir() && len(entry.Name()) > 4 && entry.Name()[len(entry.Name())-4:] == ".sql" {
			return true, nil
		}
	}
	return false, nil
}
