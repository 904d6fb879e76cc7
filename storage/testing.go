package storage

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	"github.com/pressly/goose/v3"
	"github.com/tulisaja/tulisaja/storage/db"
)

// NewTestDB creates an in-memory SQLite database with all migrations
// applied. Intended for tests only; the returned cleanup closes the
// database.
func NewTestDB() (*Storage, *db.Queries, func(), error) {
	database, err := sql.Open("sqlite3", ":memory:?_foreign_keys=on")
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to open test database: %w", err)
	}

	// Every pooled connection to :memory: is a separate empty database, so
	// the pool must stay at one connection.
	database.SetMaxOpenConns(1)

	goose.SetBaseFS(embedMigrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		database.Close()
		return nil, nil, nil, fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.Up(database, "migrations"); err != nil {
		database.Close()
		return nil, nil, nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	queries := db.New(database)
	store := &Storage{db: database, Queries: queries}

	cleanup := func() {
		database.Close()
	}

	return store, queries, cleanup, nil
}

// WithTransaction executes fn inside a transaction that is always rolled
// back. Useful for tests that must leave no side effects.
func WithTransaction(database *sql.DB, fn func(*sql.Tx) error) error {
	tx, err := database.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}

	return nil
}
