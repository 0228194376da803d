// Package sqlite provides SQLite-based storage implementations for shopinsight services.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

// DB represents a SQLite database connection.
type DB struct {
	db   *sql.DB
	path string
}

// NewDB creates a new DB instance with the given path.
// Use ":memory:" for an in-memory database.
func NewDB(path string) *DB {
	return &DB{path: path}
}

// Open opens the database connection and creates the schema if needed.
func (db *DB) Open() error {
	conn, err := sql.Open("sqlite3", db.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer at a time, so limit to one connection.
	conn.SetMaxOpenConns(1)

	// Verify connection
	if err := conn.Ping(); err != nil {
		conn.Close()
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	// A CLI fetch and a running API server may share one database file.
	if _, err := conn.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		conn.Close()
		return fmt.Errorf("failed to set busy timeout: %w", err)
	}

	// WAL lets list/show read while a brand insert is in flight.
	// In-memory databases do not support it.
	if db.path != ":memory:" {
		if _, err := conn.Exec("PRAGMA journal_mode = WAL"); err != nil {
			conn.Close()
			return fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	// Child rows rely on ON DELETE CASCADE.
	if _, err := conn.Exec("PRAGMA foreign_keys = ON"); err != nil {
		conn.Close()
		return fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	db.db = conn

	// Create schema
	if err := db.createSchema(); err != nil {
		conn.Close()
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	if db.db != nil {
		return db.db.Close()
	}
	return nil
}

// QueryRowContext executes a query that returns a single row.
func (db *DB) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return db.db.QueryRowContext(ctx, query, args...)
}

// QueryContext executes a query that returns rows.
func (db *DB) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return db.db.QueryContext(ctx, query, args...)
}

// ExecContext executes a statement that doesn't return rows.
func (db *DB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return db.db.ExecContext(ctx, query, args...)
}

// BeginTx starts a transaction.
func (db *DB) BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error) {
	return db.db.BeginTx(ctx, opts)
}

// createSchema creates the database tables if they don't exist.
func (db *DB) createSchema() error {
	schema := `
		CREATE TABLE IF NOT EXISTS brands (
			id TEXT PRIMARY KEY,
			store_name TEXT NOT NULL,
			root_url TEXT NOT NULL,
			about TEXT NOT NULL DEFAULT '',
			contact TEXT NOT NULL DEFAULT '{}',
			social TEXT NOT NULL DEFAULT '{}',
			fingerprint TEXT NOT NULL DEFAULT '',
			created_at TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS products (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			brand_id TEXT NOT NULL REFERENCES brands(id) ON DELETE CASCADE,
			position INTEGER NOT NULL,
			title TEXT NOT NULL DEFAULT '',
			price REAL,
			url TEXT NOT NULL,
			source TEXT NOT NULL DEFAULT 'catalog',
			is_hero INTEGER NOT NULL DEFAULT 0,
			UNIQUE (brand_id, url)
		);

		CREATE TABLE IF NOT EXISTS faqs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			brand_id TEXT NOT NULL REFERENCES brands(id) ON DELETE CASCADE,
			position INTEGER NOT NULL,
			question TEXT NOT NULL,
			answer TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS policies (
			brand_id TEXT PRIMARY KEY REFERENCES brands(id) ON DELETE CASCADE,
			privacy_policy TEXT NOT NULL DEFAULT '',
			refund_policy TEXT NOT NULL DEFAULT ''
		);

		CREATE TABLE IF NOT EXISTS important_links (
			brand_id TEXT NOT NULL REFERENCES brands(id) ON DELETE CASCADE,
			name TEXT NOT NULL,
			url TEXT NOT NULL,
			PRIMARY KEY (brand_id, name)
		);

		CREATE INDEX IF NOT EXISTS idx_brands_store_name ON brands(store_name);
		CREATE INDEX IF NOT EXISTS idx_products_brand_id ON products(brand_id);
		CREATE INDEX IF NOT EXISTS idx_faqs_brand_id ON faqs(brand_id);
	`

	_, err := db.db.Exec(schema)
	return err
}
