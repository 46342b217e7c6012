package postgres

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq" // PostgreSQL driver
)

// maxPoolSize caps the shared connection pool. Callers block waiting for a
// free connection when all are in use.
const maxPoolSize = 5

// DB wraps the database connection pool shared by all repositories.
type DB struct {
	*sql.DB
}

// NewDB opens a pool-limited database connection.
// connectionString should be in the format:
// "host=localhost port=5432 user=postgres password=postgres dbname=assetbook sslmode=disable"
func NewDB(connectionString string) (*DB, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	db.SetMaxOpenConns(maxPoolSize)
	db.SetMaxIdleConns(maxPoolSize)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{DB: db}, nil
}

// Close releases all pooled connections.
func (db *DB) Close() error {
	return db.DB.Close()
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}
