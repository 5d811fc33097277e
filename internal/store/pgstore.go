package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// PostgresStore keeps each collection as a row in a small key-value table.
// The schema is created on startup when missing.
type PostgresStore struct {
	db *sqlx.DB
}

// NewPostgresStore ensures the kv table exists and returns the store.
func NewPostgresStore(db *sqlx.DB) (*PostgresStore, error) {
	const schema = `CREATE TABLE IF NOT EXISTS portal_kv (key TEXT PRIMARY KEY, value JSONB NOT NULL)`
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("ensure portal_kv table: %w", err)
	}
	return &PostgresStore{db: db}, nil
}

// Get reads the value for key, reporting absence without error.
func (s *PostgresStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	const query = `SELECT value FROM portal_kv WHERE key = $1 LIMIT 1`
	var raw []byte
	if err := s.db.GetContext(ctx, &raw, query, key); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("select portal_kv %s: %w", key, err)
	}
	return raw, true, nil
}

// Set upserts the value for key.
func (s *PostgresStore) Set(ctx context.Context, key string, value []byte) error {
	const query = `INSERT INTO portal_kv (key, value) VALUES ($1, $2) ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`
	if _, err := s.db.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("upsert portal_kv %s: %w", key, err)
	}
	return nil
}

// Delete removes the key if present.
func (s *PostgresStore) Delete(ctx context.Context, key string) error {
	const query = `DELETE FROM portal_kv WHERE key = $1`
	if _, err := s.db.ExecContext(ctx, query, key); err != nil {
		return fmt.Errorf("delete portal_kv %s: %w", key, err)
	}
	return nil
}
