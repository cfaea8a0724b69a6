// Package sqlite stores wizard records in a single-file SQLite database.
// It suits single-node deployments that need drafts to survive restarts
// without running PostgreSQL.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS wizard_kv (
    session    TEXT NOT NULL,
    key        TEXT NOT NULL,
    value      BLOB NOT NULL,
    updated_at TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%fZ', 'now')),
    PRIMARY KEY (session, key)
)`

// KV implements port.KeyValue on SQLite.
type KV struct {
	db *sql.DB
}

// Open opens or creates the database at path and ensures the schema.
func Open(ctx context.Context, path string) (*KV, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	// SQLite allows one writer; a single connection avoids SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	if _, err = db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &KV{db: db}, nil
}

func (s *KV) Get(ctx context.Context, session, key string) ([]byte, bool, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM wizard_kv WHERE session = ? AND key = ?`,
		session, key,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("select wizard_kv: %w", err)
	}
	return value, true, nil
}

func (s *KV) Set(ctx context.Context, session, key string, value []byte) error {
	if value == nil {
		value = []byte{}
	}
	_, err := s.db.ExecContext(ctx, `
        INSERT INTO wizard_kv (session, key, value) VALUES (?, ?, ?)
        ON CONFLICT (session, key) DO UPDATE SET
            value = excluded.value,
            updated_at = strftime('%Y-%m-%dT%H:%M:%fZ', 'now')`,
		session, key, value,
	)
	if err != nil {
		return fmt.Errorf("upsert wizard_kv: %w", err)
	}
	return nil
}

func (s *KV) Delete(ctx context.Context, session, key string) error {
	if _, err := s.db.ExecContext(ctx,
		`DELETE FROM wizard_kv WHERE session = ? AND key = ?`,
		session, key,
	); err != nil {
		return fmt.Errorf("delete wizard_kv: %w", err)
	}
	return nil
}

func (s *KV) Close() error {
	return s.db.Close()
}
