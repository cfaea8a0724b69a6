package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// KVRepository implements port.KeyValue on the wizard_kv table. Values are
// stored as JSONB, so only valid JSON documents are accepted.
type KVRepository struct {
	pool *pgxpool.Pool
}

// NewKVRepository returns a new repository instance.
func NewKVRepository(pool *pgxpool.Pool) *KVRepository {
	return &KVRepository{pool: pool}
}

// Get returns the stored document for session and key.
func (r *KVRepository) Get(ctx context.Context, session, key string) ([]byte, bool, error) {
	var value []byte
	err := r.pool.QueryRow(ctx,
		`SELECT value FROM wizard_kv WHERE session = $1 AND key = $2`,
		session, key,
	).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("select wizard_kv: %w", err)
	}
	return value, true, nil
}

// Set upserts the document, replacing any previous value.
func (r *KVRepository) Set(ctx context.Context, session, key string, value []byte) error {
	_, err := r.pool.Exec(ctx, `
        INSERT INTO wizard_kv (session, key, value, updated_at)
        VALUES ($1, $2, $3, now())
        ON CONFLICT (session, key)
            DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`,
		session, key, string(value),
	)
	if err != nil {
		return fmt.Errorf("upsert wizard_kv: %w", err)
	}
	return nil
}

// Delete removes the document. Missing rows are ignored.
func (r *KVRepository) Delete(ctx context.Context, session, key string) error {
	if _, err := r.pool.Exec(ctx,
		`DELETE FROM wizard_kv WHERE session = $1 AND key = $2`,
		session, key,
	); err != nil {
		return fmt.Errorf("delete wizard_kv: %w", err)
	}
	return nil
}
