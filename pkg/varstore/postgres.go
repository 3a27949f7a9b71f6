package varstore

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// postgresTable is the table backing the store. The name is fixed so the
// queries here can never drift from the schema created by Migrate.
const postgresTable = "variables"

// Postgres is a variable store backed by the PostgreSQL table "variables".
// The schema is created by Migrate; see migrations/.
type Postgres struct {
	pool *pgxpool.Pool
}

// NewPostgres creates a new Postgres-backed store.
// The pool should be obtained from ConnectPostgres; its lifecycle is
// managed by the caller.
func NewPostgres(pool *pgxpool.Pool) *Postgres {
	return &Postgres{pool: pool}
}

// Get retrieves a variable by key.
// Returns ErrNotFound if the key does not exist.
func (p *Postgres) Get(ctx context.Context, key string) (Variable, error) {
	var v Variable
	err := p.pool.QueryRow(ctx,
		`SELECT key, value, is_encrypted, created_at, updated_at FROM `+postgresTable+` WHERE key = $1`,
		key,
	).Scan(&v.Key, &v.Value, &v.Encrypted, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Variable{}, ErrNotFound
		}
		return Variable{}, err
	}
	return v, nil
}

// Set creates or replaces the variable under v.Key using an upsert.
// created_at is preserved across replacements; updated_at is always refreshed.
func (p *Postgres) Set(ctx context.Context, v Variable) error {
	if v.Key == "" {
		return ErrEmptyKey
	}

	_, err := p.pool.Exec(ctx,
		`INSERT INTO `+postgresTable+` (key, value, is_encrypted, created_at, updated_at)
		 VALUES ($1, $2, $3, now(), now())
		 ON CONFLICT (key) DO UPDATE
		 SET value = EXCLUDED.value, is_encrypted = EXCLUDED.is_encrypted, updated_at = now()`,
		v.Key, v.Value, v.Encrypted,
	)
	return err
}

// Has checks whether a key exists.
func (p *Postgres) Has(ctx context.Context, key string) (bool, error) {
	var exists bool
	err := p.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM `+postgresTable+` WHERE key = $1)`,
		key,
	).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// Delete removes a key. Deleting a missing key is not an error.
func (p *Postgres) Delete(ctx context.Context, key string) error {
	_, err := p.pool.Exec(ctx, `DELETE FROM `+postgresTable+` WHERE key = $1`, key)
	return err
}

// Keys returns all stored keys in lexicographic order.
func (p *Postgres) Keys(ctx context.Context) ([]string, error) {
	rows, err := p.pool.Query(ctx, `SELECT key FROM `+postgresTable+` ORDER BY key`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}

// Close is a no-op. The pool lifecycle is managed by the caller.
func (p *Postgres) Close() error {
	return nil
}

var _ Store = (*Postgres)(nil)
