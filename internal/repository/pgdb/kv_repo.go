package pgdb

import (
	"context"
	"errors"

	"github.com/DRSN-tech/pokeshop/internal/usecase"
	"github.com/DRSN-tech/pokeshop/pkg/e"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jimlawless/whereami"
)

var _ usecase.KeyValueRepository = (*KVRepo)(nil)

// querier is the part of *pgxpool.Pool the repository needs.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// KVRepo keeps storefront state in the kv_store table.
type KVRepo struct {
	pool querier
}

func NewKVRepo(pool querier) *KVRepo {
	return &KVRepo{pool: pool}
}

// Get returns e.ErrKeyNotFound when there is no row for key.
func (k *KVRepo) Get(ctx context.Context, key string) ([]byte, error) {
	query := `SELECT value FROM kv_store WHERE key = $1`

	var value []byte
	if err := k.pool.QueryRow(ctx, query, key).Scan(&value); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.ErrKeyNotFound
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return value, nil
}

// Set upserts the value, touching updated_at only when it changes.
func (k *KVRepo) Set(ctx context.Context, key string, value []byte) error {
	query := `
		INSERT INTO kv_store (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key)
		DO UPDATE SET
			value = EXCLUDED.value,
			updated_at = NOW()
		WHERE kv_store.value IS DISTINCT FROM EXCLUDED.value;
	`

	if _, err := k.pool.Exec(ctx, query, key, value); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

func (k *KVRepo) Delete(ctx context.Context, key string) error {
	query := `DELETE FROM kv_store WHERE key = $1`

	if _, err := k.pool.Exec(ctx, query, key); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}
