package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/storefront-cart/internal/db"
	"github.com/nikolayk812/storefront-cart/internal/port"
)

type PostgresStore struct {
	q    *db.Queries
	pool *pgxpool.Pool
}

var (
	_ port.KVStore = (*PostgresStore)(nil)
	_ port.Updater = (*PostgresStore)(nil)
)

func NewPostgres(pool *pgxpool.Pool) (*PostgresStore, error) {
	if pool == nil {
		return nil, fmt.Errorf("pool is nil")
	}

	return &PostgresStore{
		q:    db.New(pool),
		pool: pool,
	}, nil
}

func NewPostgresWithTx(tx pgx.Tx) *PostgresStore {
	return &PostgresStore{
		q:    db.New(tx),
		pool: nil, // use provided transaction instead
	}
}

func (s *PostgresStore) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, fmt.Errorf("key is empty")
	}

	value, err := s.q.GetEntry(ctx, key)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, port.ErrNotFound
		}
		return nil, fmt.Errorf("q.GetEntry: %w", err)
	}
	if value == nil {
		return nil, port.ErrNotFound
	}

	return []byte(*value), nil
}

func (s *PostgresStore) Set(ctx context.Context, key string, value []byte) error {
	if key == "" {
		return fmt.Errorf("key is empty")
	}

	err := s.q.UpsertEntry(ctx, db.UpsertEntryParams{
		Key:   key,
		Value: string(value),
	})
	if err != nil {
		return fmt.Errorf("q.UpsertEntry: %w", err)
	}

	return nil
}

// Update locks the row for key for the duration of fn, so concurrent
// writers through postgres are serialized.
func (s *PostgresStore) Update(ctx context.Context, key string, fn func(current []byte) ([]byte, error)) error {
	if key == "" {
		return fmt.Errorf("key is empty")
	}

	return withTx(ctx, s.pool, s.q, func(q *db.Queries) error {
		if err := q.ReserveEntry(ctx, key); err != nil {
			return fmt.Errorf("q.ReserveEntry: %w", err)
		}

		current, err := q.GetEntryForUpdate(ctx, key)
		if err != nil {
			return fmt.Errorf("q.GetEntryForUpdate: %w", err)
		}

		var currentBytes []byte
		if current != nil {
			currentBytes = []byte(*current)
		}

		next, err := fn(currentBytes)
		if err != nil {
			return err
		}

		err = q.UpsertEntry(ctx, db.UpsertEntryParams{
			Key:   key,
			Value: string(next),
		})
		if err != nil {
			return fmt.Errorf("q.UpsertEntry: %w", err)
		}

		return nil
	})
}
