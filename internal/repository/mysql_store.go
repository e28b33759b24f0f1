package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/nikolayk812/storefront-cart/internal/port"
)

const (
	mysqlGetEntry = `SELECT entry_value FROM kv_entries WHERE entry_key = ?`

	mysqlUpsertEntry = `
INSERT INTO kv_entries (entry_key, entry_value)
VALUES (?, ?)
ON DUPLICATE KEY UPDATE entry_value = VALUES(entry_value)`
)

// MySQLStore expects a *sql.DB opened with the "mysql" driver.
type MySQLStore struct {
	db *sql.DB
}

var _ port.KVStore = (*MySQLStore)(nil)

func NewMySQL(db *sql.DB) (*MySQLStore, error) {
	if db == nil {
		return nil, fmt.Errorf("db is nil")
	}

	return &MySQLStore{db: db}, nil
}

func (s *MySQLStore) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, fmt.Errorf("key is empty")
	}

	var value sql.NullString
	err := s.db.QueryRowContext(ctx, mysqlGetEntry, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, port.ErrNotFound
		}
		return nil, fmt.Errorf("db.QueryRowContext: %w", err)
	}
	if !value.Valid {
		return nil, port.ErrNotFound
	}

	return []byte(value.String), nil
}

func (s *MySQLStore) Set(ctx context.Context, key string, value []byte) error {
	if key == "" {
		return fmt.Errorf("key is empty")
	}

	if _, err := s.db.ExecContext(ctx, mysqlUpsertEntry, key, string(value)); err != nil {
		return fmt.Errorf("db.ExecContext: %w", err)
	}

	return nil
}
