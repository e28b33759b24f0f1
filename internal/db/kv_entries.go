package db

import (
	"context"
)

const getEntry = `
SELECT entry_value FROM kv_entries
WHERE entry_key = $1
`

// GetEntry returns pgx.ErrNoRows when the key is absent and a nil value when
// the row exists with a NULL value.
func (q *Queries) GetEntry(ctx context.Context, key string) (*string, error) {
	row := q.db.QueryRow(ctx, getEntry, key)
	var value *string
	err := row.Scan(&value)
	return value, err
}

const getEntryForUpdate = `
SELECT entry_value FROM kv_entries
WHERE entry_key = $1
FOR UPDATE
`

func (q *Queries) GetEntryForUpdate(ctx context.Context, key string) (*string, error) {
	row := q.db.QueryRow(ctx, getEntryForUpdate, key)
	var value *string
	err := row.Scan(&value)
	return value, err
}

const reserveEntry = `
INSERT INTO kv_entries (entry_key)
VALUES ($1)
ON CONFLICT (entry_key) DO NOTHING
`

// ReserveEntry makes sure a row exists for key so it can be locked.
func (q *Queries) ReserveEntry(ctx context.Context, key string) error {
	_, err := q.db.Exec(ctx, reserveEntry, key)
	return err
}

const upsertEntry = `
INSERT INTO kv_entries (entry_key, entry_value, updated_at)
VALUES ($1, $2, now())
ON CONFLICT (entry_key) DO UPDATE
SET entry_value = EXCLUDED.entry_value,
    updated_at  = EXCLUDED.updated_at
`

type UpsertEntryParams struct {
	Key   string
	Value string
}

func (q *Queries) UpsertEntry(ctx context.Context, arg UpsertEntryParams) error {
	_, err := q.db.Exec(ctx, upsertEntry, arg.Key, arg.Value)
	return err
}
