package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/enerwatch/ewdash/internal/database"
)

// KVRepo stores string records by key. It satisfies dashboard.Storage.
type KVRepo struct {
	db *sql.DB
}

func NewKVRepo(db *sql.DB) *KVRepo {
	return &KVRepo{db: db}
}

// Get returns the value for key and whether it exists.
func (r *KVRepo) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM kv_store WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (r *KVRepo) Set(ctx context.Context, key, value string) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO kv_store(key, value, updated_at)
	VALUES (?, ?, ?)
	ON CONFLICT(key) DO UPDATE SET
	 value=excluded.value,
	 updated_at=excluded.updated_at;
	`, key, value, database.Now())
	return err
}

func (r *KVRepo) Delete(ctx context.Context, key string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM kv_store WHERE key = ?`, key)
	return err
}

// Entry returns the full row for key, or nil when absent.
func (r *KVRepo) Entry(ctx context.Context, key string) (*Entry, error) {
	row := r.db.QueryRowContext(ctx, `SELECT key, value, updated_at FROM kv_store WHERE key = ?`, key)
	var e Entry
	if err := row.Scan(&e.Key, &e.Value, &e.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}
