package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"blogapi/internal/repository"
)

// SettingsSQLite stores key/value settings in a local SQLite database.
type SettingsSQLite struct {
	db  *sql.DB
	now func() time.Time
}

// NewSettingsSQLite creates a settings store. The settings table must exist.
func NewSettingsSQLite(db *sql.DB) *SettingsSQLite {
	return &SettingsSQLite{db: db, now: time.Now}
}

var _ repository.SettingsRepository = (*SettingsSQLite)(nil)

func (r *SettingsSQLite) Get(ctx context.Context, key string) (string, error) {
	var v string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM settings WHERE key = ?`, key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", repository.ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return v, nil
}

func (r *SettingsSQLite) Set(ctx context.Context, key, value string) error {
	const q = `
		INSERT INTO settings (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`
	_, err := r.db.ExecContext(ctx, q, key, value, r.now().UTC().Format(time.RFC3339Nano))
	return err
}

func (r *SettingsSQLite) Delete(ctx context.Context, key string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM settings WHERE key = ?`, key)
	return err
}
