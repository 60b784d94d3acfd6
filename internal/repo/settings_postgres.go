package repo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/SSG3800/Retail-POS-System/internal/models"
)

type PostgresSettingsRepository struct {
	db *sql.DB
}

func NewPostgresSettingsRepository(db *sql.DB) *PostgresSettingsRepository {
	return &PostgresSettingsRepository{db: db}
}

func (r *PostgresSettingsRepository) Get() (models.Settings, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var s models.Settings
	err := r.db.QueryRowContext(ctx, `SELECT id, password_hash, must_change FROM settings WHERE id = 1`).
		Scan(&s.ID, &s.PasswordHash, &s.MustChange)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Settings{}, ErrSettingsNotFound
	}
	return s, err
}

func (r *PostgresSettingsRepository) UpdatePasswordHash(hash string, mustChange bool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `UPDATE settings SET password_hash = $1, must_change = $2 WHERE id = 1`, hash, mustChange)
	if err != nil {
		return err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrSettingsNotFound
	}
	return nil
}
