package repository

import (
	"context"
	"fmt"

	"pijat_jogja/internal/model"
)

// SettingsRepository defines operations for the key/value settings table
type SettingsRepository interface {
	List(ctx context.Context) ([]model.SettingRow, error)
	SaveAll(ctx context.Context, rows []model.SettingRow) error
}

type settingsRepository struct {
	db DB
}

// NewSettingsRepository creates a new SettingsRepository
func NewSettingsRepository(db DB) SettingsRepository {
	return &settingsRepository{db: db}
}

// List returns every settings row
func (r *settingsRepository) List(ctx context.Context) ([]model.SettingRow, error) {
	sql := `SELECT setting_key, COALESCE(setting_value, '') FROM settings ORDER BY setting_key`
	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to query settings: %w", err)
	}
	defer rows.Close()

	var settings []model.SettingRow
	for rows.Next() {
		var s model.SettingRow
		if err := rows.Scan(&s.Key, &s.Value); err != nil {
			return nil, fmt.Errorf("failed to scan settings row: %w", err)
		}
		settings = append(settings, s)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating settings rows: %w", err)
	}
	return settings, nil
}

// SaveAll upserts all rows in one transaction, so a failure leaves the previous record intact
func (r *settingsRepository) SaveAll(ctx context.Context, rows []model.SettingRow) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin settings transaction: %w", err)
	}

	sql := `INSERT INTO settings (setting_key, setting_value, updated_at)
            VALUES ($1, $2, NOW())
            ON CONFLICT (setting_key) DO UPDATE SET setting_value = EXCLUDED.setting_value, updated_at = NOW()`
	for _, row := range rows {
		if _, err := tx.Exec(ctx, sql, row.Key, row.Value); err != nil {
			_ = tx.Rollback(ctx)
			return fmt.Errorf("failed to save setting %s: %w", row.Key, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit settings: %w", err)
	}
	return nil
}
