package repository

import (
	"context"
	"errors"
	"fmt"

	"pijat_jogja/internal/model"

	"github.com/jackc/pgx/v5"
)

// FooterRepository defines operations for the single footer_settings row
type FooterRepository interface {
	Get(ctx context.Context) (*model.FooterSettings, error)
	Upsert(ctx context.Context, footer *model.FooterSettings) error
}

type footerRepository struct {
	db DB
}

// NewFooterRepository creates a new FooterRepository
func NewFooterRepository(db DB) FooterRepository {
	return &footerRepository{db: db}
}

// Get returns the footer row, or nil when it has not been created yet
func (r *footerRepository) Get(ctx context.Context) (*model.FooterSettings, error) {
	f := &model.FooterSettings{}
	sql := `SELECT id, site_name, site_description, wa_number, wa_message, phone_display, email, alamat,
                   instagram_url, copyright_text, copyright_subtext, created_at, updated_at
            FROM footer_settings WHERE id = 1`
	err := r.db.QueryRow(ctx, sql).Scan(
		&f.ID, &f.SiteName, &f.SiteDescription, &f.WANumber, &f.WAMessage, &f.PhoneDisplay, &f.Email, &f.Alamat,
		&f.InstagramURL, &f.CopyrightText, &f.CopyrightSubtext, &f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get footer settings: %w", err)
	}
	return f, nil
}

// Upsert updates the footer row or inserts it when missing
func (r *footerRepository) Upsert(ctx context.Context, f *model.FooterSettings) error {
	sql := `INSERT INTO footer_settings (id, site_name, site_description, wa_number, wa_message, phone_display, email, alamat,
                                         instagram_url, copyright_text, copyright_subtext, created_at, updated_at)
            VALUES (1, $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
            ON CONFLICT (id) DO UPDATE SET
                site_name = EXCLUDED.site_name, site_description = EXCLUDED.site_description,
                wa_number = EXCLUDED.wa_number, wa_message = EXCLUDED.wa_message,
                phone_display = EXCLUDED.phone_display, email = EXCLUDED.email, alamat = EXCLUDED.alamat,
                instagram_url = EXCLUDED.instagram_url, copyright_text = EXCLUDED.copyright_text,
                copyright_subtext = EXCLUDED.copyright_subtext, updated_at = NOW()
            RETURNING id, created_at, updated_at`
	err := r.db.QueryRow(ctx, sql,
		f.SiteName, f.SiteDescription, f.WANumber, f.WAMessage, f.PhoneDisplay, f.Email, f.Alamat,
		f.InstagramURL, f.CopyrightText, f.CopyrightSubtext,
	).Scan(&f.ID, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to save footer settings: %w", err)
	}
	return nil
}
