package repository

import (
	"context"
	"errors"
	"fmt"

	"pijat_jogja/internal/model"

	"github.com/jackc/pgx/v5"
)

// PricingRepository defines operations for pricing package data
type PricingRepository interface {
	List(ctx context.Context) ([]model.PricingPackage, error)
	FindByID(ctx context.Context, id string) (*model.PricingPackage, error)
	Create(ctx context.Context, p *model.PricingPackage, clearOtherPopular bool) error
	Update(ctx context.Context, p *model.PricingPackage, clearOtherPopular bool) error
	SetPopular(ctx context.Context, id string, popular bool, clearOtherPopular bool) (*model.PricingPackage, error)
	Delete(ctx context.Context, id string) error
}

type pricingRepository struct {
	db DB
}

// NewPricingRepository creates a new PricingRepository
func NewPricingRepository(db DB) PricingRepository {
	return &pricingRepository{db: db}
}

const pricingColumns = `id, name, price, duration, features, popular, sort_order, created_at, updated_at`

func scanPackage(row pgx.Row, p *model.PricingPackage) error {
	return row.Scan(&p.ID, &p.Name, &p.Price, &p.Duration, &p.Features, &p.Popular, &p.SortOrder, &p.CreatedAt, &p.UpdatedAt)
}

// List retrieves all packages ordered by sort_order; ties keep database order
func (r *pricingRepository) List(ctx context.Context) ([]model.PricingPackage, error) {
	sql := `SELECT ` + pricingColumns + ` FROM pricing_packages ORDER BY sort_order ASC`
	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to query pricing packages: %w", err)
	}
	defer rows.Close()

	packages := []model.PricingPackage{}
	for rows.Next() {
		var p model.PricingPackage
		if err := scanPackage(rows, &p); err != nil {
			return nil, fmt.Errorf("failed to scan pricing package row: %w", err)
		}
		if p.Features == nil {
			p.Features = []string{}
		}
		packages = append(packages, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating pricing package rows: %w", err)
	}
	return packages, nil
}

// FindByID retrieves a package by its ID
func (r *pricingRepository) FindByID(ctx context.Context, id string) (*model.PricingPackage, error) {
	p := &model.PricingPackage{}
	sql := `SELECT ` + pricingColumns + ` FROM pricing_packages WHERE id = $1`
	if err := scanPackage(r.db.QueryRow(ctx, sql, id), p); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("failed to find pricing package by ID: %w", err)
	}
	return p, nil
}

// clearPopular unsets the popular flag on every package except keepID
func clearPopular(ctx context.Context, tx pgx.Tx, keepID string) error {
	sql := `UPDATE pricing_packages SET popular = false, updated_at = NOW() WHERE id <> $1 AND popular = true`
	if _, err := tx.Exec(ctx, sql, keepID); err != nil {
		return fmt.Errorf("failed to clear popular flag: %w", err)
	}
	return nil
}

// Create inserts a new package. p.ID must already be set.
func (r *pricingRepository) Create(ctx context.Context, p *model.PricingPackage, clearOtherPopular bool) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin pricing transaction: %w", err)
	}

	if clearOtherPopular && p.Popular {
		if err := clearPopular(ctx, tx, p.ID); err != nil {
			_ = tx.Rollback(ctx)
			return err
		}
	}

	sql := `INSERT INTO pricing_packages (id, name, price, duration, features, popular, sort_order, created_at, updated_at)
            VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW()) RETURNING created_at, updated_at`
	err = tx.QueryRow(ctx, sql, p.ID, p.Name, p.Price, p.Duration, p.Features, p.Popular, p.SortOrder).Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		_ = tx.Rollback(ctx)
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: pricing package %s", ErrDuplicateKey, p.ID)
		}
		return fmt.Errorf("failed to create pricing package: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit pricing package: %w", err)
	}
	return nil
}

// Update replaces name, price, duration, features and popular of a package
func (r *pricingRepository) Update(ctx context.Context, p *model.PricingPackage, clearOtherPopular bool) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin pricing transaction: %w", err)
	}

	if clearOtherPopular && p.Popular {
		if err := clearPopular(ctx, tx, p.ID); err != nil {
			_ = tx.Rollback(ctx)
			return err
		}
	}

	sql := `UPDATE pricing_packages
            SET name = $1, price = $2, duration = $3, features = $4, popular = $5, updated_at = NOW()
            WHERE id = $6 RETURNING ` + pricingColumns
	if err := scanPackage(tx.QueryRow(ctx, sql, p.Name, p.Price, p.Duration, p.Features, p.Popular, p.ID), p); err != nil {
		_ = tx.Rollback(ctx)
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update pricing package: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit pricing package: %w", err)
	}
	return nil
}

// SetPopular changes only the popular flag of a package
func (r *pricingRepository) SetPopular(ctx context.Context, id string, popular bool, clearOtherPopular bool) (*model.PricingPackage, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin pricing transaction: %w", err)
	}

	if clearOtherPopular && popular {
		if err := clearPopular(ctx, tx, id); err != nil {
			_ = tx.Rollback(ctx)
			return nil, err
		}
	}

	p := &model.PricingPackage{}
	sql := `UPDATE pricing_packages SET popular = $1, updated_at = NOW() WHERE id = $2 RETURNING ` + pricingColumns
	if err := scanPackage(tx.QueryRow(ctx, sql, popular, id), p); err != nil {
		_ = tx.Rollback(ctx)
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update popular flag: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit popular flag: %w", err)
	}
	return p, nil
}

// Delete removes a package
func (r *pricingRepository) Delete(ctx context.Context, id string) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM pricing_packages WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete pricing package: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
