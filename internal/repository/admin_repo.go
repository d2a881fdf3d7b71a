package repository

import (
	"context"
	"errors"
	"fmt"

	"pijat_jogja/internal/model"

	"github.com/jackc/pgx/v5"
)

// AdminRepository defines operations for admin accounts
type AdminRepository interface {
	List(ctx context.Context) ([]model.AdminAccount, error)
	FindByID(ctx context.Context, id int64) (*model.AdminAccount, error)
	Create(ctx context.Context, identity *model.Identity, account *model.AdminAccount, grantRole string) error
	Delete(ctx context.Context, id int64) error
}

type adminRepository struct {
	db DB
}

// NewAdminRepository creates a new AdminRepository
func NewAdminRepository(db DB) AdminRepository {
	return &adminRepository{db: db}
}

// List retrieves all admin accounts, newest first
func (r *adminRepository) List(ctx context.Context) ([]model.AdminAccount, error) {
	sql := `SELECT id, user_id, username, full_name, email, role, created_at FROM admins ORDER BY created_at DESC, id DESC`
	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to query admins: %w", err)
	}
	defer rows.Close()

	admins := []model.AdminAccount{}
	for rows.Next() {
		var a model.AdminAccount
		if err := rows.Scan(&a.ID, &a.UserID, &a.Username, &a.FullName, &a.Email, &a.Role, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan admin row: %w", err)
		}
		admins = append(admins, a)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating admin rows: %w", err)
	}
	return admins, nil
}

// FindByID retrieves an admin account by its ID
func (r *adminRepository) FindByID(ctx context.Context, id int64) (*model.AdminAccount, error) {
	a := &model.AdminAccount{}
	sql := `SELECT id, user_id, username, full_name, email, role, created_at FROM admins WHERE id = $1`
	err := r.db.QueryRow(ctx, sql, id).Scan(&a.ID, &a.UserID, &a.Username, &a.FullName, &a.Email, &a.Role, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find admin by ID: %w", err)
	}
	return a, nil
}

// Create inserts the credential identity, the admin profile and the role grant in one transaction
func (r *adminRepository) Create(ctx context.Context, identity *model.Identity, account *model.AdminAccount, grantRole string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin admin transaction: %w", err)
	}

	fail := func(err error, what string) error {
		_ = tx.Rollback(ctx)
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s", ErrDuplicateKey, what)
		}
		return fmt.Errorf("failed to create %s: %w", what, err)
	}

	sql := `INSERT INTO auth_users (id, email, password_hash, created_at) VALUES ($1, $2, $3, $4)`
	if _, err := tx.Exec(ctx, sql, identity.ID, identity.Email, identity.PasswordHash, identity.CreatedAt); err != nil {
		return fail(err, "identity")
	}

	sql = `INSERT INTO admins (user_id, username, full_name, email, role, created_at)
           VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	err = tx.QueryRow(ctx, sql, identity.ID, account.Username, account.FullName, account.Email, account.Role, account.CreatedAt).Scan(&account.ID)
	if err != nil {
		return fail(err, "admin account")
	}
	account.UserID = identity.ID

	sql = `INSERT INTO user_roles (user_id, role) VALUES ($1, $2) ON CONFLICT (user_id, role) DO NOTHING`
	if _, err := tx.Exec(ctx, sql, identity.ID, grantRole); err != nil {
		return fail(err, "role grant")
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit admin: %w", err)
	}
	return nil
}

// Delete removes the admin's identity; the profile, grants and sessions cascade
func (r *adminRepository) Delete(ctx context.Context, id int64) error {
	sql := `DELETE FROM auth_users WHERE id = (SELECT user_id FROM admins WHERE id = $1)`
	cmdTag, err := r.db.Exec(ctx, sql, id)
	if err != nil {
		return fmt.Errorf("failed to delete admin: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
