package repository

import (
	"context"
	"errors"
	"fmt"

	"pijat_jogja/internal/model"

	"github.com/jackc/pgx/v5"
)

// AuthRepository defines operations of the auth subsystem: identities, sessions and role grants
type AuthRepository interface {
	FindIdentityByEmail(ctx context.Context, email string) (*model.Identity, error)
	CreateSession(ctx context.Context, session *model.Session) error
	RevokeSession(ctx context.Context, sessionID string) error
	HasRole(ctx context.Context, userID, role string) (bool, error)
	ResolveSession(ctx context.Context, sessionID, role string) (*model.CurrentUser, error)
}

type authRepository struct {
	db DB
}

// NewAuthRepository creates a new AuthRepository
func NewAuthRepository(db DB) AuthRepository {
	return &authRepository{db: db}
}

// FindIdentityByEmail retrieves a credential record by email
func (r *authRepository) FindIdentityByEmail(ctx context.Context, email string) (*model.Identity, error) {
	identity := &model.Identity{}
	sql := `SELECT id, email, password_hash, created_at FROM auth_users WHERE lower(email) = lower($1)`
	err := r.db.QueryRow(ctx, sql, email).Scan(&identity.ID, &identity.Email, &identity.PasswordHash, &identity.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Identity not found is not an error for this method's contract, service layer handles it
		}
		return nil, fmt.Errorf("failed to find identity by email: %w", err)
	}
	return identity, nil
}

// CreateSession inserts a new login session
func (r *authRepository) CreateSession(ctx context.Context, s *model.Session) error {
	sql := `INSERT INTO sessions (id, user_id, created_at, expires_at) VALUES ($1, $2, $3, $4)`
	if _, err := r.db.Exec(ctx, sql, s.ID, s.UserID, s.CreatedAt, s.ExpiresAt); err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	return nil
}

// RevokeSession marks a session as signed out
func (r *authRepository) RevokeSession(ctx context.Context, sessionID string) error {
	sql := `UPDATE sessions SET revoked_at = NOW() WHERE id = $1 AND revoked_at IS NULL`
	cmdTag, err := r.db.Exec(ctx, sql, sessionID)
	if err != nil {
		return fmt.Errorf("failed to revoke session: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// HasRole reports whether a role grant exists for the identity
func (r *authRepository) HasRole(ctx context.Context, userID, role string) (bool, error) {
	var exists bool
	sql := `SELECT EXISTS (SELECT 1 FROM user_roles WHERE user_id = $1 AND role = $2)`
	if err := r.db.QueryRow(ctx, sql, userID, role).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check role grant: %w", err)
	}
	return exists, nil
}

// ResolveSession resolves a live session together with the required role grant in one query.
// It returns nil when the session is unknown, revoked, expired, or the grant is missing.
func (r *authRepository) ResolveSession(ctx context.Context, sessionID, role string) (*model.CurrentUser, error) {
	user := &model.CurrentUser{}
	sql := `SELECT u.id, u.email, COALESCE(a.username, ''), COALESCE(a.full_name, ''), g.role
            FROM sessions s
            JOIN auth_users u ON u.id = s.user_id
            JOIN user_roles g ON g.user_id = u.id AND g.role = $2
            LEFT JOIN admins a ON a.user_id = u.id
            WHERE s.id = $1 AND s.revoked_at IS NULL AND s.expires_at > NOW()`
	err := r.db.QueryRow(ctx, sql, sessionID, role).Scan(&user.ID, &user.Email, &user.Username, &user.FullName, &user.Role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to resolve session: %w", err)
	}
	return user, nil
}
