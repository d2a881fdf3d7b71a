package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pijat_jogja/internal/model"
	"pijat_jogja/internal/repository"
	"pijat_jogja/internal/utils"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// AuthService guards the admin area: sign-in, sign-out and session resolution.
// Resolution fails closed: any error means "not authenticated".
type AuthService interface {
	Login(ctx context.Context, email, password string) (*model.CurrentUser, string, error)
	Logout(ctx context.Context, token string)
	IsAuthenticated(ctx context.Context, token string) bool
	CurrentUser(ctx context.Context, token string) *model.CurrentUser
	TokenTTL() time.Duration
}

type authService struct {
	repo    repository.AuthRepository
	jwtUtil *utils.JWTUtil
}

// NewAuthService creates a new AuthService
func NewAuthService(repo repository.AuthRepository, jwtUtil *utils.JWTUtil) AuthService {
	return &authService{repo: repo, jwtUtil: jwtUtil}
}

func (s *authService) TokenTTL() time.Duration {
	return s.jwtUtil.TTL()
}

// Login verifies the credentials, opens a session and then requires the admin grant.
// A session opened for a non-admin identity is revoked before returning.
func (s *authService) Login(ctx context.Context, email, password string) (*model.CurrentUser, string, error) {
	identity, err := s.repo.FindIdentityByEmail(ctx, email)
	if err != nil {
		return nil, "", fmt.Errorf("error finding identity by email: %w", err)
	}
	if identity == nil || !utils.CheckPasswordHash(password, identity.PasswordHash) {
		return nil, "", ErrInvalidCredentials
	}

	now := time.Now()
	session := &model.Session{
		ID:        uuid.NewString(),
		UserID:    identity.ID,
		CreatedAt: now,
		ExpiresAt: now.Add(s.jwtUtil.TTL()),
	}
	if err := s.repo.CreateSession(ctx, session); err != nil {
		return nil, "", fmt.Errorf("failed to open session: %w", err)
	}

	isAdmin, err := s.repo.HasRole(ctx, identity.ID, model.RoleAdmin)
	if err != nil || !isAdmin {
		if err != nil {
			log.Error().Err(err).Str("user_id", identity.ID).Msg("Admin grant check failed")
		}
		s.revoke(ctx, session.ID)
		return nil, "", ErrNoAdminAccess
	}

	// Same resolution as CurrentUser, so both return the same summary
	user, err := s.repo.ResolveSession(ctx, session.ID, model.RoleAdmin)
	if err != nil {
		s.revoke(ctx, session.ID)
		return nil, "", fmt.Errorf("failed to resolve new session: %w", err)
	}
	if user == nil {
		s.revoke(ctx, session.ID)
		return nil, "", ErrNoAdminAccess
	}

	token, err := s.jwtUtil.GenerateToken(session.ID, identity.ID, model.RoleAdmin)
	if err != nil {
		s.revoke(ctx, session.ID)
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	log.Info().Str("user_id", identity.ID).Msg("Admin signed in")
	return user, token, nil
}

// Logout is best effort
func (s *authService) Logout(ctx context.Context, token string) {
	claims, err := s.jwtUtil.ValidateToken(token)
	if err != nil {
		log.Debug().Err(err).Msg("Logout with unusable token")
		return
	}
	s.revoke(ctx, claims.ID)
}

func (s *authService) IsAuthenticated(ctx context.Context, token string) bool {
	return s.CurrentUser(ctx, token) != nil
}

// CurrentUser resolves the token's session and admin grant with one query
func (s *authService) CurrentUser(ctx context.Context, token string) *model.CurrentUser {
	if token == "" {
		return nil
	}
	claims, err := s.jwtUtil.ValidateToken(token)
	if err != nil {
		log.Debug().Err(err).Msg("Rejected session token")
		return nil
	}

	user, err := s.repo.ResolveSession(ctx, claims.ID, model.RoleAdmin)
	if err != nil {
		log.Error().Err(err).Str("session_id", claims.ID).Msg("Session resolution failed")
		return nil
	}
	return user
}

func (s *authService) revoke(ctx context.Context, sessionID string) {
	if err := s.repo.RevokeSession(ctx, sessionID); err != nil && !errors.Is(err, repository.ErrNotFound) {
		log.Error().Err(err).Str("session_id", sessionID).Msg("Failed to revoke session")
	}
}
