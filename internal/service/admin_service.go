package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"pijat_jogja/internal/model"
	"pijat_jogja/internal/repository"
	"pijat_jogja/internal/utils"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// AdminService manages admin accounts
type AdminService interface {
	List(ctx context.Context) ([]model.AdminAccount, error)
	Create(ctx context.Context, req model.CreateAdminRequest) (*model.AdminAccount, error)
	Delete(ctx context.Context, id int64, actorUserID string) error
}

type adminService struct {
	repo repository.AdminRepository
}

// NewAdminService creates a new AdminService
func NewAdminService(repo repository.AdminRepository) AdminService {
	return &adminService{repo: repo}
}

func (s *adminService) List(ctx context.Context) ([]model.AdminAccount, error) {
	admins, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list admins: %w", err)
	}
	return admins, nil
}

// Create registers the credential, the profile and the admin grant together
func (s *adminService) Create(ctx context.Context, req model.CreateAdminRequest) (*model.AdminAccount, error) {
	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	role := req.Role
	if role == "" {
		role = model.RoleAdmin
	}

	now := time.Now()
	email := strings.ToLower(strings.TrimSpace(req.Email))
	identity := &model.Identity{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hashedPassword,
		CreatedAt:    now,
	}
	account := &model.AdminAccount{
		Username:  strings.TrimSpace(req.Username),
		FullName:  strings.TrimSpace(req.FullName),
		Email:     email,
		Role:      role,
		CreatedAt: now,
	}

	// Every account, super admins included, needs the admin grant to sign in.
	if err := s.repo.Create(ctx, identity, account, model.RoleAdmin); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrAdminAlreadyExists
		}
		return nil, fmt.Errorf("failed to create admin: %w", err)
	}

	log.Info().Int64("admin_id", account.ID).Str("username", account.Username).Msg("Admin created")
	return account, nil
}

func (s *adminService) Delete(ctx context.Context, id int64, actorUserID string) error {
	account, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to find admin: %w", err)
	}
	if account == nil {
		return ErrAdminNotFound
	}
	if account.UserID == actorUserID {
		return ErrCannotDeleteSelf
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrAdminNotFound
		}
		return fmt.Errorf("failed to delete admin: %w", err)
	}

	log.Info().Int64("admin_id", id).Str("deleted_by", actorUserID).Msg("Admin deleted")
	return nil
}
