package service

import (
	"context"
	"errors"
	"fmt"

	"pijat_jogja/internal/model"
	"pijat_jogja/internal/notify"
	"pijat_jogja/internal/repository"
	"pijat_jogja/internal/utils"

	"github.com/google/uuid"
)

const (
	MsgPackageNameRequired     = "Nama paket tidak boleh kosong"
	MsgPackagePriceRequired    = "Harga paket tidak boleh kosong"
	MsgPackageDurationRequired = "Durasi paket tidak boleh kosong"
)

// PricingService manages the price packages shown on the landing page
type PricingService interface {
	List(ctx context.Context) ([]model.PricingPackage, error)
	Get(ctx context.Context, id string) (*model.PricingPackage, error)
	Create(ctx context.Context, req model.CreatePackageRequest) (*model.PricingPackage, error)
	Save(ctx context.Context, id string, req model.UpdatePackageRequest) (*model.PricingPackage, error)
	SetPopular(ctx context.Context, id string, popular bool) (*model.PricingPackage, error)
	Delete(ctx context.Context, id string) error
}

type pricingService struct {
	repo     repository.PricingRepository
	notifier notify.Notifier
	// exclusivePopular clears the flag on other packages when one is marked popular
	exclusivePopular bool
}

// NewPricingService creates a new PricingService
func NewPricingService(repo repository.PricingRepository, notifier notify.Notifier, exclusivePopular bool) PricingService {
	return &pricingService{repo: repo, notifier: notifier, exclusivePopular: exclusivePopular}
}

func validatePackage(name, price, duration string) error {
	switch {
	case utils.IsBlank(name):
		return invalid(MsgPackageNameRequired)
	case utils.IsBlank(price):
		return invalid(MsgPackagePriceRequired)
	case utils.IsBlank(duration):
		return invalid(MsgPackageDurationRequired)
	}
	return nil
}

func (s *pricingService) List(ctx context.Context) ([]model.PricingPackage, error) {
	packages, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pricing packages: %w", err)
	}
	return packages, nil
}

func (s *pricingService) Get(ctx context.Context, id string) (*model.PricingPackage, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get pricing package: %w", err)
	}
	if p == nil {
		return nil, ErrPackageNotFound
	}
	return p, nil
}

func (s *pricingService) Create(ctx context.Context, req model.CreatePackageRequest) (*model.PricingPackage, error) {
	if err := validatePackage(req.Name, req.Price, req.Duration); err != nil {
		return nil, err
	}

	p := &model.PricingPackage{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Price:     req.Price,
		Duration:  req.Duration,
		Features:  model.NonBlankFeatures(req.Features),
		Popular:   req.Popular,
		SortOrder: req.SortOrder,
	}
	if err := s.repo.Create(ctx, p, s.exclusivePopular); err != nil {
		return nil, fmt.Errorf("failed to create pricing package: %w", err)
	}

	publish(ctx, s.notifier, notify.TopicPricingChanged)
	return p, nil
}

// Save sends the full replacement of a package. Blank features are dropped,
// so a draft holding only blank lines persists an empty list.
func (s *pricingService) Save(ctx context.Context, id string, req model.UpdatePackageRequest) (*model.PricingPackage, error) {
	if err := validatePackage(req.Name, req.Price, req.Duration); err != nil {
		return nil, err
	}

	p := &model.PricingPackage{
		ID:       id,
		Name:     req.Name,
		Price:    req.Price,
		Duration: req.Duration,
		Features: model.NonBlankFeatures(req.Features),
		Popular:  req.Popular,
	}
	if err := s.repo.Update(ctx, p, s.exclusivePopular); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPackageNotFound
		}
		return nil, fmt.Errorf("failed to save pricing package: %w", err)
	}

	publish(ctx, s.notifier, notify.TopicPricingChanged)
	return p, nil
}

func (s *pricingService) SetPopular(ctx context.Context, id string, popular bool) (*model.PricingPackage, error) {
	p, err := s.repo.SetPopular(ctx, id, popular, s.exclusivePopular)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPackageNotFound
		}
		return nil, fmt.Errorf("failed to set popular flag: %w", err)
	}

	publish(ctx, s.notifier, notify.TopicPricingChanged)
	return p, nil
}

func (s *pricingService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrPackageNotFound
		}
		return fmt.Errorf("failed to delete pricing package: %w", err)
	}

	publish(ctx, s.notifier, notify.TopicPricingChanged)
	return nil
}
