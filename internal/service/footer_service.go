package service

import (
	"context"
	"fmt"

	"pijat_jogja/internal/model"
	"pijat_jogja/internal/notify"
	"pijat_jogja/internal/repository"
	"pijat_jogja/internal/utils"
)

// FooterService is the admin write path of the footer
type FooterService interface {
	Save(ctx context.Context, footer model.FooterSettings) (*model.FooterSettings, error)
}

type footerService struct {
	repo     repository.FooterRepository
	notifier notify.Notifier
}

// NewFooterService creates a new FooterService
func NewFooterService(repo repository.FooterRepository, notifier notify.Notifier) FooterService {
	return &footerService{repo: repo, notifier: notifier}
}

// Save updates the footer row, inserting it on first save
func (s *footerService) Save(ctx context.Context, footer model.FooterSettings) (*model.FooterSettings, error) {
	footer = footer.Trimmed()
	if utils.IsBlank(footer.SiteName) {
		return nil, invalid(MsgFooterNameRequired)
	}

	if err := s.repo.Upsert(ctx, &footer); err != nil {
		return nil, fmt.Errorf("failed to save footer: %w", err)
	}

	publish(ctx, s.notifier, notify.TopicFooterChanged)
	return &footer, nil
}
