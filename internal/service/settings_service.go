package service

import (
	"context"
	"fmt"

	"pijat_jogja/internal/model"
	"pijat_jogja/internal/notify"
	"pijat_jogja/internal/repository"
	"pijat_jogja/internal/utils"

	"github.com/rs/zerolog/log"
)

const (
	MsgSiteNameRequired   = "Nama website tidak boleh kosong"
	MsgWANumberRequired   = "Nomor WhatsApp tidak boleh kosong"
	MsgWANumberInvalid    = "Format nomor WhatsApp tidak valid. Harus diawali 62 dan tanpa spasi/karakter khusus"
	MsgFooterNameRequired = "Nama website footer tidak boleh kosong"
)

// SettingsService is the admin write path of the site settings
type SettingsService interface {
	Save(ctx context.Context, settings model.SiteSettings) (model.SiteSettings, error)
}

type settingsService struct {
	repo     repository.SettingsRepository
	notifier notify.Notifier
}

// NewSettingsService creates a new SettingsService
func NewSettingsService(repo repository.SettingsRepository, notifier notify.Notifier) SettingsService {
	return &settingsService{repo: repo, notifier: notifier}
}

// ValidateSettings checks a trimmed record; the first failing rule wins
func ValidateSettings(s model.SiteSettings) error {
	switch {
	case utils.IsBlank(s.SiteName):
		return invalid(MsgSiteNameRequired)
	case utils.IsBlank(s.WANumber):
		return invalid(MsgWANumberRequired)
	case !utils.IsValidWANumber(s.WANumber):
		return invalid(MsgWANumberInvalid)
	}
	return nil
}

// Save validates, writes all keys in one transaction and announces the change
func (s *settingsService) Save(ctx context.Context, settings model.SiteSettings) (model.SiteSettings, error) {
	settings = settings.Trimmed()
	if err := ValidateSettings(settings); err != nil {
		return settings, err
	}

	if err := s.repo.SaveAll(ctx, settings.Rows()); err != nil {
		return settings, fmt.Errorf("failed to save settings: %w", err)
	}

	publish(ctx, s.notifier, notify.TopicSettingsChanged)
	return settings, nil
}

// publish announces a completed write; a relay failure does not undo the write
func publish(ctx context.Context, n notify.Notifier, topic notify.Topic) {
	if n == nil {
		return
	}
	if err := n.Publish(ctx, notify.NewSignal(topic)); err != nil {
		log.Warn().Err(err).Str("topic", string(topic)).Msg("Failed to publish change signal")
	}
}
