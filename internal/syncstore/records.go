package syncstore

import (
	"context"
	"time"

	"pijat_jogja/internal/model"
	"pijat_jogja/internal/notify"
	"pijat_jogja/internal/repository"
)

const (
	SettingsEmptyWarning = "Tabel settings kosong. Silakan isi data atau jalankan SQL insert default."
	FooterEmptyWarning   = "Data footer belum diisi, menggunakan data default."

	SettingsSchedule = "@every 30s"
)

type (
	SettingsStore = Store[model.SiteSettings]
	FooterStore   = Store[model.FooterSettings]
)

// NewSettingsStore folds the settings rows onto the default record.
// reloaded may be nil; otherwise it receives settings-changed after each signal-driven reload.
func NewSettingsStore(repo repository.SettingsRepository, n, reloaded notify.Notifier, timeout time.Duration) *SettingsStore {
	return New(Config[model.SiteSettings]{
		Name: "settings",
		Load: func(ctx context.Context) (model.SiteSettings, error) {
			rows, err := repo.List(ctx)
			if err != nil {
				return model.SiteSettings{}, err
			}
			if len(rows) == 0 {
				return model.SiteSettings{}, ErrEmpty
			}
			return model.FoldSettings(rows), nil
		},
		Default:      model.DefaultSiteSettings,
		EmptyWarning: SettingsEmptyWarning,
		Schedule:     SettingsSchedule,
		Topic:        notify.TopicSettingsChanged,
		Notifier:     n,
		Reloaded:     reloaded,
		Timeout:      timeout,
	})
}

// NewFooterStore has no timer; it reloads on footer-changed only
func NewFooterStore(repo repository.FooterRepository, n, reloaded notify.Notifier, timeout time.Duration) *FooterStore {
	return New(Config[model.FooterSettings]{
		Name: "footer",
		Load: func(ctx context.Context) (model.FooterSettings, error) {
			f, err := repo.Get(ctx)
			if err != nil {
				return model.FooterSettings{}, err
			}
			if f == nil {
				return model.FooterSettings{}, ErrEmpty
			}
			return f.WithDefaults(), nil
		},
		Default:      model.DefaultFooterSettings,
		EmptyWarning: FooterEmptyWarning,
		Topic:        notify.TopicFooterChanged,
		Notifier:     n,
		Reloaded:     reloaded,
		Timeout:      timeout,
	})
}
