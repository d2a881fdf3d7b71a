package handler

import (
	"pijat_jogja/internal/model"
	"pijat_jogja/internal/syncstore"
)

// Dashboard tabs
const (
	TabSettings = "settings"
	TabFooter   = "footer"
	TabPricing  = "pricing"
)

// LandingView is the data of landing.html
type LandingView struct {
	Settings     syncstore.Snapshot[model.SiteSettings]
	Footer       syncstore.Snapshot[model.FooterSettings]
	Packages     []model.PricingPackage
	Features     []Card
	Services     []Card
	Testimonials []Testimonial
	Steps        []Card
	FAQ          []QA
}

// LoginView is the data of login.html
type LoginView struct {
	Error string
	Email string
}

// AdminView is the data of admin.html
type AdminView struct {
	Tab           string
	User          *model.CurrentUser
	Success       string
	Error         string
	Warning       string
	Settings      model.SiteSettings
	Footer        model.FooterSettings
	Packages      []model.PricingPackage
	Draft         *model.PackageDraft
	ConfirmDelete *model.PricingPackage
}

func normalizeTab(tab string) string {
	switch tab {
	case TabFooter, TabPricing:
		return tab
	default:
		return TabSettings
	}
}

// savedMessages maps the ?saved= marker of a redirect to its banner
var savedMessages = map[string]string{
	"settings": msgSettingsSaved,
	"footer":   msgFooterSaved,
	"package":  "Perubahan berhasil disimpan",
	"created":  "Paket berhasil ditambahkan",
	"deleted":  "Paket berhasil dihapus",
}
