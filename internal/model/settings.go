package model

import (
	"regexp"
	"strings"
	"time"
)

// Setting keys stored in the settings table
const (
	SettingSiteName    = "site_name"
	SettingWANumber    = "wa_number"
	SettingAutoMessage = "auto_message"
)

// WANumberPattern is the accepted WhatsApp number format: 62 followed by 9-13 digits
var WANumberPattern = regexp.MustCompile(`^62\d{9,13}$`)

// SettingRow is one key/value row of the settings table
type SettingRow struct {
	Key   string `json:"setting_key"`
	Value string `json:"setting_value"`
}

// SiteSettings is the folded key/value settings record
type SiteSettings struct {
	SiteName    string `json:"site_name" form:"site_name"`
	WANumber    string `json:"wa_number" form:"wa_number"`
	AutoMessage string `json:"auto_message" form:"auto_message"`
}

// DefaultSiteSettings returns the record published when the gateway has nothing usable.
func DefaultSiteSettings() SiteSettings {
	return SiteSettings{
		SiteName:    "Pijat Panggilan Jogja",
		WANumber:    "6281234567890",
		AutoMessage: "Halo, saya ingin memesan layanan pijat",
	}
}

// FoldSettings applies key/value rows on top of the default record.
// Unknown keys are ignored.
func FoldSettings(rows []SettingRow) SiteSettings {
	s := DefaultSiteSettings()
	for _, row := range rows {
		switch row.Key {
		case SettingSiteName:
			s.SiteName = row.Value
		case SettingWANumber:
			s.WANumber = row.Value
		case SettingAutoMessage:
			s.AutoMessage = row.Value
		}
	}
	return s
}

// Rows flattens the record back into key/value rows, in a stable order.
func (s SiteSettings) Rows() []SettingRow {
	return []SettingRow{
		{Key: SettingSiteName, Value: s.SiteName},
		{Key: SettingWANumber, Value: s.WANumber},
		{Key: SettingAutoMessage, Value: s.AutoMessage},
	}
}

// Trimmed returns a copy with surrounding whitespace removed from every field.
func (s SiteSettings) Trimmed() SiteSettings {
	return SiteSettings{
		SiteName:    strings.TrimSpace(s.SiteName),
		WANumber:    strings.TrimSpace(s.WANumber),
		AutoMessage: strings.TrimSpace(s.AutoMessage),
	}
}

// WANumberValid reports whether the stored number matches WANumberPattern.
// Data read from the database is never rejected for failing this check.
func (s SiteSettings) WANumberValid() bool {
	return WANumberPattern.MatchString(s.WANumber)
}

// FooterSettings is the single footer_settings row
type FooterSettings struct {
	ID               int64     `json:"id,omitempty"`
	SiteName         string    `json:"site_name" form:"site_name"`
	SiteDescription  string    `json:"site_description" form:"site_description"`
	WANumber         string    `json:"wa_number" form:"wa_number"`
	WAMessage        string    `json:"wa_message" form:"wa_message"`
	PhoneDisplay     string    `json:"phone_display" form:"phone_display"`
	Email            string    `json:"email" form:"email"`
	Alamat           string    `json:"alamat" form:"alamat"`
	InstagramURL     string    `json:"instagram_url" form:"instagram_url"`
	CopyrightText    string    `json:"copyright_text" form:"copyright_text"`
	CopyrightSubtext string    `json:"copyright_subtext" form:"copyright_subtext"`
	CreatedAt        time.Time `json:"created_at,omitempty"`
	UpdatedAt        time.Time `json:"updated_at,omitempty"`
}

// DefaultFooterSettings returns the footer published when no row is available.
func DefaultFooterSettings() FooterSettings {
	return FooterSettings{
		SiteName:         "Pijat Jogja",
		SiteDescription:  "Layanan pijat panggilan profesional area Yogyakarta. Terapis bersertifikat, layanan 24 jam, harga terjangkau.",
		WANumber:         "6281234567890",
		WAMessage:        "Halo, saya ingin memesan layanan pijat panggilan.",
		PhoneDisplay:     "+62 812-3456-7890",
		Email:            "info@pijatjogja.com",
		Alamat:           "Yogyakarta, Indonesia",
		InstagramURL:     "https://instagram.com/pijatjogja",
		CopyrightText:    "PijatJogja.com - All rights reserved",
		CopyrightSubtext: "Layanan Pijat Panggilan Profesional Area Yogyakarta",
	}
}

// WithDefaults fills blank fields from the default footer, field by field.
func (f FooterSettings) WithDefaults() FooterSettings {
	d := DefaultFooterSettings()
	pick := func(v, fallback string) string {
		if strings.TrimSpace(v) == "" {
			return fallback
		}
		return v
	}
	f.SiteName = pick(f.SiteName, d.SiteName)
	f.SiteDescription = pick(f.SiteDescription, d.SiteDescription)
	f.WANumber = pick(f.WANumber, d.WANumber)
	f.WAMessage = pick(f.WAMessage, d.WAMessage)
	f.PhoneDisplay = pick(f.PhoneDisplay, d.PhoneDisplay)
	f.Email = pick(f.Email, d.Email)
	f.Alamat = pick(f.Alamat, d.Alamat)
	f.InstagramURL = pick(f.InstagramURL, d.InstagramURL)
	f.CopyrightText = pick(f.CopyrightText, d.CopyrightText)
	f.CopyrightSubtext = pick(f.CopyrightSubtext, d.CopyrightSubtext)
	return f
}

// Trimmed returns a copy with surrounding whitespace removed from the editable fields.
func (f FooterSettings) Trimmed() FooterSettings {
	f.SiteName = strings.TrimSpace(f.SiteName)
	f.SiteDescription = strings.TrimSpace(f.SiteDescription)
	f.WANumber = strings.TrimSpace(f.WANumber)
	f.WAMessage = strings.TrimSpace(f.WAMessage)
	f.PhoneDisplay = strings.TrimSpace(f.PhoneDisplay)
	f.Email = strings.TrimSpace(f.Email)
	f.Alamat = strings.TrimSpace(f.Alamat)
	f.InstagramURL = strings.TrimSpace(f.InstagramURL)
	f.CopyrightText = strings.TrimSpace(f.CopyrightText)
	f.CopyrightSubtext = strings.TrimSpace(f.CopyrightSubtext)
	return f
}

// DialNumber strips every non-digit, for use in deep links.
func (f FooterSettings) DialNumber() string {
	var b strings.Builder
	for _, r := range f.WANumber {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
