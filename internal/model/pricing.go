package model

import (
	"errors"
	"strings"
	"time"
)

// ErrFeatureIndex is returned when a feature index is outside the draft's list
var ErrFeatureIndex = errors.New("feature index out of range")

// PricingPackage represents a price package shown on the landing page
type PricingPackage struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Price     string    `json:"price"`    // display string, e.g. "Rp 150.000"
	Duration  string    `json:"duration"` // display string, e.g. "90 menit"
	Features  []string  `json:"features"`
	Popular   bool      `json:"popular"`
	SortOrder int       `json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreatePackageRequest is used for creating a new package
type CreatePackageRequest struct {
	Name      string   `json:"name" binding:"required"`
	Price     string   `json:"price" binding:"required"`
	Duration  string   `json:"duration" binding:"required"`
	Features  []string `json:"features"`
	Popular   bool     `json:"popular"`
	SortOrder int      `json:"sort_order"`
}

// UpdatePackageRequest is the full replacement sent when a draft is saved
type UpdatePackageRequest struct {
	Name     string   `json:"name"`
	Price    string   `json:"price"`
	Duration string   `json:"duration"`
	Features []string `json:"features"`
	Popular  bool     `json:"popular"`
}

// PackageDraft is the local edit state of one package.
// Feature operations are index based: removing shifts later indices down.
type PackageDraft struct {
	ID       string   `form:"id"`
	Name     string   `form:"name"`
	Price    string   `form:"price"`
	Duration string   `form:"duration"`
	Features []string `form:"features"`
	Popular  bool     `form:"popular"`
}

// NewPackageDraft starts a draft from a persisted package.
func NewPackageDraft(p PricingPackage) *PackageDraft {
	features := make([]string, len(p.Features))
	copy(features, p.Features)
	return &PackageDraft{
		ID:       p.ID,
		Name:     p.Name,
		Price:    p.Price,
		Duration: p.Duration,
		Features: features,
		Popular:  p.Popular,
	}
}

// AddFeature appends an empty feature line.
func (d *PackageDraft) AddFeature() {
	d.Features = append(d.Features, "")
}

// SetFeature overwrites the feature at index i.
func (d *PackageDraft) SetFeature(i int, value string) error {
	if i < 0 || i >= len(d.Features) {
		return ErrFeatureIndex
	}
	d.Features[i] = value
	return nil
}

// RemoveFeature deletes the feature at index i.
func (d *PackageDraft) RemoveFeature(i int) error {
	if i < 0 || i >= len(d.Features) {
		return ErrFeatureIndex
	}
	updated := make([]string, 0, len(d.Features)-1)
	updated = append(updated, d.Features[:i]...)
	updated = append(updated, d.Features[i+1:]...)
	d.Features = updated
	return nil
}

// UpdateRequest builds the replacement payload. Blank features are dropped.
func (d *PackageDraft) UpdateRequest() UpdatePackageRequest {
	return UpdatePackageRequest{
		Name:     d.Name,
		Price:    d.Price,
		Duration: d.Duration,
		Features: NonBlankFeatures(d.Features),
		Popular:  d.Popular,
	}
}

// NonBlankFeatures returns the features that are not blank, in order.
// The result is never nil so it persists as an empty list.
func NonBlankFeatures(features []string) []string {
	out := make([]string, 0, len(features))
	for _, f := range features {
		if strings.TrimSpace(f) != "" {
			out = append(out, f)
		}
	}
	return out
}
