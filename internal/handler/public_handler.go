package handler

import (
	"net/http"

	"pijat_jogja/internal/model"
	"pijat_jogja/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// PublicHandler serves the cached site content as JSON
type PublicHandler struct {
	settings SettingsReader
	footer   FooterReader
	pricing  service.PricingService
}

// NewPublicHandler creates a new PublicHandler
func NewPublicHandler(settings SettingsReader, footer FooterReader, pricing service.PricingService) *PublicHandler {
	return &PublicHandler{settings: settings, footer: footer, pricing: pricing}
}

func (h *PublicHandler) GetSettings(c *gin.Context) {
	c.JSON(http.StatusOK, h.settings.Snapshot())
}

func (h *PublicHandler) GetFooter(c *gin.Context) {
	c.JSON(http.StatusOK, h.footer.Snapshot())
}

// GetPricing never fails the page: on error it returns an empty list with the message
func (h *PublicHandler) GetPricing(c *gin.Context) {
	packages, err := h.pricing.List(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("Error loading pricing")
		c.JSON(http.StatusOK, gin.H{"data": []model.PricingPackage{}, "error": "Gagal mengambil data pricing"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": packages})
}

// RegisterPublicRoutes registers the unauthenticated read routes
func (h *PublicHandler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/settings", h.GetSettings)
	rg.GET("/footer", h.GetFooter)
	rg.GET("/pricing", h.GetPricing)
}
