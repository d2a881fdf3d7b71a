package handler

import (
	"net/http"

	"pijat_jogja/internal/model"
	"pijat_jogja/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	msgSettingsSaved = "Pengaturan berhasil disimpan!"
	msgFooterSaved   = "Footer berhasil disimpan"
)

// ContentHandler handles the admin write routes for settings and footer
type ContentHandler struct {
	settings service.SettingsService
	footer   service.FooterService
}

// NewContentHandler creates a new ContentHandler
func NewContentHandler(settings service.SettingsService, footer service.FooterService) *ContentHandler {
	return &ContentHandler{settings: settings, footer: footer}
}

func (h *ContentHandler) UpdateSettings(c *gin.Context) {
	var req model.SiteSettings
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	saved, err := h.settings.Save(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": msgSettingsSaved, "data": saved})
}

func (h *ContentHandler) UpdateFooter(c *gin.Context) {
	var req model.FooterSettings
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	saved, err := h.footer.Save(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": msgFooterSaved, "data": saved})
}

// RegisterContentRoutes registers settings and footer write routes
func (h *ContentHandler) RegisterContentRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc, adminMW gin.HandlerFunc) {
	adminRoutes := rg.Group("/admin")
	adminRoutes.Use(authMW)
	adminRoutes.Use(adminMW)
	{
		adminRoutes.PUT("/settings", h.UpdateSettings)
		adminRoutes.PUT("/footer", h.UpdateFooter)
	}
}
