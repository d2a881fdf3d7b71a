package handler

import (
	"context"
	"errors"
	"net/http"

	"pijat_jogja/internal/model"
	"pijat_jogja/internal/service"
	"pijat_jogja/internal/syncstore"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// SettingsReader is the view side of the settings store
type SettingsReader interface {
	Snapshot() syncstore.Snapshot[model.SiteSettings]
	Refresh(ctx context.Context) syncstore.Snapshot[model.SiteSettings]
}

// FooterReader is the view side of the footer store
type FooterReader interface {
	Snapshot() syncstore.Snapshot[model.FooterSettings]
	Refresh(ctx context.Context) syncstore.Snapshot[model.FooterSettings]
}

const msgServerError = "Terjadi kesalahan pada server"

// writeServiceError maps service errors to JSON responses
func writeServiceError(c *gin.Context, err error) {
	var vErr *service.ValidationError
	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Message})
	case errors.Is(err, service.ErrPackageNotFound), errors.Is(err, service.ErrAdminNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrAdminAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrCannotDeleteSelf):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgServerError})
	}
}

// confirmed reports whether a destructive request carries ?confirm=true
func confirmed(c *gin.Context) bool {
	return c.Query("confirm") == "true"
}
