package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// SignalServer streams change signals to a browser tab
type SignalServer interface {
	Serve(w http.ResponseWriter, r *http.Request) error
}

// SignalHandler exposes the change-signal feed over WebSocket
type SignalHandler struct {
	hub SignalServer
}

// NewSignalHandler creates a new SignalHandler
func NewSignalHandler(hub SignalServer) *SignalHandler {
	return &SignalHandler{hub: hub}
}

func (h *SignalHandler) Stream(c *gin.Context) {
	if err := h.hub.Serve(c.Writer, c.Request); err != nil {
		log.Warn().Err(err).Msg("Failed to open signal stream")
	}
}

// RegisterSignalRoutes registers the signal feed
func (h *SignalHandler) RegisterSignalRoutes(rg *gin.RouterGroup) {
	rg.GET("/signals/ws", h.Stream)
}
