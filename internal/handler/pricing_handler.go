package handler

import (
	"net/http"

	"pijat_jogja/internal/model"
	"pijat_jogja/internal/service"

	"github.com/gin-gonic/gin"
)

const msgConfirmDeletePackage = "Apakah Anda yakin ingin menghapus paket ini?"

// PricingHandler handles the admin pricing package routes
type PricingHandler struct {
	service service.PricingService
}

// NewPricingHandler creates a new PricingHandler
func NewPricingHandler(s service.PricingService) *PricingHandler {
	return &PricingHandler{service: s}
}

func (h *PricingHandler) ListPackages(c *gin.Context) {
	packages, err := h.service.List(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": packages})
}

func (h *PricingHandler) GetPackage(c *gin.Context) {
	p, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": p})
}

func (h *PricingHandler) CreatePackage(c *gin.Context) {
	var req model.CreatePackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	p, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Paket berhasil ditambahkan", "data": p})
}

// UpdatePackage takes the full replacement of a package
func (h *PricingHandler) UpdatePackage(c *gin.Context) {
	var req model.UpdatePackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	p, err := h.service.Save(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Perubahan berhasil disimpan", "data": p})
}

func (h *PricingHandler) SetPopular(c *gin.Context) {
	var req struct {
		Popular *bool `json:"popular" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	p, err := h.service.SetPopular(c.Request.Context(), c.Param("id"), *req.Popular)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": p})
}

func (h *PricingHandler) DeletePackage(c *gin.Context) {
	if !confirmed(c) {
		c.JSON(http.StatusPreconditionRequired, gin.H{"error": msgConfirmDeletePackage})
		return
	}

	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Paket berhasil dihapus"})
}

// RegisterPricingRoutes registers the admin pricing routes
func (h *PricingHandler) RegisterPricingRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc, adminMW gin.HandlerFunc) {
	pricingRoutes := rg.Group("/admin/pricing")
	pricingRoutes.Use(authMW)
	pricingRoutes.Use(adminMW)
	{
		pricingRoutes.GET("", h.ListPackages)
		pricingRoutes.POST("", h.CreatePackage)
		pricingRoutes.GET("/:id", h.GetPackage)
		pricingRoutes.PUT("/:id", h.UpdatePackage)
		pricingRoutes.PATCH("/:id/popular", h.SetPopular)
		pricingRoutes.DELETE("/:id", h.DeletePackage)
	}
}
