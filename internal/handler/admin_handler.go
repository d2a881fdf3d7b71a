package handler

import (
	"net/http"
	"strconv"

	"pijat_jogja/internal/middleware"
	"pijat_jogja/internal/model"
	"pijat_jogja/internal/service"

	"github.com/gin-gonic/gin"
)

const msgConfirmDeleteAdmin = "Apakah Anda yakin ingin menghapus admin ini?"

// AdminHandler handles admin account management
type AdminHandler struct {
	service service.AdminService
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(s service.AdminService) *AdminHandler {
	return &AdminHandler{service: s}
}

func (h *AdminHandler) ListAdmins(c *gin.Context) {
	admins, err := h.service.List(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": admins})
}

func (h *AdminHandler) CreateAdmin(c *gin.Context) {
	var req model.CreateAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	account, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Admin berhasil ditambahkan", "data": account})
}

func (h *AdminHandler) DeleteAdmin(c *gin.Context) {
	adminID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid admin ID"})
		return
	}
	if !confirmed(c) {
		c.JSON(http.StatusPreconditionRequired, gin.H{"error": msgConfirmDeleteAdmin})
		return
	}

	if err := h.service.Delete(c.Request.Context(), adminID, c.GetString(middleware.AuthUserKey)); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Admin berhasil dihapus"})
}

// RegisterAdminRoutes registers admin account routes
func (h *AdminHandler) RegisterAdminRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc, adminMW gin.HandlerFunc) {
	adminRoutes := rg.Group("/admins")
	adminRoutes.Use(authMW)
	adminRoutes.Use(adminMW)
	{
		adminRoutes.GET("", h.ListAdmins)
		adminRoutes.POST("", h.CreateAdmin)
		adminRoutes.DELETE("/:id", h.DeleteAdmin)
	}
}
