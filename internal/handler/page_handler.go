package handler

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"pijat_jogja/internal/middleware"
	"pijat_jogja/internal/model"
	"pijat_jogja/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const (
	actionAddFeature    = "add_feature"
	actionRemoveFeature = "remove_feature:"
	actionSave          = "save"
)

// PageHandler renders the landing page and the admin dashboard
type PageHandler struct {
	settings       SettingsReader
	footer         FooterReader
	pricing        service.PricingService
	settingsWriter service.SettingsService
	footerWriter   service.FooterService
	auth           service.AuthService
	secureCookie   bool
}

// PageDeps groups the collaborators of PageHandler
type PageDeps struct {
	Settings       SettingsReader
	Footer         FooterReader
	Pricing        service.PricingService
	SettingsWriter service.SettingsService
	FooterWriter   service.FooterService
	Auth           service.AuthService
	SecureCookie   bool
}

// NewPageHandler creates a new PageHandler
func NewPageHandler(deps PageDeps) *PageHandler {
	return &PageHandler{
		settings:       deps.Settings,
		footer:         deps.Footer,
		pricing:        deps.Pricing,
		settingsWriter: deps.SettingsWriter,
		footerWriter:   deps.FooterWriter,
		auth:           deps.Auth,
		secureCookie:   deps.SecureCookie,
	}
}

func (h *PageHandler) Landing(c *gin.Context) {
	packages, err := h.pricing.List(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("Error loading pricing for landing page")
		packages = []model.PricingPackage{}
	}

	c.HTML(http.StatusOK, "landing.html", LandingView{
		Settings:     h.settings.Snapshot(),
		Footer:       h.footer.Snapshot(),
		Packages:     packages,
		Features:     landingFeatures,
		Services:     landingServices,
		Testimonials: landingTestimonials,
		Steps:        landingSteps,
		FAQ:          landingFAQ,
	})
}

func (h *PageHandler) LoginPage(c *gin.Context) {
	if token, err := c.Cookie(middleware.SessionCookieName); err == nil && h.auth.IsAuthenticated(c.Request.Context(), token) {
		c.Redirect(http.StatusSeeOther, "/admin")
		return
	}
	c.HTML(http.StatusOK, "login.html", LoginView{})
}

func (h *PageHandler) Login(c *gin.Context) {
	email := strings.TrimSpace(c.PostForm("email"))
	password := c.PostForm("password")

	_, token, err := h.auth.Login(c.Request.Context(), email, password)
	if err != nil {
		status := http.StatusInternalServerError
		msg := msgServerError
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			status, msg = http.StatusUnauthorized, err.Error()
		case errors.Is(err, service.ErrNoAdminAccess):
			status, msg = http.StatusForbidden, err.Error()
		default:
			log.Error().Err(err).Msg("Error during page login")
		}
		c.HTML(status, "login.html", LoginView{Error: msg, Email: email})
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookieName, token, int(h.auth.TokenTTL().Seconds()), "/", "", h.secureCookie, true)
	c.Redirect(http.StatusSeeOther, "/admin")
}

func (h *PageHandler) Logout(c *gin.Context) {
	if token, err := c.Cookie(middleware.SessionCookieName); err == nil {
		h.auth.Logout(c.Request.Context(), token)
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", h.secureCookie, true)
	c.Redirect(http.StatusSeeOther, middleware.LoginPath)
}

// Dashboard renders one tab, refetching its record first
func (h *PageHandler) Dashboard(c *gin.Context) {
	view := h.dashboardView(c, normalizeTab(c.Query("tab")))
	view.Success = savedMessages[c.Query("saved")]

	if view.Tab == TabPricing {
		if id := c.Query("edit"); id != "" {
			if p := findPackage(view.Packages, id); p != nil {
				view.Draft = model.NewPackageDraft(*p)
			}
		}
		if id := c.Query("delete"); id != "" {
			view.ConfirmDelete = findPackage(view.Packages, id)
		}
	}

	c.HTML(http.StatusOK, "admin.html", view)
}

func (h *PageHandler) SaveSettings(c *gin.Context) {
	var form model.SiteSettings
	if err := c.ShouldBind(&form); err != nil {
		c.String(http.StatusBadRequest, "Invalid form")
		return
	}

	if _, err := h.settingsWriter.Save(c.Request.Context(), form); err != nil {
		view := h.baseView(c, TabSettings)
		view.Settings = form
		h.renderFailure(c, view, err, "Gagal menyimpan pengaturan")
		return
	}
	redirectSaved(c, TabSettings, "settings")
}

func (h *PageHandler) SaveFooter(c *gin.Context) {
	var form model.FooterSettings
	if err := c.ShouldBind(&form); err != nil {
		c.String(http.StatusBadRequest, "Invalid form")
		return
	}

	if _, err := h.footerWriter.Save(c.Request.Context(), form); err != nil {
		view := h.baseView(c, TabFooter)
		view.Footer = form
		h.renderFailure(c, view, err, "Gagal menyimpan footer")
		return
	}
	redirectSaved(c, TabFooter, "footer")
}

func (h *PageHandler) CreatePackage(c *gin.Context) {
	sortOrder, err := strconv.Atoi(strings.TrimSpace(c.DefaultPostForm("sort_order", "0")))
	if err != nil {
		sortOrder = 0
	}
	req := model.CreatePackageRequest{
		Name:      c.PostForm("name"),
		Price:     c.PostForm("price"),
		Duration:  c.PostForm("duration"),
		Features:  strings.Split(c.PostForm("features_text"), "\n"),
		Popular:   c.PostForm("popular") == "true",
		SortOrder: sortOrder,
	}
	for i, f := range req.Features {
		req.Features[i] = strings.TrimSpace(f)
	}

	if _, err := h.pricing.Create(c.Request.Context(), req); err != nil {
		h.renderFailure(c, h.dashboardView(c, TabPricing), err, "Gagal menambahkan paket")
		return
	}
	redirectSaved(c, TabPricing, "created")
}

// EditPackage applies one draft action: add or remove a feature line, or save
func (h *PageHandler) EditPackage(c *gin.Context) {
	var draft model.PackageDraft
	if err := c.ShouldBind(&draft); err != nil {
		c.String(http.StatusBadRequest, "Invalid form")
		return
	}
	draft.ID = c.Param("id")

	view := h.dashboardView(c, TabPricing)
	view.Draft = &draft

	action := c.PostForm("action")
	switch {
	case action == actionAddFeature:
		draft.AddFeature()
		c.HTML(http.StatusOK, "admin.html", view)
		return
	case strings.HasPrefix(action, actionRemoveFeature):
		idx, err := strconv.Atoi(strings.TrimPrefix(action, actionRemoveFeature))
		if err == nil {
			err = draft.RemoveFeature(idx)
		}
		if err != nil {
			view.Error = "Fitur tidak ditemukan"
			c.HTML(http.StatusBadRequest, "admin.html", view)
			return
		}
		c.HTML(http.StatusOK, "admin.html", view)
		return
	case action == "" || action == actionSave:
	default:
		c.String(http.StatusBadRequest, "Unknown action")
		return
	}

	if _, err := h.pricing.Save(c.Request.Context(), draft.ID, draft.UpdateRequest()); err != nil {
		h.renderFailure(c, view, err, "Gagal menyimpan paket")
		return
	}
	redirectSaved(c, TabPricing, "package")
}

// DeletePackage removes a package once the confirmation form was submitted
func (h *PageHandler) DeletePackage(c *gin.Context) {
	id := c.Param("id")
	if c.PostForm("confirm") != "true" {
		c.Redirect(http.StatusSeeOther, "/admin?tab=pricing&delete="+url.QueryEscape(id))
		return
	}

	if err := h.pricing.Delete(c.Request.Context(), id); err != nil {
		h.renderFailure(c, h.dashboardView(c, TabPricing), err, "Gagal menghapus paket")
		return
	}
	redirectSaved(c, TabPricing, "deleted")
}

func (h *PageHandler) baseView(c *gin.Context, tab string) AdminView {
	return AdminView{Tab: tab, User: middleware.GetCurrentUser(c)}
}

// dashboardView loads the record shown by tab
func (h *PageHandler) dashboardView(c *gin.Context, tab string) AdminView {
	view := h.baseView(c, tab)
	ctx := c.Request.Context()

	switch tab {
	case TabSettings:
		snap := h.settings.Refresh(ctx)
		view.Settings, view.Error, view.Warning = snap.Value, snap.Error, snap.Warning
	case TabFooter:
		snap := h.footer.Refresh(ctx)
		view.Footer, view.Error, view.Warning = snap.Value, snap.Error, snap.Warning
	case TabPricing:
		packages, err := h.pricing.List(ctx)
		if err != nil {
			log.Error().Err(err).Msg("Error loading pricing for dashboard")
			view.Error = "Gagal mengambil data pricing"
			packages = []model.PricingPackage{}
		}
		view.Packages = packages
	}
	return view
}

// renderFailure re-renders the form with the error banner
func (h *PageHandler) renderFailure(c *gin.Context, view AdminView, err error, fallback string) {
	var vErr *service.ValidationError
	switch {
	case errors.As(err, &vErr):
		view.Error = vErr.Message
		c.HTML(http.StatusUnprocessableEntity, "admin.html", view)
	case errors.Is(err, service.ErrPackageNotFound):
		view.Error = err.Error()
		view.Draft = nil
		c.HTML(http.StatusNotFound, "admin.html", view)
	default:
		log.Error().Err(err).Str("path", c.Request.URL.Path).Msg(fallback)
		view.Error = fallback
		c.HTML(http.StatusInternalServerError, "admin.html", view)
	}
}

func redirectSaved(c *gin.Context, tab, marker string) {
	c.Redirect(http.StatusSeeOther, "/admin?tab="+tab+"&saved="+marker)
}

func findPackage(packages []model.PricingPackage, id string) *model.PricingPackage {
	for i := range packages {
		if packages[i].ID == id {
			return &packages[i]
		}
	}
	return nil
}

// RegisterPageRoutes registers the HTML routes; dashboard routes sit behind pageAuthMW
func (h *PageHandler) RegisterPageRoutes(rg *gin.RouterGroup, pageAuthMW gin.HandlerFunc) {
	rg.GET("/", h.Landing)
	rg.GET("/admin/login", h.LoginPage)
	rg.POST("/admin/login", h.Login)
	rg.POST("/admin/logout", h.Logout)

	dashboard := rg.Group("/admin")
	dashboard.Use(pageAuthMW)
	{
		dashboard.GET("", h.Dashboard)
		dashboard.POST("/settings", h.SaveSettings)
		dashboard.POST("/footer", h.SaveFooter)
		dashboard.POST("/pricing", h.CreatePackage)
		dashboard.POST("/pricing/:id", h.EditPackage)
		dashboard.POST("/pricing/:id/delete", h.DeletePackage)
	}
}
