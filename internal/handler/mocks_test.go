package handler

import (
	"context"
	"testing"
	"time"

	"pijat_jogja/internal/middleware"
	"pijat_jogja/internal/model"
	"pijat_jogja/internal/syncstore"
	"pijat_jogja/internal/web"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type mockPricingService struct{ mock.Mock }

func (m *mockPricingService) List(ctx context.Context) ([]model.PricingPackage, error) {
	args := m.Called(ctx)
	packages, _ := args.Get(0).([]model.PricingPackage)
	return packages, args.Error(1)
}

func (m *mockPricingService) Get(ctx context.Context, id string) (*model.PricingPackage, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*model.PricingPackage)
	return p, args.Error(1)
}

func (m *mockPricingService) Create(ctx context.Context, req model.CreatePackageRequest) (*model.PricingPackage, error) {
	args := m.Called(ctx, req)
	p, _ := args.Get(0).(*model.PricingPackage)
	return p, args.Error(1)
}

func (m *mockPricingService) Save(ctx context.Context, id string, req model.UpdatePackageRequest) (*model.PricingPackage, error) {
	args := m.Called(ctx, id, req)
	p, _ := args.Get(0).(*model.PricingPackage)
	return p, args.Error(1)
}

func (m *mockPricingService) SetPopular(ctx context.Context, id string, popular bool) (*model.PricingPackage, error) {
	args := m.Called(ctx, id, popular)
	p, _ := args.Get(0).(*model.PricingPackage)
	return p, args.Error(1)
}

func (m *mockPricingService) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type mockAuthService struct{ mock.Mock }

func (m *mockAuthService) Login(ctx context.Context, email, password string) (*model.CurrentUser, string, error) {
	args := m.Called(ctx, email, password)
	u, _ := args.Get(0).(*model.CurrentUser)
	return u, args.String(1), args.Error(2)
}

func (m *mockAuthService) Logout(ctx context.Context, token string) {
	m.Called(ctx, token)
}

func (m *mockAuthService) IsAuthenticated(ctx context.Context, token string) bool {
	return m.Called(ctx, token).Bool(0)
}

func (m *mockAuthService) CurrentUser(ctx context.Context, token string) *model.CurrentUser {
	u, _ := m.Called(ctx, token).Get(0).(*model.CurrentUser)
	return u
}

func (m *mockAuthService) TokenTTL() time.Duration {
	return 24 * time.Hour
}

type mockSettingsService struct{ mock.Mock }

func (m *mockSettingsService) Save(ctx context.Context, s model.SiteSettings) (model.SiteSettings, error) {
	args := m.Called(ctx, s)
	saved, _ := args.Get(0).(model.SiteSettings)
	return saved, args.Error(1)
}

type mockFooterService struct{ mock.Mock }

func (m *mockFooterService) Save(ctx context.Context, f model.FooterSettings) (*model.FooterSettings, error) {
	args := m.Called(ctx, f)
	saved, _ := args.Get(0).(*model.FooterSettings)
	return saved, args.Error(1)
}

type mockAdminService struct{ mock.Mock }

func (m *mockAdminService) List(ctx context.Context) ([]model.AdminAccount, error) {
	args := m.Called(ctx)
	admins, _ := args.Get(0).([]model.AdminAccount)
	return admins, args.Error(1)
}

func (m *mockAdminService) Create(ctx context.Context, req model.CreateAdminRequest) (*model.AdminAccount, error) {
	args := m.Called(ctx, req)
	a, _ := args.Get(0).(*model.AdminAccount)
	return a, args.Error(1)
}

func (m *mockAdminService) Delete(ctx context.Context, id int64, actorUserID string) error {
	return m.Called(ctx, id, actorUserID).Error(0)
}

type fakeSettings struct {
	snap      syncstore.Snapshot[model.SiteSettings]
	refreshes int
}

func (f *fakeSettings) Snapshot() syncstore.Snapshot[model.SiteSettings] { return f.snap }

func (f *fakeSettings) Refresh(ctx context.Context) syncstore.Snapshot[model.SiteSettings] {
	f.refreshes++
	return f.snap
}

type fakeFooter struct {
	snap      syncstore.Snapshot[model.FooterSettings]
	refreshes int
}

func (f *fakeFooter) Snapshot() syncstore.Snapshot[model.FooterSettings] { return f.snap }

func (f *fakeFooter) Refresh(ctx context.Context) syncstore.Snapshot[model.FooterSettings] {
	f.refreshes++
	return f.snap
}

func loadedSettings() *fakeSettings {
	return &fakeSettings{snap: syncstore.Snapshot[model.SiteSettings]{Value: model.DefaultSiteSettings()}}
}

func loadedFooter() *fakeFooter {
	return &fakeFooter{snap: syncstore.Snapshot[model.FooterSettings]{Value: model.DefaultFooterSettings()}}
}

var testAdmin = &model.CurrentUser{ID: "user-1", Email: "admin@pijat.id", Role: model.RoleAdmin}

// asAdmin stands in for the session middleware
func asAdmin(c *gin.Context) {
	c.Set(middleware.AuthUserKey, testAdmin.ID)
	c.Set(middleware.AuthRoleKey, testAdmin.Role)
	c.Set(middleware.AuthTokenKey, "token-1")
	c.Set(middleware.CurrentUserKey, testAdmin)
	c.Next()
}

func passAdmin(c *gin.Context) { c.Next() }

func newHTMLRouter(t *testing.T) *gin.Engine {
	t.Helper()
	tmpl, err := web.Templates()
	require.NoError(t, err)
	router := gin.New()
	router.SetHTMLTemplate(tmpl)
	return router
}
