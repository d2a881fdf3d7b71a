package service

import (
	"context"

	"pijat_jogja/internal/model"
	"pijat_jogja/internal/notify"

	"github.com/stretchr/testify/mock"
)

type mockSettingsRepo struct{ mock.Mock }

func (m *mockSettingsRepo) List(ctx context.Context) ([]model.SettingRow, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]model.SettingRow)
	return rows, args.Error(1)
}

func (m *mockSettingsRepo) SaveAll(ctx context.Context, rows []model.SettingRow) error {
	return m.Called(ctx, rows).Error(0)
}

type mockFooterRepo struct{ mock.Mock }

func (m *mockFooterRepo) Get(ctx context.Context) (*model.FooterSettings, error) {
	args := m.Called(ctx)
	f, _ := args.Get(0).(*model.FooterSettings)
	return f, args.Error(1)
}

func (m *mockFooterRepo) Upsert(ctx context.Context, footer *model.FooterSettings) error {
	return m.Called(ctx, footer).Error(0)
}

type mockPricingRepo struct{ mock.Mock }

func (m *mockPricingRepo) List(ctx context.Context) ([]model.PricingPackage, error) {
	args := m.Called(ctx)
	packages, _ := args.Get(0).([]model.PricingPackage)
	return packages, args.Error(1)
}

func (m *mockPricingRepo) FindByID(ctx context.Context, id string) (*model.PricingPackage, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*model.PricingPackage)
	return p, args.Error(1)
}

func (m *mockPricingRepo) Create(ctx context.Context, p *model.PricingPackage, clearOtherPopular bool) error {
	return m.Called(ctx, p, clearOtherPopular).Error(0)
}

func (m *mockPricingRepo) Update(ctx context.Context, p *model.PricingPackage, clearOtherPopular bool) error {
	return m.Called(ctx, p, clearOtherPopular).Error(0)
}

func (m *mockPricingRepo) SetPopular(ctx context.Context, id string, popular bool, clearOtherPopular bool) (*model.PricingPackage, error) {
	args := m.Called(ctx, id, popular, clearOtherPopular)
	p, _ := args.Get(0).(*model.PricingPackage)
	return p, args.Error(1)
}

func (m *mockPricingRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type mockAuthRepo struct{ mock.Mock }

func (m *mockAuthRepo) FindIdentityByEmail(ctx context.Context, email string) (*model.Identity, error) {
	args := m.Called(ctx, email)
	identity, _ := args.Get(0).(*model.Identity)
	return identity, args.Error(1)
}

func (m *mockAuthRepo) CreateSession(ctx context.Context, session *model.Session) error {
	return m.Called(ctx, session).Error(0)
}

func (m *mockAuthRepo) RevokeSession(ctx context.Context, sessionID string) error {
	return m.Called(ctx, sessionID).Error(0)
}

func (m *mockAuthRepo) HasRole(ctx context.Context, userID, role string) (bool, error) {
	args := m.Called(ctx, userID, role)
	return args.Bool(0), args.Error(1)
}

func (m *mockAuthRepo) ResolveSession(ctx context.Context, sessionID, role string) (*model.CurrentUser, error) {
	args := m.Called(ctx, sessionID, role)
	user, _ := args.Get(0).(*model.CurrentUser)
	return user, args.Error(1)
}

type mockAdminRepo struct{ mock.Mock }

func (m *mockAdminRepo) List(ctx context.Context) ([]model.AdminAccount, error) {
	args := m.Called(ctx)
	admins, _ := args.Get(0).([]model.AdminAccount)
	return admins, args.Error(1)
}

func (m *mockAdminRepo) FindByID(ctx context.Context, id int64) (*model.AdminAccount, error) {
	args := m.Called(ctx, id)
	a, _ := args.Get(0).(*model.AdminAccount)
	return a, args.Error(1)
}

func (m *mockAdminRepo) Create(ctx context.Context, identity *model.Identity, account *model.AdminAccount, grantRole string) error {
	return m.Called(ctx, identity, account, grantRole).Error(0)
}

func (m *mockAdminRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

// recordingNotifier remembers published topics
type recordingNotifier struct {
	topics []notify.Topic
	err    error
}

func (r *recordingNotifier) Publish(ctx context.Context, sig notify.Signal) error {
	r.topics = append(r.topics, sig.Topic)
	return r.err
}

func (r *recordingNotifier) Subscribe(topic notify.Topic) (<-chan notify.Signal, func()) {
	ch := make(chan notify.Signal)
	return ch, func() {}
}
