package unit

import (
	"context"

	"github.com/stretchr/testify/mock"

	"propdesk-backend/internal/domain"
)

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) Update(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) List(ctx context.Context, role string, page, pageSize int32) ([]domain.User, int32, error) {
	args := m.Called(ctx, role, page, pageSize)
	return args.Get(0).([]domain.User), args.Get(1).(int32), args.Error(2)
}
func (m *MockUserRepo) Search(ctx context.Context, query string) ([]domain.User, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]domain.User), args.Error(1)
}
func (m *MockUserRepo) GetPermissions(ctx context.Context, userID int32) ([]domain.PermissionGrant, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.PermissionGrant), args.Error(1)
}
func (m *MockUserRepo) SetPermissions(ctx context.Context, userID int32, grants []domain.PermissionGrant) error {
	args := m.Called(ctx, userID, grants)
	return args.Error(0)
}

// MockPropertyRepo
type MockPropertyRepo struct {
	mock.Mock
}

func (m *MockPropertyRepo) Create(ctx context.Context, property *domain.Property) error {
	args := m.Called(ctx, property)
	return args.Error(0)
}
func (m *MockPropertyRepo) GetByID(ctx context.Context, id int32) (*domain.Property, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Property), args.Error(1)
}
func (m *MockPropertyRepo) Update(ctx context.Context, property *domain.Property) error {
	args := m.Called(ctx, property)
	return args.Error(0)
}
func (m *MockPropertyRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockPropertyRepo) List(ctx context.Context, profileType string, page, pageSize int32) ([]domain.Property, int32, error) {
	args := m.Called(ctx, profileType, page, pageSize)
	return args.Get(0).([]domain.Property), args.Get(1).(int32), args.Error(2)
}
func (m *MockPropertyRepo) ListByOwner(ctx context.Context, ownerID int32) ([]domain.Property, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]domain.Property), args.Error(1)
}

// MockCondominiumRepo
type MockCondominiumRepo struct {
	mock.Mock
}

func (m *MockCondominiumRepo) Create(ctx context.Context, condo *domain.Condominium) error {
	args := m.Called(ctx, condo)
	return args.Error(0)
}
func (m *MockCondominiumRepo) GetByID(ctx context.Context, id int32) (*domain.Condominium, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Condominium), args.Error(1)
}
func (m *MockCondominiumRepo) Update(ctx context.Context, condo *domain.Condominium) error {
	args := m.Called(ctx, condo)
	return args.Error(0)
}
func (m *MockCondominiumRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockCondominiumRepo) List(ctx context.Context) ([]domain.Condominium, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Condominium), args.Error(1)
}

// MockTenantRepo
type MockTenantRepo struct {
	mock.Mock
}

func (m *MockTenantRepo) Create(ctx context.Context, tenant *domain.Tenant) error {
	args := m.Called(ctx, tenant)
	return args.Error(0)
}
func (m *MockTenantRepo) GetByID(ctx context.Context, id int32) (*domain.Tenant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tenant), args.Error(1)
}
func (m *MockTenantRepo) Update(ctx context.Context, tenant *domain.Tenant) error {
	args := m.Called(ctx, tenant)
	return args.Error(0)
}
func (m *MockTenantRepo) ListByProperty(ctx context.Context, propertyID int32) ([]domain.Tenant, error) {
	args := m.Called(ctx, propertyID)
	return args.Get(0).([]domain.Tenant), args.Error(1)
}
func (m *MockTenantRepo) List(ctx context.Context, status string, page, pageSize int32) ([]domain.Tenant, int32, error) {
	args := m.Called(ctx, status, page, pageSize)
	return args.Get(0).([]domain.Tenant), args.Get(1).(int32), args.Error(2)
}
func (m *MockTenantRepo) ListRenewalCandidates(ctx context.Context) ([]domain.RenewalCandidate, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.RenewalCandidate), args.Error(1)
}
func (m *MockTenantRepo) UpdateNegotiationStatus(ctx context.Context, tenantID int32, status domain.NegotiationStatus, log *domain.NegotiationLog) error {
	args := m.Called(ctx, tenantID, status, log)
	return args.Error(0)
}
func (m *MockTenantRepo) CloseNegotiation(ctx context.Context, tenantID int32, newValueCents int32, newStart, newEnd string, doc *domain.Document, log *domain.NegotiationLog) (*domain.Tenant, error) {
	args := m.Called(ctx, tenantID, newValueCents, newStart, newEnd, doc, log)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tenant), args.Error(1)
}
func (m *MockTenantRepo) ListDocuments(ctx context.Context, tenantID int32) ([]domain.Document, error) {
	args := m.Called(ctx, tenantID)
	return args.Get(0).([]domain.Document), args.Error(1)
}
func (m *MockTenantRepo) ListNegotiationLogs(ctx context.Context, tenantID int32) ([]domain.NegotiationLog, error) {
	args := m.Called(ctx, tenantID)
	return args.Get(0).([]domain.NegotiationLog), args.Error(1)
}

// MockTaskRepo
type MockTaskRepo struct {
	mock.Mock
}

func (m *MockTaskRepo) Create(ctx context.Context, task *domain.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}
func (m *MockTaskRepo) GetByID(ctx context.Context, id int32) (*domain.Task, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Task), args.Error(1)
}
func (m *MockTaskRepo) Update(ctx context.Context, task *domain.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}
func (m *MockTaskRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockTaskRepo) List(ctx context.Context, propertyID, assigneeID int32, status string, page, pageSize int32) ([]domain.Task, int32, error) {
	args := m.Called(ctx, propertyID, assigneeID, status, page, pageSize)
	return args.Get(0).([]domain.Task), args.Get(1).(int32), args.Error(2)
}
func (m *MockTaskRepo) ListRecurringCompleted(ctx context.Context, asOfDate string) ([]domain.Task, error) {
	args := m.Called(ctx, asOfDate)
	return args.Get(0).([]domain.Task), args.Error(1)
}
func (m *MockTaskRepo) AddImage(ctx context.Context, image *domain.TaskImage) error {
	args := m.Called(ctx, image)
	return args.Error(0)
}
func (m *MockTaskRepo) ListImages(ctx context.Context, taskID int32) ([]domain.TaskImage, error) {
	args := m.Called(ctx, taskID)
	return args.Get(0).([]domain.TaskImage), args.Error(1)
}

// MockPartnerRepo
type MockPartnerRepo struct {
	mock.Mock
}

func (m *MockPartnerRepo) Create(ctx context.Context, partner *domain.Partner) error {
	args := m.Called(ctx, partner)
	return args.Error(0)
}
func (m *MockPartnerRepo) GetByID(ctx context.Context, id int32) (*domain.Partner, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Partner), args.Error(1)
}
func (m *MockPartnerRepo) GetByUserID(ctx context.Context, userID int32) (*domain.Partner, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Partner), args.Error(1)
}
func (m *MockPartnerRepo) Update(ctx context.Context, partner *domain.Partner) error {
	args := m.Called(ctx, partner)
	return args.Error(0)
}
func (m *MockPartnerRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockPartnerRepo) List(ctx context.Context) ([]domain.Partner, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Partner), args.Error(1)
}

// MockLedgerRepo
type MockLedgerRepo struct {
	mock.Mock
}

func (m *MockLedgerRepo) CreateEntry(ctx context.Context, entry *domain.LedgerEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}
func (m *MockLedgerRepo) List(ctx context.Context, propertyID int32, entryType string, page, pageSize int32) ([]domain.LedgerEntry, int32, error) {
	args := m.Called(ctx, propertyID, entryType, page, pageSize)
	return args.Get(0).([]domain.LedgerEntry), args.Get(1).(int32), args.Error(2)
}
func (m *MockLedgerRepo) GetSummary(ctx context.Context, propertyID int32, from, to string) (*domain.LedgerSummary, error) {
	args := m.Called(ctx, propertyID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerSummary), args.Error(1)
}

// MockSettingsRepo
type MockSettingsRepo struct {
	mock.Mock
}

func (m *MockSettingsRepo) GetFinancialSettings(ctx context.Context) (*domain.FinancialSettings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FinancialSettings), args.Error(1)
}
func (m *MockSettingsRepo) UpdateFinancialSettings(ctx context.Context, settings *domain.FinancialSettings) error {
	args := m.Called(ctx, settings)
	return args.Error(0)
}
func (m *MockSettingsRepo) ListServiceRates(ctx context.Context) ([]domain.ServiceRate, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.ServiceRate), args.Error(1)
}
func (m *MockSettingsRepo) GetServiceRate(ctx context.Context, id int32) (*domain.ServiceRate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ServiceRate), args.Error(1)
}
func (m *MockSettingsRepo) CreateServiceRate(ctx context.Context, rate *domain.ServiceRate) error {
	args := m.Called(ctx, rate)
	return args.Error(0)
}
func (m *MockSettingsRepo) UpdateServiceRate(ctx context.Context, rate *domain.ServiceRate) error {
	args := m.Called(ctx, rate)
	return args.Error(0)
}

// MockNotificationRepo
type MockNotificationRepo struct {
	mock.Mock
}

func (m *MockNotificationRepo) Create(ctx context.Context, note *domain.Notification) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}
func (m *MockNotificationRepo) List(ctx context.Context, userID int32, limit, offset int32) ([]domain.Notification, int32, error) {
	args := m.Called(ctx, userID, limit, offset)
	return args.Get(0).([]domain.Notification), args.Get(1).(int32), args.Error(2)
}
func (m *MockNotificationRepo) MarkAsRead(ctx context.Context, id, userID int32) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendAccountStatusNotification(ctx context.Context, email, name, status, reason string) error {
	args := m.Called(ctx, email, name, status, reason)
	return args.Error(0)
}
func (m *MockEmailService) SendTaskAssignmentNotification(ctx context.Context, email, partnerName, taskTitle, propertyName, date string) error {
	args := m.Called(ctx, email, partnerName, taskTitle, propertyName, date)
	return args.Error(0)
}
func (m *MockEmailService) SendTaskCompletionNotification(ctx context.Context, email, taskTitle string, billableCents int32) error {
	args := m.Called(ctx, email, taskTitle, billableCents)
	return args.Error(0)
}
func (m *MockEmailService) SendRenewalReminder(ctx context.Context, email, ownerName, propertyName, tenantName, leaseEnd string, daysLeft int) error {
	args := m.Called(ctx, email, ownerName, propertyName, tenantName, leaseEnd, daysLeft)
	return args.Error(0)
}
