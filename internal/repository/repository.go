package repository

import (
	"context"
	"errors"

	"propdesk-backend/internal/domain"
)

// ErrNotFound is returned when a lookup misses. Services surface it as a
// not-found signal rather than a crash.
var ErrNotFound = errors.New("record not found")

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	List(ctx context.Context, role string, page, pageSize int32) ([]domain.User, int32, error)
	Search(ctx context.Context, query string) ([]domain.User, error)

	// Permission grants. SetPermissions replaces the whole grant list in one
	// transaction, keeping the one-entry-per-resource invariant in the table.
	GetPermissions(ctx context.Context, userID int32) ([]domain.PermissionGrant, error)
	SetPermissions(ctx context.Context, userID int32, grants []domain.PermissionGrant) error
}

type PropertyRepository interface {
	Create(ctx context.Context, property *domain.Property) error
	GetByID(ctx context.Context, id int32) (*domain.Property, error)
	Update(ctx context.Context, property *domain.Property) error
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context, profileType string, page, pageSize int32) ([]domain.Property, int32, error)
	ListByOwner(ctx context.Context, ownerID int32) ([]domain.Property, error)
}

type CondominiumRepository interface {
	Create(ctx context.Context, condo *domain.Condominium) error
	GetByID(ctx context.Context, id int32) (*domain.Condominium, error)
	Update(ctx context.Context, condo *domain.Condominium) error
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context) ([]domain.Condominium, error)
}

type TenantRepository interface {
	Create(ctx context.Context, tenant *domain.Tenant) error
	GetByID(ctx context.Context, id int32) (*domain.Tenant, error)
	Update(ctx context.Context, tenant *domain.Tenant) error
	ListByProperty(ctx context.Context, propertyID int32) ([]domain.Tenant, error)
	List(ctx context.Context, status string, page, pageSize int32) ([]domain.Tenant, int32, error)

	// Renewal board queries: active long-term tenants (plus closed ones for
	// history) joined with property and owner.
	ListRenewalCandidates(ctx context.Context) ([]domain.RenewalCandidate, error)

	UpdateNegotiationStatus(ctx context.Context, tenantID int32, status domain.NegotiationStatus, log *domain.NegotiationLog) error
	// CloseNegotiation applies the new lease terms, the contract document and
	// a negotiation-log entry in a single transaction. On failure the tenant
	// row is unchanged.
	CloseNegotiation(ctx context.Context, tenantID int32, newValueCents int32, newStart, newEnd string, doc *domain.Document, log *domain.NegotiationLog) (*domain.Tenant, error)

	ListDocuments(ctx context.Context, tenantID int32) ([]domain.Document, error)
	ListNegotiationLogs(ctx context.Context, tenantID int32) ([]domain.NegotiationLog, error)
}

type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) error
	GetByID(ctx context.Context, id int32) (*domain.Task, error)
	Update(ctx context.Context, task *domain.Task) error
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context, propertyID, assigneeID int32, status string, page, pageSize int32) ([]domain.Task, int32, error)
	ListRecurringCompleted(ctx context.Context, asOfDate string) ([]domain.Task, error)

	AddImage(ctx context.Context, image *domain.TaskImage) error
	ListImages(ctx context.Context, taskID int32) ([]domain.TaskImage, error)
}

type PartnerRepository interface {
	Create(ctx context.Context, partner *domain.Partner) error
	GetByID(ctx context.Context, id int32) (*domain.Partner, error)
	GetByUserID(ctx context.Context, userID int32) (*domain.Partner, error)
	Update(ctx context.Context, partner *domain.Partner) error
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context) ([]domain.Partner, error)
}

type LedgerRepository interface {
	CreateEntry(ctx context.Context, entry *domain.LedgerEntry) error
	List(ctx context.Context, propertyID int32, entryType string, page, pageSize int32) ([]domain.LedgerEntry, int32, error)
	GetSummary(ctx context.Context, propertyID int32, from, to string) (*domain.LedgerSummary, error)
}

type SettingsRepository interface {
	GetFinancialSettings(ctx context.Context) (*domain.FinancialSettings, error)
	UpdateFinancialSettings(ctx context.Context, settings *domain.FinancialSettings) error

	ListServiceRates(ctx context.Context) ([]domain.ServiceRate, error)
	GetServiceRate(ctx context.Context, id int32) (*domain.ServiceRate, error)
	CreateServiceRate(ctx context.Context, rate *domain.ServiceRate) error
	UpdateServiceRate(ctx context.Context, rate *domain.ServiceRate) error
}

type MessageRepository interface {
	Create(ctx context.Context, msg *domain.Message) error
	ListByUser(ctx context.Context, userID int32, page, pageSize int32) ([]domain.Message, int32, error)
	MarkAsRead(ctx context.Context, id, userID int32) error
}

type NotificationRepository interface {
	Create(ctx context.Context, note *domain.Notification) error
	List(ctx context.Context, userID int32, limit, offset int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, id, userID int32) error
}
