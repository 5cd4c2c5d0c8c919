package service

import (
	"context"
	"fmt"
	"strings"

	"propdesk-backend/internal/domain"
	"propdesk-backend/internal/utils"
)

// FieldError is a single rejected input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries field-level rejections. It is raised before any
// mutation reaches the store; no partial state is ever written.
type ValidationError struct {
	Fields []FieldError `json:"fields"`
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

type AuthService interface {
	Login(ctx context.Context, email, password string) (string, string, *domain.User, error) // access, refresh
	RefreshToken(ctx context.Context, refresh string) (string, string, error)
	Logout(ctx context.Context, refresh string) error
}

type UserService interface {
	CreateUser(ctx context.Context, user *domain.User, password string) error
	GetProfile(ctx context.Context, userID int32) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID int32, name, email, phone, avatarURL string) error
	ApproveUser(ctx context.Context, userID int32) error
	BlockUser(ctx context.Context, userID int32, isBlock bool, reason string) error
	SetPermissions(ctx context.Context, userID int32, grants []domain.PermissionGrant) error
	ListUsers(ctx context.Context, role string, page, pageSize int32) ([]domain.User, int32, error)
	SearchUsers(ctx context.Context, query string) ([]domain.User, error)
}

type TaskService interface {
	CreateTask(ctx context.Context, task *domain.Task) (*domain.Task, error)
	GetTask(ctx context.Context, id int32) (*domain.Task, []domain.TaskImage, error)
	UpdateTask(ctx context.Context, task *domain.Task) (*domain.Task, error)
	DeleteTask(ctx context.Context, id int32) error
	// ListTasks scopes results to the caller's partner company when the
	// user holds a partner portal role; other roles see the raw filters.
	ListTasks(ctx context.Context, user *domain.User, propertyID, assigneeID int32, status string, page, pageSize int32) ([]domain.Task, int32, error)

	StartTask(ctx context.Context, taskID int32) (*domain.Task, error)
	ReviewTask(ctx context.Context, taskID int32, target domain.TaskStatus) (*domain.Task, error)
	CompleteTask(ctx context.Context, taskID int32) (*domain.Task, error)
	AttachImage(ctx context.Context, taskID, uploadedBy int32, fileName, mimeType string) (*domain.TaskImage, error)
}

// Renewal is one row on the renewals board: the candidate plus its urgency
// classification.
type Renewal struct {
	domain.RenewalCandidate
	Urgency utils.RenewalUrgency `json:"urgency"`
}

// RenewalFilter narrows the board. Every field is optional; the predicates
// are composed with logical AND.
type RenewalFilter struct {
	Bucket    utils.UrgencyBucket
	OwnerID   int32
	LeaseFrom string // yyyy-mm-dd, inclusive
	LeaseTo   string // yyyy-mm-dd, inclusive
	Query     string // free text across property/tenant/owner name
}

// CloseNegotiationInput carries the new lease terms and the contract
// document for closing a negotiation.
type CloseNegotiationInput struct {
	NewValueCents    int32
	NewStart         string // yyyy-mm-dd
	NewEnd           string // yyyy-mm-dd
	ContractDocName  string
	ContractFilePath string
	ContractMimeType string
	Note             string
	ActorID          int32
}

type RenewalService interface {
	ListRenewals(ctx context.Context, filter RenewalFilter) ([]Renewal, error)
	UpdateNegotiationStatus(ctx context.Context, tenantID int32, status domain.NegotiationStatus, note string, actorID int32) error
	CloseNegotiation(ctx context.Context, tenantID int32, input CloseNegotiationInput) (*domain.Tenant, error)
	GetNegotiationHistory(ctx context.Context, tenantID int32) ([]domain.NegotiationLog, []domain.Document, error)
}

type PropertyService interface {
	CreateProperty(ctx context.Context, property *domain.Property) error
	GetProperty(ctx context.Context, id int32) (*domain.Property, error)
	UpdateProperty(ctx context.Context, property *domain.Property) error
	DeleteProperty(ctx context.Context, id int32) error
	ListProperties(ctx context.Context, user *domain.User, profileType string, page, pageSize int32) ([]domain.Property, int32, error)

	CreateCondominium(ctx context.Context, condo *domain.Condominium) error
	GetCondominium(ctx context.Context, id int32) (*domain.Condominium, error)
	UpdateCondominium(ctx context.Context, condo *domain.Condominium) error
	DeleteCondominium(ctx context.Context, id int32) error
	ListCondominiums(ctx context.Context) ([]domain.Condominium, error)
}

type TenantService interface {
	CreateTenant(ctx context.Context, tenant *domain.Tenant) error
	GetTenant(ctx context.Context, id int32) (*domain.Tenant, error)
	UpdateTenant(ctx context.Context, tenant *domain.Tenant) error
	ListTenants(ctx context.Context, status string, page, pageSize int32) ([]domain.Tenant, int32, error)
	ListDocuments(ctx context.Context, tenantID int32) ([]domain.Document, error)
}

type PartnerService interface {
	CreatePartner(ctx context.Context, partner *domain.Partner) error
	GetPartner(ctx context.Context, id int32) (*domain.Partner, error)
	UpdatePartner(ctx context.Context, partner *domain.Partner) error
	DeletePartner(ctx context.Context, id int32) error
	ListPartners(ctx context.Context) ([]domain.Partner, error)
}

type LedgerService interface {
	CreateEntry(ctx context.Context, entry *domain.LedgerEntry) error
	ListEntries(ctx context.Context, propertyID int32, entryType string, page, pageSize int32) ([]domain.LedgerEntry, int32, error)
	GetSummary(ctx context.Context, propertyID int32, from, to string) (*domain.LedgerSummary, error)
}

type SettingsService interface {
	GetFinancialSettings(ctx context.Context) (*domain.FinancialSettings, error)
	UpdateFinancialSettings(ctx context.Context, settings *domain.FinancialSettings) error

	ListServiceRates(ctx context.Context) ([]domain.ServiceRate, error)
	// CreateServiceRate and UpdateServiceRate fill PMValueCents from the
	// price/payment fields only when the caller left it unset or edited those
	// fields; a caller-supplied pm value is stored verbatim.
	CreateServiceRate(ctx context.Context, rate *domain.ServiceRate, pmValueSet bool) error
	UpdateServiceRate(ctx context.Context, rate *domain.ServiceRate, pmValueSet bool) error
}

type MessageService interface {
	SendMessage(ctx context.Context, msg *domain.Message) error
	ListMessages(ctx context.Context, userID int32, page, pageSize int32) ([]domain.Message, int32, error)
	MarkAsRead(ctx context.Context, id, userID int32) error
}

type NotificationService interface {
	GetNotifications(ctx context.Context, userID int32, page, pageSize int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, userID, notificationID int32) error
}

type EmailService interface {
	SendAccountStatusNotification(ctx context.Context, email, name, status, reason string) error
	SendTaskAssignmentNotification(ctx context.Context, email, partnerName, taskTitle, propertyName, date string) error
	SendTaskCompletionNotification(ctx context.Context, email, taskTitle string, billableCents int32) error
	SendRenewalReminder(ctx context.Context, email, ownerName, propertyName, tenantName, leaseEnd string, daysLeft int) error
}
