package domain

type UserStatus string

const (
	UserStatusActive          UserStatus = "ACTIVE"
	UserStatusPendingApproval UserStatus = "PENDING_APPROVAL"
	UserStatusBlocked         UserStatus = "BLOCKED"
)

type UserRole string

const (
	UserRolePlatformOwner   UserRole = "PLATFORM_OWNER"
	UserRoleSoftwareTenant  UserRole = "SOFTWARE_TENANT"
	UserRoleInternalUser    UserRole = "INTERNAL_USER"
	UserRolePropertyOwner   UserRole = "PROPERTY_OWNER"
	UserRolePartner         UserRole = "PARTNER"
	UserRolePartnerEmployee UserRole = "PARTNER_EMPLOYEE"
	UserRoleTenant          UserRole = "TENANT"
)

// Resource identifies a dashboard area guarded by the permission evaluator.
type Resource string

const (
	ResourceDashboard      Resource = "dashboard"
	ResourceProperties     Resource = "properties"
	ResourceShortTerm      Resource = "short_term"
	ResourceRenewals       Resource = "renewals"
	ResourceMarketAnalysis Resource = "market_analysis"
	ResourceCondominiums   Resource = "condominiums"
	ResourceTenants        Resource = "tenants"
	ResourceOwners         Resource = "owners"
	ResourcePartners       Resource = "partners"
	ResourceCalendar       Resource = "calendar"
	ResourceTasks          Resource = "tasks"
	ResourceWorkflows      Resource = "workflows"
	ResourceFinancial      Resource = "financial"
	ResourceMessages       Resource = "messages"
	ResourceUsers          Resource = "users"
	ResourceSettings       Resource = "settings"
	ResourceAuditLogs      Resource = "audit_logs"
	ResourcePublicity      Resource = "publicity"
	ResourcePortal         Resource = "portal"
)

type Action string

const (
	ActionView   Action = "view"
	ActionCreate Action = "create"
	ActionEdit   Action = "edit"
	ActionDelete Action = "delete"
)

var knownResources = map[Resource]bool{
	ResourceDashboard: true, ResourceProperties: true, ResourceShortTerm: true,
	ResourceRenewals: true, ResourceMarketAnalysis: true, ResourceCondominiums: true,
	ResourceTenants: true, ResourceOwners: true, ResourcePartners: true,
	ResourceCalendar: true, ResourceTasks: true, ResourceWorkflows: true,
	ResourceFinancial: true, ResourceMessages: true, ResourceUsers: true,
	ResourceSettings: true, ResourceAuditLogs: true, ResourcePublicity: true,
	ResourcePortal: true,
}

var knownActions = map[Action]bool{
	ActionView: true, ActionCreate: true, ActionEdit: true, ActionDelete: true,
}

// Valid reports whether the resource is part of the fixed taxonomy. Unknown
// or empty resources fail closed in the evaluator.
func (r Resource) Valid() bool { return knownResources[r] }

func (a Action) Valid() bool { return knownActions[a] }

// AllResources returns the full resource taxonomy.
func AllResources() []Resource {
	out := make([]Resource, 0, len(knownResources))
	for r := range knownResources {
		out = append(out, r)
	}
	return out
}

// AllActions returns the full action set.
func AllActions() []Action {
	return []Action{ActionView, ActionCreate, ActionEdit, ActionDelete}
}

// PermissionGrant is one per-resource grant on a user. A user holds at most
// one grant per resource; the actions list carries no duplicates.
type PermissionGrant struct {
	Resource Resource `json:"resource"`
	Actions  []Action `json:"actions"`
}

type User struct {
	ID                  int32             `json:"id"`
	Email               string            `json:"email"`
	PhoneNumber         string            `json:"phone_number"`
	PasswordHash        string            `json:"-"`
	Name                string            `json:"name"`
	AvatarURL           string            `json:"avatar_url"`
	Role                UserRole          `json:"role"`
	Status              UserStatus        `json:"status"`
	MirrorAdmin         bool              `json:"mirror_admin"`
	AllowedProfileTypes []ProfileType     `json:"allowed_profile_types,omitempty"`
	ParentID            *int32            `json:"parent_id,omitempty"` // employee -> partner company link
	Permissions         []PermissionGrant `json:"permissions,omitempty"`
	BlockedOn           *string           `json:"blocked_on,omitempty"`
	BlockedReason       string            `json:"blocked_reason,omitempty"`
	CreatedOn           string            `json:"created_on"`
	UpdatedOn           string            `json:"updated_on"`
}
