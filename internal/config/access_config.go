// config/access_config.go
package config

import "propdesk-backend/internal/domain"

type AccessLevel int

const (
	AccessPublic AccessLevel = iota // No authentication
	AccessAuthenticated             // Valid access token, no resource gate (self-service)
	AccessGated                     // Valid access token + permission evaluator check
)

// RouteAccess describes what the permission middleware enforces for one
// named route. Resource/Action are only read when Level is AccessGated.
type RouteAccess struct {
	Level    AccessLevel
	Resource domain.Resource
	Action   domain.Action
}

func gated(r domain.Resource, a domain.Action) RouteAccess {
	return RouteAccess{Level: AccessGated, Resource: r, Action: a}
}

// EndpointAccessConfig maps mux route names to their access requirements.
// Unknown route names default to the most restrictive treatment (deny).
var EndpointAccessConfig = map[string]RouteAccess{
	// Auth - public
	"auth.login":   {Level: AccessPublic},
	"auth.refresh": {Level: AccessPublic},
	"auth.logout":  {Level: AccessAuthenticated},

	// Self-service profile and notifications - no resource gate
	"profile.get":        {Level: AccessAuthenticated},
	"profile.update":     {Level: AccessAuthenticated},
	"notifications.list": {Level: AccessAuthenticated},
	"notifications.read": {Level: AccessAuthenticated},

	// Users administration
	"users.list":        gated(domain.ResourceUsers, domain.ActionView),
	"users.get":         gated(domain.ResourceUsers, domain.ActionView),
	"users.search":      gated(domain.ResourceUsers, domain.ActionView),
	"users.create":      gated(domain.ResourceUsers, domain.ActionCreate),
	"users.update":      gated(domain.ResourceUsers, domain.ActionEdit),
	"users.approve":     gated(domain.ResourceUsers, domain.ActionEdit),
	"users.block":       gated(domain.ResourceUsers, domain.ActionEdit),
	"users.permissions": gated(domain.ResourceUsers, domain.ActionEdit),

	// Properties
	"properties.list":   gated(domain.ResourceProperties, domain.ActionView),
	"properties.get":    gated(domain.ResourceProperties, domain.ActionView),
	"properties.create": gated(domain.ResourceProperties, domain.ActionCreate),
	"properties.update": gated(domain.ResourceProperties, domain.ActionEdit),
	"properties.delete": gated(domain.ResourceProperties, domain.ActionDelete),

	// Condominiums
	"condominiums.list":   gated(domain.ResourceCondominiums, domain.ActionView),
	"condominiums.get":    gated(domain.ResourceCondominiums, domain.ActionView),
	"condominiums.create": gated(domain.ResourceCondominiums, domain.ActionCreate),
	"condominiums.update": gated(domain.ResourceCondominiums, domain.ActionEdit),
	"condominiums.delete": gated(domain.ResourceCondominiums, domain.ActionDelete),

	// Tenants
	"tenants.list":      gated(domain.ResourceTenants, domain.ActionView),
	"tenants.get":       gated(domain.ResourceTenants, domain.ActionView),
	"tenants.create":    gated(domain.ResourceTenants, domain.ActionCreate),
	"tenants.update":    gated(domain.ResourceTenants, domain.ActionEdit),
	"tenants.documents": gated(domain.ResourceTenants, domain.ActionView),

	// Renewals board
	"renewals.list":   gated(domain.ResourceRenewals, domain.ActionView),
	"renewals.status": gated(domain.ResourceRenewals, domain.ActionEdit),
	"renewals.close":  gated(domain.ResourceRenewals, domain.ActionEdit),

	// Tasks board
	"tasks.list":       gated(domain.ResourceTasks, domain.ActionView),
	"tasks.get":        gated(domain.ResourceTasks, domain.ActionView),
	"tasks.create":     gated(domain.ResourceTasks, domain.ActionCreate),
	"tasks.update":     gated(domain.ResourceTasks, domain.ActionEdit),
	"tasks.start":      gated(domain.ResourceTasks, domain.ActionEdit),
	"tasks.review":     gated(domain.ResourceTasks, domain.ActionEdit),
	"tasks.complete":   gated(domain.ResourceTasks, domain.ActionEdit),
	"tasks.delete":     gated(domain.ResourceTasks, domain.ActionDelete),
	"tasks.images.add": gated(domain.ResourceTasks, domain.ActionEdit),
	"tasks.images":     gated(domain.ResourceTasks, domain.ActionView),

	// Partners
	"partners.list":   gated(domain.ResourcePartners, domain.ActionView),
	"partners.get":    gated(domain.ResourcePartners, domain.ActionView),
	"partners.create": gated(domain.ResourcePartners, domain.ActionCreate),
	"partners.update": gated(domain.ResourcePartners, domain.ActionEdit),
	"partners.delete": gated(domain.ResourcePartners, domain.ActionDelete),

	// Financial ledger
	"ledger.list":    gated(domain.ResourceFinancial, domain.ActionView),
	"ledger.summary": gated(domain.ResourceFinancial, domain.ActionView),
	"ledger.create":  gated(domain.ResourceFinancial, domain.ActionCreate),

	// Settings
	"settings.financial.get":    gated(domain.ResourceSettings, domain.ActionView),
	"settings.financial.update": gated(domain.ResourceSettings, domain.ActionEdit),
	"settings.rates.list":       gated(domain.ResourceSettings, domain.ActionView),
	"settings.rates.create":     gated(domain.ResourceSettings, domain.ActionCreate),
	"settings.rates.update":     gated(domain.ResourceSettings, domain.ActionEdit),

	// Messages
	"messages.list": gated(domain.ResourceMessages, domain.ActionView),
	"messages.send": gated(domain.ResourceMessages, domain.ActionCreate),
	"messages.read": gated(domain.ResourceMessages, domain.ActionEdit),
}

// GetRouteAccess returns the access requirements for a named route. Routes
// missing from the table come back gated on an empty resource, which the
// evaluator denies.
func GetRouteAccess(name string) RouteAccess {
	if access, exists := EndpointAccessConfig[name]; exists {
		return access
	}
	return RouteAccess{Level: AccessGated}
}
