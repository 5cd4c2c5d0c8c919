package permission

import (
	"propdesk-backend/internal/domain"
)

// ActionSet is the set of actions granted on one resource.
type ActionSet map[domain.Action]struct{}

// GrantSet indexes a user's permission list by resource for O(1) lookup.
// At most one entry exists per resource.
type GrantSet map[domain.Resource]ActionSet

// BuildGrantSet collapses a permission list into a GrantSet. Duplicate
// resource entries merge; duplicate actions collapse.
func BuildGrantSet(grants []domain.PermissionGrant) GrantSet {
	gs := make(GrantSet, len(grants))
	for _, g := range grants {
		set, ok := gs[g.Resource]
		if !ok {
			set = make(ActionSet, len(g.Actions))
			gs[g.Resource] = set
		}
		for _, a := range g.Actions {
			set[a] = struct{}{}
		}
	}
	return gs
}

// Evaluator answers allow/deny for one user. It precomputes the grant index
// so per-request call sites (the HTTP permission gate checks every guarded
// route through here) stay constant-time.
type Evaluator struct {
	user   *domain.User
	grants GrantSet
}

func NewEvaluator(user *domain.User) *Evaluator {
	e := &Evaluator{user: user}
	if user != nil {
		e.grants = BuildGrantSet(user.Permissions)
	}
	return e
}

// Allows reports whether the user may perform action on resource.
// Resolution order, first match wins:
//  1. empty or unknown resource/action: deny (fail closed, never an error)
//  2. blocked or pending-approval account: deny
//  3. platform owner role: allow
//  4. mirror-admin flag: allow
//  5. grant lookup: allow iff the resource entry contains the action
func (e *Evaluator) Allows(resource domain.Resource, action domain.Action) bool {
	if e == nil || e.user == nil {
		return false
	}
	if !resource.Valid() || !action.Valid() {
		return false
	}
	if e.user.Status == domain.UserStatusBlocked || e.user.Status == domain.UserStatusPendingApproval {
		return false
	}
	if e.user.Role == domain.UserRolePlatformOwner {
		return true
	}
	if e.user.MirrorAdmin {
		return true
	}
	set, ok := e.grants[resource]
	if !ok {
		return false
	}
	_, ok = set[action]
	return ok
}

// HasPermission is the one-shot form of Evaluator.Allows for call sites that
// check a single resource/action pair.
func HasPermission(user *domain.User, resource domain.Resource, action domain.Action) bool {
	return NewEvaluator(user).Allows(resource, action)
}
