package permission

import (
	"testing"

	"propdesk-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestHasPermission_PlatformOwnerAllowsEverything(t *testing.T) {
	u := &domain.User{
		Role:   domain.UserRolePlatformOwner,
		Status: domain.UserStatusActive,
	}

	for _, r := range domain.AllResources() {
		for _, a := range domain.AllActions() {
			assert.True(t, HasPermission(u, r, a), "resource=%s action=%s", r, a)
		}
	}
}

func TestHasPermission_BlockedAndPendingDenyEverything(t *testing.T) {
	for _, status := range []domain.UserStatus{domain.UserStatusBlocked, domain.UserStatusPendingApproval} {
		u := &domain.User{
			Role:        domain.UserRolePlatformOwner, // even superusers lose access
			Status:      status,
			MirrorAdmin: true,
			Permissions: []domain.PermissionGrant{
				{Resource: domain.ResourceTasks, Actions: domain.AllActions()},
			},
		}
		for _, r := range domain.AllResources() {
			for _, a := range domain.AllActions() {
				assert.False(t, HasPermission(u, r, a), "status=%s resource=%s action=%s", status, r, a)
			}
		}
	}
}

func TestHasPermission_MirrorAdminAllowsEverything(t *testing.T) {
	u := &domain.User{
		Role:        domain.UserRoleInternalUser,
		Status:      domain.UserStatusActive,
		MirrorAdmin: true,
	}

	for _, r := range domain.AllResources() {
		for _, a := range domain.AllActions() {
			assert.True(t, HasPermission(u, r, a))
		}
	}
}

func TestHasPermission_GrantLookup(t *testing.T) {
	u := &domain.User{
		Role:   domain.UserRoleInternalUser,
		Status: domain.UserStatusActive,
		Permissions: []domain.PermissionGrant{
			{Resource: domain.ResourceTasks, Actions: []domain.Action{domain.ActionView, domain.ActionEdit}},
			{Resource: domain.ResourceRenewals, Actions: []domain.Action{domain.ActionView}},
		},
	}

	t.Run("Granted action allowed", func(t *testing.T) {
		assert.True(t, HasPermission(u, domain.ResourceTasks, domain.ActionView))
		assert.True(t, HasPermission(u, domain.ResourceTasks, domain.ActionEdit))
		assert.True(t, HasPermission(u, domain.ResourceRenewals, domain.ActionView))
	})

	t.Run("Action outside grant denied", func(t *testing.T) {
		assert.False(t, HasPermission(u, domain.ResourceTasks, domain.ActionDelete))
		assert.False(t, HasPermission(u, domain.ResourceRenewals, domain.ActionCreate))
	})

	t.Run("Resource without entry denied", func(t *testing.T) {
		assert.False(t, HasPermission(u, domain.ResourceFinancial, domain.ActionView))
	})
}

func TestHasPermission_FailClosed(t *testing.T) {
	u := &domain.User{
		Role:        domain.UserRolePlatformOwner,
		Status:      domain.UserStatusActive,
		MirrorAdmin: true,
	}

	t.Run("Empty resource denied", func(t *testing.T) {
		// Call sites sometimes pass a conditional empty string; this must be a
		// plain deny, not a panic or an allow through the superuser rules.
		assert.False(t, HasPermission(u, domain.Resource(""), domain.ActionView))
	})

	t.Run("Unknown resource denied", func(t *testing.T) {
		assert.False(t, HasPermission(u, domain.Resource("reports"), domain.ActionView))
	})

	t.Run("Unknown action denied", func(t *testing.T) {
		assert.False(t, HasPermission(u, domain.ResourceTasks, domain.Action("export")))
	})

	t.Run("Nil user denied", func(t *testing.T) {
		assert.False(t, HasPermission(nil, domain.ResourceTasks, domain.ActionView))
	})
}

func TestBuildGrantSet_MergesDuplicates(t *testing.T) {
	gs := BuildGrantSet([]domain.PermissionGrant{
		{Resource: domain.ResourceTasks, Actions: []domain.Action{domain.ActionView, domain.ActionView}},
		{Resource: domain.ResourceTasks, Actions: []domain.Action{domain.ActionEdit}},
	})

	assert.Len(t, gs, 1)
	assert.Len(t, gs[domain.ResourceTasks], 2)
}

func TestEvaluator_ReusableAcrossChecks(t *testing.T) {
	u := &domain.User{
		Role:   domain.UserRolePropertyOwner,
		Status: domain.UserStatusActive,
		Permissions: []domain.PermissionGrant{
			{Resource: domain.ResourcePortal, Actions: []domain.Action{domain.ActionView}},
			{Resource: domain.ResourceProperties, Actions: []domain.Action{domain.ActionView}},
		},
	}

	ev := NewEvaluator(u)
	assert.True(t, ev.Allows(domain.ResourcePortal, domain.ActionView))
	assert.True(t, ev.Allows(domain.ResourceProperties, domain.ActionView))
	assert.False(t, ev.Allows(domain.ResourceProperties, domain.ActionDelete))
	assert.False(t, ev.Allows(domain.ResourceUsers, domain.ActionView))
}
