package authorization

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard/internal/shared/errors"
)

func TestRoleLevelOrdering(t *testing.T) {
	assert.Greater(t, RoleOwner.Level(), RoleAdmin.Level())
	assert.Greater(t, RoleAdmin.Level(), RoleMember.Level())
	assert.Greater(t, RoleMember.Level(), Role("intruder").Level())
}

func TestRoleAtLeast(t *testing.T) {
	assert.True(t, RoleOwner.AtLeast(RoleMember))
	assert.True(t, RoleOwner.AtLeast(RoleOwner))
	assert.True(t, RoleAdmin.AtLeast(RoleMember))
	assert.False(t, RoleMember.AtLeast(RoleAdmin))
	assert.False(t, RoleAdmin.AtLeast(RoleOwner))
	assert.False(t, Role("").AtLeast(RoleMember))
}

func TestParseRole(t *testing.T) {
	role, err := ParseRole("admin")
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, role)

	_, err = ParseRole("superuser")
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestCanPerform(t *testing.T) {
	tests := []struct {
		name    string
		role    Role
		action  Action
		allowed bool
	}{
		{"member views project", RoleMember, ActionViewProject, true},
		{"member creates ticket", RoleMember, ActionCreateTicket, true},
		{"member updates ticket", RoleMember, ActionUpdateTicket, true},
		{"member creates comment", RoleMember, ActionCreateComment, true},
		{"member manages labels", RoleMember, ActionManageLabels, true},
		{"member updates project", RoleMember, ActionUpdateProject, false},
		{"member manages members", RoleMember, ActionManageMembers, false},
		{"member manages admins", RoleMember, ActionManageAdmins, false},
		{"member deletes project", RoleMember, ActionDeleteProject, false},
		{"admin updates project", RoleAdmin, ActionUpdateProject, true},
		{"admin manages members", RoleAdmin, ActionManageMembers, true},
		{"admin manages admins", RoleAdmin, ActionManageAdmins, false},
		{"admin deletes project", RoleAdmin, ActionDeleteProject, false},
		{"owner manages admins", RoleOwner, ActionManageAdmins, true},
		{"owner deletes project", RoleOwner, ActionDeleteProject, true},
		{"unknown role denied everywhere", Role("guest"), ActionViewProject, false},
		{"unknown action denied for owner", RoleOwner, Action("project.transfer"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, CanPerform(tt.role, tt.action))
		})
	}
}

func TestCanPerformIsDeterministic(t *testing.T) {
	for i := 0; i < 100; i++ {
		assert.True(t, CanPerform(RoleAdmin, ActionManageMembers))
		assert.False(t, CanPerform(RoleMember, ActionDeleteProject))
	}
}

func TestAuthorizeDenialIsUniform(t *testing.T) {
	err1 := Authorize(RoleMember, ActionDeleteProject)
	err2 := Authorize(RoleAdmin, ActionManageAdmins)

	require.Error(t, err1)
	require.Error(t, err2)
	assert.True(t, errors.IsForbiddenError(err1))
	assert.True(t, errors.IsForbiddenError(err2))
	// Denials are indistinguishable regardless of how close the caller was.
	assert.Equal(t, err1.Error(), err2.Error())
}

func TestMinimumRoleTableTotality(t *testing.T) {
	actions := []Action{
		ActionViewProject, ActionUpdateProject, ActionDeleteProject,
		ActionManageMembers, ActionManageAdmins, ActionManageLabels,
		ActionViewTickets, ActionCreateTicket, ActionUpdateTicket,
		ActionViewComments, ActionCreateComment,
	}

	for _, action := range actions {
		role, ok := MinimumRole(action)
		require.True(t, ok, "action %s has no minimum role", action)
		assert.True(t, role.IsValid())
		// The owner can always perform every listed action.
		assert.True(t, CanPerform(RoleOwner, action))
	}
}
