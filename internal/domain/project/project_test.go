package project

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "taskboard/internal/domain/project/valueobjects"
	"taskboard/internal/shared/authorization"
	"taskboard/internal/shared/constants"
)

func TestNewProject_OwnerIsSoleMember(t *testing.T) {
	p, err := NewProject("  Roadmap  ", " planning board ", 7)
	require.NoError(t, err)

	assert.Equal(t, "Roadmap", p.Title())
	assert.Equal(t, "planning board", p.Description())
	assert.Equal(t, vo.StatusActive, p.Status())
	assert.Equal(t, uint(7), p.OwnerID())

	require.Len(t, p.Members(), 1)
	assert.True(t, p.Members()[0].IsOwner())
}

func TestNewProject_Validation(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		ownerID uint
	}{
		{"empty title", "", 1},
		{"blank title", "   ", 1},
		{"title too long", strings.Repeat("x", constants.MaxTitleLength+1), 1},
		{"zero owner", "Roadmap", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewProject(tt.title, "", tt.ownerID)
			assert.Error(t, err)
		})
	}

	_, err := NewProject(strings.Repeat("x", constants.MaxTitleLength), "", 1)
	assert.NoError(t, err)
}

func TestReconstructProject_RequiresExactlyOneOwner(t *testing.T) {
	now := time.Now()

	_, err := ReconstructProject(1, "Board", "", vo.StatusActive, []Member{
		NewMember(1, authorization.RoleMember),
	}, now, now)
	assert.Error(t, err)

	_, err = ReconstructProject(1, "Board", "", vo.StatusActive, []Member{
		NewMember(1, authorization.RoleOwner),
		NewMember(2, authorization.RoleOwner),
	}, now, now)
	assert.Error(t, err)

	p, err := ReconstructProject(1, "Board", "", vo.StatusActive, []Member{
		NewMember(1, authorization.RoleOwner),
		NewMember(2, authorization.RoleAdmin),
	}, now, now)
	require.NoError(t, err)
	assert.Equal(t, uint(1), p.OwnerID())
}

func TestProject_AddMember(t *testing.T) {
	p, err := NewProject("Board", "", 1)
	require.NoError(t, err)

	require.NoError(t, p.AddMember(2))
	role, ok := p.RoleOf(2)
	require.True(t, ok)
	assert.Equal(t, authorization.RoleMember, role)

	assert.Error(t, p.AddMember(2), "duplicate membership")
	assert.Error(t, p.AddMember(0))
}

func TestProject_RemoveMember(t *testing.T) {
	p, err := NewProject("Board", "", 1)
	require.NoError(t, err)
	require.NoError(t, p.AddMember(2))

	require.NoError(t, p.RemoveMember(2))
	assert.False(t, p.IsMember(2))

	assert.Error(t, p.RemoveMember(2), "already removed")
	assert.Error(t, p.RemoveMember(1), "owner cannot be removed")
	assert.True(t, p.IsMember(1))
}

func TestProject_PromoteAndDemoteAdmin(t *testing.T) {
	p, err := NewProject("Board", "", 1)
	require.NoError(t, err)
	require.NoError(t, p.AddMember(2))

	require.NoError(t, p.PromoteAdmin(2))
	role, _ := p.RoleOf(2)
	assert.Equal(t, authorization.RoleAdmin, role)

	assert.Error(t, p.PromoteAdmin(2), "already an admin")
	assert.Error(t, p.PromoteAdmin(1), "owner holds full privileges")
	assert.Error(t, p.PromoteAdmin(99), "not a member")

	require.NoError(t, p.DemoteAdmin(2))
	role, _ = p.RoleOf(2)
	assert.Equal(t, authorization.RoleMember, role)

	assert.Error(t, p.DemoteAdmin(2), "not an admin anymore")
	assert.Error(t, p.DemoteAdmin(1), "owner cannot be demoted")
}

func TestProject_ChangeStatus(t *testing.T) {
	p, err := NewProject("Board", "", 1)
	require.NoError(t, err)

	require.NoError(t, p.ChangeStatus(vo.StatusPaused))
	assert.Equal(t, vo.StatusPaused, p.Status())

	assert.Error(t, p.ChangeStatus(vo.ProjectStatus("ARCHIVED")))
}

func TestProject_SetIDOnce(t *testing.T) {
	p, err := NewProject("Board", "", 1)
	require.NoError(t, err)

	require.NoError(t, p.SetID(10))
	assert.Error(t, p.SetID(11))
	assert.Equal(t, uint(10), p.ID())
}
