// Package authorization implements the role-based access decision engine for
// project-scoped operations. Decisions are pure functions of the caller's role
// and the requested action; callers load membership facts first and never pass
// persistence handles in here.
package authorization

import (
	"taskboard/internal/shared/errors"
)

// Role is a project-scoped membership role, ordered by privilege:
// owner > admin > member.
type Role string

const (
	RoleOwner  Role = "owner"
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	return r == RoleOwner || r == RoleAdmin || r == RoleMember
}

// Level returns the privilege level of the role. Higher means more privileged.
// Unknown roles rank below every valid role.
func (r Role) Level() int {
	switch r {
	case RoleOwner:
		return 3
	case RoleAdmin:
		return 2
	case RoleMember:
		return 1
	default:
		return 0
	}
}

// AtLeast reports whether the role carries at least the privilege of other.
func (r Role) AtLeast(other Role) bool {
	return r.Level() >= other.Level()
}

func ParseRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", errors.NewValidationError("invalid role: " + s)
	}
	return role, nil
}

// Action identifies a project-scoped operation subject to role checks.
// Creator-only and author-only rules (ticket delete, comment edit/delete) are
// identity checks owned by the use cases, not actions listed here.
type Action string

const (
	ActionViewProject   Action = "project.view"
	ActionUpdateProject Action = "project.update"
	ActionDeleteProject Action = "project.delete"
	ActionManageMembers Action = "project.members.manage"
	ActionManageAdmins  Action = "project.admins.manage"
	ActionManageLabels  Action = "project.labels.manage"
	ActionViewTickets   Action = "ticket.view"
	ActionCreateTicket  Action = "ticket.create"
	ActionUpdateTicket  Action = "ticket.update"
	ActionViewComments  Action = "comment.view"
	ActionCreateComment Action = "comment.create"
)

// minimumRole maps every action to the least privileged role allowed to
// perform it. Actions absent from the table are denied for everyone.
var minimumRole = map[Action]Role{
	ActionViewProject:   RoleMember,
	ActionUpdateProject: RoleAdmin,
	ActionDeleteProject: RoleOwner,
	ActionManageMembers: RoleAdmin,
	ActionManageAdmins:  RoleOwner,
	ActionManageLabels:  RoleMember,
	ActionViewTickets:   RoleMember,
	ActionCreateTicket:  RoleMember,
	ActionUpdateTicket:  RoleMember,
	ActionViewComments:  RoleMember,
	ActionCreateComment: RoleMember,
}

// MinimumRole returns the least privileged role allowed to perform action.
func MinimumRole(action Action) (Role, bool) {
	role, ok := minimumRole[action]
	return role, ok
}

// CanPerform reports whether a caller holding role may perform action.
// Pure and deterministic: the result depends only on (role, action).
func CanPerform(role Role, action Action) bool {
	required, ok := minimumRole[action]
	if !ok {
		return false
	}
	return role.AtLeast(required)
}

// Authorize returns nil when role may perform action, or a uniform forbidden
// error otherwise. The denial carries no detail about the required role so
// responses cannot be used to probe the permission table.
func Authorize(role Role, action Action) error {
	if !CanPerform(role, action) {
		return errors.NewForbiddenError("access denied")
	}
	return nil
}
