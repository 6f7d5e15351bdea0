package project

import (
	"taskboard/internal/shared/authorization"
)

// Member is a membership entry on a project: one user holding one role.
type Member struct {
	userID uint
	role   authorization.Role
}

func NewMember(userID uint, role authorization.Role) Member {
	return Member{userID: userID, role: role}
}

func (m Member) UserID() uint {
	return m.userID
}

func (m Member) Role() authorization.Role {
	return m.role
}

func (m Member) IsOwner() bool {
	return m.role == authorization.RoleOwner
}
