package project

import (
	"fmt"
	"strings"
	"time"

	vo "taskboard/internal/domain/project/valueobjects"
	"taskboard/internal/shared/authorization"
	"taskboard/internal/shared/constants"
)

// Project is the aggregate guarding the membership invariants: exactly one
// member holds the owner role at all times, and the owner can be neither
// removed nor demoted.
type Project struct {
	id          uint
	title       string
	description string
	status      vo.ProjectStatus
	members     []Member
	createdAt   time.Time
	updatedAt   time.Time
}

// NewProject creates a project whose sole member is the owner.
func NewProject(title, description string, ownerID uint) (*Project, error) {
	title = strings.TrimSpace(title)
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > constants.MaxTitleLength {
		return nil, fmt.Errorf("title exceeds maximum length of %d characters", constants.MaxTitleLength)
	}
	if ownerID == 0 {
		return nil, fmt.Errorf("owner ID is required")
	}

	now := time.Now()
	return &Project{
		title:       title,
		description: strings.TrimSpace(description),
		status:      vo.StatusActive,
		members:     []Member{NewMember(ownerID, authorization.RoleOwner)},
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructProject(
	id uint,
	title, description string,
	status vo.ProjectStatus,
	members []Member,
	createdAt, updatedAt time.Time,
) (*Project, error) {
	if id == 0 {
		return nil, fmt.Errorf("project ID cannot be zero")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}

	owners := 0
	for _, m := range members {
		if m.IsOwner() {
			owners++
		}
	}
	if owners != 1 {
		return nil, fmt.Errorf("project must have exactly one owner, found %d", owners)
	}

	return &Project{
		id:          id,
		title:       title,
		description: description,
		status:      status,
		members:     members,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (p *Project) ID() uint {
	return p.id
}

func (p *Project) Title() string {
	return p.title
}

func (p *Project) Description() string {
	return p.description
}

func (p *Project) Status() vo.ProjectStatus {
	return p.status
}

func (p *Project) Members() []Member {
	membersCopy := make([]Member, len(p.members))
	copy(membersCopy, p.members)
	return membersCopy
}

func (p *Project) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Project) UpdatedAt() time.Time {
	return p.updatedAt
}

func (p *Project) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("project ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("project ID cannot be zero")
	}
	p.id = id
	return nil
}

// OwnerID returns the user holding the owner role.
func (p *Project) OwnerID() uint {
	for _, m := range p.members {
		if m.IsOwner() {
			return m.UserID()
		}
	}
	return 0
}

// RoleOf resolves a user's role on this project. The second return value is
// false for non-members.
func (p *Project) RoleOf(userID uint) (authorization.Role, bool) {
	for _, m := range p.members {
		if m.UserID() == userID {
			return m.Role(), true
		}
	}
	return "", false
}

func (p *Project) IsMember(userID uint) bool {
	_, ok := p.RoleOf(userID)
	return ok
}

// Rename updates the title. Empty titles are rejected, matching create.
func (p *Project) Rename(title string) error {
	title = strings.TrimSpace(title)
	if len(title) == 0 {
		return fmt.Errorf("title is required")
	}
	if len(title) > constants.MaxTitleLength {
		return fmt.Errorf("title exceeds maximum length of %d characters", constants.MaxTitleLength)
	}
	p.title = title
	p.touch()
	return nil
}

func (p *Project) UpdateDescription(description string) {
	p.description = strings.TrimSpace(description)
	p.touch()
}

func (p *Project) ChangeStatus(status vo.ProjectStatus) error {
	if !status.IsValid() {
		return fmt.Errorf("invalid status: %s", status)
	}
	p.status = status
	p.touch()
	return nil
}

// AddMember adds a user with the plain member role.
func (p *Project) AddMember(userID uint) error {
	if userID == 0 {
		return fmt.Errorf("user ID is required")
	}
	if p.IsMember(userID) {
		return fmt.Errorf("user is already a member")
	}
	p.members = append(p.members, NewMember(userID, authorization.RoleMember))
	p.touch()
	return nil
}

// RemoveMember removes a member or admin. Removing the owner is forbidden
// regardless of who asks.
func (p *Project) RemoveMember(userID uint) error {
	role, ok := p.RoleOf(userID)
	if !ok {
		return fmt.Errorf("user is not a member")
	}
	if role == authorization.RoleOwner {
		return fmt.Errorf("the project owner cannot be removed")
	}

	filtered := p.members[:0]
	for _, m := range p.members {
		if m.UserID() != userID {
			filtered = append(filtered, m)
		}
	}
	p.members = filtered
	p.touch()
	return nil
}

// PromoteAdmin raises an existing member to admin.
func (p *Project) PromoteAdmin(userID uint) error {
	role, ok := p.RoleOf(userID)
	if !ok {
		return fmt.Errorf("user is not a member")
	}
	switch role {
	case authorization.RoleOwner:
		return fmt.Errorf("the project owner already has full privileges")
	case authorization.RoleAdmin:
		return fmt.Errorf("user is already an admin")
	}

	p.setRole(userID, authorization.RoleAdmin)
	return nil
}

// DemoteAdmin lowers an admin back to plain member. The owner cannot be
// demoted.
func (p *Project) DemoteAdmin(userID uint) error {
	role, ok := p.RoleOf(userID)
	if !ok {
		return fmt.Errorf("user is not a member")
	}
	switch role {
	case authorization.RoleOwner:
		return fmt.Errorf("the project owner cannot be demoted")
	case authorization.RoleMember:
		return fmt.Errorf("user is not an admin")
	}

	p.setRole(userID, authorization.RoleMember)
	return nil
}

func (p *Project) setRole(userID uint, role authorization.Role) {
	for i, m := range p.members {
		if m.UserID() == userID {
			p.members[i] = NewMember(userID, role)
			break
		}
	}
	p.touch()
}

func (p *Project) touch() {
	p.updatedAt = time.Now()
}
