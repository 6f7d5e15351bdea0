package dto

import (
	"time"

	"taskboard/internal/domain/project"
)

// MemberDTO is one membership entry with its role.
type MemberDTO struct {
	UserID uint   `json:"user_id"`
	Role   string `json:"role"`
}

// ProjectDTO is the outward representation of a project and its members.
type ProjectDTO struct {
	ID          uint        `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Status      string      `json:"status"`
	OwnerID     uint        `json:"owner_id"`
	Members     []MemberDTO `json:"members"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// LabelDTO is the outward representation of a project label.
type LabelDTO struct {
	ID        uint      `json:"id"`
	ProjectID uint      `json:"project_id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"created_at"`
}

func NewProjectDTO(p *project.Project) ProjectDTO {
	members := p.Members()
	memberDTOs := make([]MemberDTO, 0, len(members))
	for _, m := range members {
		memberDTOs = append(memberDTOs, MemberDTO{
			UserID: m.UserID(),
			Role:   string(m.Role()),
		})
	}

	return ProjectDTO{
		ID:          p.ID(),
		Title:       p.Title(),
		Description: p.Description(),
		Status:      p.Status().String(),
		OwnerID:     p.OwnerID(),
		Members:     memberDTOs,
		CreatedAt:   p.CreatedAt(),
		UpdatedAt:   p.UpdatedAt(),
	}
}

func NewProjectDTOs(projects []*project.Project) []ProjectDTO {
	result := make([]ProjectDTO, 0, len(projects))
	for _, p := range projects {
		result = append(result, NewProjectDTO(p))
	}
	return result
}

func NewLabelDTO(l *project.Label) LabelDTO {
	return LabelDTO{
		ID:        l.ID(),
		ProjectID: l.ProjectID(),
		Name:      l.Name(),
		Color:     l.Color(),
		CreatedAt: l.CreatedAt(),
	}
}
