package dto

import (
	"time"

	"taskboard/internal/domain/ticket"
	"taskboard/internal/domain/user"
)

// TicketDTO is the outward representation of a ticket. Assignees carries the
// resolved user details for AssigneeIDs; references to users that no longer
// exist are omitted from it.
type TicketDTO struct {
	ID             uint          `json:"id"`
	ProjectID      uint          `json:"project_id"`
	Title          string        `json:"title"`
	Description    string        `json:"description"`
	Status         string        `json:"status"`
	EstimationDate time.Time     `json:"estimation_date"`
	AssigneeIDs    []uint        `json:"assignee_ids"`
	Assignees      []AssigneeDTO `json:"assignees"`
	LabelIDs       []uint        `json:"label_ids"`
	CreatedBy      uint          `json:"created_by"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

// AssigneeDTO is the trimmed user representation shown on a ticket card.
type AssigneeDTO struct {
	ID        uint   `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

func NewAssigneeDTO(u *user.User) AssigneeDTO {
	return AssigneeDTO{
		ID:        u.ID(),
		FirstName: u.FirstName(),
		LastName:  u.LastName(),
		Email:     u.Email().String(),
	}
}

func NewTicketDTO(t *ticket.Ticket) TicketDTO {
	return TicketDTO{
		ID:             t.ID(),
		ProjectID:      t.ProjectID(),
		Title:          t.Title(),
		Description:    t.Description(),
		Status:         t.Status().String(),
		EstimationDate: t.EstimationDate(),
		AssigneeIDs:    t.AssigneeIDs(),
		Assignees:      []AssigneeDTO{},
		LabelIDs:       t.LabelIDs(),
		CreatedBy:      t.CreatedBy(),
		CreatedAt:      t.CreatedAt(),
		UpdatedAt:      t.UpdatedAt(),
	}
}

func NewTicketDTOs(tickets []*ticket.Ticket) []TicketDTO {
	result := make([]TicketDTO, 0, len(tickets))
	for _, t := range tickets {
		result = append(result, NewTicketDTO(t))
	}
	return result
}
