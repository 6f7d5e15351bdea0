package models

import (
	"time"

	"taskboard/internal/shared/constants"
)

// TicketModel represents the database persistence model for tickets
type TicketModel struct {
	ID             uint      `gorm:"primarykey"`
	ProjectID      uint      `gorm:"not null;index:idx_ticket_project"`
	Title          string    `gorm:"not null;size:200"`
	Description    string    `gorm:"type:text"`
	Status         string    `gorm:"not null;default:TODO;size:20"`
	EstimationDate time.Time `gorm:"not null"`
	CreatedBy      uint      `gorm:"not null;index:idx_ticket_creator"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Assignees []TicketAssigneeModel `gorm:"foreignKey:TicketID"`
	Labels    []TicketLabelModel    `gorm:"foreignKey:TicketID"`
}

// TableName specifies the table name for GORM
func (TicketModel) TableName() string {
	return constants.TableTickets
}

// TicketAssigneeModel is a ticket-to-user assignment row. The user reference
// is not constrained to project membership.
type TicketAssigneeModel struct {
	ID       uint `gorm:"primarykey"`
	TicketID uint `gorm:"not null;uniqueIndex:idx_ticket_assignee"`
	UserID   uint `gorm:"not null;uniqueIndex:idx_ticket_assignee"`
}

func (TicketAssigneeModel) TableName() string {
	return constants.TableTicketAssignees
}

// TicketLabelModel is a ticket-to-label attachment row.
type TicketLabelModel struct {
	ID       uint `gorm:"primarykey"`
	TicketID uint `gorm:"not null;uniqueIndex:idx_ticket_label"`
	LabelID  uint `gorm:"not null;uniqueIndex:idx_ticket_label"`
}

func (TicketLabelModel) TableName() string {
	return constants.TableTicketLabels
}
