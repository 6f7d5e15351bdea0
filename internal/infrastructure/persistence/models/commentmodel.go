package models

import (
	"time"

	"taskboard/internal/shared/constants"
)

// CommentModel represents the database persistence model for ticket comments
type CommentModel struct {
	ID        uint   `gorm:"primarykey"`
	TicketID  uint   `gorm:"not null;index:idx_comment_ticket"`
	AuthorID  uint   `gorm:"not null;index:idx_comment_author"`
	Content   string `gorm:"type:text;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (CommentModel) TableName() string {
	return constants.TableComments
}
