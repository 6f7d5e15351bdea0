package dto

import (
	"time"

	"taskboard/internal/domain/ticket"
)

// CommentDTO is the outward representation of a ticket comment.
type CommentDTO struct {
	ID        uint      `json:"id"`
	TicketID  uint      `json:"ticket_id"`
	AuthorID  uint      `json:"author_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewCommentDTO(c *ticket.Comment) CommentDTO {
	return CommentDTO{
		ID:        c.ID(),
		TicketID:  c.TicketID(),
		AuthorID:  c.AuthorID(),
		Content:   c.Content(),
		CreatedAt: c.CreatedAt(),
		UpdatedAt: c.UpdatedAt(),
	}
}

func NewCommentDTOs(comments []*ticket.Comment) []CommentDTO {
	result := make([]CommentDTO, 0, len(comments))
	for _, c := range comments {
		result = append(result, NewCommentDTO(c))
	}
	return result
}
