package ticket

import (
	"fmt"
	"time"

	"taskboard/internal/shared/constants"
)

// Comment is a threaded note on a ticket. Only its author may edit or delete
// it; roles grant no override.
type Comment struct {
	id        uint
	ticketID  uint
	authorID  uint
	content   string
	createdAt time.Time
	updatedAt time.Time
}

func NewComment(ticketID, authorID uint, content string) (*Comment, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if authorID == 0 {
		return nil, fmt.Errorf("author ID is required")
	}
	if len(content) == 0 {
		return nil, fmt.Errorf("content cannot be empty")
	}
	if len(content) > constants.MaxCommentLength {
		return nil, fmt.Errorf("content exceeds maximum length of %d characters", constants.MaxCommentLength)
	}

	now := time.Now()
	return &Comment{
		ticketID:  ticketID,
		authorID:  authorID,
		content:   content,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructComment(
	id, ticketID, authorID uint,
	content string,
	createdAt, updatedAt time.Time,
) (*Comment, error) {
	if id == 0 {
		return nil, fmt.Errorf("comment ID cannot be zero")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if authorID == 0 {
		return nil, fmt.Errorf("author ID is required")
	}

	return &Comment{
		id:        id,
		ticketID:  ticketID,
		authorID:  authorID,
		content:   content,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (c *Comment) ID() uint {
	return c.id
}

func (c *Comment) TicketID() uint {
	return c.ticketID
}

func (c *Comment) AuthorID() uint {
	return c.authorID
}

func (c *Comment) Content() string {
	return c.content
}

func (c *Comment) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Comment) UpdatedAt() time.Time {
	return c.updatedAt
}

func (c *Comment) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("comment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("comment ID cannot be zero")
	}
	c.id = id
	return nil
}

// IsAuthor reports whether userID wrote this comment.
func (c *Comment) IsAuthor(userID uint) bool {
	return c.authorID == userID
}

func (c *Comment) UpdateContent(content string) error {
	if len(content) == 0 {
		return fmt.Errorf("content cannot be empty")
	}
	if len(content) > constants.MaxCommentLength {
		return fmt.Errorf("content exceeds maximum length of %d characters", constants.MaxCommentLength)
	}
	c.content = content
	c.updatedAt = time.Now()
	return nil
}
