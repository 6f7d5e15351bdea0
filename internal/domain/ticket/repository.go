package ticket

import "context"

// Repository persists tickets with their assignee and label references.
type Repository interface {
	Save(ctx context.Context, t *Ticket) error
	FindByID(ctx context.Context, id uint) (*Ticket, error)
	// FindByProjectID returns the project's tickets, newest first.
	FindByProjectID(ctx context.Context, projectID uint) ([]*Ticket, error)
	Update(ctx context.Context, t *Ticket) error
	Delete(ctx context.Context, id uint) error
	DeleteByProjectID(ctx context.Context, projectID uint) error
}

// CommentRepository persists ticket comments in creation order.
type CommentRepository interface {
	Save(ctx context.Context, c *Comment) error
	FindByID(ctx context.Context, id uint) (*Comment, error)
	// FindByTicketID returns the ticket's comments, oldest first.
	FindByTicketID(ctx context.Context, ticketID uint) ([]*Comment, error)
	Update(ctx context.Context, c *Comment) error
	Delete(ctx context.Context, id uint) error
	DeleteByTicketID(ctx context.Context, ticketID uint) error
	DeleteByProjectID(ctx context.Context, projectID uint) error
}
