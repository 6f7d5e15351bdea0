package usecases

import (
	"context"

	"taskboard/internal/application/comment/dto"
	"taskboard/internal/domain/project"
	"taskboard/internal/domain/ticket"
	"taskboard/internal/shared/authorization"
	"taskboard/internal/shared/errors"
	"taskboard/internal/shared/logger"
)

type CreateCommentCommand struct {
	TicketID uint
	CallerID uint
	Content  string
}

// CreateCommentUseCase adds a comment to a ticket. Any member of the ticket's
// project may comment.
type CreateCommentUseCase struct {
	projectRepo project.Repository
	ticketRepo  ticket.Repository
	commentRepo ticket.CommentRepository
	logger      logger.Interface
}

func NewCreateCommentUseCase(
	projectRepo project.Repository,
	ticketRepo ticket.Repository,
	commentRepo ticket.CommentRepository,
	logger logger.Interface,
) *CreateCommentUseCase {
	return &CreateCommentUseCase{
		projectRepo: projectRepo,
		ticketRepo:  ticketRepo,
		commentRepo: commentRepo,
		logger:      logger,
	}
}

func (uc *CreateCommentUseCase) Execute(ctx context.Context, cmd CreateCommentCommand) (*dto.CommentDTO, error) {
	if _, err := loadTicketAuthorized(ctx, uc.projectRepo, uc.ticketRepo, cmd.TicketID, cmd.CallerID, authorization.ActionCreateComment); err != nil {
		return nil, err
	}

	c, err := ticket.NewComment(cmd.TicketID, cmd.CallerID, cmd.Content)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.commentRepo.Save(ctx, c); err != nil {
		uc.logger.Errorw("failed to save comment", "error", err, "ticket_id", cmd.TicketID)
		return nil, errors.NewInternalError("failed to create comment")
	}

	uc.logger.Infow("comment created", "comment_id", c.ID(), "ticket_id", cmd.TicketID, "author_id", cmd.CallerID)

	result := dto.NewCommentDTO(c)
	return &result, nil
}
