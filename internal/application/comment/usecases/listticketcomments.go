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

type ListTicketCommentsCommand struct {
	TicketID uint
	CallerID uint
}

// ListTicketCommentsUseCase returns a ticket's comments, oldest first, to any
// member of the ticket's project.
type ListTicketCommentsUseCase struct {
	projectRepo project.Repository
	ticketRepo  ticket.Repository
	commentRepo ticket.CommentRepository
	logger      logger.Interface
}

func NewListTicketCommentsUseCase(
	projectRepo project.Repository,
	ticketRepo ticket.Repository,
	commentRepo ticket.CommentRepository,
	logger logger.Interface,
) *ListTicketCommentsUseCase {
	return &ListTicketCommentsUseCase{
		projectRepo: projectRepo,
		ticketRepo:  ticketRepo,
		commentRepo: commentRepo,
		logger:      logger,
	}
}

func (uc *ListTicketCommentsUseCase) Execute(ctx context.Context, cmd ListTicketCommentsCommand) ([]dto.CommentDTO, error) {
	if _, err := loadTicketAuthorized(ctx, uc.projectRepo, uc.ticketRepo, cmd.TicketID, cmd.CallerID, authorization.ActionViewComments); err != nil {
		return nil, err
	}

	comments, err := uc.commentRepo.FindByTicketID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to list comments", "error", err, "ticket_id", cmd.TicketID)
		return nil, errors.NewInternalError("failed to list comments")
	}
	return dto.NewCommentDTOs(comments), nil
}
