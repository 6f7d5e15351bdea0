package usecases

import (
	"context"

	"taskboard/internal/domain/project"
	"taskboard/internal/domain/ticket"
	"taskboard/internal/shared/authorization"
	"taskboard/internal/shared/errors"
	"taskboard/internal/shared/logger"
)

type DeleteTicketCommand struct {
	TicketID uint
	CallerID uint
}

// DeleteTicketUseCase removes a ticket and its comments. Only the ticket's
// creator may delete it; neither admins nor the project owner can override
// that.
type DeleteTicketUseCase struct {
	projectRepo project.Repository
	ticketRepo  ticket.Repository
	commentRepo ticket.CommentRepository
	txManager   TransactionManager
	logger      logger.Interface
}

func NewDeleteTicketUseCase(
	projectRepo project.Repository,
	ticketRepo ticket.Repository,
	commentRepo ticket.CommentRepository,
	txManager TransactionManager,
	logger logger.Interface,
) *DeleteTicketUseCase {
	return &DeleteTicketUseCase{
		projectRepo: projectRepo,
		ticketRepo:  ticketRepo,
		commentRepo: commentRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

func (uc *DeleteTicketUseCase) Execute(ctx context.Context, cmd DeleteTicketCommand) error {
	t, err := uc.ticketRepo.FindByID(ctx, cmd.TicketID)
	if err != nil {
		return err
	}

	if _, err := authorizeOnProject(ctx, uc.projectRepo, t.ProjectID(), cmd.CallerID, authorization.ActionViewTickets); err != nil {
		return err
	}

	if !t.IsCreator(cmd.CallerID) {
		return errors.NewForbiddenError("access denied")
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.commentRepo.DeleteByTicketID(txCtx, cmd.TicketID); err != nil {
			return err
		}
		return uc.ticketRepo.Delete(txCtx, cmd.TicketID)
	})
	if err != nil {
		uc.logger.Errorw("failed to delete ticket", "error", err, "ticket_id", cmd.TicketID)
		return errors.NewInternalError("failed to delete ticket")
	}

	uc.logger.Infow("ticket deleted", "ticket_id", cmd.TicketID, "caller_id", cmd.CallerID)
	return nil
}
