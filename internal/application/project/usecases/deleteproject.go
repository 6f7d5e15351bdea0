package usecases

import (
	"context"

	"taskboard/internal/domain/project"
	"taskboard/internal/domain/ticket"
	"taskboard/internal/shared/authorization"
	"taskboard/internal/shared/errors"
	"taskboard/internal/shared/logger"
)

type DeleteProjectCommand struct {
	ProjectID uint
	CallerID  uint
}

// DeleteProjectUseCase removes a project and everything under it: comments,
// tickets with their assignee and label rows, labels, and membership. The
// whole cascade runs in one transaction; a failure leaves the project intact.
// Owner only.
type DeleteProjectUseCase struct {
	projectRepo project.Repository
	labelRepo   project.LabelRepository
	ticketRepo  ticket.Repository
	commentRepo ticket.CommentRepository
	txManager   TransactionManager
	logger      logger.Interface
}

func NewDeleteProjectUseCase(
	projectRepo project.Repository,
	labelRepo project.LabelRepository,
	ticketRepo ticket.Repository,
	commentRepo ticket.CommentRepository,
	txManager TransactionManager,
	logger logger.Interface,
) *DeleteProjectUseCase {
	return &DeleteProjectUseCase{
		projectRepo: projectRepo,
		labelRepo:   labelRepo,
		ticketRepo:  ticketRepo,
		commentRepo: commentRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

func (uc *DeleteProjectUseCase) Execute(ctx context.Context, cmd DeleteProjectCommand) error {
	if _, err := loadAuthorized(ctx, uc.projectRepo, cmd.ProjectID, cmd.CallerID, authorization.ActionDeleteProject); err != nil {
		return err
	}

	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.commentRepo.DeleteByProjectID(txCtx, cmd.ProjectID); err != nil {
			return err
		}
		if err := uc.ticketRepo.DeleteByProjectID(txCtx, cmd.ProjectID); err != nil {
			return err
		}
		if err := uc.labelRepo.DeleteByProjectID(txCtx, cmd.ProjectID); err != nil {
			return err
		}
		return uc.projectRepo.Delete(txCtx, cmd.ProjectID)
	})
	if err != nil {
		uc.logger.Errorw("failed to delete project", "error", err, "project_id", cmd.ProjectID)
		return errors.NewInternalError("failed to delete project")
	}

	uc.logger.Infow("project deleted", "project_id", cmd.ProjectID, "caller_id", cmd.CallerID)
	return nil
}
