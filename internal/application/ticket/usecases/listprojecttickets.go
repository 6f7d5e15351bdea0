package usecases

import (
	"context"

	"taskboard/internal/application/ticket/dto"
	"taskboard/internal/domain/project"
	"taskboard/internal/domain/ticket"
	"taskboard/internal/domain/user"
	"taskboard/internal/shared/authorization"
	"taskboard/internal/shared/errors"
	"taskboard/internal/shared/logger"
)

type ListProjectTicketsCommand struct {
	ProjectID uint
	CallerID  uint
}

// ListProjectTicketsUseCase returns a project's tickets, newest first, to any
// of its members.
type ListProjectTicketsUseCase struct {
	projectRepo project.Repository
	ticketRepo  ticket.Repository
	userRepo    user.Repository
	logger      logger.Interface
}

func NewListProjectTicketsUseCase(
	projectRepo project.Repository,
	ticketRepo ticket.Repository,
	userRepo user.Repository,
	logger logger.Interface,
) *ListProjectTicketsUseCase {
	return &ListProjectTicketsUseCase{
		projectRepo: projectRepo,
		ticketRepo:  ticketRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

func (uc *ListProjectTicketsUseCase) Execute(ctx context.Context, cmd ListProjectTicketsCommand) ([]dto.TicketDTO, error) {
	if _, err := authorizeOnProject(ctx, uc.projectRepo, cmd.ProjectID, cmd.CallerID, authorization.ActionViewTickets); err != nil {
		return nil, err
	}

	tickets, err := uc.ticketRepo.FindByProjectID(ctx, cmd.ProjectID)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err, "project_id", cmd.ProjectID)
		return nil, errors.NewInternalError("failed to list tickets")
	}

	assignees, err := uc.userRepo.GetByIDs(ctx, uniqueAssigneeIDs(tickets))
	if err != nil {
		uc.logger.Errorw("failed to load ticket assignees", "error", err, "project_id", cmd.ProjectID)
		return nil, errors.NewInternalError("failed to list tickets")
	}

	results := dto.NewTicketDTOs(tickets)
	attachAssignees(results, assignees)
	return results, nil
}
