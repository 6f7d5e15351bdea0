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

type GetTicketCommand struct {
	TicketID uint
	CallerID uint
}

// GetTicketUseCase returns one ticket to any member of its project. A missing
// ticket is reported as not found before any membership check; an existing
// ticket in a foreign project yields the uniform denial.
type GetTicketUseCase struct {
	projectRepo project.Repository
	ticketRepo  ticket.Repository
	userRepo    user.Repository
	logger      logger.Interface
}

func NewGetTicketUseCase(
	projectRepo project.Repository,
	ticketRepo ticket.Repository,
	userRepo user.Repository,
	logger logger.Interface,
) *GetTicketUseCase {
	return &GetTicketUseCase{
		projectRepo: projectRepo,
		ticketRepo:  ticketRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, cmd GetTicketCommand) (*dto.TicketDTO, error) {
	t, err := uc.ticketRepo.FindByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	if _, err := authorizeOnProject(ctx, uc.projectRepo, t.ProjectID(), cmd.CallerID, authorization.ActionViewTickets); err != nil {
		return nil, err
	}

	assignees, err := uc.userRepo.GetByIDs(ctx, t.AssigneeIDs())
	if err != nil {
		uc.logger.Errorw("failed to load ticket assignees", "error", err, "ticket_id", t.ID())
		return nil, errors.NewInternalError("failed to get ticket")
	}

	results := []dto.TicketDTO{dto.NewTicketDTO(t)}
	attachAssignees(results, assignees)
	return &results[0], nil
}
