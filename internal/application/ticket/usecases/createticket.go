package usecases

import (
	"context"
	"time"

	"taskboard/internal/application/ticket/dto"
	"taskboard/internal/domain/project"
	"taskboard/internal/domain/ticket"
	"taskboard/internal/shared/authorization"
	"taskboard/internal/shared/errors"
	"taskboard/internal/shared/logger"
)

type CreateTicketCommand struct {
	ProjectID      uint
	CallerID       uint
	Title          string
	Description    string
	EstimationDate time.Time
	AssigneeIDs    []uint
}

// CreateTicketUseCase creates a ticket on a project board. Any member may
// create tickets; assignees are accepted as given without membership checks.
type CreateTicketUseCase struct {
	projectRepo project.Repository
	ticketRepo  ticket.Repository
	logger      logger.Interface
}

func NewCreateTicketUseCase(
	projectRepo project.Repository,
	ticketRepo ticket.Repository,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		projectRepo: projectRepo,
		ticketRepo:  ticketRepo,
		logger:      logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*dto.TicketDTO, error) {
	if _, err := authorizeOnProject(ctx, uc.projectRepo, cmd.ProjectID, cmd.CallerID, authorization.ActionCreateTicket); err != nil {
		return nil, err
	}

	t, err := ticket.NewTicket(cmd.ProjectID, cmd.Title, cmd.Description, cmd.EstimationDate, cmd.AssigneeIDs, cmd.CallerID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Save(ctx, t); err != nil {
		uc.logger.Errorw("failed to save ticket", "error", err, "project_id", cmd.ProjectID)
		return nil, errors.NewInternalError("failed to create ticket")
	}

	uc.logger.Infow("ticket created", "ticket_id", t.ID(), "project_id", cmd.ProjectID, "created_by", cmd.CallerID)

	result := dto.NewTicketDTO(t)
	return &result, nil
}
