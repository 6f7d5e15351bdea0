package usecases

import (
	"context"
	"time"

	"taskboard/internal/application/ticket/dto"
	"taskboard/internal/domain/project"
	"taskboard/internal/domain/ticket"
	vo "taskboard/internal/domain/ticket/valueobjects"
	"taskboard/internal/shared/authorization"
	"taskboard/internal/shared/errors"
	"taskboard/internal/shared/logger"
)

// UpdateTicketCommand is a partial update; nil fields are left untouched.
// AssigneeIDs and LabelIDs replace the full set when present.
type UpdateTicketCommand struct {
	TicketID       uint
	CallerID       uint
	Title          *string
	Description    *string
	Status         *string
	EstimationDate *time.Time
	AssigneeIDs    *[]uint
	LabelIDs       *[]uint
}

// UpdateTicketUseCase edits a ticket. Any project member may update any
// ticket on the board, including moving it between status columns.
type UpdateTicketUseCase struct {
	projectRepo project.Repository
	ticketRepo  ticket.Repository
	logger      logger.Interface
}

func NewUpdateTicketUseCase(
	projectRepo project.Repository,
	ticketRepo ticket.Repository,
	logger logger.Interface,
) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{
		projectRepo: projectRepo,
		ticketRepo:  ticketRepo,
		logger:      logger,
	}
}

func (uc *UpdateTicketUseCase) Execute(ctx context.Context, cmd UpdateTicketCommand) (*dto.TicketDTO, error) {
	t, err := uc.ticketRepo.FindByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	if _, err := authorizeOnProject(ctx, uc.projectRepo, t.ProjectID(), cmd.CallerID, authorization.ActionUpdateTicket); err != nil {
		return nil, err
	}

	if cmd.Title != nil {
		if err := t.Rename(*cmd.Title); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.Description != nil {
		if err := t.UpdateDescription(*cmd.Description); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.Status != nil {
		status, ok := vo.NewTicketStatus(*cmd.Status)
		if !ok {
			return nil, errors.NewValidationError("invalid status: " + *cmd.Status)
		}
		if err := t.ChangeStatus(status); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.EstimationDate != nil {
		if err := t.Reschedule(*cmd.EstimationDate); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.AssigneeIDs != nil {
		t.SetAssignees(*cmd.AssigneeIDs)
	}
	if cmd.LabelIDs != nil {
		t.SetLabels(*cmd.LabelIDs)
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update ticket", "error", err, "ticket_id", cmd.TicketID)
		return nil, errors.NewInternalError("failed to update ticket")
	}

	uc.logger.Infow("ticket updated", "ticket_id", cmd.TicketID, "caller_id", cmd.CallerID)

	result := dto.NewTicketDTO(t)
	return &result, nil
}
