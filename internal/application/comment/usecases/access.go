package usecases

import (
	"context"

	"taskboard/internal/domain/project"
	"taskboard/internal/domain/ticket"
	"taskboard/internal/shared/authorization"
	"taskboard/internal/shared/errors"
)

// loadTicketAuthorized fetches a ticket and checks the caller's role on the
// owning project. Missing tickets are not found; callers outside the project
// get the uniform denial.
func loadTicketAuthorized(
	ctx context.Context,
	projectRepo project.Repository,
	ticketRepo ticket.Repository,
	ticketID, callerID uint,
	action authorization.Action,
) (*ticket.Ticket, error) {
	t, err := ticketRepo.FindByID(ctx, ticketID)
	if err != nil {
		return nil, err
	}

	p, err := projectRepo.FindByID(ctx, t.ProjectID())
	if err != nil {
		return nil, err
	}

	role, ok := p.RoleOf(callerID)
	if !ok {
		return nil, errors.NewForbiddenError("access denied")
	}
	if err := authorization.Authorize(role, action); err != nil {
		return nil, err
	}
	return t, nil
}
