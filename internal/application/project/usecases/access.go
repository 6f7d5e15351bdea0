package usecases

import (
	"context"

	"taskboard/internal/domain/project"
	"taskboard/internal/shared/authorization"
	"taskboard/internal/shared/errors"
)

// loadAuthorized fetches a project and checks that the caller may perform the
// given action on it. A missing project yields not found; a caller without
// sufficient role gets the uniform denial from the authorization table, so
// non-members and under-privileged members are indistinguishable.
func loadAuthorized(
	ctx context.Context,
	repo project.Repository,
	projectID, callerID uint,
	action authorization.Action,
) (*project.Project, error) {
	p, err := repo.FindByID(ctx, projectID)
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
	return p, nil
}
