package usecases

import (
	"context"

	"taskboard/internal/domain/project"
	"taskboard/internal/shared/authorization"
	"taskboard/internal/shared/errors"
)

// authorizeOnProject checks that the caller may perform action on the given
// project. Missing projects are not found; anyone without sufficient role
// gets the uniform denial.
func authorizeOnProject(
	ctx context.Context,
	projectRepo project.Repository,
	projectID, callerID uint,
	action authorization.Action,
) (*project.Project, error) {
	p, err := projectRepo.FindByID(ctx, projectID)
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
