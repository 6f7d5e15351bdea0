package usecases

import (
	"context"

	"taskboard/internal/application/project/dto"
	"taskboard/internal/domain/project"
	vo "taskboard/internal/domain/project/valueobjects"
	"taskboard/internal/shared/authorization"
	"taskboard/internal/shared/errors"
	"taskboard/internal/shared/logger"
)

// UpdateProjectCommand is a partial update; nil fields are left untouched.
type UpdateProjectCommand struct {
	ProjectID   uint
	CallerID    uint
	Title       *string
	Description *string
	Status      *string
}

// UpdateProjectUseCase edits project metadata. Requires admin or owner.
type UpdateProjectUseCase struct {
	projectRepo project.Repository
	logger      logger.Interface
}

func NewUpdateProjectUseCase(projectRepo project.Repository, logger logger.Interface) *UpdateProjectUseCase {
	return &UpdateProjectUseCase{
		projectRepo: projectRepo,
		logger:      logger,
	}
}

func (uc *UpdateProjectUseCase) Execute(ctx context.Context, cmd UpdateProjectCommand) (*dto.ProjectDTO, error) {
	p, err := loadAuthorized(ctx, uc.projectRepo, cmd.ProjectID, cmd.CallerID, authorization.ActionUpdateProject)
	if err != nil {
		return nil, err
	}

	if cmd.Title != nil {
		if err := p.Rename(*cmd.Title); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.Description != nil {
		p.UpdateDescription(*cmd.Description)
	}
	if cmd.Status != nil {
		status, ok := vo.NewProjectStatus(*cmd.Status)
		if !ok {
			return nil, errors.NewValidationError("invalid status: " + *cmd.Status)
		}
		if err := p.ChangeStatus(status); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := uc.projectRepo.Update(ctx, p); err != nil {
		uc.logger.Errorw("failed to update project", "error", err, "project_id", cmd.ProjectID)
		return nil, errors.NewInternalError("failed to update project")
	}

	uc.logger.Infow("project updated", "project_id", cmd.ProjectID, "caller_id", cmd.CallerID)

	result := dto.NewProjectDTO(p)
	return &result, nil
}
