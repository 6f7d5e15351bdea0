package usecases

import (
	"context"

	"taskboard/internal/application/project/dto"
	"taskboard/internal/domain/project"
	vo "taskboard/internal/domain/project/valueobjects"
	"taskboard/internal/shared/errors"
	"taskboard/internal/shared/logger"
)

type CreateProjectCommand struct {
	Title       string
	Description string
	Status      string
	CreatorID   uint
}

// CreateProjectUseCase creates a project with the caller as its sole owner.
type CreateProjectUseCase struct {
	projectRepo project.Repository
	logger      logger.Interface
}

func NewCreateProjectUseCase(projectRepo project.Repository, logger logger.Interface) *CreateProjectUseCase {
	return &CreateProjectUseCase{
		projectRepo: projectRepo,
		logger:      logger,
	}
}

func (uc *CreateProjectUseCase) Execute(ctx context.Context, cmd CreateProjectCommand) (*dto.ProjectDTO, error) {
	p, err := project.NewProject(cmd.Title, cmd.Description, cmd.CreatorID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	// Status defaults to ACTIVE; an explicit one is honored when valid.
	if cmd.Status != "" {
		status, ok := vo.NewProjectStatus(cmd.Status)
		if !ok {
			return nil, errors.NewValidationError("invalid project status")
		}
		if err := p.ChangeStatus(status); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := uc.projectRepo.Save(ctx, p); err != nil {
		uc.logger.Errorw("failed to save project", "error", err)
		return nil, errors.NewInternalError("failed to create project")
	}

	uc.logger.Infow("project created", "project_id", p.ID(), "owner_id", cmd.CreatorID)

	result := dto.NewProjectDTO(p)
	return &result, nil
}
