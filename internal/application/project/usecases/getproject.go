package usecases

import (
	"context"

	"taskboard/internal/application/project/dto"
	"taskboard/internal/domain/project"
	"taskboard/internal/shared/authorization"
	"taskboard/internal/shared/logger"
)

type GetProjectCommand struct {
	ProjectID uint
	CallerID  uint
}

// GetProjectUseCase returns one project, members included, to any of its
// members.
type GetProjectUseCase struct {
	projectRepo project.Repository
	logger      logger.Interface
}

func NewGetProjectUseCase(projectRepo project.Repository, logger logger.Interface) *GetProjectUseCase {
	return &GetProjectUseCase{
		projectRepo: projectRepo,
		logger:      logger,
	}
}

func (uc *GetProjectUseCase) Execute(ctx context.Context, cmd GetProjectCommand) (*dto.ProjectDTO, error) {
	p, err := loadAuthorized(ctx, uc.projectRepo, cmd.ProjectID, cmd.CallerID, authorization.ActionViewProject)
	if err != nil {
		return nil, err
	}

	result := dto.NewProjectDTO(p)
	return &result, nil
}
