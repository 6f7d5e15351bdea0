package usecases

import (
	"context"

	"taskboard/internal/application/project/dto"
	"taskboard/internal/domain/project"
	"taskboard/internal/shared/errors"
	"taskboard/internal/shared/logger"
)

type ListProjectsCommand struct {
	UserID uint
}

// ListProjectsUseCase returns every project where the caller holds any role.
type ListProjectsUseCase struct {
	projectRepo project.Repository
	logger      logger.Interface
}

func NewListProjectsUseCase(projectRepo project.Repository, logger logger.Interface) *ListProjectsUseCase {
	return &ListProjectsUseCase{
		projectRepo: projectRepo,
		logger:      logger,
	}
}

func (uc *ListProjectsUseCase) Execute(ctx context.Context, cmd ListProjectsCommand) ([]dto.ProjectDTO, error) {
	projects, err := uc.projectRepo.FindByMemberID(ctx, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to list projects", "error", err, "user_id", cmd.UserID)
		return nil, errors.NewInternalError("failed to list projects")
	}
	return dto.NewProjectDTOs(projects), nil
}
