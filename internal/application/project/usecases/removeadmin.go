package usecases

import (
	"context"

	"taskboard/internal/application/project/dto"
	"taskboard/internal/domain/project"
	"taskboard/internal/shared/authorization"
	"taskboard/internal/shared/errors"
	"taskboard/internal/shared/logger"
)

type RemoveAdminCommand struct {
	ProjectID uint
	CallerID  uint
	UserID    uint
}

// RemoveAdminUseCase demotes an admin back to plain member. The owner cannot
// be demoted. Owner only.
type RemoveAdminUseCase struct {
	projectRepo project.Repository
	logger      logger.Interface
}

func NewRemoveAdminUseCase(projectRepo project.Repository, logger logger.Interface) *RemoveAdminUseCase {
	return &RemoveAdminUseCase{
		projectRepo: projectRepo,
		logger:      logger,
	}
}

func (uc *RemoveAdminUseCase) Execute(ctx context.Context, cmd RemoveAdminCommand) (*dto.ProjectDTO, error) {
	p, err := loadAuthorized(ctx, uc.projectRepo, cmd.ProjectID, cmd.CallerID, authorization.ActionManageAdmins)
	if err != nil {
		return nil, err
	}

	if err := p.DemoteAdmin(cmd.UserID); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.projectRepo.Update(ctx, p); err != nil {
		uc.logger.Errorw("failed to save membership", "error", err, "project_id", cmd.ProjectID)
		return nil, errors.NewInternalError("failed to demote admin")
	}

	uc.logger.Infow("admin demoted", "project_id", cmd.ProjectID, "user_id", cmd.UserID)

	result := dto.NewProjectDTO(p)
	return &result, nil
}
