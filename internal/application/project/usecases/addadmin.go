package usecases

import (
	"context"

	"taskboard/internal/application/project/dto"
	"taskboard/internal/domain/project"
	"taskboard/internal/shared/authorization"
	"taskboard/internal/shared/errors"
	"taskboard/internal/shared/logger"
)

type AddAdminCommand struct {
	ProjectID uint
	CallerID  uint
	UserID    uint
}

// AddAdminUseCase promotes an existing member to admin. Owner only.
type AddAdminUseCase struct {
	projectRepo project.Repository
	logger      logger.Interface
}

func NewAddAdminUseCase(projectRepo project.Repository, logger logger.Interface) *AddAdminUseCase {
	return &AddAdminUseCase{
		projectRepo: projectRepo,
		logger:      logger,
	}
}

func (uc *AddAdminUseCase) Execute(ctx context.Context, cmd AddAdminCommand) (*dto.ProjectDTO, error) {
	p, err := loadAuthorized(ctx, uc.projectRepo, cmd.ProjectID, cmd.CallerID, authorization.ActionManageAdmins)
	if err != nil {
		return nil, err
	}

	if err := p.PromoteAdmin(cmd.UserID); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.projectRepo.Update(ctx, p); err != nil {
		uc.logger.Errorw("failed to save membership", "error", err, "project_id", cmd.ProjectID)
		return nil, errors.NewInternalError("failed to promote admin")
	}

	uc.logger.Infow("admin promoted", "project_id", cmd.ProjectID, "user_id", cmd.UserID)

	result := dto.NewProjectDTO(p)
	return &result, nil
}
