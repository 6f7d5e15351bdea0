package usecases

import (
	"context"

	"taskboard/internal/application/project/dto"
	"taskboard/internal/domain/project"
	"taskboard/internal/shared/authorization"
	"taskboard/internal/shared/errors"
	"taskboard/internal/shared/logger"
)

type RemoveMemberCommand struct {
	ProjectID uint
	CallerID  uint
	UserID    uint
}

// RemoveMemberUseCase removes a member or admin from a project. The owner can
// never be removed. Requires admin or owner.
type RemoveMemberUseCase struct {
	projectRepo project.Repository
	logger      logger.Interface
}

func NewRemoveMemberUseCase(projectRepo project.Repository, logger logger.Interface) *RemoveMemberUseCase {
	return &RemoveMemberUseCase{
		projectRepo: projectRepo,
		logger:      logger,
	}
}

func (uc *RemoveMemberUseCase) Execute(ctx context.Context, cmd RemoveMemberCommand) (*dto.ProjectDTO, error) {
	p, err := loadAuthorized(ctx, uc.projectRepo, cmd.ProjectID, cmd.CallerID, authorization.ActionManageMembers)
	if err != nil {
		return nil, err
	}

	if err := p.RemoveMember(cmd.UserID); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.projectRepo.Update(ctx, p); err != nil {
		uc.logger.Errorw("failed to save membership", "error", err, "project_id", cmd.ProjectID)
		return nil, errors.NewInternalError("failed to remove member")
	}

	uc.logger.Infow("member removed", "project_id", cmd.ProjectID, "user_id", cmd.UserID, "caller_id", cmd.CallerID)

	result := dto.NewProjectDTO(p)
	return &result, nil
}
