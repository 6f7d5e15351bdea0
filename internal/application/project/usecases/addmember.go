package usecases

import (
	"context"

	"taskboard/internal/application/project/dto"
	"taskboard/internal/domain/project"
	"taskboard/internal/domain/user"
	"taskboard/internal/shared/authorization"
	"taskboard/internal/shared/errors"
	"taskboard/internal/shared/logger"
)

type AddMemberCommand struct {
	ProjectID uint
	CallerID  uint
	UserID    uint
}

// AddMemberUseCase adds an existing user to a project with the member role.
// Requires admin or owner.
type AddMemberUseCase struct {
	projectRepo project.Repository
	userRepo    user.Repository
	logger      logger.Interface
}

func NewAddMemberUseCase(
	projectRepo project.Repository,
	userRepo user.Repository,
	logger logger.Interface,
) *AddMemberUseCase {
	return &AddMemberUseCase{
		projectRepo: projectRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

func (uc *AddMemberUseCase) Execute(ctx context.Context, cmd AddMemberCommand) (*dto.ProjectDTO, error) {
	p, err := loadAuthorized(ctx, uc.projectRepo, cmd.ProjectID, cmd.CallerID, authorization.ActionManageMembers)
	if err != nil {
		return nil, err
	}

	if _, err := uc.userRepo.GetByID(ctx, cmd.UserID); err != nil {
		if errors.IsNotFoundError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to look up user", "error", err, "user_id", cmd.UserID)
		return nil, errors.NewInternalError("failed to add member")
	}

	if err := p.AddMember(cmd.UserID); err != nil {
		return nil, errors.NewConflictError(err.Error())
	}

	if err := uc.projectRepo.Update(ctx, p); err != nil {
		uc.logger.Errorw("failed to save membership", "error", err, "project_id", cmd.ProjectID)
		return nil, errors.NewInternalError("failed to add member")
	}

	uc.logger.Infow("member added", "project_id", cmd.ProjectID, "user_id", cmd.UserID, "caller_id", cmd.CallerID)

	result := dto.NewProjectDTO(p)
	return &result, nil
}
