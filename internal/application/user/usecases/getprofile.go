package usecases

import (
	"context"

	"taskboard/internal/application/user/dto"
	"taskboard/internal/domain/user"
	"taskboard/internal/shared/errors"
	"taskboard/internal/shared/logger"
)

type GetProfileCommand struct {
	UserID uint
}

// GetProfileUseCase returns the authenticated user's own profile.
type GetProfileUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewGetProfileUseCase(userRepo user.Repository, logger logger.Interface) *GetProfileUseCase {
	return &GetProfileUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *GetProfileUseCase) Execute(ctx context.Context, cmd GetProfileCommand) (*dto.UserDTO, error) {
	account, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to load profile", "error", err, "user_id", cmd.UserID)
		return nil, errors.NewInternalError("failed to load profile")
	}

	result := dto.NewUserDTO(account)
	return &result, nil
}
