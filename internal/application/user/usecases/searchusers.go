package usecases

import (
	"context"
	"strings"

	"taskboard/internal/application/user/dto"
	"taskboard/internal/domain/user"
	"taskboard/internal/shared/constants"
	"taskboard/internal/shared/errors"
	"taskboard/internal/shared/logger"
	"taskboard/internal/shared/utils"
)

type SearchUsersCommand struct {
	Fragment string
}

// SearchUsersUseCase finds users by partial email match so project admins can
// pick people to invite. Results are capped; this is a picker, not a listing.
type SearchUsersUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewSearchUsersUseCase(userRepo user.Repository, logger logger.Interface) *SearchUsersUseCase {
	return &SearchUsersUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *SearchUsersUseCase) Execute(ctx context.Context, cmd SearchUsersCommand) ([]dto.SearchResultDTO, error) {
	fragment := strings.TrimSpace(strings.ToLower(cmd.Fragment))
	if fragment == "" {
		return nil, errors.NewValidationError("search query is required")
	}
	if !utils.IsEmailFragment(fragment) {
		return nil, errors.NewValidationError("invalid search query")
	}

	found, err := uc.userRepo.SearchByEmail(ctx, fragment, constants.UserSearchLimit)
	if err != nil {
		uc.logger.Errorw("failed to search users", "error", err)
		return nil, errors.NewInternalError("failed to search users")
	}

	results := make([]dto.SearchResultDTO, 0, len(found))
	for _, u := range found {
		results = append(results, dto.NewSearchResultDTO(u))
	}
	return results, nil
}
