package usecases

import (
	"context"

	"taskboard/internal/application/auth/dto"
	"taskboard/internal/domain/user"
	vo "taskboard/internal/domain/user/valueobjects"
	"taskboard/internal/shared/errors"
	"taskboard/internal/shared/logger"
)

type LoginCommand struct {
	Email    string
	Password string
}

// LoginUseCase authenticates a user by email and password. Unknown emails and
// wrong passwords produce the same response so the endpoint does not leak
// which accounts exist.
type LoginUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	tokens   TokenIssuer
	logger   logger.Interface
}

func NewLoginUseCase(
	userRepo user.Repository,
	hasher PasswordHasher,
	tokens TokenIssuer,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		logger:   logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*dto.AuthResult, error) {
	email, err := vo.NewEmail(cmd.Email)
	if err != nil {
		return nil, errors.NewUnauthorizedError("invalid credentials")
	}

	account, err := uc.userRepo.GetByEmail(ctx, email.String())
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewUnauthorizedError("invalid credentials")
		}
		uc.logger.Errorw("failed to look up user", "error", err)
		return nil, errors.NewInternalError("failed to authenticate")
	}

	if err := uc.hasher.Verify(account.PasswordHash(), cmd.Password); err != nil {
		return nil, errors.NewUnauthorizedError("invalid credentials")
	}

	token, err := uc.tokens.Generate(account.ID())
	if err != nil {
		uc.logger.Errorw("failed to issue token", "error", err, "user_id", account.ID())
		return nil, errors.NewInternalError("failed to issue token")
	}

	uc.logger.Infow("user logged in", "user_id", account.ID())

	return &dto.AuthResult{
		Token: token,
		User:  dto.NewUserDTO(account),
	}, nil
}
