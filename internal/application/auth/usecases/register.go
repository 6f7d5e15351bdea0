package usecases

import (
	"context"
	"strings"

	"taskboard/internal/application/auth/dto"
	"taskboard/internal/domain/user"
	vo "taskboard/internal/domain/user/valueobjects"
	"taskboard/internal/shared/errors"
	"taskboard/internal/shared/logger"
)

type RegisterCommand struct {
	FirstName string
	LastName  string
	Phone     string
	Email     string
	Password  string
}

// RegisterUseCase creates a new account and signs the user in.
type RegisterUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	tokens   TokenIssuer
	logger   logger.Interface
}

func NewRegisterUseCase(
	userRepo user.Repository,
	hasher PasswordHasher,
	tokens TokenIssuer,
	logger logger.Interface,
) *RegisterUseCase {
	return &RegisterUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		logger:   logger,
	}
}

func (uc *RegisterUseCase) Execute(ctx context.Context, cmd RegisterCommand) (*dto.AuthResult, error) {
	firstName := strings.TrimSpace(cmd.FirstName)
	lastName := strings.TrimSpace(cmd.LastName)
	phone := strings.TrimSpace(cmd.Phone)

	if firstName == "" {
		return nil, errors.NewValidationError("first name is required")
	}
	if lastName == "" {
		return nil, errors.NewValidationError("last name is required")
	}
	if phone == "" {
		return nil, errors.NewValidationError("phone is required")
	}
	if len(cmd.Password) < 8 {
		return nil, errors.NewValidationError("password must be at least 8 characters")
	}

	email, err := vo.NewEmail(cmd.Email)
	if err != nil {
		return nil, errors.NewValidationError("invalid email format")
	}

	exists, err := uc.userRepo.ExistsByEmail(ctx, email.String())
	if err != nil {
		uc.logger.Errorw("failed to check email existence", "error", err)
		return nil, errors.NewInternalError("failed to check email availability")
	}
	if exists {
		return nil, errors.NewConflictError("email already registered")
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, errors.NewInternalError("failed to process password")
	}

	newUser, err := user.NewUser(firstName, lastName, phone, *email, hash)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Create(ctx, newUser); err != nil {
		if errors.IsConflictError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to create user", "error", err)
		return nil, errors.NewInternalError("failed to create user")
	}

	token, err := uc.tokens.Generate(newUser.ID())
	if err != nil {
		uc.logger.Errorw("failed to issue token", "error", err, "user_id", newUser.ID())
		return nil, errors.NewInternalError("failed to issue token")
	}

	uc.logger.Infow("user registered", "user_id", newUser.ID(), "email", email.String())

	return &dto.AuthResult{
		Token: token,
		User:  dto.NewUserDTO(newUser),
	}, nil
}
