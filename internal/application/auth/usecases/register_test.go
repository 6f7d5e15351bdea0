package usecases

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard/internal/shared/errors"
	"taskboard/internal/shared/logger"
)

func newRegisterUseCase(repo *mockUserRepository) *RegisterUseCase {
	return NewRegisterUseCase(repo, &mockPasswordHasher{}, &mockTokenIssuer{}, logger.NewLogger())
}

func validRegisterCommand() RegisterCommand {
	return RegisterCommand{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Phone:     "+15550001111",
		Email:     "Ada@Example.com",
		Password:  "correct-horse",
	}
}

func TestRegister_Success(t *testing.T) {
	repo := &mockUserRepository{}
	uc := newRegisterUseCase(repo)

	result, err := uc.Execute(context.Background(), validRegisterCommand())
	require.NoError(t, err)

	assert.Equal(t, "test-token", result.Token)
	assert.Equal(t, uint(1), result.User.ID)
	assert.Equal(t, "ada@example.com", result.User.Email, "email should be lowercased")
	assert.Equal(t, "Ada", result.User.FirstName)
}

func TestRegister_MissingFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*RegisterCommand)
	}{
		{"missing first name", func(c *RegisterCommand) { c.FirstName = "" }},
		{"missing last name", func(c *RegisterCommand) { c.LastName = " " }},
		{"missing phone", func(c *RegisterCommand) { c.Phone = "" }},
		{"missing email", func(c *RegisterCommand) { c.Email = "" }},
		{"invalid email", func(c *RegisterCommand) { c.Email = "not-an-email" }},
		{"short password", func(c *RegisterCommand) { c.Password = "short" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newRegisterUseCase(&mockUserRepository{})
			cmd := validRegisterCommand()
			tt.mutate(&cmd)

			_, err := uc.Execute(context.Background(), cmd)
			require.Error(t, err)
			assert.True(t, errors.IsValidationError(err))
		})
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := &mockUserRepository{
		existsByEmailFunc: func(ctx context.Context, email string) (bool, error) {
			return true, nil
		},
	}
	uc := newRegisterUseCase(repo)

	_, err := uc.Execute(context.Background(), validRegisterCommand())
	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))

	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 400, appErr.Code)
}

func TestRegister_HasherFailure(t *testing.T) {
	uc := NewRegisterUseCase(
		&mockUserRepository{},
		&mockPasswordHasher{hashFunc: func(string) (string, error) {
			return "", fmt.Errorf("bcrypt failure")
		}},
		&mockTokenIssuer{},
		logger.NewLogger(),
	)

	_, err := uc.Execute(context.Background(), validRegisterCommand())
	require.Error(t, err)
	assert.False(t, errors.IsValidationError(err))
}
