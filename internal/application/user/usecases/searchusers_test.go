package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard/internal/domain/user"
	vo "taskboard/internal/domain/user/valueobjects"
	"taskboard/internal/shared/constants"
	"taskboard/internal/shared/errors"
	"taskboard/internal/shared/logger"
)

func testUser(t *testing.T, id uint, email string) *user.User {
	t.Helper()
	emailVO, err := vo.NewEmail(email)
	require.NoError(t, err)
	u, err := user.ReconstructUser(id, "Test", "User", "+15550000000", *emailVO,
		"hash", nil, nil, time.Now(), time.Now())
	require.NoError(t, err)
	return u
}

func TestSearchUsers_NormalizesFragmentAndCapsLimit(t *testing.T) {
	var gotFragment string
	var gotLimit int
	repo := &mockUserRepository{
		searchByEmailFunc: func(ctx context.Context, fragment string, limit int) ([]*user.User, error) {
			gotFragment = fragment
			gotLimit = limit
			return []*user.User{testUser(t, 1, "alice@corp.com")}, nil
		},
	}
	uc := NewSearchUsersUseCase(repo, logger.NewLogger())

	results, err := uc.Execute(context.Background(), SearchUsersCommand{Fragment: "  CORP  "})
	require.NoError(t, err)

	assert.Equal(t, "corp", gotFragment)
	assert.Equal(t, constants.UserSearchLimit, gotLimit)
	require.Len(t, results, 1)
	assert.Equal(t, "alice@corp.com", results[0].Email)
}

func TestSearchUsers_EmptyFragment(t *testing.T) {
	uc := NewSearchUsersUseCase(&mockUserRepository{}, logger.NewLogger())

	_, err := uc.Execute(context.Background(), SearchUsersCommand{Fragment: "   "})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestSearchUsers_RejectsUnsafeFragment(t *testing.T) {
	uc := NewSearchUsersUseCase(&mockUserRepository{}, logger.NewLogger())

	_, err := uc.Execute(context.Background(), SearchUsersCommand{Fragment: "corp'; drop table users"})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestGetProfile_Success(t *testing.T) {
	repo := &mockUserRepository{
		getByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			return testUser(t, id, "ada@example.com"), nil
		},
	}
	uc := NewGetProfileUseCase(repo, logger.NewLogger())

	profile, err := uc.Execute(context.Background(), GetProfileCommand{UserID: 7})
	require.NoError(t, err)
	assert.Equal(t, uint(7), profile.ID)
	assert.Equal(t, "ada@example.com", profile.Email)
}

func TestGetProfile_NotFound(t *testing.T) {
	repo := &mockUserRepository{
		getByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			return nil, errors.NewNotFoundError("user not found")
		},
	}
	uc := NewGetProfileUseCase(repo, logger.NewLogger())

	_, err := uc.Execute(context.Background(), GetProfileCommand{UserID: 404})
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}
