package usecases

import (
	"context"

	"taskboard/internal/domain/user"
)

type mockUserRepository struct {
	createFunc        func(ctx context.Context, u *user.User) error
	getByIDFunc       func(ctx context.Context, id uint) (*user.User, error)
	getByIDsFunc      func(ctx context.Context, ids []uint) ([]*user.User, error)
	getByEmailFunc    func(ctx context.Context, email string) (*user.User, error)
	existsByEmailFunc func(ctx context.Context, email string) (bool, error)
	searchByEmailFunc func(ctx context.Context, fragment string, limit int) ([]*user.User, error)
}

func (m *mockUserRepository) Create(ctx context.Context, u *user.User) error {
	return m.createFunc(ctx, u)
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	return m.getByIDFunc(ctx, id)
}

func (m *mockUserRepository) GetByIDs(ctx context.Context, ids []uint) ([]*user.User, error) {
	return m.getByIDsFunc(ctx, ids)
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	return m.getByEmailFunc(ctx, email)
}

func (m *mockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return m.existsByEmailFunc(ctx, email)
}

func (m *mockUserRepository) SearchByEmail(ctx context.Context, fragment string, limit int) ([]*user.User, error) {
	return m.searchByEmailFunc(ctx, fragment, limit)
}
