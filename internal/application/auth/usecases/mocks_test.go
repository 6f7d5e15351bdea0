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
	if m.createFunc != nil {
		return m.createFunc(ctx, u)
	}
	return u.SetID(1)
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
	if m.existsByEmailFunc != nil {
		return m.existsByEmailFunc(ctx, email)
	}
	return false, nil
}

func (m *mockUserRepository) SearchByEmail(ctx context.Context, fragment string, limit int) ([]*user.User, error) {
	return m.searchByEmailFunc(ctx, fragment, limit)
}

type mockPasswordHasher struct {
	hashFunc   func(password string) (string, error)
	verifyFunc func(hash, password string) error
}

func (m *mockPasswordHasher) Hash(password string) (string, error) {
	if m.hashFunc != nil {
		return m.hashFunc(password)
	}
	return "hashed:" + password, nil
}

func (m *mockPasswordHasher) Verify(hash, password string) error {
	if m.verifyFunc != nil {
		return m.verifyFunc(hash, password)
	}
	return nil
}

type mockTokenIssuer struct {
	generateFunc func(userID uint) (string, error)
}

func (m *mockTokenIssuer) Generate(userID uint) (string, error) {
	if m.generateFunc != nil {
		return m.generateFunc(userID)
	}
	return "test-token", nil
}
