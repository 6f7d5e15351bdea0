package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"taskboard/internal/domain/user"
	"taskboard/internal/infrastructure/persistence/mappers"
	"taskboard/internal/infrastructure/persistence/models"
	"taskboard/internal/shared/db"
	"taskboard/internal/shared/errors"
)

// GormUserRepository implements user.Repository backed by GORM.
type GormUserRepository struct {
	db     *gorm.DB
	mapper mappers.UserMapper
}

func NewGormUserRepository(database *gorm.DB) user.Repository {
	return &GormUserRepository{
		db:     database,
		mapper: mappers.NewUserMapper(),
	}
}

func (r *GormUserRepository) Create(ctx context.Context, u *user.User) error {
	model, err := r.mapper.ToModel(u)
	if err != nil {
		return fmt.Errorf("failed to map user: %w", err)
	}

	conn := db.GetTxFromContext(ctx, r.db)
	if err := conn.Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("email already registered")
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	return u.SetID(model.ID)
}

func (r *GormUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	var model models.UserModel
	conn := db.GetTxFromContext(ctx, r.db)
	if err := conn.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("user not found")
		}
		return nil, fmt.Errorf("failed to query user: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *GormUserRepository) GetByIDs(ctx context.Context, ids []uint) ([]*user.User, error) {
	if len(ids) == 0 {
		return []*user.User{}, nil
	}

	var userModels []*models.UserModel
	conn := db.GetTxFromContext(ctx, r.db)
	if err := conn.Where("id IN ?", ids).Find(&userModels).Error; err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	return r.mapper.ToEntities(userModels)
}

func (r *GormUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	var model models.UserModel
	conn := db.GetTxFromContext(ctx, r.db)
	if err := conn.Where("email = ?", email).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("user not found")
		}
		return nil, fmt.Errorf("failed to query user by email: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *GormUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	conn := db.GetTxFromContext(ctx, r.db)
	if err := conn.Model(&models.UserModel{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to count users by email: %w", err)
	}
	return count > 0, nil
}

func (r *GormUserRepository) SearchByEmail(ctx context.Context, fragment string, limit int) ([]*user.User, error) {
	var userModels []*models.UserModel
	conn := db.GetTxFromContext(ctx, r.db)
	err := conn.
		Where("email LIKE ?", "%"+fragment+"%").
		Order("email ASC").
		Limit(limit).
		Find(&userModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search users: %w", err)
	}
	return r.mapper.ToEntities(userModels)
}
