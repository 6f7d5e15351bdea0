package mappers

import (
	"fmt"

	"taskboard/internal/domain/user"
	vo "taskboard/internal/domain/user/valueobjects"
	"taskboard/internal/infrastructure/persistence/models"
)

// UserMapper handles the conversion between domain entities and persistence models
type UserMapper interface {
	// ToEntity converts a persistence model to a domain entity
	ToEntity(model *models.UserModel) (*user.User, error)

	// ToModel converts a domain entity to a persistence model
	ToModel(entity *user.User) (*models.UserModel, error)

	// ToEntities converts multiple persistence models to domain entities
	ToEntities(models []*models.UserModel) ([]*user.User, error)
}

// UserMapperImpl is the concrete implementation of UserMapper
type UserMapperImpl struct{}

// NewUserMapper creates a new user mapper
func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToEntity(model *models.UserModel) (*user.User, error) {
	if model == nil {
		return nil, nil
	}

	email, err := vo.NewEmail(model.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to create email value object: %w", err)
	}

	entity, err := user.ReconstructUser(
		model.ID,
		model.FirstName,
		model.LastName,
		model.Phone,
		*email,
		model.PasswordHash,
		model.PasswordResetToken,
		model.PasswordResetExpiresAt,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct user: %w", err)
	}

	return entity, nil
}

func (m *UserMapperImpl) ToModel(entity *user.User) (*models.UserModel, error) {
	if entity == nil {
		return nil, nil
	}

	email := entity.Email()
	return &models.UserModel{
		ID:                     entity.ID(),
		FirstName:              entity.FirstName(),
		LastName:               entity.LastName(),
		Phone:                  entity.Phone(),
		Email:                  email.String(),
		PasswordHash:           entity.PasswordHash(),
		PasswordResetToken:     entity.PasswordResetToken(),
		PasswordResetExpiresAt: entity.PasswordResetExpiresAt(),
		CreatedAt:              entity.CreatedAt(),
		UpdatedAt:              entity.UpdatedAt(),
	}, nil
}

func (m *UserMapperImpl) ToEntities(userModels []*models.UserModel) ([]*user.User, error) {
	entities := make([]*user.User, 0, len(userModels))
	for _, model := range userModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
