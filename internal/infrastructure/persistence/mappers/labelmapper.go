package mappers

import (
	"fmt"

	"taskboard/internal/domain/project"
	"taskboard/internal/infrastructure/persistence/models"
)

// LabelMapper handles the conversion between label entities and persistence models
type LabelMapper interface {
	ToEntity(model *models.LabelModel) (*project.Label, error)
	ToModel(entity *project.Label) (*models.LabelModel, error)
	ToEntities(models []*models.LabelModel) ([]*project.Label, error)
}

// LabelMapperImpl is the concrete implementation of LabelMapper
type LabelMapperImpl struct{}

// NewLabelMapper creates a new label mapper
func NewLabelMapper() LabelMapper {
	return &LabelMapperImpl{}
}

func (m *LabelMapperImpl) ToEntity(model *models.LabelModel) (*project.Label, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := project.ReconstructLabel(
		model.ID,
		model.ProjectID,
		model.Name,
		model.Color,
		model.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct label: %w", err)
	}

	return entity, nil
}

func (m *LabelMapperImpl) ToModel(entity *project.Label) (*models.LabelModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.LabelModel{
		ID:        entity.ID(),
		ProjectID: entity.ProjectID(),
		Name:      entity.Name(),
		Color:     entity.Color(),
		CreatedAt: entity.CreatedAt(),
	}, nil
}

func (m *LabelMapperImpl) ToEntities(labelModels []*models.LabelModel) ([]*project.Label, error) {
	entities := make([]*project.Label, 0, len(labelModels))
	for _, model := range labelModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
