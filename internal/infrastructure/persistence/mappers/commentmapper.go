package mappers

import (
	"fmt"

	"taskboard/internal/domain/ticket"
	"taskboard/internal/infrastructure/persistence/models"
)

// CommentMapper handles the conversion between comment entities and persistence models
type CommentMapper interface {
	ToEntity(model *models.CommentModel) (*ticket.Comment, error)
	ToModel(entity *ticket.Comment) (*models.CommentModel, error)
	ToEntities(models []*models.CommentModel) ([]*ticket.Comment, error)
}

// CommentMapperImpl is the concrete implementation of CommentMapper
type CommentMapperImpl struct{}

// NewCommentMapper creates a new comment mapper
func NewCommentMapper() CommentMapper {
	return &CommentMapperImpl{}
}

func (m *CommentMapperImpl) ToEntity(model *models.CommentModel) (*ticket.Comment, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := ticket.ReconstructComment(
		model.ID,
		model.TicketID,
		model.AuthorID,
		model.Content,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct comment: %w", err)
	}

	return entity, nil
}

func (m *CommentMapperImpl) ToModel(entity *ticket.Comment) (*models.CommentModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.CommentModel{
		ID:        entity.ID(),
		TicketID:  entity.TicketID(),
		AuthorID:  entity.AuthorID(),
		Content:   entity.Content(),
		CreatedAt: entity.CreatedAt(),
		UpdatedAt: entity.UpdatedAt(),
	}, nil
}

func (m *CommentMapperImpl) ToEntities(commentModels []*models.CommentModel) ([]*ticket.Comment, error) {
	entities := make([]*ticket.Comment, 0, len(commentModels))
	for _, model := range commentModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
