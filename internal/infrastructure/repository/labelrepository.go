package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"taskboard/internal/domain/project"
	"taskboard/internal/infrastructure/persistence/mappers"
	"taskboard/internal/infrastructure/persistence/models"
	"taskboard/internal/shared/db"
	"taskboard/internal/shared/errors"
)

// GormLabelRepository implements project.LabelRepository backed by GORM.
type GormLabelRepository struct {
	db     *gorm.DB
	mapper mappers.LabelMapper
}

func NewGormLabelRepository(database *gorm.DB) project.LabelRepository {
	return &GormLabelRepository{
		db:     database,
		mapper: mappers.NewLabelMapper(),
	}
}

func (r *GormLabelRepository) Save(ctx context.Context, l *project.Label) error {
	model, err := r.mapper.ToModel(l)
	if err != nil {
		return fmt.Errorf("failed to map label: %w", err)
	}

	conn := db.GetTxFromContext(ctx, r.db)
	if err := conn.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create label: %w", err)
	}
	return l.SetID(model.ID)
}

func (r *GormLabelRepository) FindByID(ctx context.Context, id uint) (*project.Label, error) {
	var model models.LabelModel
	conn := db.GetTxFromContext(ctx, r.db)
	if err := conn.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("label not found")
		}
		return nil, fmt.Errorf("failed to query label: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *GormLabelRepository) FindByProjectID(ctx context.Context, projectID uint) ([]*project.Label, error) {
	var labelModels []*models.LabelModel
	conn := db.GetTxFromContext(ctx, r.db)
	err := conn.
		Where("project_id = ?", projectID).
		Order("created_at ASC").
		Find(&labelModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query labels: %w", err)
	}
	return r.mapper.ToEntities(labelModels)
}

// Delete removes the label and any ticket attachments referencing it.
func (r *GormLabelRepository) Delete(ctx context.Context, id uint) error {
	conn := db.GetTxFromContext(ctx, r.db)
	return conn.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("label_id = ?", id).Delete(&models.TicketLabelModel{}).Error; err != nil {
			return fmt.Errorf("failed to detach label from tickets: %w", err)
		}

		result := tx.Delete(&models.LabelModel{}, id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete label: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return errors.NewNotFoundError("label not found")
		}
		return nil
	})
}

func (r *GormLabelRepository) DeleteByProjectID(ctx context.Context, projectID uint) error {
	conn := db.GetTxFromContext(ctx, r.db)
	return conn.Transaction(func(tx *gorm.DB) error {
		subquery := tx.Model(&models.LabelModel{}).Select("id").Where("project_id = ?", projectID)
		if err := tx.Where("label_id IN (?)", subquery).Delete(&models.TicketLabelModel{}).Error; err != nil {
			return fmt.Errorf("failed to detach project labels from tickets: %w", err)
		}
		if err := tx.Where("project_id = ?", projectID).Delete(&models.LabelModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete project labels: %w", err)
		}
		return nil
	})
}
