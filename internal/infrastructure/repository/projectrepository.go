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

// GormProjectRepository implements project.Repository backed by GORM. The
// membership rows are written alongside the project row so the aggregate's
// single-owner invariant survives storage round trips.
type GormProjectRepository struct {
	db     *gorm.DB
	mapper mappers.ProjectMapper
}

func NewGormProjectRepository(database *gorm.DB) project.Repository {
	return &GormProjectRepository{
		db:     database,
		mapper: mappers.NewProjectMapper(),
	}
}

func (r *GormProjectRepository) Save(ctx context.Context, p *project.Project) error {
	model, err := r.mapper.ToModel(p)
	if err != nil {
		return fmt.Errorf("failed to map project: %w", err)
	}

	conn := db.GetTxFromContext(ctx, r.db)
	return conn.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(model).Error; err != nil {
			return fmt.Errorf("failed to create project: %w", err)
		}
		if err := p.SetID(model.ID); err != nil {
			return err
		}

		memberRows := r.mapper.MemberModels(p, model.ID)
		if len(memberRows) > 0 {
			if err := tx.Create(&memberRows).Error; err != nil {
				return fmt.Errorf("failed to create project members: %w", err)
			}
		}
		return nil
	})
}

func (r *GormProjectRepository) FindByID(ctx context.Context, id uint) (*project.Project, error) {
	var model models.ProjectModel
	conn := db.GetTxFromContext(ctx, r.db)
	if err := conn.Preload("Members").First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("project not found")
		}
		return nil, fmt.Errorf("failed to query project: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *GormProjectRepository) FindByMemberID(ctx context.Context, userID uint) ([]*project.Project, error) {
	var projectModels []*models.ProjectModel
	conn := db.GetTxFromContext(ctx, r.db)
	err := conn.
		Preload("Members").
		Joins("JOIN project_members pm ON pm.project_id = projects.id").
		Where("pm.user_id = ?", userID).
		Order("projects.created_at DESC").
		Find(&projectModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query projects by member: %w", err)
	}
	return r.mapper.ToEntities(projectModels)
}

// Update rewrites the project row and replaces the membership rows with the
// aggregate's current state.
func (r *GormProjectRepository) Update(ctx context.Context, p *project.Project) error {
	model, err := r.mapper.ToModel(p)
	if err != nil {
		return fmt.Errorf("failed to map project: %w", err)
	}

	conn := db.GetTxFromContext(ctx, r.db)
	return conn.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.ProjectModel{}).Where("id = ?", model.ID).
			Select("title", "description", "status", "updated_at").
			Updates(model)
		if result.Error != nil {
			return fmt.Errorf("failed to update project: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return errors.NewNotFoundError("project not found")
		}

		if err := tx.Where("project_id = ?", model.ID).Delete(&models.ProjectMemberModel{}).Error; err != nil {
			return fmt.Errorf("failed to clear project members: %w", err)
		}
		memberRows := r.mapper.MemberModels(p, model.ID)
		if len(memberRows) > 0 {
			if err := tx.Create(&memberRows).Error; err != nil {
				return fmt.Errorf("failed to write project members: %w", err)
			}
		}
		return nil
	})
}

func (r *GormProjectRepository) Delete(ctx context.Context, id uint) error {
	conn := db.GetTxFromContext(ctx, r.db)
	return conn.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", id).Delete(&models.ProjectMemberModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete project members: %w", err)
		}

		result := tx.Delete(&models.ProjectModel{}, id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete project: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return errors.NewNotFoundError("project not found")
		}
		return nil
	})
}
