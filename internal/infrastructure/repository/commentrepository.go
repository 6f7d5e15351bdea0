package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"taskboard/internal/domain/ticket"
	"taskboard/internal/infrastructure/persistence/mappers"
	"taskboard/internal/infrastructure/persistence/models"
	"taskboard/internal/shared/db"
	"taskboard/internal/shared/errors"
)

// GormCommentRepository implements ticket.CommentRepository backed by GORM.
type GormCommentRepository struct {
	db     *gorm.DB
	mapper mappers.CommentMapper
}

func NewGormCommentRepository(database *gorm.DB) ticket.CommentRepository {
	return &GormCommentRepository{
		db:     database,
		mapper: mappers.NewCommentMapper(),
	}
}

func (r *GormCommentRepository) Save(ctx context.Context, c *ticket.Comment) error {
	model, err := r.mapper.ToModel(c)
	if err != nil {
		return fmt.Errorf("failed to map comment: %w", err)
	}

	conn := db.GetTxFromContext(ctx, r.db)
	if err := conn.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}
	return c.SetID(model.ID)
}

func (r *GormCommentRepository) FindByID(ctx context.Context, id uint) (*ticket.Comment, error) {
	var model models.CommentModel
	conn := db.GetTxFromContext(ctx, r.db)
	if err := conn.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("comment not found")
		}
		return nil, fmt.Errorf("failed to query comment: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *GormCommentRepository) FindByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Comment, error) {
	var commentModels []*models.CommentModel
	conn := db.GetTxFromContext(ctx, r.db)
	err := conn.
		Where("ticket_id = ?", ticketID).
		Order("created_at ASC").
		Find(&commentModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query comments: %w", err)
	}
	return r.mapper.ToEntities(commentModels)
}

func (r *GormCommentRepository) Update(ctx context.Context, c *ticket.Comment) error {
	model, err := r.mapper.ToModel(c)
	if err != nil {
		return fmt.Errorf("failed to map comment: %w", err)
	}

	conn := db.GetTxFromContext(ctx, r.db)
	result := conn.Model(&models.CommentModel{}).Where("id = ?", model.ID).
		Select("content", "updated_at").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update comment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("comment not found")
	}
	return nil
}

func (r *GormCommentRepository) Delete(ctx context.Context, id uint) error {
	conn := db.GetTxFromContext(ctx, r.db)
	result := conn.Delete(&models.CommentModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete comment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("comment not found")
	}
	return nil
}

func (r *GormCommentRepository) DeleteByTicketID(ctx context.Context, ticketID uint) error {
	conn := db.GetTxFromContext(ctx, r.db)
	if err := conn.Where("ticket_id = ?", ticketID).Delete(&models.CommentModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete ticket comments: %w", err)
	}
	return nil
}

func (r *GormCommentRepository) DeleteByProjectID(ctx context.Context, projectID uint) error {
	conn := db.GetTxFromContext(ctx, r.db)
	subquery := conn.Session(&gorm.Session{NewDB: true}).
		Model(&models.TicketModel{}).Select("id").Where("project_id = ?", projectID)
	if err := conn.Where("ticket_id IN (?)", subquery).Delete(&models.CommentModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete project comments: %w", err)
	}
	return nil
}
