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

// GormTicketRepository implements ticket.Repository backed by GORM. Assignee
// and label references live in join tables and are replaced wholesale on
// update, matching the set semantics of the aggregate.
type GormTicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewGormTicketRepository(database *gorm.DB) ticket.Repository {
	return &GormTicketRepository{
		db:     database,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *GormTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	model, err := r.mapper.ToModel(t)
	if err != nil {
		return fmt.Errorf("failed to map ticket: %w", err)
	}

	conn := db.GetTxFromContext(ctx, r.db)
	return conn.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Assignees", "Labels").Create(model).Error; err != nil {
			return fmt.Errorf("failed to create ticket: %w", err)
		}
		if err := t.SetID(model.ID); err != nil {
			return err
		}
		return r.writeJoinRows(tx, t, model.ID)
	})
}

func (r *GormTicketRepository) FindByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	var model models.TicketModel
	conn := db.GetTxFromContext(ctx, r.db)
	if err := conn.Preload("Assignees").Preload("Labels").First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("ticket not found")
		}
		return nil, fmt.Errorf("failed to query ticket: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *GormTicketRepository) FindByProjectID(ctx context.Context, projectID uint) ([]*ticket.Ticket, error) {
	var ticketModels []*models.TicketModel
	conn := db.GetTxFromContext(ctx, r.db)
	err := conn.
		Preload("Assignees").
		Preload("Labels").
		Where("project_id = ?", projectID).
		Order("created_at DESC").
		Find(&ticketModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query tickets: %w", err)
	}
	return r.mapper.ToEntities(ticketModels)
}

func (r *GormTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	model, err := r.mapper.ToModel(t)
	if err != nil {
		return fmt.Errorf("failed to map ticket: %w", err)
	}

	conn := db.GetTxFromContext(ctx, r.db)
	return conn.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.TicketModel{}).Where("id = ?", model.ID).
			Select("title", "description", "status", "estimation_date", "updated_at").
			Updates(model)
		if result.Error != nil {
			return fmt.Errorf("failed to update ticket: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return errors.NewNotFoundError("ticket not found")
		}

		if err := tx.Where("ticket_id = ?", model.ID).Delete(&models.TicketAssigneeModel{}).Error; err != nil {
			return fmt.Errorf("failed to clear ticket assignees: %w", err)
		}
		if err := tx.Where("ticket_id = ?", model.ID).Delete(&models.TicketLabelModel{}).Error; err != nil {
			return fmt.Errorf("failed to clear ticket labels: %w", err)
		}
		return r.writeJoinRows(tx, t, model.ID)
	})
}

func (r *GormTicketRepository) Delete(ctx context.Context, id uint) error {
	conn := db.GetTxFromContext(ctx, r.db)
	return conn.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("ticket_id = ?", id).Delete(&models.TicketAssigneeModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete ticket assignees: %w", err)
		}
		if err := tx.Where("ticket_id = ?", id).Delete(&models.TicketLabelModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete ticket labels: %w", err)
		}

		result := tx.Delete(&models.TicketModel{}, id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete ticket: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return errors.NewNotFoundError("ticket not found")
		}
		return nil
	})
}

func (r *GormTicketRepository) DeleteByProjectID(ctx context.Context, projectID uint) error {
	conn := db.GetTxFromContext(ctx, r.db)
	return conn.Transaction(func(tx *gorm.DB) error {
		subquery := tx.Model(&models.TicketModel{}).Select("id").Where("project_id = ?", projectID)
		if err := tx.Where("ticket_id IN (?)", subquery).Delete(&models.TicketAssigneeModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete project ticket assignees: %w", err)
		}
		if err := tx.Where("ticket_id IN (?)", subquery).Delete(&models.TicketLabelModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete project ticket labels: %w", err)
		}
		if err := tx.Where("project_id = ?", projectID).Delete(&models.TicketModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete project tickets: %w", err)
		}
		return nil
	})
}

func (r *GormTicketRepository) writeJoinRows(tx *gorm.DB, t *ticket.Ticket, ticketID uint) error {
	assigneeRows := r.mapper.AssigneeModels(t, ticketID)
	if len(assigneeRows) > 0 {
		if err := tx.Create(&assigneeRows).Error; err != nil {
			return fmt.Errorf("failed to write ticket assignees: %w", err)
		}
	}
	labelRows := r.mapper.LabelModels(t, ticketID)
	if len(labelRows) > 0 {
		if err := tx.Create(&labelRows).Error; err != nil {
			return fmt.Errorf("failed to write ticket labels: %w", err)
		}
	}
	return nil
}
