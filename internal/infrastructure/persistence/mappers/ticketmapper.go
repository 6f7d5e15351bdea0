package mappers

import (
	"fmt"

	"taskboard/internal/domain/ticket"
	vo "taskboard/internal/domain/ticket/valueobjects"
	"taskboard/internal/infrastructure/persistence/models"
)

// TicketMapper handles the conversion between ticket aggregates and
// persistence models. Assignee and label references travel with the ticket.
type TicketMapper interface {
	ToEntity(model *models.TicketModel) (*ticket.Ticket, error)
	ToModel(entity *ticket.Ticket) (*models.TicketModel, error)
	ToEntities(models []*models.TicketModel) ([]*ticket.Ticket, error)
	// AssigneeModels expands the ticket's assignee references into join rows.
	AssigneeModels(entity *ticket.Ticket, ticketID uint) []models.TicketAssigneeModel
	// LabelModels expands the ticket's label references into join rows.
	LabelModels(entity *ticket.Ticket, ticketID uint) []models.TicketLabelModel
}

// TicketMapperImpl is the concrete implementation of TicketMapper
type TicketMapperImpl struct{}

// NewTicketMapper creates a new ticket mapper
func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (m *TicketMapperImpl) ToEntity(model *models.TicketModel) (*ticket.Ticket, error) {
	if model == nil {
		return nil, nil
	}

	status, ok := vo.NewTicketStatus(model.Status)
	if !ok {
		return nil, fmt.Errorf("invalid ticket status in storage: %s", model.Status)
	}

	assigneeIDs := make([]uint, 0, len(model.Assignees))
	for _, row := range model.Assignees {
		assigneeIDs = append(assigneeIDs, row.UserID)
	}

	labelIDs := make([]uint, 0, len(model.Labels))
	for _, row := range model.Labels {
		labelIDs = append(labelIDs, row.LabelID)
	}

	entity, err := ticket.ReconstructTicket(
		model.ID,
		model.ProjectID,
		model.Title,
		model.Description,
		status,
		model.EstimationDate,
		assigneeIDs,
		labelIDs,
		model.CreatedBy,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct ticket: %w", err)
	}

	return entity, nil
}

func (m *TicketMapperImpl) ToModel(entity *ticket.Ticket) (*models.TicketModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.TicketModel{
		ID:             entity.ID(),
		ProjectID:      entity.ProjectID(),
		Title:          entity.Title(),
		Description:    entity.Description(),
		Status:         entity.Status().String(),
		EstimationDate: entity.EstimationDate(),
		CreatedBy:      entity.CreatedBy(),
		CreatedAt:      entity.CreatedAt(),
		UpdatedAt:      entity.UpdatedAt(),
	}, nil
}

func (m *TicketMapperImpl) ToEntities(ticketModels []*models.TicketModel) ([]*ticket.Ticket, error) {
	entities := make([]*ticket.Ticket, 0, len(ticketModels))
	for _, model := range ticketModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}

func (m *TicketMapperImpl) AssigneeModels(entity *ticket.Ticket, ticketID uint) []models.TicketAssigneeModel {
	ids := entity.AssigneeIDs()
	rows := make([]models.TicketAssigneeModel, 0, len(ids))
	for _, userID := range ids {
		rows = append(rows, models.TicketAssigneeModel{
			TicketID: ticketID,
			UserID:   userID,
		})
	}
	return rows
}

func (m *TicketMapperImpl) LabelModels(entity *ticket.Ticket, ticketID uint) []models.TicketLabelModel {
	ids := entity.LabelIDs()
	rows := make([]models.TicketLabelModel, 0, len(ids))
	for _, labelID := range ids {
		rows = append(rows, models.TicketLabelModel{
			TicketID: ticketID,
			LabelID:  labelID,
		})
	}
	return rows
}
