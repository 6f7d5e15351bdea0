package mappers

import (
	"fmt"

	"taskboard/internal/domain/project"
	vo "taskboard/internal/domain/project/valueobjects"
	"taskboard/internal/infrastructure/persistence/models"
	"taskboard/internal/shared/authorization"
)

// ProjectMapper handles the conversion between project aggregates and
// persistence models. Membership rows travel with the project.
type ProjectMapper interface {
	ToEntity(model *models.ProjectModel) (*project.Project, error)
	ToModel(entity *project.Project) (*models.ProjectModel, error)
	ToEntities(models []*models.ProjectModel) ([]*project.Project, error)
	// MemberModels expands the aggregate's membership into rows for the given
	// project ID.
	MemberModels(entity *project.Project, projectID uint) []models.ProjectMemberModel
}

// ProjectMapperImpl is the concrete implementation of ProjectMapper
type ProjectMapperImpl struct{}

// NewProjectMapper creates a new project mapper
func NewProjectMapper() ProjectMapper {
	return &ProjectMapperImpl{}
}

func (m *ProjectMapperImpl) ToEntity(model *models.ProjectModel) (*project.Project, error) {
	if model == nil {
		return nil, nil
	}

	status, ok := vo.NewProjectStatus(model.Status)
	if !ok {
		return nil, fmt.Errorf("invalid project status in storage: %s", model.Status)
	}

	members := make([]project.Member, 0, len(model.Members))
	for _, row := range model.Members {
		role := authorization.Role(row.Role)
		if !role.IsValid() {
			return nil, fmt.Errorf("invalid member role in storage: %s", row.Role)
		}
		members = append(members, project.NewMember(row.UserID, role))
	}

	entity, err := project.ReconstructProject(
		model.ID,
		model.Title,
		model.Description,
		status,
		members,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct project: %w", err)
	}

	return entity, nil
}

func (m *ProjectMapperImpl) ToModel(entity *project.Project) (*models.ProjectModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.ProjectModel{
		ID:          entity.ID(),
		Title:       entity.Title(),
		Description: entity.Description(),
		Status:      entity.Status().String(),
		CreatedAt:   entity.CreatedAt(),
		UpdatedAt:   entity.UpdatedAt(),
	}, nil
}

func (m *ProjectMapperImpl) ToEntities(projectModels []*models.ProjectModel) ([]*project.Project, error) {
	entities := make([]*project.Project, 0, len(projectModels))
	for _, model := range projectModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}

func (m *ProjectMapperImpl) MemberModels(entity *project.Project, projectID uint) []models.ProjectMemberModel {
	members := entity.Members()
	rows := make([]models.ProjectMemberModel, 0, len(members))
	for _, member := range members {
		rows = append(rows, models.ProjectMemberModel{
			ProjectID: projectID,
			UserID:    member.UserID(),
			Role:      string(member.Role()),
		})
	}
	return rows
}
