package usecases

import (
	"context"

	"taskboard/internal/application/project/dto"
	"taskboard/internal/domain/project"
	"taskboard/internal/shared/authorization"
	"taskboard/internal/shared/errors"
	"taskboard/internal/shared/logger"
)

type ListLabelsCommand struct {
	ProjectID uint
	CallerID  uint
}

// ListLabelsUseCase returns a project's labels to any of its members.
type ListLabelsUseCase struct {
	projectRepo project.Repository
	labelRepo   project.LabelRepository
	logger      logger.Interface
}

func NewListLabelsUseCase(
	projectRepo project.Repository,
	labelRepo project.LabelRepository,
	logger logger.Interface,
) *ListLabelsUseCase {
	return &ListLabelsUseCase{
		projectRepo: projectRepo,
		labelRepo:   labelRepo,
		logger:      logger,
	}
}

func (uc *ListLabelsUseCase) Execute(ctx context.Context, cmd ListLabelsCommand) ([]dto.LabelDTO, error) {
	if _, err := loadAuthorized(ctx, uc.projectRepo, cmd.ProjectID, cmd.CallerID, authorization.ActionViewProject); err != nil {
		return nil, err
	}

	labels, err := uc.labelRepo.FindByProjectID(ctx, cmd.ProjectID)
	if err != nil {
		uc.logger.Errorw("failed to list labels", "error", err, "project_id", cmd.ProjectID)
		return nil, errors.NewInternalError("failed to list labels")
	}

	results := make([]dto.LabelDTO, 0, len(labels))
	for _, l := range labels {
		results = append(results, dto.NewLabelDTO(l))
	}
	return results, nil
}
