package usecases

import (
	"context"

	"taskboard/internal/application/project/dto"
	"taskboard/internal/domain/project"
	"taskboard/internal/shared/authorization"
	"taskboard/internal/shared/errors"
	"taskboard/internal/shared/logger"
)

type CreateLabelCommand struct {
	ProjectID uint
	CallerID  uint
	Name      string
	Color     string
}

// CreateLabelUseCase creates a project-scoped label. Any member may do this.
type CreateLabelUseCase struct {
	projectRepo project.Repository
	labelRepo   project.LabelRepository
	logger      logger.Interface
}

func NewCreateLabelUseCase(
	projectRepo project.Repository,
	labelRepo project.LabelRepository,
	logger logger.Interface,
) *CreateLabelUseCase {
	return &CreateLabelUseCase{
		projectRepo: projectRepo,
		labelRepo:   labelRepo,
		logger:      logger,
	}
}

func (uc *CreateLabelUseCase) Execute(ctx context.Context, cmd CreateLabelCommand) (*dto.LabelDTO, error) {
	if _, err := loadAuthorized(ctx, uc.projectRepo, cmd.ProjectID, cmd.CallerID, authorization.ActionManageLabels); err != nil {
		return nil, err
	}

	l, err := project.NewLabel(cmd.ProjectID, cmd.Name, cmd.Color)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.labelRepo.Save(ctx, l); err != nil {
		uc.logger.Errorw("failed to save label", "error", err, "project_id", cmd.ProjectID)
		return nil, errors.NewInternalError("failed to create label")
	}

	uc.logger.Infow("label created", "label_id", l.ID(), "project_id", cmd.ProjectID)

	result := dto.NewLabelDTO(l)
	return &result, nil
}
