package usecases

import (
	"context"

	"taskboard/internal/domain/project"
	"taskboard/internal/shared/authorization"
	"taskboard/internal/shared/errors"
	"taskboard/internal/shared/logger"
)

type DeleteLabelCommand struct {
	ProjectID uint
	LabelID   uint
	CallerID  uint
}

// DeleteLabelUseCase removes a label and detaches it from every ticket. Any
// member may do this.
type DeleteLabelUseCase struct {
	projectRepo project.Repository
	labelRepo   project.LabelRepository
	logger      logger.Interface
}

func NewDeleteLabelUseCase(
	projectRepo project.Repository,
	labelRepo project.LabelRepository,
	logger logger.Interface,
) *DeleteLabelUseCase {
	return &DeleteLabelUseCase{
		projectRepo: projectRepo,
		labelRepo:   labelRepo,
		logger:      logger,
	}
}

func (uc *DeleteLabelUseCase) Execute(ctx context.Context, cmd DeleteLabelCommand) error {
	if _, err := loadAuthorized(ctx, uc.projectRepo, cmd.ProjectID, cmd.CallerID, authorization.ActionManageLabels); err != nil {
		return err
	}

	l, err := uc.labelRepo.FindByID(ctx, cmd.LabelID)
	if err != nil {
		return err
	}
	if l.ProjectID() != cmd.ProjectID {
		return errors.NewNotFoundError("label not found")
	}

	if err := uc.labelRepo.Delete(ctx, cmd.LabelID); err != nil {
		uc.logger.Errorw("failed to delete label", "error", err, "label_id", cmd.LabelID)
		return errors.NewInternalError("failed to delete label")
	}

	uc.logger.Infow("label deleted", "label_id", cmd.LabelID, "project_id", cmd.ProjectID)
	return nil
}
