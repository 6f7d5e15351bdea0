package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard/internal/domain/project"
	"taskboard/internal/shared/errors"
	"taskboard/internal/shared/logger"
)

func TestCreateLabel_MemberMayCreate(t *testing.T) {
	p := boardProject(t)
	uc := NewCreateLabelUseCase(repoWith(t, p), &mockLabelRepository{}, logger.NewLogger())

	result, err := uc.Execute(context.Background(), CreateLabelCommand{
		ProjectID: 10, CallerID: memberID, Name: "bug", Color: "#ff0000",
	})
	require.NoError(t, err)
	assert.Equal(t, "bug", result.Name)
	assert.Equal(t, uint(10), result.ProjectID)
}

func TestCreateLabel_OutsiderDenied(t *testing.T) {
	p := boardProject(t)
	uc := NewCreateLabelUseCase(repoWith(t, p), &mockLabelRepository{}, logger.NewLogger())

	_, err := uc.Execute(context.Background(), CreateLabelCommand{
		ProjectID: 10, CallerID: outsiderID, Name: "bug", Color: "#ff0000",
	})
	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))
}

func TestCreateLabel_EmptyName(t *testing.T) {
	p := boardProject(t)
	uc := NewCreateLabelUseCase(repoWith(t, p), &mockLabelRepository{}, logger.NewLogger())

	_, err := uc.Execute(context.Background(), CreateLabelCommand{
		ProjectID: 10, CallerID: memberID, Name: "  ", Color: "#ff0000",
	})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestListLabels_ReturnsProjectLabels(t *testing.T) {
	p := boardProject(t)
	labelRepo := &mockLabelRepository{
		findByProjectIDFunc: func(ctx context.Context, projectID uint) ([]*project.Label, error) {
			l, err := project.ReconstructLabel(5, projectID, "bug", "#ff0000", time.Now())
			require.NoError(t, err)
			return []*project.Label{l}, nil
		},
	}
	uc := NewListLabelsUseCase(repoWith(t, p), labelRepo, logger.NewLogger())

	results, err := uc.Execute(context.Background(), ListLabelsCommand{ProjectID: 10, CallerID: memberID})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "bug", results[0].Name)
}

func TestDeleteLabel_WrongProjectIsNotFound(t *testing.T) {
	p := boardProject(t)
	labelRepo := &mockLabelRepository{
		findByIDFunc: func(ctx context.Context, id uint) (*project.Label, error) {
			l, err := project.ReconstructLabel(id, 777, "bug", "#ff0000", time.Now())
			require.NoError(t, err)
			return l, nil
		},
	}
	uc := NewDeleteLabelUseCase(repoWith(t, p), labelRepo, logger.NewLogger())

	err := uc.Execute(context.Background(), DeleteLabelCommand{ProjectID: 10, LabelID: 5, CallerID: memberID})
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestDeleteLabel_Success(t *testing.T) {
	p := boardProject(t)
	deleted := false
	labelRepo := &mockLabelRepository{
		findByIDFunc: func(ctx context.Context, id uint) (*project.Label, error) {
			l, err := project.ReconstructLabel(id, 10, "bug", "#ff0000", time.Now())
			require.NoError(t, err)
			return l, nil
		},
		deleteFunc: func(ctx context.Context, id uint) error {
			deleted = true
			return nil
		},
	}
	uc := NewDeleteLabelUseCase(repoWith(t, p), labelRepo, logger.NewLogger())

	require.NoError(t, uc.Execute(context.Background(), DeleteLabelCommand{ProjectID: 10, LabelID: 5, CallerID: memberID}))
	assert.True(t, deleted)
}
