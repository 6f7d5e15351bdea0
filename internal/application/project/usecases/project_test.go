package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard/internal/domain/project"
	vo "taskboard/internal/domain/project/valueobjects"
	"taskboard/internal/shared/authorization"
	"taskboard/internal/shared/errors"
	"taskboard/internal/shared/logger"
)

const (
	ownerID    = uint(1)
	adminID    = uint(2)
	memberID   = uint(3)
	outsiderID = uint(99)
)

// boardProject builds a project with an owner, an admin, and a member.
func boardProject(t *testing.T) *project.Project {
	t.Helper()
	p, err := project.ReconstructProject(
		10, "Board", "shared board", vo.StatusActive,
		[]project.Member{
			project.NewMember(ownerID, authorization.RoleOwner),
			project.NewMember(adminID, authorization.RoleAdmin),
			project.NewMember(memberID, authorization.RoleMember),
		},
		time.Now(), time.Now(),
	)
	require.NoError(t, err)
	return p
}

func repoWith(t *testing.T, p *project.Project) *mockProjectRepository {
	t.Helper()
	return &mockProjectRepository{
		findByIDFunc: func(ctx context.Context, id uint) (*project.Project, error) {
			if id != p.ID() {
				return nil, errors.NewNotFoundError("project not found")
			}
			return p, nil
		},
	}
}

func TestCreateProject_CallerBecomesOwner(t *testing.T) {
	uc := NewCreateProjectUseCase(&mockProjectRepository{}, logger.NewLogger())

	result, err := uc.Execute(context.Background(), CreateProjectCommand{
		Title:     "New board",
		CreatorID: 42,
	})
	require.NoError(t, err)

	assert.Equal(t, uint(42), result.OwnerID)
	require.Len(t, result.Members, 1)
	assert.Equal(t, "owner", result.Members[0].Role)
	assert.Equal(t, "ACTIVE", result.Status)
}

func TestCreateProject_ExplicitStatus(t *testing.T) {
	uc := NewCreateProjectUseCase(&mockProjectRepository{}, logger.NewLogger())

	result, err := uc.Execute(context.Background(), CreateProjectCommand{
		Title:     "Paused board",
		Status:    "PAUSED",
		CreatorID: 42,
	})
	require.NoError(t, err)
	assert.Equal(t, "PAUSED", result.Status)

	_, err = uc.Execute(context.Background(), CreateProjectCommand{
		Title:     "Bad status",
		Status:    "ARCHIVED",
		CreatorID: 42,
	})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestCreateProject_EmptyTitle(t *testing.T) {
	uc := NewCreateProjectUseCase(&mockProjectRepository{}, logger.NewLogger())

	_, err := uc.Execute(context.Background(), CreateProjectCommand{Title: "  ", CreatorID: 1})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestGetProject_MemberAccess(t *testing.T) {
	p := boardProject(t)
	uc := NewGetProjectUseCase(repoWith(t, p), logger.NewLogger())

	result, err := uc.Execute(context.Background(), GetProjectCommand{ProjectID: 10, CallerID: memberID})
	require.NoError(t, err)
	assert.Equal(t, uint(10), result.ID)
	assert.Len(t, result.Members, 3)
}

func TestGetProject_NonMemberDenied(t *testing.T) {
	p := boardProject(t)
	uc := NewGetProjectUseCase(repoWith(t, p), logger.NewLogger())

	_, err := uc.Execute(context.Background(), GetProjectCommand{ProjectID: 10, CallerID: outsiderID})
	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))

	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "access denied", appErr.Message)
}

func TestGetProject_NotFound(t *testing.T) {
	p := boardProject(t)
	uc := NewGetProjectUseCase(repoWith(t, p), logger.NewLogger())

	_, err := uc.Execute(context.Background(), GetProjectCommand{ProjectID: 555, CallerID: memberID})
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestUpdateProject_RoleMatrix(t *testing.T) {
	tests := []struct {
		name      string
		callerID  uint
		wantErr   bool
		forbidden bool
	}{
		{"owner may update", ownerID, false, false},
		{"admin may update", adminID, false, false},
		{"member denied", memberID, true, true},
		{"outsider denied", outsiderID, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := boardProject(t)
			uc := NewUpdateProjectUseCase(repoWith(t, p), logger.NewLogger())

			title := "Renamed"
			_, err := uc.Execute(context.Background(), UpdateProjectCommand{
				ProjectID: 10,
				CallerID:  tt.callerID,
				Title:     &title,
			})
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.forbidden, errors.IsForbiddenError(err))
			} else {
				require.NoError(t, err)
				assert.Equal(t, "Renamed", p.Title())
			}
		})
	}
}

func TestUpdateProject_PartialPatch(t *testing.T) {
	p := boardProject(t)
	uc := NewUpdateProjectUseCase(repoWith(t, p), logger.NewLogger())

	status := "PAUSED"
	result, err := uc.Execute(context.Background(), UpdateProjectCommand{
		ProjectID: 10,
		CallerID:  ownerID,
		Status:    &status,
	})
	require.NoError(t, err)
	assert.Equal(t, "PAUSED", result.Status)
	assert.Equal(t, "Board", result.Title, "title untouched when nil")
}

func TestUpdateProject_InvalidStatus(t *testing.T) {
	p := boardProject(t)
	uc := NewUpdateProjectUseCase(repoWith(t, p), logger.NewLogger())

	status := "ARCHIVED"
	_, err := uc.Execute(context.Background(), UpdateProjectCommand{
		ProjectID: 10,
		CallerID:  ownerID,
		Status:    &status,
	})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestDeleteProject_OwnerOnly(t *testing.T) {
	for _, callerID := range []uint{adminID, memberID, outsiderID} {
		p := boardProject(t)
		uc := NewDeleteProjectUseCase(
			repoWith(t, p), &mockLabelRepository{}, &mockTicketRepository{},
			&mockCommentRepository{}, &passthroughTxManager{}, logger.NewLogger(),
		)

		err := uc.Execute(context.Background(), DeleteProjectCommand{ProjectID: 10, CallerID: callerID})
		require.Error(t, err)
		assert.True(t, errors.IsForbiddenError(err))
	}
}

func TestDeleteProject_CascadesInOrder(t *testing.T) {
	p := boardProject(t)

	var order []string
	repo := repoWith(t, p)
	repo.deleteFunc = func(ctx context.Context, id uint) error {
		order = append(order, "project")
		return nil
	}
	uc := NewDeleteProjectUseCase(
		repo,
		&mockLabelRepository{deleteByProjectIDFunc: func(ctx context.Context, projectID uint) error {
			order = append(order, "labels")
			return nil
		}},
		&mockTicketRepository{deleteByProjectIDFunc: func(ctx context.Context, projectID uint) error {
			order = append(order, "tickets")
			return nil
		}},
		&mockCommentRepository{deleteByProjectIDFunc: func(ctx context.Context, projectID uint) error {
			order = append(order, "comments")
			return nil
		}},
		&passthroughTxManager{},
		logger.NewLogger(),
	)

	require.NoError(t, uc.Execute(context.Background(), DeleteProjectCommand{ProjectID: 10, CallerID: ownerID}))
	assert.Equal(t, []string{"comments", "tickets", "labels", "project"}, order)
}
