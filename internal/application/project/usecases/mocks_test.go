package usecases

import (
	"context"

	"taskboard/internal/domain/project"
	"taskboard/internal/domain/ticket"
	"taskboard/internal/domain/user"
)

type mockProjectRepository struct {
	saveFunc           func(ctx context.Context, p *project.Project) error
	findByIDFunc       func(ctx context.Context, id uint) (*project.Project, error)
	findByMemberIDFunc func(ctx context.Context, userID uint) ([]*project.Project, error)
	updateFunc         func(ctx context.Context, p *project.Project) error
	deleteFunc         func(ctx context.Context, id uint) error
}

func (m *mockProjectRepository) Save(ctx context.Context, p *project.Project) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, p)
	}
	return p.SetID(1)
}

func (m *mockProjectRepository) FindByID(ctx context.Context, id uint) (*project.Project, error) {
	return m.findByIDFunc(ctx, id)
}

func (m *mockProjectRepository) FindByMemberID(ctx context.Context, userID uint) ([]*project.Project, error) {
	return m.findByMemberIDFunc(ctx, userID)
}

func (m *mockProjectRepository) Update(ctx context.Context, p *project.Project) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, p)
	}
	return nil
}

func (m *mockProjectRepository) Delete(ctx context.Context, id uint) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

type mockLabelRepository struct {
	saveFunc              func(ctx context.Context, l *project.Label) error
	findByIDFunc          func(ctx context.Context, id uint) (*project.Label, error)
	findByProjectIDFunc   func(ctx context.Context, projectID uint) ([]*project.Label, error)
	deleteFunc            func(ctx context.Context, id uint) error
	deleteByProjectIDFunc func(ctx context.Context, projectID uint) error
}

func (m *mockLabelRepository) Save(ctx context.Context, l *project.Label) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, l)
	}
	return l.SetID(1)
}

func (m *mockLabelRepository) FindByID(ctx context.Context, id uint) (*project.Label, error) {
	return m.findByIDFunc(ctx, id)
}

func (m *mockLabelRepository) FindByProjectID(ctx context.Context, projectID uint) ([]*project.Label, error) {
	return m.findByProjectIDFunc(ctx, projectID)
}

func (m *mockLabelRepository) Delete(ctx context.Context, id uint) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

func (m *mockLabelRepository) DeleteByProjectID(ctx context.Context, projectID uint) error {
	if m.deleteByProjectIDFunc != nil {
		return m.deleteByProjectIDFunc(ctx, projectID)
	}
	return nil
}

type mockTicketRepository struct {
	deleteByProjectIDFunc func(ctx context.Context, projectID uint) error
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error { return nil }

func (m *mockTicketRepository) FindByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	return nil, nil
}

func (m *mockTicketRepository) FindByProjectID(ctx context.Context, projectID uint) ([]*ticket.Ticket, error) {
	return nil, nil
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error { return nil }

func (m *mockTicketRepository) Delete(ctx context.Context, id uint) error { return nil }

func (m *mockTicketRepository) DeleteByProjectID(ctx context.Context, projectID uint) error {
	if m.deleteByProjectIDFunc != nil {
		return m.deleteByProjectIDFunc(ctx, projectID)
	}
	return nil
}

type mockCommentRepository struct {
	deleteByProjectIDFunc func(ctx context.Context, projectID uint) error
}

func (m *mockCommentRepository) Save(ctx context.Context, c *ticket.Comment) error { return nil }

func (m *mockCommentRepository) FindByID(ctx context.Context, id uint) (*ticket.Comment, error) {
	return nil, nil
}

func (m *mockCommentRepository) FindByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Comment, error) {
	return nil, nil
}

func (m *mockCommentRepository) Update(ctx context.Context, c *ticket.Comment) error { return nil }

func (m *mockCommentRepository) Delete(ctx context.Context, id uint) error { return nil }

func (m *mockCommentRepository) DeleteByTicketID(ctx context.Context, ticketID uint) error {
	return nil
}

func (m *mockCommentRepository) DeleteByProjectID(ctx context.Context, projectID uint) error {
	if m.deleteByProjectIDFunc != nil {
		return m.deleteByProjectIDFunc(ctx, projectID)
	}
	return nil
}

type mockUserRepository struct {
	getByIDFunc func(ctx context.Context, id uint) (*user.User, error)
}

func (m *mockUserRepository) Create(ctx context.Context, u *user.User) error { return nil }

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	return m.getByIDFunc(ctx, id)
}

func (m *mockUserRepository) GetByIDs(ctx context.Context, ids []uint) ([]*user.User, error) {
	return nil, nil
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	return nil, nil
}

func (m *mockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return false, nil
}

func (m *mockUserRepository) SearchByEmail(ctx context.Context, fragment string, limit int) ([]*user.User, error) {
	return nil, nil
}

// passthroughTxManager runs the callback without a real transaction.
type passthroughTxManager struct{}

func (m *passthroughTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
