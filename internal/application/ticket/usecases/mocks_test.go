package usecases

import (
	"context"

	"taskboard/internal/domain/project"
	"taskboard/internal/domain/ticket"
	"taskboard/internal/domain/user"
)

type mockProjectRepository struct {
	findByIDFunc func(ctx context.Context, id uint) (*project.Project, error)
}

func (m *mockProjectRepository) Save(ctx context.Context, p *project.Project) error { return nil }

func (m *mockProjectRepository) FindByID(ctx context.Context, id uint) (*project.Project, error) {
	return m.findByIDFunc(ctx, id)
}

func (m *mockProjectRepository) FindByMemberID(ctx context.Context, userID uint) ([]*project.Project, error) {
	return nil, nil
}

func (m *mockProjectRepository) Update(ctx context.Context, p *project.Project) error { return nil }

func (m *mockProjectRepository) Delete(ctx context.Context, id uint) error { return nil }

type mockTicketRepository struct {
	saveFunc            func(ctx context.Context, t *ticket.Ticket) error
	findByIDFunc        func(ctx context.Context, id uint) (*ticket.Ticket, error)
	findByProjectIDFunc func(ctx context.Context, projectID uint) ([]*ticket.Ticket, error)
	updateFunc          func(ctx context.Context, t *ticket.Ticket) error
	deleteFunc          func(ctx context.Context, id uint) error
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, t)
	}
	return t.SetID(1)
}

func (m *mockTicketRepository) FindByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	return m.findByIDFunc(ctx, id)
}

func (m *mockTicketRepository) FindByProjectID(ctx context.Context, projectID uint) ([]*ticket.Ticket, error) {
	return m.findByProjectIDFunc(ctx, projectID)
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Delete(ctx context.Context, id uint) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

func (m *mockTicketRepository) DeleteByProjectID(ctx context.Context, projectID uint) error {
	return nil
}

type mockCommentRepository struct {
	deleteByTicketIDFunc func(ctx context.Context, ticketID uint) error
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
	if m.deleteByTicketIDFunc != nil {
		return m.deleteByTicketIDFunc(ctx, ticketID)
	}
	return nil
}

func (m *mockCommentRepository) DeleteByProjectID(ctx context.Context, projectID uint) error {
	return nil
}

type mockUserRepository struct {
	getByIDsFunc func(ctx context.Context, ids []uint) ([]*user.User, error)
}

func (m *mockUserRepository) Create(ctx context.Context, u *user.User) error { return nil }

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	return nil, nil
}

func (m *mockUserRepository) GetByIDs(ctx context.Context, ids []uint) ([]*user.User, error) {
	if m.getByIDsFunc != nil {
		return m.getByIDsFunc(ctx, ids)
	}
	return []*user.User{}, nil
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
