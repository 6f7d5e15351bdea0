package usecases

import (
	"context"

	"taskboard/internal/domain/project"
	"taskboard/internal/domain/ticket"
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
	findByIDFunc func(ctx context.Context, id uint) (*ticket.Ticket, error)
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error { return nil }

func (m *mockTicketRepository) FindByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	return m.findByIDFunc(ctx, id)
}

func (m *mockTicketRepository) FindByProjectID(ctx context.Context, projectID uint) ([]*ticket.Ticket, error) {
	return nil, nil
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error { return nil }

func (m *mockTicketRepository) Delete(ctx context.Context, id uint) error { return nil }

func (m *mockTicketRepository) DeleteByProjectID(ctx context.Context, projectID uint) error {
	return nil
}

type mockCommentRepository struct {
	saveFunc           func(ctx context.Context, c *ticket.Comment) error
	findByIDFunc       func(ctx context.Context, id uint) (*ticket.Comment, error)
	findByTicketIDFunc func(ctx context.Context, ticketID uint) ([]*ticket.Comment, error)
	updateFunc         func(ctx context.Context, c *ticket.Comment) error
	deleteFunc         func(ctx context.Context, id uint) error
}

func (m *mockCommentRepository) Save(ctx context.Context, c *ticket.Comment) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, c)
	}
	return c.SetID(1)
}

func (m *mockCommentRepository) FindByID(ctx context.Context, id uint) (*ticket.Comment, error) {
	return m.findByIDFunc(ctx, id)
}

func (m *mockCommentRepository) FindByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Comment, error) {
	return m.findByTicketIDFunc(ctx, ticketID)
}

func (m *mockCommentRepository) Update(ctx context.Context, c *ticket.Comment) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, c)
	}
	return nil
}

func (m *mockCommentRepository) Delete(ctx context.Context, id uint) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

func (m *mockCommentRepository) DeleteByTicketID(ctx context.Context, ticketID uint) error {
	return nil
}

func (m *mockCommentRepository) DeleteByProjectID(ctx context.Context, projectID uint) error {
	return nil
}
