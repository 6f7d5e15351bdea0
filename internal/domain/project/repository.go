package project

import "context"

// Repository persists projects together with their membership rows.
type Repository interface {
	Save(ctx context.Context, p *Project) error
	FindByID(ctx context.Context, id uint) (*Project, error)
	// FindByMemberID returns projects where the user holds any role,
	// newest first.
	FindByMemberID(ctx context.Context, userID uint) ([]*Project, error)
	Update(ctx context.Context, p *Project) error
	Delete(ctx context.Context, id uint) error
}

// LabelRepository persists project-scoped labels.
type LabelRepository interface {
	Save(ctx context.Context, l *Label) error
	FindByID(ctx context.Context, id uint) (*Label, error)
	FindByProjectID(ctx context.Context, projectID uint) ([]*Label, error)
	Delete(ctx context.Context, id uint) error
	DeleteByProjectID(ctx context.Context, projectID uint) error
}
