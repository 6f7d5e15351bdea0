package user

import "context"

// Repository persists users. Email lookups are case-insensitive because the
// Email value object normalizes to lowercase before the query is built.
type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id uint) (*User, error)
	GetByIDs(ctx context.Context, ids []uint) ([]*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	SearchByEmail(ctx context.Context, fragment string, limit int) ([]*User, error)
}
