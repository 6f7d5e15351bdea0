package dto

import (
	"time"

	"taskboard/internal/domain/user"
)

// UserDTO is the outward representation of a user. The password hash never
// leaves the application layer.
type UserDTO struct {
	ID        uint      `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthResult bundles the issued token with the authenticated user.
type AuthResult struct {
	Token string  `json:"token"`
	User  UserDTO `json:"user"`
}

// NewUserDTO converts a user aggregate to its transport representation.
func NewUserDTO(u *user.User) UserDTO {
	email := u.Email()
	return UserDTO{
		ID:        u.ID(),
		FirstName: u.FirstName(),
		LastName:  u.LastName(),
		Phone:     u.Phone(),
		Email:     email.String(),
		CreatedAt: u.CreatedAt(),
	}
}
