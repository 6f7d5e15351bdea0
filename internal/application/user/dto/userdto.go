package dto

import (
	"time"

	"taskboard/internal/domain/user"
)

// UserDTO is the outward representation of a user profile.
type UserDTO struct {
	ID        uint      `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// SearchResultDTO is the trimmed representation returned by user search. It
// carries only what a member picker needs.
type SearchResultDTO struct {
	ID        uint   `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

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

func NewSearchResultDTO(u *user.User) SearchResultDTO {
	email := u.Email()
	return SearchResultDTO{
		ID:        u.ID(),
		FirstName: u.FirstName(),
		LastName:  u.LastName(),
		Email:     email.String(),
	}
}
