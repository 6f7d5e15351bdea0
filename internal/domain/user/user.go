package user

import (
	"fmt"
	"time"

	vo "taskboard/internal/domain/user/valueobjects"
)

// User is the identity aggregate. The password is stored only as a one-way
// hash; the plaintext never enters the domain layer.
type User struct {
	id                     uint
	firstName              string
	lastName               string
	phone                  string
	email                  vo.Email
	passwordHash           string
	passwordResetToken     *string
	passwordResetExpiresAt *time.Time
	createdAt              time.Time
	updatedAt              time.Time
}

func NewUser(firstName, lastName, phone string, email vo.Email, passwordHash string) (*User, error) {
	if len(firstName) == 0 {
		return nil, fmt.Errorf("first name is required")
	}
	if len(lastName) == 0 {
		return nil, fmt.Errorf("last name is required")
	}
	if len(phone) == 0 {
		return nil, fmt.Errorf("phone is required")
	}
	if len(passwordHash) == 0 {
		return nil, fmt.Errorf("password hash is required")
	}

	now := time.Now()
	return &User{
		firstName:    firstName,
		lastName:     lastName,
		phone:        phone,
		email:        email,
		passwordHash: passwordHash,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructUser(
	id uint,
	firstName, lastName, phone string,
	email vo.Email,
	passwordHash string,
	passwordResetToken *string,
	passwordResetExpiresAt *time.Time,
	createdAt, updatedAt time.Time,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if len(firstName) == 0 {
		return nil, fmt.Errorf("first name is required")
	}

	return &User{
		id:                     id,
		firstName:              firstName,
		lastName:               lastName,
		phone:                  phone,
		email:                  email,
		passwordHash:           passwordHash,
		passwordResetToken:     passwordResetToken,
		passwordResetExpiresAt: passwordResetExpiresAt,
		createdAt:              createdAt,
		updatedAt:              updatedAt,
	}, nil
}

func (u *User) ID() uint {
	return u.id
}

func (u *User) FirstName() string {
	return u.firstName
}

func (u *User) LastName() string {
	return u.lastName
}

func (u *User) FullName() string {
	return u.firstName + " " + u.lastName
}

func (u *User) Phone() string {
	return u.phone
}

func (u *User) Email() vo.Email {
	return u.email
}

func (u *User) PasswordHash() string {
	return u.passwordHash
}

func (u *User) PasswordResetToken() *string {
	return u.passwordResetToken
}

func (u *User) PasswordResetExpiresAt() *time.Time {
	return u.passwordResetExpiresAt
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

func (u *User) UpdatedAt() time.Time {
	return u.updatedAt
}

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

// SetPasswordResetToken stores a pending reset token with its expiry.
func (u *User) SetPasswordResetToken(token string, expiresAt time.Time) error {
	if len(token) == 0 {
		return fmt.Errorf("reset token cannot be empty")
	}
	u.passwordResetToken = &token
	u.passwordResetExpiresAt = &expiresAt
	u.updatedAt = time.Now()
	return nil
}

// ClearPasswordResetToken removes any pending reset token.
func (u *User) ClearPasswordResetToken() {
	u.passwordResetToken = nil
	u.passwordResetExpiresAt = nil
	u.updatedAt = time.Now()
}

// ChangePassword replaces the stored hash and invalidates any reset token.
func (u *User) ChangePassword(passwordHash string) error {
	if len(passwordHash) == 0 {
		return fmt.Errorf("password hash cannot be empty")
	}
	u.passwordHash = passwordHash
	u.ClearPasswordResetToken()
	return nil
}
