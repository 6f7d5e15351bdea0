package models

import (
	"time"

	"taskboard/internal/shared/constants"
)

// UserModel represents the database persistence model for users
// This is the anti-corruption layer between domain and database
type UserModel struct {
	ID                     uint   `gorm:"primarykey"`
	FirstName              string `gorm:"not null;size:100"`
	LastName               string `gorm:"not null;size:100"`
	Phone                  string `gorm:"not null;size:30"`
	Email                  string `gorm:"uniqueIndex;not null;size:255"`
	PasswordHash           string `gorm:"not null;size:255"`
	PasswordResetToken     *string `gorm:"size:255;index:idx_password_reset_token"`
	PasswordResetExpiresAt *time.Time
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string {
	return constants.TableUsers
}
