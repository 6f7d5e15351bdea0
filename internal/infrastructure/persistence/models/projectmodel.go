package models

import (
	"time"

	"taskboard/internal/shared/constants"
)

// ProjectModel represents the database persistence model for projects
type ProjectModel struct {
	ID          uint   `gorm:"primarykey"`
	Title       string `gorm:"not null;size:200"`
	Description string `gorm:"type:text"`
	Status      string `gorm:"not null;default:ACTIVE;size:20"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Members []ProjectMemberModel `gorm:"foreignKey:ProjectID"`
}

// TableName specifies the table name for GORM
func (ProjectModel) TableName() string {
	return constants.TableProjects
}

// ProjectMemberModel is one membership row. A user appears at most once per
// project; the role column holds owner, admin, or member.
type ProjectMemberModel struct {
	ID        uint   `gorm:"primarykey"`
	ProjectID uint   `gorm:"not null;uniqueIndex:idx_project_user"`
	UserID    uint   `gorm:"not null;uniqueIndex:idx_project_user;index:idx_member_user"`
	Role      string `gorm:"not null;size:20"`
	CreatedAt time.Time
}

func (ProjectMemberModel) TableName() string {
	return constants.TableProjectMembers
}
