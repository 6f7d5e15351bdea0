package models

import (
	"time"

	"taskboard/internal/shared/constants"
)

// LabelModel represents the database persistence model for project labels
type LabelModel struct {
	ID        uint   `gorm:"primarykey"`
	ProjectID uint   `gorm:"not null;index:idx_label_project"`
	Name      string `gorm:"not null;size:50"`
	Color     string `gorm:"not null;size:20"`
	CreatedAt time.Time
}

// TableName specifies the table name for GORM
func (LabelModel) TableName() string {
	return constants.TableLabels
}
