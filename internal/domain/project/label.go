package project

import (
	"fmt"
	"strings"
	"time"
)

// Label is a project-scoped tag that tickets may reference. Labels die with
// their project.
type Label struct {
	id        uint
	projectID uint
	name      string
	color     string
	createdAt time.Time
}

func NewLabel(projectID uint, name, color string) (*Label, error) {
	name = strings.TrimSpace(name)
	if len(name) == 0 {
		return nil, fmt.Errorf("label name is required")
	}
	if len(name) > 50 {
		return nil, fmt.Errorf("label name exceeds maximum length of 50 characters")
	}
	if projectID == 0 {
		return nil, fmt.Errorf("project ID is required")
	}

	return &Label{
		projectID: projectID,
		name:      name,
		color:     strings.TrimSpace(color),
		createdAt: time.Now(),
	}, nil
}

func ReconstructLabel(id, projectID uint, name, color string, createdAt time.Time) (*Label, error) {
	if id == 0 {
		return nil, fmt.Errorf("label ID cannot be zero")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("label name is required")
	}

	return &Label{
		id:        id,
		projectID: projectID,
		name:      name,
		color:     color,
		createdAt: createdAt,
	}, nil
}

func (l *Label) ID() uint {
	return l.id
}

func (l *Label) ProjectID() uint {
	return l.projectID
}

func (l *Label) Name() string {
	return l.name
}

func (l *Label) Color() string {
	return l.color
}

func (l *Label) CreatedAt() time.Time {
	return l.createdAt
}

func (l *Label) SetID(id uint) error {
	if l.id != 0 {
		return fmt.Errorf("label ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("label ID cannot be zero")
	}
	l.id = id
	return nil
}
