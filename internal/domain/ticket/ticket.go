package ticket

import (
	"fmt"
	"strings"
	"time"

	vo "taskboard/internal/domain/ticket/valueobjects"
	"taskboard/internal/shared/constants"
)

// Ticket is a card on a project board. Assignees are user references and are
// deliberately not validated against project membership; labels reference
// project-scoped label entities.
type Ticket struct {
	id             uint
	projectID      uint
	title          string
	description    string
	status         vo.TicketStatus
	estimationDate time.Time
	assigneeIDs    []uint
	labelIDs       []uint
	createdBy      uint
	createdAt      time.Time
	updatedAt      time.Time
}

func NewTicket(
	projectID uint,
	title, description string,
	estimationDate time.Time,
	assigneeIDs []uint,
	createdBy uint,
) (*Ticket, error) {
	title = strings.TrimSpace(title)
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > constants.MaxTitleLength {
		return nil, fmt.Errorf("title exceeds maximum length of %d characters", constants.MaxTitleLength)
	}
	if len(description) > constants.MaxDescriptionLength {
		return nil, fmt.Errorf("description exceeds maximum length of %d characters", constants.MaxDescriptionLength)
	}
	if projectID == 0 {
		return nil, fmt.Errorf("project ID is required")
	}
	if createdBy == 0 {
		return nil, fmt.Errorf("creator ID is required")
	}
	if estimationDate.IsZero() {
		return nil, fmt.Errorf("estimation date is required")
	}

	if assigneeIDs == nil {
		assigneeIDs = []uint{}
	}

	now := time.Now()
	return &Ticket{
		projectID:      projectID,
		title:          title,
		description:    strings.TrimSpace(description),
		status:         vo.StatusTodo,
		estimationDate: estimationDate,
		assigneeIDs:    assigneeIDs,
		labelIDs:       []uint{},
		createdBy:      createdBy,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

func ReconstructTicket(
	id, projectID uint,
	title, description string,
	status vo.TicketStatus,
	estimationDate time.Time,
	assigneeIDs, labelIDs []uint,
	createdBy uint,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}

	if assigneeIDs == nil {
		assigneeIDs = []uint{}
	}
	if labelIDs == nil {
		labelIDs = []uint{}
	}

	return &Ticket{
		id:             id,
		projectID:      projectID,
		title:          title,
		description:    description,
		status:         status,
		estimationDate: estimationDate,
		assigneeIDs:    assigneeIDs,
		labelIDs:       labelIDs,
		createdBy:      createdBy,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}, nil
}

func (t *Ticket) ID() uint {
	return t.id
}

func (t *Ticket) ProjectID() uint {
	return t.projectID
}

func (t *Ticket) Title() string {
	return t.title
}

func (t *Ticket) Description() string {
	return t.description
}

func (t *Ticket) Status() vo.TicketStatus {
	return t.status
}

func (t *Ticket) EstimationDate() time.Time {
	return t.estimationDate
}

func (t *Ticket) AssigneeIDs() []uint {
	assigneesCopy := make([]uint, len(t.assigneeIDs))
	copy(assigneesCopy, t.assigneeIDs)
	return assigneesCopy
}

func (t *Ticket) LabelIDs() []uint {
	labelsCopy := make([]uint, len(t.labelIDs))
	copy(labelsCopy, t.labelIDs)
	return labelsCopy
}

func (t *Ticket) CreatedBy() uint {
	return t.createdBy
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// IsCreator reports whether userID created this ticket. Deletion is
// creator-only; even the project owner may not delete another member's ticket.
func (t *Ticket) IsCreator(userID uint) bool {
	return t.createdBy == userID
}

func (t *Ticket) Rename(title string) error {
	title = strings.TrimSpace(title)
	if len(title) == 0 {
		return fmt.Errorf("title is required")
	}
	if len(title) > constants.MaxTitleLength {
		return fmt.Errorf("title exceeds maximum length of %d characters", constants.MaxTitleLength)
	}
	t.title = title
	t.touch()
	return nil
}

func (t *Ticket) UpdateDescription(description string) error {
	if len(description) > constants.MaxDescriptionLength {
		return fmt.Errorf("description exceeds maximum length of %d characters", constants.MaxDescriptionLength)
	}
	t.description = strings.TrimSpace(description)
	t.touch()
	return nil
}

// ChangeStatus accepts any valid status from any other.
func (t *Ticket) ChangeStatus(status vo.TicketStatus) error {
	if !status.IsValid() {
		return fmt.Errorf("invalid status: %s", status)
	}
	t.status = status
	t.touch()
	return nil
}

func (t *Ticket) Reschedule(estimationDate time.Time) error {
	if estimationDate.IsZero() {
		return fmt.Errorf("estimation date is required")
	}
	t.estimationDate = estimationDate
	t.touch()
	return nil
}

func (t *Ticket) SetAssignees(assigneeIDs []uint) {
	if assigneeIDs == nil {
		assigneeIDs = []uint{}
	}
	t.assigneeIDs = assigneeIDs
	t.touch()
}

func (t *Ticket) SetLabels(labelIDs []uint) {
	if labelIDs == nil {
		labelIDs = []uint{}
	}
	t.labelIDs = labelIDs
	t.touch()
}

func (t *Ticket) touch() {
	t.updatedAt = time.Now()
}
