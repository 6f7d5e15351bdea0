package valueobjects

// TicketStatus is the board column a ticket sits in. Any status may move to
// any other; there is no enforced state machine.
type TicketStatus string

const (
	StatusTodo       TicketStatus = "TODO"
	StatusInProgress TicketStatus = "IN_PROGRESS"
	StatusInReview   TicketStatus = "IN_REVIEW"
	StatusDone       TicketStatus = "DONE"
)

func NewTicketStatus(s string) (TicketStatus, bool) {
	status := TicketStatus(s)
	return status, status.IsValid()
}

func (s TicketStatus) String() string {
	return string(s)
}

func (s TicketStatus) IsValid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusInReview, StatusDone:
		return true
	}
	return false
}
