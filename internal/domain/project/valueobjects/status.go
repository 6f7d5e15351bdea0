package valueobjects

// ProjectStatus is the lifecycle status of a project.
type ProjectStatus string

const (
	StatusActive ProjectStatus = "ACTIVE"
	StatusDone   ProjectStatus = "DONE"
	StatusPaused ProjectStatus = "PAUSED"
)

func NewProjectStatus(s string) (ProjectStatus, bool) {
	status := ProjectStatus(s)
	return status, status.IsValid()
}

func (s ProjectStatus) String() string {
	return string(s)
}

func (s ProjectStatus) IsValid() bool {
	switch s {
	case StatusActive, StatusDone, StatusPaused:
		return true
	}
	return false
}
