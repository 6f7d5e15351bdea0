package constants

// Context keys set by the auth middleware.
const (
	ContextKeyUserID = "user_id"
)

// Table names for GORM models.
const (
	TableUsers          = "users"
	TableProjects       = "projects"
	TableProjectMembers = "project_members"
	TableLabels         = "labels"
	TableTickets        = "tickets"
	TableTicketAssignees = "ticket_assignees"
	TableTicketLabels    = "ticket_labels"
	TableComments       = "comments"
)

// Limits applied across the API.
const (
	MaxTitleLength       = 200
	MaxDescriptionLength = 5000
	MaxCommentLength     = 5000
	UserSearchLimit      = 10
)
