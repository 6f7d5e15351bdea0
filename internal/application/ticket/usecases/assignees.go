package usecases

import (
	"taskboard/internal/application/ticket/dto"
	"taskboard/internal/domain/ticket"
	"taskboard/internal/domain/user"
)

// attachAssignees resolves user details onto ticket DTOs. Assignee IDs that
// match no user are left in AssigneeIDs but omitted from Assignees.
func attachAssignees(dtos []dto.TicketDTO, users []*user.User) {
	byID := make(map[uint]dto.AssigneeDTO, len(users))
	for _, u := range users {
		byID[u.ID()] = dto.NewAssigneeDTO(u)
	}

	for i := range dtos {
		assignees := make([]dto.AssigneeDTO, 0, len(dtos[i].AssigneeIDs))
		for _, id := range dtos[i].AssigneeIDs {
			if a, ok := byID[id]; ok {
				assignees = append(assignees, a)
			}
		}
		dtos[i].Assignees = assignees
	}
}

// uniqueAssigneeIDs collects the distinct assignee IDs across tickets so a
// listing resolves each user once.
func uniqueAssigneeIDs(tickets []*ticket.Ticket) []uint {
	seen := make(map[uint]struct{})
	var ids []uint
	for _, t := range tickets {
		for _, id := range t.AssigneeIDs() {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}
	return ids
}
