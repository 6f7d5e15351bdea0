package ticket

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "taskboard/internal/domain/ticket/valueobjects"
	"taskboard/internal/shared/constants"
)

func TestNewTicket(t *testing.T) {
	due := time.Now().AddDate(0, 0, 7)

	tk, err := NewTicket(10, "  Fix login  ", " broken redirect ", due, []uint{5, 6}, 3)
	require.NoError(t, err)

	assert.Equal(t, "Fix login", tk.Title())
	assert.Equal(t, "broken redirect", tk.Description())
	assert.Equal(t, vo.StatusTodo, tk.Status())
	assert.Equal(t, []uint{5, 6}, tk.AssigneeIDs())
	assert.Empty(t, tk.LabelIDs())
	assert.Equal(t, uint(3), tk.CreatedBy())
	assert.True(t, tk.IsCreator(3))
	assert.False(t, tk.IsCreator(5))
}

func TestNewTicket_Validation(t *testing.T) {
	due := time.Now().AddDate(0, 0, 7)

	tests := []struct {
		name      string
		projectID uint
		title     string
		desc      string
		due       time.Time
		createdBy uint
	}{
		{"empty title", 10, "", "", due, 3},
		{"title too long", 10, strings.Repeat("x", constants.MaxTitleLength+1), "", due, 3},
		{"description too long", 10, "Fix", strings.Repeat("x", constants.MaxDescriptionLength+1), due, 3},
		{"zero project", 0, "Fix", "", due, 3},
		{"zero creator", 10, "Fix", "", due, 0},
		{"zero estimation date", 10, "Fix", "", time.Time{}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTicket(tt.projectID, tt.title, tt.desc, tt.due, nil, tt.createdBy)
			assert.Error(t, err)
		})
	}
}

func TestTicket_ChangeStatus(t *testing.T) {
	due := time.Now().AddDate(0, 0, 7)
	tk, err := NewTicket(10, "Fix", "", due, nil, 3)
	require.NoError(t, err)

	for _, status := range []vo.TicketStatus{vo.StatusInProgress, vo.StatusInReview, vo.StatusDone, vo.StatusTodo} {
		require.NoError(t, tk.ChangeStatus(status))
		assert.Equal(t, status, tk.Status())
	}

	assert.Error(t, tk.ChangeStatus(vo.TicketStatus("BLOCKED")))
}

func TestTicket_SetAssigneesAndLabels(t *testing.T) {
	due := time.Now().AddDate(0, 0, 7)
	tk, err := NewTicket(10, "Fix", "", due, []uint{5}, 3)
	require.NoError(t, err)

	tk.SetAssignees([]uint{7, 8})
	assert.Equal(t, []uint{7, 8}, tk.AssigneeIDs())

	tk.SetAssignees(nil)
	assert.Empty(t, tk.AssigneeIDs())

	tk.SetLabels([]uint{11})
	assert.Equal(t, []uint{11}, tk.LabelIDs())
}

func TestTicket_SetIDOnce(t *testing.T) {
	due := time.Now().AddDate(0, 0, 7)
	tk, err := NewTicket(10, "Fix", "", due, nil, 3)
	require.NoError(t, err)

	require.NoError(t, tk.SetID(20))
	assert.Error(t, tk.SetID(21))
	assert.Equal(t, uint(20), tk.ID())
}
