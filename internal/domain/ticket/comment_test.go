package ticket

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard/internal/shared/constants"
)

func TestNewComment(t *testing.T) {
	c, err := NewComment(20, 3, "looks good")
	require.NoError(t, err)

	assert.Equal(t, uint(20), c.TicketID())
	assert.Equal(t, uint(3), c.AuthorID())
	assert.Equal(t, "looks good", c.Content())
	assert.True(t, c.IsAuthor(3))
	assert.False(t, c.IsAuthor(4))
}

func TestNewComment_Validation(t *testing.T) {
	tests := []struct {
		name     string
		ticketID uint
		authorID uint
		content  string
	}{
		{"empty content", 20, 3, ""},
		{"content too long", 20, 3, strings.Repeat("x", constants.MaxCommentLength+1)},
		{"zero ticket", 0, 3, "hi"},
		{"zero author", 20, 0, "hi"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewComment(tt.ticketID, tt.authorID, tt.content)
			assert.Error(t, err)
		})
	}
}

func TestComment_UpdateContent(t *testing.T) {
	c, err := NewComment(20, 3, "first draft")
	require.NoError(t, err)

	require.NoError(t, c.UpdateContent("second draft"))
	assert.Equal(t, "second draft", c.Content())

	assert.Error(t, c.UpdateContent(""))
	assert.Error(t, c.UpdateContent(strings.Repeat("x", constants.MaxCommentLength+1)))
	assert.Equal(t, "second draft", c.Content())
}

func TestComment_SetIDOnce(t *testing.T) {
	c, err := NewComment(20, 3, "hi")
	require.NoError(t, err)

	require.NoError(t, c.SetID(30))
	assert.Error(t, c.SetID(31))
	assert.Equal(t, uint(30), c.ID())
}
