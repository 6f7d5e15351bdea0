package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "taskboard/internal/domain/user/valueobjects"
)

func mustEmail(t *testing.T, value string) vo.Email {
	t.Helper()
	email, err := vo.NewEmail(value)
	require.NoError(t, err)
	return *email
}

func TestNewUser(t *testing.T) {
	u, err := NewUser("Alice", "Smith", "+1555000", mustEmail(t, "alice@example.com"), "hash")
	require.NoError(t, err)

	assert.Equal(t, "Alice Smith", u.FullName())
	assert.Equal(t, "alice@example.com", u.Email().String())
	assert.Equal(t, "hash", u.PasswordHash())
	assert.Zero(t, u.ID())
}

func TestNewUser_Validation(t *testing.T) {
	email := mustEmail(t, "alice@example.com")

	tests := []struct {
		name      string
		firstName string
		lastName  string
		phone     string
		hash      string
	}{
		{"missing first name", "", "Smith", "+1555000", "hash"},
		{"missing last name", "Alice", "", "+1555000", "hash"},
		{"missing phone", "Alice", "Smith", "", "hash"},
		{"missing password hash", "Alice", "Smith", "+1555000", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewUser(tt.firstName, tt.lastName, tt.phone, email, tt.hash)
			assert.Error(t, err)
		})
	}
}

func TestUser_SetIDOnce(t *testing.T) {
	u, err := NewUser("Alice", "Smith", "+1555000", mustEmail(t, "alice@example.com"), "hash")
	require.NoError(t, err)

	require.NoError(t, u.SetID(3))
	assert.Error(t, u.SetID(4))
	assert.Equal(t, uint(3), u.ID())
}

func TestUser_ChangePassword(t *testing.T) {
	u, err := NewUser("Alice", "Smith", "+1555000", mustEmail(t, "alice@example.com"), "hash")
	require.NoError(t, err)

	require.NoError(t, u.ChangePassword("newhash"))
	assert.Equal(t, "newhash", u.PasswordHash())

	assert.Error(t, u.ChangePassword(""))
}
