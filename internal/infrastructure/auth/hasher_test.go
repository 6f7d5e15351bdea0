package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptPasswordHasher_HashAndVerify(t *testing.T) {
	hasher := NewBcryptPasswordHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("s3cret-password")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "s3cret-password", hash)

	assert.NoError(t, hasher.Verify(hash, "s3cret-password"))
	assert.Error(t, hasher.Verify(hash, "wrong-password"))
}

func TestBcryptPasswordHasher_EmptyPassword(t *testing.T) {
	hasher := NewBcryptPasswordHasher(bcrypt.MinCost)

	_, err := hasher.Hash("")
	assert.Error(t, err)
}

func TestBcryptPasswordHasher_ClampsInvalidCost(t *testing.T) {
	hasher := NewBcryptPasswordHasher(999)

	hash, err := hasher.Hash("password")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}
