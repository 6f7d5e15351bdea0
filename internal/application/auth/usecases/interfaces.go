package usecases

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(hash, password string) error
}

// TokenIssuer issues signed access tokens for authenticated users.
type TokenIssuer interface {
	Generate(userID uint) (string, error)
}
