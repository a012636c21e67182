// Package service provides technical services for operator authentication:
// password hashing and session token generation.
package service

// PasswordService defines operations for operator password hashing and
// validation. Implementations must use a memory-hard algorithm (Argon2id).
type PasswordService interface {
	// HashPassword hashes a plain text password for storage.
	HashPassword(plainPassword string) (hashedPassword string, err error)

	// ComparePassword compares a plain text password against a stored hash.
	// Constant-time; returns false on any verification failure.
	ComparePassword(plainPassword string, hashedPassword string) bool
}

// SessionTokenService defines operations for session token generation and
// hashing. Tokens are short-lived bearer credentials, so a fast hash
// (SHA-256) is appropriate for the stored form.
type SessionTokenService interface {
	// GenerateToken creates a new cryptographically secure random token.
	// Returns the plain token (handed to the operator once, at login) and
	// the hash that is stored.
	GenerateToken() (plainToken string, tokenHash string, err error)

	// HashToken hashes a plain token for lookup against stored sessions.
	HashToken(plainToken string) string
}
