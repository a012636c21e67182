package domain

import (
	"time"

	"github.com/google/uuid"
)

// Session is a server-side login session. Only the SHA-256 hash of the
// session token is stored; the plain token exists once, in the login
// response.
type Session struct {
	ID         uuid.UUID
	TokenHash  string
	OperatorID uuid.UUID
	ExpiresAt  time.Time
	RevokedAt  *time.Time
	CreatedAt  time.Time
}

// Usable reports whether the session can still authenticate requests.
func (s *Session) Usable(now time.Time) bool {
	return s.RevokedAt == nil && now.Before(s.ExpiresAt)
}
