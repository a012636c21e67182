// Package domain defines the operator domain: the staff accounts that sign in
// to the badge administration tool. Every operator carries exactly one role,
// and that role's permission matrix decides everything the operator may do.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Operator represents a staff account in the administration tool.
type Operator struct {
	ID             uuid.UUID
	Name           string
	Email          string
	Password       string // Argon2id hash, never plaintext
	RoleID         uuid.UUID
	IsActive       bool
	FailedAttempts int
	LockedUntil    *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Locked reports whether the operator's lockout window is still open.
func (o *Operator) Locked(now time.Time) bool {
	return o.LockedUntil != nil && now.Before(*o.LockedUntil)
}
