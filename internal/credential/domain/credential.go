package domain

import (
	"time"

	"github.com/google/uuid"
)

// Credential represents one issued or pending ID card for an employee.
//
// The verification code is assigned at creation, unique across every record
// ever created, and immutable for the life of the record. PrintedBy and
// PrintedAt are stamped when the record reaches printed and stay nil before
// that.
type Credential struct {
	ID         uuid.UUID
	EmployeeID uuid.UUID
	TemplateID uuid.UUID
	VerifyCode string
	Status     Status
	IssuedAt   time.Time
	ExpiresAt  time.Time
	CreatedBy  uuid.UUID
	PrintedBy  *uuid.UUID
	PrintedAt  *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// EffectiveStatus returns the status a reader should observe now: expired for
// a non-terminal record past its expiry date, the stored status otherwise.
func (c *Credential) EffectiveStatus(now time.Time) Status {
	return EffectiveStatus(c.Status, c.ExpiresAt, now)
}
