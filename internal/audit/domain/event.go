// Package domain defines the audit event model. Events record authorization
// decisions and lifecycle mutations for compliance review; the sink consuming
// them is one-way and must never block the operation being audited.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Outcome classifies what happened to the audited operation.
type Outcome string

const (
	// OutcomeAllowed records an authorization that passed.
	OutcomeAllowed Outcome = "allowed"

	// OutcomeDenied records an authorization that was refused.
	OutcomeDenied Outcome = "denied"

	// OutcomeApplied records a mutation that was executed.
	OutcomeApplied Outcome = "applied"
)

// Event is a single audit record. Either Area or RecordID identifies the
// target: gate decisions carry the capability area, lifecycle mutations carry
// the credential record ID.
type Event struct {
	ID        uuid.UUID
	ActorID   uuid.UUID
	Action    string
	Area      string
	RecordID  *uuid.UUID
	Outcome   Outcome
	Metadata  map[string]any
	CreatedAt time.Time
}
