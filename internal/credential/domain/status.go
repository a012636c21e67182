// Package domain defines the credential lifecycle model: the record, its
// closed status set, and the directed transition table every status change
// must follow.
package domain

import (
	"time"

	accessDomain "github.com/badgeops/badgeops/internal/access/domain"
)

// Status is the lifecycle state of a credential record. The set is closed:
// statuses only advance along the edges in the transition table, and no
// transition may skip a state.
type Status string

const (
	// StatusCreated is the initial status, assigned at record construction.
	StatusCreated Status = "created"

	// StatusReadyToPrint marks a record approved for printing.
	StatusReadyToPrint Status = "ready_to_print"

	// StatusPrinted marks a physically produced card.
	StatusPrinted Status = "printed"

	// StatusLost marks a printed card reported lost. Terminal.
	StatusLost Status = "lost"

	// StatusReplaced marks a printed card superseded by a new record for the
	// same subject. Terminal for this record only.
	StatusReplaced Status = "replaced"

	// StatusExpired marks a record whose expiry date elapsed before reaching
	// a terminal state. Time-driven, never actor-driven. Terminal.
	StatusExpired Status = "expired"
)

// Valid reports whether s is a member of the closed status set.
func (s Status) Valid() bool {
	switch s {
	case StatusCreated, StatusReadyToPrint, StatusPrinted, StatusLost, StatusReplaced, StatusExpired:
		return true
	}
	return false
}

// Terminal reports whether s has no outbound edges.
func (s Status) Terminal() bool {
	switch s {
	case StatusLost, StatusReplaced, StatusExpired:
		return true
	}
	return false
}

// transitions maps each actor-driven edge to the action it requires on the
// credential issuance area. Expiry is absent on purpose: it is time-driven
// and system-initiated, never requested through TransitionAction.
//
// Reporting a card lost authorizes through the same edit capability as
// general record maintenance; "lost" exists as a separate action constant
// only for the UI affordance.
var transitions = map[Status]map[Status]accessDomain.Action{
	StatusCreated: {
		StatusReadyToPrint: accessDomain.ActionApprove,
	},
	StatusReadyToPrint: {
		StatusPrinted: accessDomain.ActionEdit,
	},
	StatusPrinted: {
		StatusLost:     accessDomain.ActionEdit,
		StatusReplaced: accessDomain.ActionEdit,
	},
}

// TransitionAction looks up the edge (from, to) in the transition table and
// returns the action required to traverse it. The second return is false when
// the edge does not exist.
func TransitionAction(from, to Status) (accessDomain.Action, bool) {
	action, ok := transitions[from][to]
	return action, ok
}

// EffectiveStatus computes the status a reader should observe at the given
// instant: a non-terminal record whose expiry date has passed reads as
// expired even before the stored status is materialized.
func EffectiveStatus(status Status, expiresAt time.Time, now time.Time) Status {
	if status.Terminal() {
		return status
	}
	if !expiresAt.IsZero() && now.After(expiresAt) {
		return StatusExpired
	}
	return status
}
