package domain

import (
	"github.com/badgeops/badgeops/internal/errors"
)

// Credential lifecycle errors.
var (
	// ErrCredentialNotFound indicates a credential record or verification
	// code did not resolve. The public verify surface must not distinguish
	// "never existed" from "existed but was removed".
	ErrCredentialNotFound = errors.Wrap(errors.ErrNotFound, "credential not found")

	// ErrTransitionNotAllowed indicates the requested target status is not
	// reachable from the record's current status, including the post-expiry
	// case and a lost compare-and-swap race. Distinct from an authorization
	// failure: it signals stale client state, not missing capability.
	ErrTransitionNotAllowed = errors.Wrap(errors.ErrInvalidTransition, "status transition not allowed")

	// ErrUnknownStatus indicates a status value outside the closed set.
	ErrUnknownStatus = errors.Wrap(errors.ErrInvalidInput, "unknown credential status")

	// ErrVerifyCodeConflict indicates the generated verification code collided
	// with the code of an existing record.
	ErrVerifyCodeConflict = errors.Wrap(errors.ErrConflict, "verification code already in use")
)
