package domain

import (
	"github.com/badgeops/badgeops/internal/errors"
)

// Operator and session errors.
var (
	// ErrOperatorNotFound indicates an operator with the specified ID was not found.
	ErrOperatorNotFound = errors.Wrap(errors.ErrNotFound, "operator not found")

	// ErrOperatorAlreadyExists indicates an operator with the same email already exists.
	ErrOperatorAlreadyExists = errors.Wrap(errors.ErrConflict, "operator already exists")

	// ErrSessionNotFound indicates a session token did not resolve.
	ErrSessionNotFound = errors.Wrap(errors.ErrNotFound, "session not found")

	// ErrInvalidCredentials indicates a failed login. The message never says
	// whether the email or the password was wrong.
	ErrInvalidCredentials = errors.Wrap(errors.ErrUnauthorized, "invalid credentials")

	// ErrOperatorLocked indicates the account is locked out after repeated
	// failed logins.
	ErrOperatorLocked = errors.Wrap(errors.ErrLocked, "operator locked")

	// ErrOperatorInactive indicates a deactivated account attempted to
	// authenticate.
	ErrOperatorInactive = errors.Wrap(errors.ErrUnauthorized, "operator inactive")
)
