package domain

import (
	"github.com/badgeops/badgeops/internal/errors"
)

// Access control errors.
var (
	// ErrRoleNotFound indicates a role with the specified ID was not found.
	ErrRoleNotFound = errors.Wrap(errors.ErrNotFound, "role not found")

	// ErrMatrixNotFound indicates no permission matrix is stored for the role.
	// Gate lookups treat this as an empty matrix (fail closed); it surfaces as
	// an error only from direct matrix reads.
	ErrMatrixNotFound = errors.Wrap(errors.ErrNotFound, "permission matrix not found")

	// ErrActionNotPermitted indicates the actor's role does not grant the
	// requested action on the requested area.
	ErrActionNotPermitted = errors.Wrap(errors.ErrForbidden, "action not permitted")
)
