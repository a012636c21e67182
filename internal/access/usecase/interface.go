// Package usecase defines business logic interfaces for access control:
// role and matrix administration plus the authorization gate every
// protected operation consults.
package usecase

import (
	"context"

	"github.com/google/uuid"

	accessDomain "github.com/badgeops/badgeops/internal/access/domain"
)

// RoleRepository defines persistence operations for roles.
// Implementations must support transaction-aware operations via context propagation.
type RoleRepository interface {
	// Create stores a new role in the repository.
	Create(ctx context.Context, role *accessDomain.Role) error

	// Get retrieves a role by ID. Returns ErrRoleNotFound if not found.
	Get(ctx context.Context, roleID uuid.UUID) (*accessDomain.Role, error)

	// List retrieves roles ordered by name with pagination.
	List(ctx context.Context, offset, limit int) ([]*accessDomain.Role, error)
}

// MatrixRepository defines persistence operations for permission matrices.
// Implementations must support transaction-aware operations via context propagation.
type MatrixRepository interface {
	// Get retrieves the matrix for a role. Returns ErrMatrixNotFound if the
	// role has no stored matrix.
	Get(ctx context.Context, roleID uuid.UUID) (*accessDomain.Matrix, error)

	// Replace swaps the entire grant set for a role atomically: readers
	// observe the previous document or the new one, never a mix.
	Replace(ctx context.Context, matrix *accessDomain.Matrix) error
}

// AccessGate is the runtime authorization boundary. Every state-changing
// operation passes through Authorize before executing; UI affordance queries
// use Check, which answers the same question without recording a decision.
//
// Both paths fail closed: a role with no stored matrix, an unknown area, or
// an unknown action all resolve to a denial, never an error that could be
// mistaken for permission.
type AccessGate interface {
	// Authorize evaluates whether the actor's role grants the action on the
	// area, records the decision in the audit sink, and returns
	// ErrActionNotPermitted on denial.
	Authorize(ctx context.Context, actorID, roleID uuid.UUID, areaTitle string, action accessDomain.Action) error

	// Check answers the same grant question as Authorize without auditing.
	// It is advisory: the UI uses it to show or hide controls, and the
	// authoritative Authorize call still runs when the operation executes.
	Check(ctx context.Context, roleID uuid.UUID, areaTitle string, action accessDomain.Action) (bool, error)

	// Grants returns the full matrix for a role so callers can render every
	// affordance in one read. A role with no stored matrix yields an empty
	// matrix, not an error.
	Grants(ctx context.Context, roleID uuid.UUID) (*accessDomain.Matrix, error)
}

// MatrixUseCase defines administration operations for roles and their
// permission matrices.
type MatrixUseCase interface {
	// CreateRole creates a new role with no matrix. Until a matrix is
	// replaced in, the role denies every action.
	CreateRole(ctx context.Context, name string) (*accessDomain.Role, error)

	// GetRole retrieves a role by ID.
	GetRole(ctx context.Context, roleID uuid.UUID) (*accessDomain.Role, error)

	// ListRoles retrieves roles ordered by name with pagination.
	ListRoles(ctx context.Context, offset, limit int) ([]*accessDomain.Role, error)

	// Get retrieves the stored matrix for a role.
	// Returns ErrMatrixNotFound if none is stored.
	Get(ctx context.Context, roleID uuid.UUID) (*accessDomain.Matrix, error)

	// Replace swaps the role's entire grant set with the provided areas and
	// refreshes the gate's cached snapshot. There is no partial update: the
	// caller always submits the full matrix.
	Replace(ctx context.Context, actorID, roleID uuid.UUID, areas []accessDomain.AreaGrant) (*accessDomain.Matrix, error)
}
