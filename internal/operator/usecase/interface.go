// Package usecase defines business logic interfaces for operator accounts and
// login sessions.
package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	operatorDomain "github.com/badgeops/badgeops/internal/operator/domain"
)

// OperatorRepository defines persistence operations for operators.
// Implementations must support transaction-aware operations via context propagation.
type OperatorRepository interface {
	// Create stores a new operator. Returns ErrOperatorAlreadyExists on an
	// email collision.
	Create(ctx context.Context, operator *operatorDomain.Operator) error

	// Get retrieves an operator by ID. Returns ErrOperatorNotFound if not found.
	Get(ctx context.Context, operatorID uuid.UUID) (*operatorDomain.Operator, error)

	// GetByEmail retrieves an operator by email. Returns ErrOperatorNotFound if not found.
	GetByEmail(ctx context.Context, email string) (*operatorDomain.Operator, error)

	// List retrieves operators ordered by name with pagination.
	List(ctx context.Context, offset, limit int) ([]*operatorDomain.Operator, error)

	// Update modifies an existing operator.
	Update(ctx context.Context, operator *operatorDomain.Operator) error

	// UpdateLockState sets the failed-attempt counter and lockout expiry.
	UpdateLockState(ctx context.Context, operatorID uuid.UUID, failedAttempts int, lockedUntil *time.Time) error
}

// SessionRepository defines persistence operations for login sessions.
type SessionRepository interface {
	// Create stores a new session.
	Create(ctx context.Context, session *operatorDomain.Session) error

	// GetByTokenHash retrieves a session by its token hash.
	// Returns ErrSessionNotFound if not found.
	GetByTokenHash(ctx context.Context, tokenHash string) (*operatorDomain.Session, error)

	// Revoke marks a session as revoked.
	Revoke(ctx context.Context, tokenHash string, at time.Time) error

	// DeleteExpired removes sessions that expired before the cutoff.
	DeleteExpired(ctx context.Context, cutoff time.Time) (int64, error)
}

// CreateOperatorInput carries the request to create a new operator account.
type CreateOperatorInput struct {
	Name     string
	Email    string
	Password string
	RoleID   uuid.UUID
	IsActive bool
}

// UpdateOperatorInput carries the request to update an operator account.
// Password is optional: empty leaves the stored hash unchanged.
type UpdateOperatorInput struct {
	Name     string
	Email    string
	Password string
	RoleID   uuid.UUID
	IsActive bool
}

// OperatorUseCase defines administration operations for operator accounts.
// Authorization happens at the HTTP layer against the operator-management
// area; this layer owns hashing, uniqueness, and lockout bookkeeping.
type OperatorUseCase interface {
	// Create creates a new operator with a hashed password.
	Create(ctx context.Context, input *CreateOperatorInput) (*operatorDomain.Operator, error)

	// Get retrieves an operator by ID.
	Get(ctx context.Context, operatorID uuid.UUID) (*operatorDomain.Operator, error)

	// List retrieves operators ordered by name with pagination.
	List(ctx context.Context, offset, limit int) ([]*operatorDomain.Operator, error)

	// Update modifies an operator's account fields, rehashing the password
	// when a new one is supplied.
	Update(ctx context.Context, operatorID uuid.UUID, input *UpdateOperatorInput) (*operatorDomain.Operator, error)

	// Deactivate performs a soft delete by setting IsActive to false.
	Deactivate(ctx context.Context, operatorID uuid.UUID) error

	// Unlock clears the lockout state for an operator.
	Unlock(ctx context.Context, operatorID uuid.UUID) error
}

// LoginOutput carries the result of a successful login. The plain session
// token appears here once and is never stored.
type LoginOutput struct {
	Operator   *operatorDomain.Operator
	PlainToken string
	ExpiresAt  time.Time
}

// SessionUseCase defines the login and request-authentication flows.
type SessionUseCase interface {
	// Login authenticates an operator by email and password, enforcing the
	// failed-attempt lockout, and issues a new session.
	Login(ctx context.Context, email, password string) (*LoginOutput, error)

	// Authenticate resolves a plain session token to its active operator.
	Authenticate(ctx context.Context, plainToken string) (*operatorDomain.Operator, error)

	// Logout revokes the session behind a plain token. Idempotent.
	Logout(ctx context.Context, plainToken string) error
}
