// Package usecase defines business logic interfaces for the credential
// lifecycle: issuance, gated status transitions, and public verification.
package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	credentialDomain "github.com/badgeops/badgeops/internal/credential/domain"
)

// CredentialRepository defines persistence operations for credential records.
// Implementations must support transaction-aware operations via context propagation.
type CredentialRepository interface {
	// Create stores a new credential record. The verify code column carries a
	// unique constraint; a collision fails the insert with ErrVerifyCodeConflict.
	Create(ctx context.Context, credential *credentialDomain.Credential) error

	// Get retrieves a credential by ID. Returns ErrCredentialNotFound if not found.
	Get(ctx context.Context, credentialID uuid.UUID) (*credentialDomain.Credential, error)

	// GetByVerifyCode retrieves a credential by its verification code.
	// Returns ErrCredentialNotFound for any code that does not resolve exactly.
	GetByVerifyCode(ctx context.Context, code string) (*credentialDomain.Credential, error)

	// List retrieves credentials ordered by created_at descending with
	// pagination and an optional employee filter.
	List(ctx context.Context, offset, limit int, employeeID *uuid.UUID) ([]*credentialDomain.Credential, error)

	// SwapStatus performs a per-record compare-and-swap on status: the write
	// applies only if the record still holds the expected status. Returns
	// false when the swap loses. PrintedBy stamps the printer when the swap
	// reaches printed.
	SwapStatus(
		ctx context.Context,
		credentialID uuid.UUID,
		expected, next credentialDomain.Status,
		printedBy *uuid.UUID,
		at time.Time,
	) (bool, error)

	// Delete removes a credential record outright.
	Delete(ctx context.Context, credentialID uuid.UUID) error

	// ExpireOverdue materializes expired status for every non-terminal record
	// past its expiry date, returning the number updated.
	ExpireOverdue(ctx context.Context, now time.Time) (int64, error)
}

// CreateCredentialInput carries the request to issue a new credential.
type CreateCredentialInput struct {
	EmployeeID uuid.UUID
	TemplateID uuid.UUID
}

// CredentialUseCase defines the authenticated credential lifecycle operations.
// Every mutation authorizes through the access gate before executing.
type CredentialUseCase interface {
	// Create issues a new credential record in status created with a fresh
	// verification code. Requires generate on the issuance area.
	Create(ctx context.Context, actorID, roleID uuid.UUID, input *CreateCredentialInput) (*credentialDomain.Credential, error)

	// Get retrieves a credential by ID. The returned status is the effective
	// status: a non-terminal record past its expiry date reads as expired.
	Get(ctx context.Context, credentialID uuid.UUID) (*credentialDomain.Credential, error)

	// List retrieves credentials with effective statuses.
	List(ctx context.Context, offset, limit int, employeeID *uuid.UUID) ([]*credentialDomain.Credential, error)

	// RequestTransition advances a record along one edge of the transition
	// table. The edge is validated first (invalid transition), then the actor
	// is authorized for the edge's required action (denied), then the status
	// is swapped with a per-record compare-and-swap (losing the race is an
	// invalid transition). A record past its expiry date is materialized as
	// expired before the requested edge is evaluated, and then rejected.
	RequestTransition(
		ctx context.Context,
		actorID, roleID uuid.UUID,
		credentialID uuid.UUID,
		target credentialDomain.Status,
	) (*credentialDomain.Credential, error)

	// Delete removes a record outright. A hard removal outside the state
	// machine, separately gated by delete on the issuance area.
	Delete(ctx context.Context, actorID, roleID, credentialID uuid.UUID) error

	// ExpireOverdue materializes expired status in bulk. System-initiated
	// maintenance, not actor-gated.
	ExpireOverdue(ctx context.Context) (int64, error)
}

// VerificationUseCase is the public, unauthenticated verify-by-code surface.
type VerificationUseCase interface {
	// Verify resolves a verification code to its record with the current
	// effective status. Any code that does not resolve exactly returns
	// ErrCredentialNotFound with no partial-match hints.
	Verify(ctx context.Context, code string) (*credentialDomain.Credential, error)
}
