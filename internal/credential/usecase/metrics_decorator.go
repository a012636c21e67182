package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	credentialDomain "github.com/badgeops/badgeops/internal/credential/domain"
	apperrors "github.com/badgeops/badgeops/internal/errors"
	"github.com/badgeops/badgeops/internal/metrics"
)

// credentialUseCaseWithMetrics decorates CredentialUseCase with metrics
// instrumentation.
type credentialUseCaseWithMetrics struct {
	next    CredentialUseCase
	metrics metrics.BusinessMetrics
}

// NewCredentialUseCaseWithMetrics wraps a CredentialUseCase with metrics recording.
func NewCredentialUseCaseWithMetrics(useCase CredentialUseCase, m metrics.BusinessMetrics) CredentialUseCase {
	return &credentialUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// transitionStatus classifies a lifecycle error for the status label,
// keeping denials and invalid transitions distinguishable from
// infrastructure failures.
func transitionStatus(err error) string {
	switch {
	case err == nil:
		return "success"
	case apperrors.Is(err, apperrors.ErrForbidden):
		return "denied"
	case apperrors.Is(err, apperrors.ErrInvalidTransition):
		return "invalid_transition"
	case apperrors.Is(err, apperrors.ErrNotFound):
		return "not_found"
	default:
		return "error"
	}
}

// Create records metrics for credential issuance.
func (c *credentialUseCaseWithMetrics) Create(
	ctx context.Context,
	actorID, roleID uuid.UUID,
	input *CreateCredentialInput,
) (*credentialDomain.Credential, error) {
	start := time.Now()
	credential, err := c.next.Create(ctx, actorID, roleID, input)

	status := transitionStatus(err)
	c.metrics.RecordOperation(ctx, "credential", "create", status)
	c.metrics.RecordDuration(ctx, "credential", "create", time.Since(start), status)

	return credential, err
}

// Get records metrics for credential reads.
func (c *credentialUseCaseWithMetrics) Get(
	ctx context.Context,
	credentialID uuid.UUID,
) (*credentialDomain.Credential, error) {
	start := time.Now()
	credential, err := c.next.Get(ctx, credentialID)

	status := transitionStatus(err)
	c.metrics.RecordOperation(ctx, "credential", "get", status)
	c.metrics.RecordDuration(ctx, "credential", "get", time.Since(start), status)

	return credential, err
}

// List records metrics for credential listing.
func (c *credentialUseCaseWithMetrics) List(
	ctx context.Context,
	offset, limit int,
	employeeID *uuid.UUID,
) ([]*credentialDomain.Credential, error) {
	start := time.Now()
	credentials, err := c.next.List(ctx, offset, limit, employeeID)

	status := transitionStatus(err)
	c.metrics.RecordOperation(ctx, "credential", "list", status)
	c.metrics.RecordDuration(ctx, "credential", "list", time.Since(start), status)

	return credentials, err
}

// RequestTransition records metrics for lifecycle transitions.
func (c *credentialUseCaseWithMetrics) RequestTransition(
	ctx context.Context,
	actorID, roleID uuid.UUID,
	credentialID uuid.UUID,
	target credentialDomain.Status,
) (*credentialDomain.Credential, error) {
	start := time.Now()
	credential, err := c.next.RequestTransition(ctx, actorID, roleID, credentialID, target)

	status := transitionStatus(err)
	c.metrics.RecordOperation(ctx, "credential", "transition", status)
	c.metrics.RecordDuration(ctx, "credential", "transition", time.Since(start), status)

	return credential, err
}

// Delete records metrics for hard removals.
func (c *credentialUseCaseWithMetrics) Delete(ctx context.Context, actorID, roleID, credentialID uuid.UUID) error {
	start := time.Now()
	err := c.next.Delete(ctx, actorID, roleID, credentialID)

	status := transitionStatus(err)
	c.metrics.RecordOperation(ctx, "credential", "delete", status)
	c.metrics.RecordDuration(ctx, "credential", "delete", time.Since(start), status)

	return err
}

// ExpireOverdue records metrics for bulk expiry materialization.
func (c *credentialUseCaseWithMetrics) ExpireOverdue(ctx context.Context) (int64, error) {
	start := time.Now()
	expired, err := c.next.ExpireOverdue(ctx)

	status := "success"
	if err != nil {
		status = "error"
	}
	c.metrics.RecordOperation(ctx, "credential", "expire_overdue", status)
	c.metrics.RecordDuration(ctx, "credential", "expire_overdue", time.Since(start), status)

	return expired, err
}

// verificationUseCaseWithMetrics decorates VerificationUseCase with metrics
// instrumentation.
type verificationUseCaseWithMetrics struct {
	next    VerificationUseCase
	metrics metrics.BusinessMetrics
}

// NewVerificationUseCaseWithMetrics wraps a VerificationUseCase with metrics recording.
func NewVerificationUseCaseWithMetrics(useCase VerificationUseCase, m metrics.BusinessMetrics) VerificationUseCase {
	return &verificationUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Verify records metrics for public verification lookups.
func (v *verificationUseCaseWithMetrics) Verify(ctx context.Context, code string) (*credentialDomain.Credential, error) {
	start := time.Now()
	credential, err := v.next.Verify(ctx, code)

	status := transitionStatus(err)
	v.metrics.RecordOperation(ctx, "credential", "verify", status)
	v.metrics.RecordDuration(ctx, "credential", "verify", time.Since(start), status)

	return credential, err
}
