// Package usecase implements business logic orchestration for access control.
package usecase

import (
	"context"

	"github.com/google/uuid"

	accessDomain "github.com/badgeops/badgeops/internal/access/domain"
	accessService "github.com/badgeops/badgeops/internal/access/service"
	auditDomain "github.com/badgeops/badgeops/internal/audit/domain"
	auditUsecase "github.com/badgeops/badgeops/internal/audit/usecase"
	apperrors "github.com/badgeops/badgeops/internal/errors"
)

// accessGate implements AccessGate over the matrix repository with a
// read-through snapshot cache.
type accessGate struct {
	matrixRepo MatrixRepository
	cache      accessService.MatrixCache
	auditSink  auditUsecase.Sink
}

// loadMatrix returns the matrix snapshot for a role, reading through the
// cache. A role with no stored matrix resolves to an empty matrix, which
// denies every lookup; the miss is not cached so a freshly assigned matrix
// becomes visible on the next call.
func (g *accessGate) loadMatrix(ctx context.Context, roleID uuid.UUID) (*accessDomain.Matrix, error) {
	if matrix, ok := g.cache.Get(roleID); ok {
		return matrix, nil
	}

	matrix, err := g.matrixRepo.Get(ctx, roleID)
	if err != nil {
		if apperrors.Is(err, accessDomain.ErrMatrixNotFound) {
			return &accessDomain.Matrix{RoleID: roleID}, nil
		}
		return nil, err
	}

	g.cache.Put(matrix)
	return matrix, nil
}

// Authorize evaluates the grant, records the decision, and fails closed.
func (g *accessGate) Authorize(
	ctx context.Context,
	actorID, roleID uuid.UUID,
	areaTitle string,
	action accessDomain.Action,
) error {
	matrix, err := g.loadMatrix(ctx, roleID)
	if err != nil {
		return apperrors.Wrap(err, "failed to load permission matrix")
	}

	allowed := matrix.Lookup(areaTitle, action)

	outcome := auditDomain.OutcomeAllowed
	if !allowed {
		outcome = auditDomain.OutcomeDenied
	}
	g.auditSink.Record(ctx, &auditDomain.Event{
		ActorID: actorID,
		Action:  string(action),
		Area:    areaTitle,
		Outcome: outcome,
	})

	if !allowed {
		return accessDomain.ErrActionNotPermitted
	}
	return nil
}

// Check answers the grant question without auditing.
func (g *accessGate) Check(
	ctx context.Context,
	roleID uuid.UUID,
	areaTitle string,
	action accessDomain.Action,
) (bool, error) {
	matrix, err := g.loadMatrix(ctx, roleID)
	if err != nil {
		return false, apperrors.Wrap(err, "failed to load permission matrix")
	}
	return matrix.Lookup(areaTitle, action), nil
}

// Grants returns the role's full matrix for affordance rendering.
func (g *accessGate) Grants(ctx context.Context, roleID uuid.UUID) (*accessDomain.Matrix, error) {
	matrix, err := g.loadMatrix(ctx, roleID)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to load permission matrix")
	}
	return matrix, nil
}

// NewAccessGate creates an AccessGate with the provided dependencies.
func NewAccessGate(
	matrixRepo MatrixRepository,
	cache accessService.MatrixCache,
	auditSink auditUsecase.Sink,
) AccessGate {
	return &accessGate{
		matrixRepo: matrixRepo,
		cache:      cache,
		auditSink:  auditSink,
	}
}
