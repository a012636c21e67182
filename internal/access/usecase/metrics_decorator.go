package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	accessDomain "github.com/badgeops/badgeops/internal/access/domain"
	apperrors "github.com/badgeops/badgeops/internal/errors"
	"github.com/badgeops/badgeops/internal/metrics"
)

// accessGateWithMetrics decorates AccessGate with metrics instrumentation.
type accessGateWithMetrics struct {
	next    AccessGate
	metrics metrics.BusinessMetrics
}

// NewAccessGateWithMetrics wraps an AccessGate with metrics recording.
func NewAccessGateWithMetrics(gate AccessGate, m metrics.BusinessMetrics) AccessGate {
	return &accessGateWithMetrics{
		next:    gate,
		metrics: m,
	}
}

// Authorize records metrics for authorization decisions, distinguishing
// denials from infrastructure errors.
func (g *accessGateWithMetrics) Authorize(
	ctx context.Context,
	actorID, roleID uuid.UUID,
	areaTitle string,
	action accessDomain.Action,
) error {
	start := time.Now()
	err := g.next.Authorize(ctx, actorID, roleID, areaTitle, action)

	status := "success"
	switch {
	case apperrors.Is(err, apperrors.ErrForbidden):
		status = "denied"
	case err != nil:
		status = "error"
	}

	g.metrics.RecordOperation(ctx, "access", "authorize", status)
	g.metrics.RecordDuration(ctx, "access", "authorize", time.Since(start), status)

	return err
}

// Check records metrics for affordance queries.
func (g *accessGateWithMetrics) Check(
	ctx context.Context,
	roleID uuid.UUID,
	areaTitle string,
	action accessDomain.Action,
) (bool, error) {
	start := time.Now()
	allowed, err := g.next.Check(ctx, roleID, areaTitle, action)

	status := "success"
	if err != nil {
		status = "error"
	}

	g.metrics.RecordOperation(ctx, "access", "check", status)
	g.metrics.RecordDuration(ctx, "access", "check", time.Since(start), status)

	return allowed, err
}

// Grants records metrics for full-matrix affordance reads.
func (g *accessGateWithMetrics) Grants(ctx context.Context, roleID uuid.UUID) (*accessDomain.Matrix, error) {
	start := time.Now()
	matrix, err := g.next.Grants(ctx, roleID)

	status := "success"
	if err != nil {
		status = "error"
	}

	g.metrics.RecordOperation(ctx, "access", "grants", status)
	g.metrics.RecordDuration(ctx, "access", "grants", time.Since(start), status)

	return matrix, err
}
