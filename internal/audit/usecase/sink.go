// Package usecase implements the audit sink and audit log queries.
package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	auditDomain "github.com/badgeops/badgeops/internal/audit/domain"
	apperrors "github.com/badgeops/badgeops/internal/errors"
)

// EventRepository defines persistence operations for audit events.
type EventRepository interface {
	// Create stores a new audit event.
	Create(ctx context.Context, event *auditDomain.Event) error

	// List retrieves events ordered by created_at descending with pagination
	// and optional inclusive time filters (nil means no filter).
	List(ctx context.Context, offset, limit int, createdAtFrom, createdAtTo *time.Time) ([]*auditDomain.Event, error)

	// DeleteOlderThan removes events created before the cutoff and returns
	// the number deleted.
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

// Sink is the one-way boundary every gated operation reports into.
//
// Record is fire-and-forget by contract: implementations log persistence
// failures locally and swallow them, so the success of the audited business
// operation never depends on the audit write.
type Sink interface {
	Record(ctx context.Context, event *auditDomain.Event)
}

// AuditUseCase exposes the sink plus audit log queries and retention maintenance.
type AuditUseCase interface {
	Sink

	List(ctx context.Context, offset, limit int, createdAtFrom, createdAtTo *time.Time) ([]*auditDomain.Event, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

// auditUseCase implements Sink and AuditUseCase over an EventRepository.
type auditUseCase struct {
	eventRepo EventRepository
	logger    *slog.Logger
}

// Record persists an audit event, filling in the ID and timestamp when absent.
// Errors are logged and dropped.
func (a *auditUseCase) Record(ctx context.Context, event *auditDomain.Event) {
	if event == nil {
		return
	}

	if event.ID == uuid.Nil {
		event.ID = uuid.Must(uuid.NewV7())
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now().UTC()
	}

	if err := a.eventRepo.Create(ctx, event); err != nil {
		a.logger.Error("audit write failed",
			slog.String("action", event.Action),
			slog.String("outcome", string(event.Outcome)),
			slog.Any("error", err),
		)
	}
}

// List retrieves audit events for review, newest first.
func (a *auditUseCase) List(
	ctx context.Context,
	offset, limit int,
	createdAtFrom, createdAtTo *time.Time,
) ([]*auditDomain.Event, error) {
	events, err := a.eventRepo.List(ctx, offset, limit, createdAtFrom, createdAtTo)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list audit events")
	}
	return events, nil
}

// DeleteOlderThan removes events created before the cutoff.
func (a *auditUseCase) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	deleted, err := a.eventRepo.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to delete audit events")
	}
	return deleted, nil
}

// NewAuditUseCase creates the audit sink and query use case.
func NewAuditUseCase(eventRepo EventRepository, logger *slog.Logger) AuditUseCase {
	return &auditUseCase{
		eventRepo: eventRepo,
		logger:    logger,
	}
}
