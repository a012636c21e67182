package usecase

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	auditDomain "github.com/badgeops/badgeops/internal/audit/domain"
	apperrors "github.com/badgeops/badgeops/internal/errors"
)

type mockEventRepository struct {
	mock.Mock
}

func (m *mockEventRepository) Create(ctx context.Context, event *auditDomain.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *mockEventRepository) List(
	ctx context.Context,
	offset, limit int,
	createdAtFrom, createdAtTo *time.Time,
) ([]*auditDomain.Event, error) {
	args := m.Called(ctx, offset, limit, createdAtFrom, createdAtTo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*auditDomain.Event), args.Error(1)
}

func (m *mockEventRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRecord(t *testing.T) {
	ctx := context.Background()

	t.Run("FillsIDAndTimestamp", func(t *testing.T) {
		repo := &mockEventRepository{}
		repo.On("Create", ctx, mock.MatchedBy(func(event *auditDomain.Event) bool {
			return event.ID != uuid.Nil && !event.CreatedAt.IsZero()
		})).Return(nil).Once()

		sink := NewAuditUseCase(repo, testLogger())
		sink.Record(ctx, &auditDomain.Event{
			ActorID: uuid.Must(uuid.NewV7()),
			Action:  "approve",
			Area:    "Generate ID",
			Outcome: auditDomain.OutcomeAllowed,
		})

		repo.AssertExpectations(t)
	})

	t.Run("SwallowsRepositoryError", func(t *testing.T) {
		// A failing audit write must never surface to the gated operation.
		repo := &mockEventRepository{}
		repo.On("Create", ctx, mock.Anything).Return(apperrors.New("sink unavailable")).Once()

		sink := NewAuditUseCase(repo, testLogger())
		sink.Record(ctx, &auditDomain.Event{
			ActorID: uuid.Must(uuid.NewV7()),
			Action:  "generate",
			Outcome: auditDomain.OutcomeApplied,
		})

		repo.AssertExpectations(t)
	})

	t.Run("NilEventIsNoop", func(t *testing.T) {
		repo := &mockEventRepository{}
		sink := NewAuditUseCase(repo, testLogger())
		sink.Record(ctx, nil)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestList(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		events := []*auditDomain.Event{
			{ID: uuid.Must(uuid.NewV7()), Action: "approve", Outcome: auditDomain.OutcomeDenied},
		}

		repo := &mockEventRepository{}
		repo.On("List", ctx, 0, 50, (*time.Time)(nil), (*time.Time)(nil)).Return(events, nil).Once()

		uc := NewAuditUseCase(repo, testLogger())
		got, err := uc.List(ctx, 0, 50, nil, nil)

		assert.NoError(t, err)
		assert.Equal(t, events, got)
		repo.AssertExpectations(t)
	})

	t.Run("RepositoryError", func(t *testing.T) {
		repo := &mockEventRepository{}
		repo.On("List", ctx, 0, 50, (*time.Time)(nil), (*time.Time)(nil)).
			Return(nil, apperrors.New("query failed")).Once()

		uc := NewAuditUseCase(repo, testLogger())
		_, err := uc.List(ctx, 0, 50, nil, nil)

		assert.Error(t, err)
	})
}

func TestDeleteOlderThan(t *testing.T) {
	ctx := context.Background()
	cutoff := time.Now().UTC().Add(-90 * 24 * time.Hour)

	repo := &mockEventRepository{}
	repo.On("DeleteOlderThan", ctx, cutoff).Return(int64(42), nil).Once()

	uc := NewAuditUseCase(repo, testLogger())
	deleted, err := uc.DeleteOlderThan(ctx, cutoff)

	assert.NoError(t, err)
	assert.Equal(t, int64(42), deleted)
	repo.AssertExpectations(t)
}
