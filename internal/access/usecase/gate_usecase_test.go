package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	accessDomain "github.com/badgeops/badgeops/internal/access/domain"
	accessService "github.com/badgeops/badgeops/internal/access/service"
	auditDomain "github.com/badgeops/badgeops/internal/audit/domain"
	apperrors "github.com/badgeops/badgeops/internal/errors"
)

// mockRoleRepository is a mock implementation of RoleRepository for testing.
type mockRoleRepository struct {
	mock.Mock
}

func (m *mockRoleRepository) Create(ctx context.Context, role *accessDomain.Role) error {
	args := m.Called(ctx, role)
	return args.Error(0)
}

func (m *mockRoleRepository) Get(ctx context.Context, roleID uuid.UUID) (*accessDomain.Role, error) {
	args := m.Called(ctx, roleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accessDomain.Role), args.Error(1)
}

func (m *mockRoleRepository) List(ctx context.Context, offset, limit int) ([]*accessDomain.Role, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*accessDomain.Role), args.Error(1)
}

// mockMatrixRepository is a mock implementation of MatrixRepository for testing.
type mockMatrixRepository struct {
	mock.Mock
}

func (m *mockMatrixRepository) Get(ctx context.Context, roleID uuid.UUID) (*accessDomain.Matrix, error) {
	args := m.Called(ctx, roleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accessDomain.Matrix), args.Error(1)
}

func (m *mockMatrixRepository) Replace(ctx context.Context, matrix *accessDomain.Matrix) error {
	args := m.Called(ctx, matrix)
	return args.Error(0)
}

// mockAuditSink captures recorded audit events for assertions.
type mockAuditSink struct {
	mock.Mock
}

func (m *mockAuditSink) Record(ctx context.Context, event *auditDomain.Event) {
	m.Called(ctx, event)
}

func clerkMatrix(roleID uuid.UUID) *accessDomain.Matrix {
	return &accessDomain.Matrix{
		RoleID: roleID,
		Areas: []accessDomain.AreaGrant{
			{
				Title:   accessDomain.AreaCredentialIssuance,
				Actions: accessDomain.ActionSet{View: true, Generate: true},
			},
			{
				Title:   accessDomain.AreaEmployees,
				Actions: accessDomain.ActionSet{View: true, Add: true, Edit: true},
			},
		},
		UpdatedAt: time.Now().UTC(),
	}
}

func TestAccessGate_Authorize(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_GrantedActionPassesAndIsAudited", func(t *testing.T) {
		mockMatrixRepo := &mockMatrixRepository{}
		mockSink := &mockAuditSink{}
		cache := accessService.NewMatrixCache(time.Minute)

		actorID := uuid.Must(uuid.NewV7())
		roleID := uuid.Must(uuid.NewV7())

		mockMatrixRepo.On("Get", ctx, roleID).
			Return(clerkMatrix(roleID), nil).
			Once()

		mockSink.On("Record", ctx, mock.MatchedBy(func(event *auditDomain.Event) bool {
			return event.ActorID == actorID &&
				event.Action == "generate" &&
				event.Area == accessDomain.AreaCredentialIssuance &&
				event.Outcome == auditDomain.OutcomeAllowed
		})).Once()

		gate := NewAccessGate(mockMatrixRepo, cache, mockSink)
		err := gate.Authorize(ctx, actorID, roleID, accessDomain.AreaCredentialIssuance, accessDomain.ActionGenerate)

		assert.NoError(t, err)
		mockMatrixRepo.AssertExpectations(t)
		mockSink.AssertExpectations(t)
	})

	t.Run("Denied_MissingActionReturnsForbidden", func(t *testing.T) {
		mockMatrixRepo := &mockMatrixRepository{}
		mockSink := &mockAuditSink{}
		cache := accessService.NewMatrixCache(time.Minute)

		actorID := uuid.Must(uuid.NewV7())
		roleID := uuid.Must(uuid.NewV7())

		mockMatrixRepo.On("Get", ctx, roleID).
			Return(clerkMatrix(roleID), nil).
			Once()

		mockSink.On("Record", ctx, mock.MatchedBy(func(event *auditDomain.Event) bool {
			return event.Outcome == auditDomain.OutcomeDenied
		})).Once()

		gate := NewAccessGate(mockMatrixRepo, cache, mockSink)
		// The clerk matrix grants generate on issuance but never approve.
		err := gate.Authorize(ctx, actorID, roleID, accessDomain.AreaCredentialIssuance, accessDomain.ActionApprove)

		assert.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrForbidden)
		mockSink.AssertExpectations(t)
	})

	t.Run("Denied_NoMatrixFailsClosed", func(t *testing.T) {
		mockMatrixRepo := &mockMatrixRepository{}
		mockSink := &mockAuditSink{}
		cache := accessService.NewMatrixCache(time.Minute)

		actorID := uuid.Must(uuid.NewV7())
		roleID := uuid.Must(uuid.NewV7())

		mockMatrixRepo.On("Get", ctx, roleID).
			Return(nil, accessDomain.ErrMatrixNotFound).
			Once()

		mockSink.On("Record", ctx, mock.MatchedBy(func(event *auditDomain.Event) bool {
			return event.Outcome == auditDomain.OutcomeDenied
		})).Once()

		gate := NewAccessGate(mockMatrixRepo, cache, mockSink)
		err := gate.Authorize(ctx, actorID, roleID, accessDomain.AreaEmployees, accessDomain.ActionView)

		assert.ErrorIs(t, err, apperrors.ErrForbidden)
		mockMatrixRepo.AssertExpectations(t)
		mockSink.AssertExpectations(t)
	})

	t.Run("Denied_UnknownAreaFailsClosed", func(t *testing.T) {
		mockMatrixRepo := &mockMatrixRepository{}
		mockSink := &mockAuditSink{}
		cache := accessService.NewMatrixCache(time.Minute)

		actorID := uuid.Must(uuid.NewV7())
		roleID := uuid.Must(uuid.NewV7())

		mockMatrixRepo.On("Get", ctx, roleID).
			Return(clerkMatrix(roleID), nil).
			Once()

		mockSink.On("Record", ctx, mock.AnythingOfType("*domain.Event")).Once()

		gate := NewAccessGate(mockMatrixRepo, cache, mockSink)
		err := gate.Authorize(ctx, actorID, roleID, "Payroll", accessDomain.ActionView)

		assert.ErrorIs(t, err, apperrors.ErrForbidden)
	})

	t.Run("Success_ExpiredSnapshotIsReloadedFromStorage", func(t *testing.T) {
		mockMatrixRepo := &mockMatrixRepository{}
		mockSink := &mockAuditSink{}
		cache := accessService.NewMatrixCache(5 * time.Millisecond)

		actorID := uuid.Must(uuid.NewV7())
		roleID := uuid.Must(uuid.NewV7())

		// The clerk matrix never grants approve; the widened matrix does. The
		// widened document is written out of band, so only a cache expiry can
		// make the gate see it.
		widened := clerkMatrix(roleID)
		widened.Areas[0].Actions.Approve = true

		mockMatrixRepo.On("Get", ctx, roleID).
			Return(clerkMatrix(roleID), nil).
			Once()
		mockMatrixRepo.On("Get", ctx, roleID).
			Return(widened, nil).
			Once()

		mockSink.On("Record", ctx, mock.AnythingOfType("*domain.Event")).Twice()

		gate := NewAccessGate(mockMatrixRepo, cache, mockSink)

		err := gate.Authorize(ctx, actorID, roleID, accessDomain.AreaCredentialIssuance, accessDomain.ActionApprove)
		assert.ErrorIs(t, err, apperrors.ErrForbidden)

		time.Sleep(10 * time.Millisecond)

		err = gate.Authorize(ctx, actorID, roleID, accessDomain.AreaCredentialIssuance, accessDomain.ActionApprove)
		assert.NoError(t, err)

		mockMatrixRepo.AssertExpectations(t)
		mockSink.AssertExpectations(t)
	})

	t.Run("Success_SecondCallServedFromCache", func(t *testing.T) {
		mockMatrixRepo := &mockMatrixRepository{}
		mockSink := &mockAuditSink{}
		cache := accessService.NewMatrixCache(time.Minute)

		actorID := uuid.Must(uuid.NewV7())
		roleID := uuid.Must(uuid.NewV7())

		// The repository is consulted exactly once; the second authorize
		// reads the cached snapshot.
		mockMatrixRepo.On("Get", ctx, roleID).
			Return(clerkMatrix(roleID), nil).
			Once()

		mockSink.On("Record", ctx, mock.AnythingOfType("*domain.Event")).Twice()

		gate := NewAccessGate(mockMatrixRepo, cache, mockSink)

		err := gate.Authorize(ctx, actorID, roleID, accessDomain.AreaEmployees, accessDomain.ActionEdit)
		assert.NoError(t, err)

		err = gate.Authorize(ctx, actorID, roleID, accessDomain.AreaEmployees, accessDomain.ActionEdit)
		assert.NoError(t, err)

		mockMatrixRepo.AssertExpectations(t)
		mockSink.AssertExpectations(t)
	})
}

func TestAccessGate_Check(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_DoesNotAudit", func(t *testing.T) {
		mockMatrixRepo := &mockMatrixRepository{}
		mockSink := &mockAuditSink{}
		cache := accessService.NewMatrixCache(time.Minute)

		roleID := uuid.Must(uuid.NewV7())

		mockMatrixRepo.On("Get", ctx, roleID).
			Return(clerkMatrix(roleID), nil).
			Once()

		gate := NewAccessGate(mockMatrixRepo, cache, mockSink)

		allowed, err := gate.Check(ctx, roleID, accessDomain.AreaCredentialIssuance, accessDomain.ActionGenerate)
		assert.NoError(t, err)
		assert.True(t, allowed)

		allowed, err = gate.Check(ctx, roleID, accessDomain.AreaCredentialIssuance, accessDomain.ActionDelete)
		assert.NoError(t, err)
		assert.False(t, allowed)

		// No Record expectations were set; any call would fail the test.
		mockSink.AssertExpectations(t)
	})

	t.Run("Denied_CanonicalizationMatchesVariantTitles", func(t *testing.T) {
		mockMatrixRepo := &mockMatrixRepository{}
		mockSink := &mockAuditSink{}
		cache := accessService.NewMatrixCache(time.Minute)

		roleID := uuid.Must(uuid.NewV7())

		mockMatrixRepo.On("Get", ctx, roleID).
			Return(clerkMatrix(roleID), nil).
			Once()

		gate := NewAccessGate(mockMatrixRepo, cache, mockSink)

		// "employee_management" canonicalizes to the stored "Employee Management".
		allowed, err := gate.Check(ctx, roleID, "employee_management", accessDomain.ActionAdd)
		assert.NoError(t, err)
		assert.True(t, allowed)
	})
}

func TestAccessGate_Grants(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_ReturnsFullMatrix", func(t *testing.T) {
		mockMatrixRepo := &mockMatrixRepository{}
		mockSink := &mockAuditSink{}
		cache := accessService.NewMatrixCache(time.Minute)

		roleID := uuid.Must(uuid.NewV7())
		stored := clerkMatrix(roleID)

		mockMatrixRepo.On("Get", ctx, roleID).
			Return(stored, nil).
			Once()

		gate := NewAccessGate(mockMatrixRepo, cache, mockSink)
		matrix, err := gate.Grants(ctx, roleID)

		assert.NoError(t, err)
		assert.Equal(t, stored, matrix)
	})

	t.Run("Success_NoMatrixYieldsEmptyGrants", func(t *testing.T) {
		mockMatrixRepo := &mockMatrixRepository{}
		mockSink := &mockAuditSink{}
		cache := accessService.NewMatrixCache(time.Minute)

		roleID := uuid.Must(uuid.NewV7())

		mockMatrixRepo.On("Get", ctx, roleID).
			Return(nil, accessDomain.ErrMatrixNotFound).
			Once()

		gate := NewAccessGate(mockMatrixRepo, cache, mockSink)
		matrix, err := gate.Grants(ctx, roleID)

		assert.NoError(t, err)
		assert.NotNil(t, matrix)
		assert.Empty(t, matrix.Areas)
		assert.Equal(t, roleID, matrix.RoleID)
	})
}
