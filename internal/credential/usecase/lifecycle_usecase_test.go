package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	accessDomain "github.com/badgeops/badgeops/internal/access/domain"
	auditDomain "github.com/badgeops/badgeops/internal/audit/domain"
	"github.com/badgeops/badgeops/internal/config"
	credentialDomain "github.com/badgeops/badgeops/internal/credential/domain"
	apperrors "github.com/badgeops/badgeops/internal/errors"
)

// mockCredentialRepository is a mock implementation of CredentialRepository for testing.
type mockCredentialRepository struct {
	mock.Mock
}

func (m *mockCredentialRepository) Create(ctx context.Context, credential *credentialDomain.Credential) error {
	args := m.Called(ctx, credential)
	return args.Error(0)
}

func (m *mockCredentialRepository) Get(ctx context.Context, credentialID uuid.UUID) (*credentialDomain.Credential, error) {
	args := m.Called(ctx, credentialID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*credentialDomain.Credential), args.Error(1)
}

func (m *mockCredentialRepository) GetByVerifyCode(ctx context.Context, code string) (*credentialDomain.Credential, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*credentialDomain.Credential), args.Error(1)
}

func (m *mockCredentialRepository) List(
	ctx context.Context,
	offset, limit int,
	employeeID *uuid.UUID,
) ([]*credentialDomain.Credential, error) {
	args := m.Called(ctx, offset, limit, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*credentialDomain.Credential), args.Error(1)
}

func (m *mockCredentialRepository) SwapStatus(
	ctx context.Context,
	credentialID uuid.UUID,
	expected, next credentialDomain.Status,
	printedBy *uuid.UUID,
	at time.Time,
) (bool, error) {
	args := m.Called(ctx, credentialID, expected, next, printedBy, at)
	return args.Bool(0), args.Error(1)
}

func (m *mockCredentialRepository) Delete(ctx context.Context, credentialID uuid.UUID) error {
	args := m.Called(ctx, credentialID)
	return args.Error(0)
}

func (m *mockCredentialRepository) ExpireOverdue(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

// mockCodeService is a mock implementation of CodeService for testing.
type mockCodeService struct {
	mock.Mock
}

func (m *mockCodeService) GenerateCode() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}

// mockAccessGate is a mock implementation of the access gate for testing.
type mockAccessGate struct {
	mock.Mock
}

func (m *mockAccessGate) Authorize(
	ctx context.Context,
	actorID, roleID uuid.UUID,
	areaTitle string,
	action accessDomain.Action,
) error {
	args := m.Called(ctx, actorID, roleID, areaTitle, action)
	return args.Error(0)
}

func (m *mockAccessGate) Check(
	ctx context.Context,
	roleID uuid.UUID,
	areaTitle string,
	action accessDomain.Action,
) (bool, error) {
	args := m.Called(ctx, roleID, areaTitle, action)
	return args.Bool(0), args.Error(1)
}

func (m *mockAccessGate) Grants(ctx context.Context, roleID uuid.UUID) (*accessDomain.Matrix, error) {
	args := m.Called(ctx, roleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accessDomain.Matrix), args.Error(1)
}

// mockAuditSink captures recorded audit events for assertions.
type mockAuditSink struct {
	mock.Mock
}

func (m *mockAuditSink) Record(ctx context.Context, event *auditDomain.Event) {
	m.Called(ctx, event)
}

func testConfig() *config.Config {
	return &config.Config{
		CredentialValidity: 2 * 365 * 24 * time.Hour,
	}
}

func storedCredential(status credentialDomain.Status, expiresAt time.Time) *credentialDomain.Credential {
	now := time.Now().UTC().Add(-time.Hour)
	return &credentialDomain.Credential{
		ID:         uuid.Must(uuid.NewV7()),
		EmployeeID: uuid.Must(uuid.NewV7()),
		TemplateID: uuid.Must(uuid.NewV7()),
		VerifyCode: "JBSWY3DPEHPK3PXPJBSWY3DPEHPK3PXP",
		Status:     status,
		IssuedAt:   now,
		ExpiresAt:  expiresAt,
		CreatedBy:  uuid.Must(uuid.NewV7()),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func TestCredentialUseCase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_CreateWithGenerateGrant", func(t *testing.T) {
		mockRepo := &mockCredentialRepository{}
		mockCode := &mockCodeService{}
		mockGate := &mockAccessGate{}
		mockSink := &mockAuditSink{}

		actorID := uuid.Must(uuid.NewV7())
		roleID := uuid.Must(uuid.NewV7())
		input := &CreateCredentialInput{
			EmployeeID: uuid.Must(uuid.NewV7()),
			TemplateID: uuid.Must(uuid.NewV7()),
		}

		mockGate.On("Authorize", ctx, actorID, roleID, accessDomain.AreaCredentialIssuance, accessDomain.ActionGenerate).
			Return(nil).
			Once()
		mockCode.On("GenerateCode").
			Return("JBSWY3DPEHPK3PXPJBSWY3DPEHPK3PXP", nil).
			Once()
		mockRepo.On("Create", ctx, mock.MatchedBy(func(credential *credentialDomain.Credential) bool {
			return credential.ID != uuid.Nil &&
				credential.Status == credentialDomain.StatusCreated &&
				credential.VerifyCode != "" &&
				credential.CreatedBy == actorID &&
				credential.PrintedBy == nil &&
				credential.ExpiresAt.After(credential.IssuedAt)
		})).Return(nil).Once()
		mockSink.On("Record", ctx, mock.MatchedBy(func(event *auditDomain.Event) bool {
			return event.Outcome == auditDomain.OutcomeApplied && event.RecordID != nil
		})).Once()

		uc := NewCredentialUseCase(testConfig(), mockRepo, mockCode, mockGate, mockSink)
		credential, err := uc.Create(ctx, actorID, roleID, input)

		require.NoError(t, err)
		assert.Equal(t, credentialDomain.StatusCreated, credential.Status)
		mockRepo.AssertExpectations(t)
		mockGate.AssertExpectations(t)
		mockSink.AssertExpectations(t)
	})

	t.Run("Denied_WithoutGenerateGrant", func(t *testing.T) {
		mockRepo := &mockCredentialRepository{}
		mockCode := &mockCodeService{}
		mockGate := &mockAccessGate{}
		mockSink := &mockAuditSink{}

		actorID := uuid.Must(uuid.NewV7())
		roleID := uuid.Must(uuid.NewV7())

		mockGate.On("Authorize", ctx, actorID, roleID, accessDomain.AreaCredentialIssuance, accessDomain.ActionGenerate).
			Return(accessDomain.ErrActionNotPermitted).
			Once()

		uc := NewCredentialUseCase(testConfig(), mockRepo, mockCode, mockGate, mockSink)
		credential, err := uc.Create(ctx, actorID, roleID, &CreateCredentialInput{})

		assert.ErrorIs(t, err, apperrors.ErrForbidden)
		assert.Nil(t, credential)
		mockRepo.AssertNotCalled(t, "Create")
	})
}

func TestCredentialUseCase_RequestTransition(t *testing.T) {
	ctx := context.Background()
	future := time.Now().UTC().Add(24 * time.Hour)

	t.Run("Success_ApproveAdvancesToReadyToPrint", func(t *testing.T) {
		mockRepo := &mockCredentialRepository{}
		mockCode := &mockCodeService{}
		mockGate := &mockAccessGate{}
		mockSink := &mockAuditSink{}

		actorID := uuid.Must(uuid.NewV7())
		roleID := uuid.Must(uuid.NewV7())
		credential := storedCredential(credentialDomain.StatusCreated, future)

		mockRepo.On("Get", ctx, credential.ID).Return(credential, nil).Once()
		mockGate.On("Authorize", ctx, actorID, roleID, accessDomain.AreaCredentialIssuance, accessDomain.ActionApprove).
			Return(nil).
			Once()
		mockRepo.On("SwapStatus", ctx, credential.ID,
			credentialDomain.StatusCreated, credentialDomain.StatusReadyToPrint,
			(*uuid.UUID)(nil), mock.AnythingOfType("time.Time")).
			Return(true, nil).
			Once()
		mockSink.On("Record", ctx, mock.MatchedBy(func(event *auditDomain.Event) bool {
			return event.Outcome == auditDomain.OutcomeApplied &&
				event.Metadata["from"] == "created" &&
				event.Metadata["to"] == "ready_to_print"
		})).Once()

		uc := NewCredentialUseCase(testConfig(), mockRepo, mockCode, mockGate, mockSink)
		updated, err := uc.RequestTransition(ctx, actorID, roleID, credential.ID, credentialDomain.StatusReadyToPrint)

		require.NoError(t, err)
		assert.Equal(t, credentialDomain.StatusReadyToPrint, updated.Status)
		mockRepo.AssertExpectations(t)
		mockGate.AssertExpectations(t)
		mockSink.AssertExpectations(t)
	})

	t.Run("Denied_ApproveWithoutGrant", func(t *testing.T) {
		mockRepo := &mockCredentialRepository{}
		mockCode := &mockCodeService{}
		mockGate := &mockAccessGate{}
		mockSink := &mockAuditSink{}

		actorID := uuid.Must(uuid.NewV7())
		roleID := uuid.Must(uuid.NewV7())
		credential := storedCredential(credentialDomain.StatusCreated, future)

		mockRepo.On("Get", ctx, credential.ID).Return(credential, nil).Once()
		mockGate.On("Authorize", ctx, actorID, roleID, accessDomain.AreaCredentialIssuance, accessDomain.ActionApprove).
			Return(accessDomain.ErrActionNotPermitted).
			Once()

		uc := NewCredentialUseCase(testConfig(), mockRepo, mockCode, mockGate, mockSink)
		updated, err := uc.RequestTransition(ctx, actorID, roleID, credential.ID, credentialDomain.StatusReadyToPrint)

		// Denial is an authorization failure, never an invalid transition.
		assert.ErrorIs(t, err, apperrors.ErrForbidden)
		assert.NotErrorIs(t, err, apperrors.ErrInvalidTransition)
		assert.Nil(t, updated)
		mockRepo.AssertNotCalled(t, "SwapStatus")
	})

	t.Run("Success_PrintStampsPrinter", func(t *testing.T) {
		mockRepo := &mockCredentialRepository{}
		mockCode := &mockCodeService{}
		mockGate := &mockAccessGate{}
		mockSink := &mockAuditSink{}

		actorID := uuid.Must(uuid.NewV7())
		roleID := uuid.Must(uuid.NewV7())
		credential := storedCredential(credentialDomain.StatusReadyToPrint, future)

		mockRepo.On("Get", ctx, credential.ID).Return(credential, nil).Once()
		mockGate.On("Authorize", ctx, actorID, roleID, accessDomain.AreaCredentialIssuance, accessDomain.ActionEdit).
			Return(nil).
			Once()
		mockRepo.On("SwapStatus", ctx, credential.ID,
			credentialDomain.StatusReadyToPrint, credentialDomain.StatusPrinted,
			&actorID, mock.AnythingOfType("time.Time")).
			Return(true, nil).
			Once()
		mockSink.On("Record", ctx, mock.AnythingOfType("*domain.Event")).Once()

		uc := NewCredentialUseCase(testConfig(), mockRepo, mockCode, mockGate, mockSink)
		updated, err := uc.RequestTransition(ctx, actorID, roleID, credential.ID, credentialDomain.StatusPrinted)

		require.NoError(t, err)
		assert.Equal(t, credentialDomain.StatusPrinted, updated.Status)
		require.NotNil(t, updated.PrintedBy)
		assert.Equal(t, actorID, *updated.PrintedBy)
		assert.NotNil(t, updated.PrintedAt)
	})

	t.Run("InvalidTransition_SkippingStates", func(t *testing.T) {
		mockRepo := &mockCredentialRepository{}
		mockCode := &mockCodeService{}
		mockGate := &mockAccessGate{}
		mockSink := &mockAuditSink{}

		actorID := uuid.Must(uuid.NewV7())
		roleID := uuid.Must(uuid.NewV7())
		credential := storedCredential(credentialDomain.StatusCreated, future)

		mockRepo.On("Get", ctx, credential.ID).Return(credential, nil).Once()

		uc := NewCredentialUseCase(testConfig(), mockRepo, mockCode, mockGate, mockSink)
		// created -> printed skips ready_to_print: forbidden no matter what
		// the actor's grants are, so the gate is never consulted.
		updated, err := uc.RequestTransition(ctx, actorID, roleID, credential.ID, credentialDomain.StatusPrinted)

		assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)
		assert.Nil(t, updated)
		mockGate.AssertNotCalled(t, "Authorize")
	})

	t.Run("InvalidTransition_ExpiredRequestedDirectly", func(t *testing.T) {
		mockRepo := &mockCredentialRepository{}
		mockCode := &mockCodeService{}
		mockGate := &mockAccessGate{}
		mockSink := &mockAuditSink{}

		actorID := uuid.Must(uuid.NewV7())
		roleID := uuid.Must(uuid.NewV7())
		credential := storedCredential(credentialDomain.StatusPrinted, future)

		mockRepo.On("Get", ctx, credential.ID).Return(credential, nil).Once()

		uc := NewCredentialUseCase(testConfig(), mockRepo, mockCode, mockGate, mockSink)
		// Expiry is time-driven; requesting it as a transition is a table miss.
		updated, err := uc.RequestTransition(ctx, actorID, roleID, credential.ID, credentialDomain.StatusExpired)

		assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)
		assert.Nil(t, updated)
	})

	t.Run("InvalidTransition_LostRace", func(t *testing.T) {
		mockRepo := &mockCredentialRepository{}
		mockCode := &mockCodeService{}
		mockGate := &mockAccessGate{}
		mockSink := &mockAuditSink{}

		actorID := uuid.Must(uuid.NewV7())
		roleID := uuid.Must(uuid.NewV7())
		credential := storedCredential(credentialDomain.StatusReadyToPrint, future)

		mockRepo.On("Get", ctx, credential.ID).Return(credential, nil).Once()
		mockGate.On("Authorize", ctx, actorID, roleID, accessDomain.AreaCredentialIssuance, accessDomain.ActionEdit).
			Return(nil).
			Once()
		// A concurrent print already swapped the status; the CAS misses.
		mockRepo.On("SwapStatus", ctx, credential.ID,
			credentialDomain.StatusReadyToPrint, credentialDomain.StatusPrinted,
			&actorID, mock.AnythingOfType("time.Time")).
			Return(false, nil).
			Once()

		uc := NewCredentialUseCase(testConfig(), mockRepo, mockCode, mockGate, mockSink)
		updated, err := uc.RequestTransition(ctx, actorID, roleID, credential.ID, credentialDomain.StatusPrinted)

		assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)
		assert.Nil(t, updated)
		mockSink.AssertNotCalled(t, "Record")
	})

	t.Run("InvalidTransition_OverdueRecordMaterializedThenRejected", func(t *testing.T) {
		mockRepo := &mockCredentialRepository{}
		mockCode := &mockCodeService{}
		mockGate := &mockAccessGate{}
		mockSink := &mockAuditSink{}

		actorID := uuid.Must(uuid.NewV7())
		roleID := uuid.Must(uuid.NewV7())
		past := time.Now().UTC().Add(-24 * time.Hour)
		credential := storedCredential(credentialDomain.StatusPrinted, past)

		mockRepo.On("Get", ctx, credential.ID).Return(credential, nil).Once()
		// The expired status is persisted before the requested edge is evaluated.
		mockRepo.On("SwapStatus", ctx, credential.ID,
			credentialDomain.StatusPrinted, credentialDomain.StatusExpired,
			(*uuid.UUID)(nil), mock.AnythingOfType("time.Time")).
			Return(true, nil).
			Once()

		uc := NewCredentialUseCase(testConfig(), mockRepo, mockCode, mockGate, mockSink)
		updated, err := uc.RequestTransition(ctx, actorID, roleID, credential.ID, credentialDomain.StatusLost)

		assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)
		assert.Nil(t, updated)
		mockRepo.AssertExpectations(t)
		mockGate.AssertNotCalled(t, "Authorize")
	})

	t.Run("Error_UnknownTargetStatus", func(t *testing.T) {
		mockRepo := &mockCredentialRepository{}
		mockCode := &mockCodeService{}
		mockGate := &mockAccessGate{}
		mockSink := &mockAuditSink{}

		uc := NewCredentialUseCase(testConfig(), mockRepo, mockCode, mockGate, mockSink)
		updated, err := uc.RequestTransition(
			ctx,
			uuid.Must(uuid.NewV7()), uuid.Must(uuid.NewV7()),
			uuid.Must(uuid.NewV7()),
			credentialDomain.Status("shredded"),
		)

		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
		assert.Nil(t, updated)
		mockRepo.AssertNotCalled(t, "Get")
	})
}

func TestCredentialUseCase_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_OverdueRecordReadsExpired", func(t *testing.T) {
		mockRepo := &mockCredentialRepository{}
		mockCode := &mockCodeService{}
		mockGate := &mockAccessGate{}
		mockSink := &mockAuditSink{}

		past := time.Now().UTC().Add(-time.Hour)
		credential := storedCredential(credentialDomain.StatusPrinted, past)

		mockRepo.On("Get", ctx, credential.ID).Return(credential, nil).Once()

		uc := NewCredentialUseCase(testConfig(), mockRepo, mockCode, mockGate, mockSink)
		got, err := uc.Get(ctx, credential.ID)

		require.NoError(t, err)
		assert.Equal(t, credentialDomain.StatusExpired, got.Status)
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		mockRepo := &mockCredentialRepository{}
		mockCode := &mockCodeService{}
		mockGate := &mockAccessGate{}
		mockSink := &mockAuditSink{}

		credentialID := uuid.Must(uuid.NewV7())
		mockRepo.On("Get", ctx, credentialID).Return(nil, credentialDomain.ErrCredentialNotFound).Once()

		uc := NewCredentialUseCase(testConfig(), mockRepo, mockCode, mockGate, mockSink)
		got, err := uc.Get(ctx, credentialID)

		assert.ErrorIs(t, err, apperrors.ErrNotFound)
		assert.Nil(t, got)
	})
}

func TestCredentialUseCase_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("Denied_WithoutDeleteGrant", func(t *testing.T) {
		mockRepo := &mockCredentialRepository{}
		mockCode := &mockCodeService{}
		mockGate := &mockAccessGate{}
		mockSink := &mockAuditSink{}

		actorID := uuid.Must(uuid.NewV7())
		roleID := uuid.Must(uuid.NewV7())
		credentialID := uuid.Must(uuid.NewV7())

		mockGate.On("Authorize", ctx, actorID, roleID, accessDomain.AreaCredentialIssuance, accessDomain.ActionDelete).
			Return(accessDomain.ErrActionNotPermitted).
			Once()

		uc := NewCredentialUseCase(testConfig(), mockRepo, mockCode, mockGate, mockSink)
		err := uc.Delete(ctx, actorID, roleID, credentialID)

		assert.ErrorIs(t, err, apperrors.ErrForbidden)
		mockRepo.AssertNotCalled(t, "Delete")
	})
}
