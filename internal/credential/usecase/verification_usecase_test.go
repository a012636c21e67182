package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	credentialDomain "github.com/badgeops/badgeops/internal/credential/domain"
	apperrors "github.com/badgeops/badgeops/internal/errors"
)

func TestVerificationUseCase_Verify(t *testing.T) {
	ctx := context.Background()
	future := time.Now().UTC().Add(24 * time.Hour)

	t.Run("Success_ReturnsCurrentStatus", func(t *testing.T) {
		mockRepo := &mockCredentialRepository{}

		// The record was printed and later marked lost; verify reflects the
		// latest status, not a snapshot from issuance time.
		credential := storedCredential(credentialDomain.StatusLost, future)

		mockRepo.On("GetByVerifyCode", ctx, credential.VerifyCode).Return(credential, nil).Once()

		uc := NewVerificationUseCase(mockRepo)
		got, err := uc.Verify(ctx, credential.VerifyCode)

		require.NoError(t, err)
		assert.Equal(t, credential.ID, got.ID)
		assert.Equal(t, credentialDomain.StatusLost, got.Status)
	})

	t.Run("Success_OverdueRecordVerifiesAsExpired", func(t *testing.T) {
		mockRepo := &mockCredentialRepository{}

		past := time.Now().UTC().Add(-time.Hour)
		credential := storedCredential(credentialDomain.StatusPrinted, past)

		mockRepo.On("GetByVerifyCode", ctx, credential.VerifyCode).Return(credential, nil).Once()

		uc := NewVerificationUseCase(mockRepo)
		got, err := uc.Verify(ctx, credential.VerifyCode)

		require.NoError(t, err)
		assert.Equal(t, credentialDomain.StatusExpired, got.Status)
	})

	t.Run("NotFound_UnknownCode", func(t *testing.T) {
		mockRepo := &mockCredentialRepository{}

		mockRepo.On("GetByVerifyCode", ctx, "NOSUCHCODE").
			Return(nil, credentialDomain.ErrCredentialNotFound).
			Once()

		uc := NewVerificationUseCase(mockRepo)
		got, err := uc.Verify(ctx, "NOSUCHCODE")

		assert.ErrorIs(t, err, apperrors.ErrNotFound)
		assert.Nil(t, got)
	})

	t.Run("NotFound_EmptyCodeNeverHitsStorage", func(t *testing.T) {
		mockRepo := &mockCredentialRepository{}

		uc := NewVerificationUseCase(mockRepo)
		got, err := uc.Verify(ctx, "")

		assert.ErrorIs(t, err, apperrors.ErrNotFound)
		assert.Nil(t, got)
		mockRepo.AssertNotCalled(t, "GetByVerifyCode")
	})
}
