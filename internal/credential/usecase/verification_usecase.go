package usecase

import (
	"context"
	"time"

	credentialDomain "github.com/badgeops/badgeops/internal/credential/domain"
	apperrors "github.com/badgeops/badgeops/internal/errors"
)

// verificationUseCase implements the public verify-by-code lookup.
type verificationUseCase struct {
	credentialRepo CredentialRepository
}

// Verify resolves a verification code to its record with the current
// effective status. Every failure collapses to ErrCredentialNotFound so the
// unauthenticated surface leaks nothing about near-miss codes or purged
// records.
func (v *verificationUseCase) Verify(ctx context.Context, code string) (*credentialDomain.Credential, error) {
	if code == "" {
		return nil, credentialDomain.ErrCredentialNotFound
	}

	credential, err := v.credentialRepo.GetByVerifyCode(ctx, code)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrNotFound) {
			return nil, credentialDomain.ErrCredentialNotFound
		}
		return nil, err
	}

	credential.Status = credential.EffectiveStatus(time.Now().UTC())
	return credential, nil
}

// NewVerificationUseCase creates a VerificationUseCase with the provided repository.
func NewVerificationUseCase(credentialRepo CredentialRepository) VerificationUseCase {
	return &verificationUseCase{credentialRepo: credentialRepo}
}
