package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/badgeops/badgeops/internal/config"
	apperrors "github.com/badgeops/badgeops/internal/errors"
	operatorDomain "github.com/badgeops/badgeops/internal/operator/domain"
	operatorService "github.com/badgeops/badgeops/internal/operator/service"
)

// sessionUseCase implements SessionUseCase.
type sessionUseCase struct {
	cfg             *config.Config
	operatorRepo    OperatorRepository
	sessionRepo     SessionRepository
	passwordService operatorService.PasswordService
	tokenService    operatorService.SessionTokenService
}

// Login authenticates an operator and issues a new session.
//
// Failed attempts count toward a lockout: after LockoutMaxAttempts
// consecutive failures the account locks for LockoutDuration. An unknown
// email and a wrong password both return ErrInvalidCredentials so the
// response never confirms which half was wrong.
func (s *sessionUseCase) Login(ctx context.Context, email, password string) (*LoginOutput, error) {
	operator, err := s.operatorRepo.GetByEmail(ctx, email)
	if err != nil {
		if apperrors.Is(err, operatorDomain.ErrOperatorNotFound) {
			return nil, operatorDomain.ErrInvalidCredentials
		}
		return nil, err
	}

	now := time.Now().UTC()

	if operator.Locked(now) {
		return nil, operatorDomain.ErrOperatorLocked
	}

	if !operator.IsActive {
		return nil, operatorDomain.ErrOperatorInactive
	}

	if !s.passwordService.ComparePassword(password, operator.Password) {
		failedAttempts := operator.FailedAttempts + 1
		var lockedUntil *time.Time
		if failedAttempts >= s.cfg.LockoutMaxAttempts {
			until := now.Add(s.cfg.LockoutDuration)
			lockedUntil = &until
		}
		// Lock-state bookkeeping is best-effort: the login already failed.
		_ = s.operatorRepo.UpdateLockState(ctx, operator.ID, failedAttempts, lockedUntil)

		if lockedUntil != nil {
			return nil, operatorDomain.ErrOperatorLocked
		}
		return nil, operatorDomain.ErrInvalidCredentials
	}

	// A successful login resets the failure counter.
	if operator.FailedAttempts > 0 || operator.LockedUntil != nil {
		if err := s.operatorRepo.UpdateLockState(ctx, operator.ID, 0, nil); err != nil {
			return nil, err
		}
	}

	plainToken, tokenHash, err := s.tokenService.GenerateToken()
	if err != nil {
		return nil, err
	}

	session := &operatorDomain.Session{
		ID:         uuid.Must(uuid.NewV7()),
		TokenHash:  tokenHash,
		OperatorID: operator.ID,
		ExpiresAt:  now.Add(s.cfg.SessionTokenExpiration),
		CreatedAt:  now,
	}

	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, err
	}

	return &LoginOutput{
		Operator:   operator,
		PlainToken: plainToken,
		ExpiresAt:  session.ExpiresAt,
	}, nil
}

// Authenticate resolves a plain session token to its active operator.
// Every failure collapses to ErrInvalidCredentials to prevent enumeration.
func (s *sessionUseCase) Authenticate(ctx context.Context, plainToken string) (*operatorDomain.Operator, error) {
	session, err := s.sessionRepo.GetByTokenHash(ctx, s.tokenService.HashToken(plainToken))
	if err != nil {
		if apperrors.Is(err, operatorDomain.ErrSessionNotFound) {
			return nil, operatorDomain.ErrInvalidCredentials
		}
		return nil, err
	}

	now := time.Now().UTC()
	if !session.Usable(now) {
		return nil, operatorDomain.ErrInvalidCredentials
	}

	operator, err := s.operatorRepo.Get(ctx, session.OperatorID)
	if err != nil {
		if apperrors.Is(err, operatorDomain.ErrOperatorNotFound) {
			return nil, operatorDomain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !operator.IsActive {
		return nil, operatorDomain.ErrOperatorInactive
	}

	return operator, nil
}

// Logout revokes the session behind a plain token. Revoking a token that
// never resolved is not an error.
func (s *sessionUseCase) Logout(ctx context.Context, plainToken string) error {
	return s.sessionRepo.Revoke(ctx, s.tokenService.HashToken(plainToken), time.Now().UTC())
}

// NewSessionUseCase creates a SessionUseCase with the provided dependencies.
func NewSessionUseCase(
	cfg *config.Config,
	operatorRepo OperatorRepository,
	sessionRepo SessionRepository,
	passwordService operatorService.PasswordService,
	tokenService operatorService.SessionTokenService,
) SessionUseCase {
	return &sessionUseCase{
		cfg:             cfg,
		operatorRepo:    operatorRepo,
		sessionRepo:     sessionRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
	}
}
