// Package usecase implements business logic orchestration for operator
// accounts and sessions.
package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	operatorDomain "github.com/badgeops/badgeops/internal/operator/domain"
	operatorService "github.com/badgeops/badgeops/internal/operator/service"
)

// operatorUseCase implements OperatorUseCase.
type operatorUseCase struct {
	operatorRepo    OperatorRepository
	passwordService operatorService.PasswordService
}

// Create creates a new operator with a hashed password.
func (o *operatorUseCase) Create(ctx context.Context, input *CreateOperatorInput) (*operatorDomain.Operator, error) {
	hashedPassword, err := o.passwordService.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	operator := &operatorDomain.Operator{
		ID:        uuid.Must(uuid.NewV7()),
		Name:      input.Name,
		Email:     input.Email,
		Password:  hashedPassword,
		RoleID:    input.RoleID,
		IsActive:  input.IsActive,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := o.operatorRepo.Create(ctx, operator); err != nil {
		return nil, err
	}
	return operator, nil
}

// Get retrieves an operator by ID.
func (o *operatorUseCase) Get(ctx context.Context, operatorID uuid.UUID) (*operatorDomain.Operator, error) {
	return o.operatorRepo.Get(ctx, operatorID)
}

// List retrieves operators ordered by name with pagination.
func (o *operatorUseCase) List(ctx context.Context, offset, limit int) ([]*operatorDomain.Operator, error) {
	return o.operatorRepo.List(ctx, offset, limit)
}

// Update modifies an operator's account fields. An empty password keeps the
// stored hash.
func (o *operatorUseCase) Update(
	ctx context.Context,
	operatorID uuid.UUID,
	input *UpdateOperatorInput,
) (*operatorDomain.Operator, error) {
	operator, err := o.operatorRepo.Get(ctx, operatorID)
	if err != nil {
		return nil, err
	}

	operator.Name = input.Name
	operator.Email = input.Email
	operator.RoleID = input.RoleID
	operator.IsActive = input.IsActive
	operator.UpdatedAt = time.Now().UTC()

	if input.Password != "" {
		hashedPassword, err := o.passwordService.HashPassword(input.Password)
		if err != nil {
			return nil, err
		}
		operator.Password = hashedPassword
	}

	if err := o.operatorRepo.Update(ctx, operator); err != nil {
		return nil, err
	}
	return operator, nil
}

// Deactivate performs a soft delete by setting IsActive to false, preventing
// login while preserving the account for audit history.
func (o *operatorUseCase) Deactivate(ctx context.Context, operatorID uuid.UUID) error {
	operator, err := o.operatorRepo.Get(ctx, operatorID)
	if err != nil {
		return err
	}

	operator.IsActive = false
	operator.UpdatedAt = time.Now().UTC()

	return o.operatorRepo.Update(ctx, operator)
}

// Unlock clears the lockout state for an operator.
func (o *operatorUseCase) Unlock(ctx context.Context, operatorID uuid.UUID) error {
	if _, err := o.operatorRepo.Get(ctx, operatorID); err != nil {
		return err
	}
	return o.operatorRepo.UpdateLockState(ctx, operatorID, 0, nil)
}

// NewOperatorUseCase creates an OperatorUseCase with the provided dependencies.
func NewOperatorUseCase(
	operatorRepo OperatorRepository,
	passwordService operatorService.PasswordService,
) OperatorUseCase {
	return &operatorUseCase{
		operatorRepo:    operatorRepo,
		passwordService: passwordService,
	}
}
