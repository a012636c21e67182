// Package usecase implements business logic for the employee directory.
package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	employeeDomain "github.com/badgeops/badgeops/internal/employee/domain"
)

// EmployeeRepository defines persistence operations for employees.
// Implementations must support transaction-aware operations via context propagation.
type EmployeeRepository interface {
	// Create stores a new employee. Returns ErrEmployeeAlreadyExists on an
	// email collision.
	Create(ctx context.Context, employee *employeeDomain.Employee) error

	// Get retrieves an employee by ID. Returns ErrEmployeeNotFound if not found.
	Get(ctx context.Context, employeeID uuid.UUID) (*employeeDomain.Employee, error)

	// List retrieves employees ordered by name with pagination.
	List(ctx context.Context, offset, limit int) ([]*employeeDomain.Employee, error)

	// Update modifies an existing employee.
	Update(ctx context.Context, employee *employeeDomain.Employee) error

	// Delete removes an employee.
	Delete(ctx context.Context, employeeID uuid.UUID) error
}

// CreateEmployeeInput carries the request to add a directory entry.
type CreateEmployeeInput struct {
	Name       string
	Email      string
	Department string
	JobTitle   string
}

// UpdateEmployeeInput carries the request to update a directory entry.
type UpdateEmployeeInput struct {
	Name       string
	Email      string
	Department string
	JobTitle   string
	IsActive   bool
}

// EmployeeUseCase defines directory operations. Authorization happens at the
// HTTP layer against the employee-management area.
type EmployeeUseCase interface {
	Create(ctx context.Context, input *CreateEmployeeInput) (*employeeDomain.Employee, error)
	Get(ctx context.Context, employeeID uuid.UUID) (*employeeDomain.Employee, error)
	List(ctx context.Context, offset, limit int) ([]*employeeDomain.Employee, error)
	Update(ctx context.Context, employeeID uuid.UUID, input *UpdateEmployeeInput) (*employeeDomain.Employee, error)
	Delete(ctx context.Context, employeeID uuid.UUID) error
}

// employeeUseCase implements EmployeeUseCase.
type employeeUseCase struct {
	employeeRepo EmployeeRepository
}

// Create adds a new directory entry, active by default.
func (e *employeeUseCase) Create(ctx context.Context, input *CreateEmployeeInput) (*employeeDomain.Employee, error) {
	now := time.Now().UTC()
	employee := &employeeDomain.Employee{
		ID:         uuid.Must(uuid.NewV7()),
		Name:       input.Name,
		Email:      input.Email,
		Department: input.Department,
		JobTitle:   input.JobTitle,
		IsActive:   true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := e.employeeRepo.Create(ctx, employee); err != nil {
		return nil, err
	}
	return employee, nil
}

// Get retrieves an employee by ID.
func (e *employeeUseCase) Get(ctx context.Context, employeeID uuid.UUID) (*employeeDomain.Employee, error) {
	return e.employeeRepo.Get(ctx, employeeID)
}

// List retrieves employees ordered by name with pagination.
func (e *employeeUseCase) List(ctx context.Context, offset, limit int) ([]*employeeDomain.Employee, error) {
	return e.employeeRepo.List(ctx, offset, limit)
}

// Update modifies a directory entry.
func (e *employeeUseCase) Update(
	ctx context.Context,
	employeeID uuid.UUID,
	input *UpdateEmployeeInput,
) (*employeeDomain.Employee, error) {
	employee, err := e.employeeRepo.Get(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	employee.Name = input.Name
	employee.Email = input.Email
	employee.Department = input.Department
	employee.JobTitle = input.JobTitle
	employee.IsActive = input.IsActive
	employee.UpdatedAt = time.Now().UTC()

	if err := e.employeeRepo.Update(ctx, employee); err != nil {
		return nil, err
	}
	return employee, nil
}

// Delete removes a directory entry.
func (e *employeeUseCase) Delete(ctx context.Context, employeeID uuid.UUID) error {
	return e.employeeRepo.Delete(ctx, employeeID)
}

// NewEmployeeUseCase creates an EmployeeUseCase with the provided repository.
func NewEmployeeUseCase(employeeRepo EmployeeRepository) EmployeeUseCase {
	return &employeeUseCase{employeeRepo: employeeRepo}
}
