// Package domain defines the employee directory model. Employees are the
// subjects ID cards are issued for; they never log in themselves.
package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/badgeops/badgeops/internal/errors"
)

// Employee represents a card subject in the directory.
type Employee struct {
	ID         uuid.UUID
	Name       string
	Email      string
	Department string
	JobTitle   string
	IsActive   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Employee directory errors.
var (
	// ErrEmployeeNotFound indicates the requested employee does not exist.
	ErrEmployeeNotFound = errors.Wrap(errors.ErrNotFound, "employee not found")

	// ErrEmployeeAlreadyExists indicates an employee with the same email already exists.
	ErrEmployeeAlreadyExists = errors.Wrap(errors.ErrConflict, "employee already exists")
)
