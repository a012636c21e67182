// Package repository provides persistence implementations for the employee
// directory.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/badgeops/badgeops/internal/database"
	employeeDomain "github.com/badgeops/badgeops/internal/employee/domain"
	apperrors "github.com/badgeops/badgeops/internal/errors"
)

// PostgreSQLEmployeeRepository implements employee persistence for PostgreSQL.
type PostgreSQLEmployeeRepository struct {
	db *sql.DB
}

const pgEmployeeColumns = `id, name, email, department, job_title, is_active, created_at, updated_at`

func isPGUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "duplicate key") || strings.Contains(errMsg, "unique constraint")
}

func scanPGEmployee(row interface {
	Scan(dest ...any) error
}) (*employeeDomain.Employee, error) {
	var employee employeeDomain.Employee
	err := row.Scan(
		&employee.ID,
		&employee.Name,
		&employee.Email,
		&employee.Department,
		&employee.JobTitle,
		&employee.IsActive,
		&employee.CreatedAt,
		&employee.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

// Create inserts a new employee. Returns ErrEmployeeAlreadyExists on an email
// collision.
func (p *PostgreSQLEmployeeRepository) Create(ctx context.Context, employee *employeeDomain.Employee) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO employees (` + pgEmployeeColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := querier.ExecContext(
		ctx,
		query,
		employee.ID,
		employee.Name,
		employee.Email,
		employee.Department,
		employee.JobTitle,
		employee.IsActive,
		employee.CreatedAt,
		employee.UpdatedAt,
	)
	if err != nil {
		if isPGUniqueViolation(err) {
			return employeeDomain.ErrEmployeeAlreadyExists
		}
		return apperrors.Wrap(err, "failed to create employee")
	}
	return nil
}

// Get retrieves an employee by ID. Returns ErrEmployeeNotFound if not found.
func (p *PostgreSQLEmployeeRepository) Get(ctx context.Context, employeeID uuid.UUID) (*employeeDomain.Employee, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT ` + pgEmployeeColumns + ` FROM employees WHERE id = $1`

	employee, err := scanPGEmployee(querier.QueryRowContext(ctx, query, employeeID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, employeeDomain.ErrEmployeeNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get employee")
	}
	return employee, nil
}

// List retrieves employees ordered by name with pagination.
func (p *PostgreSQLEmployeeRepository) List(ctx context.Context, offset, limit int) ([]*employeeDomain.Employee, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT ` + pgEmployeeColumns + ` FROM employees ORDER BY name OFFSET $1 LIMIT $2`

	rows, err := querier.QueryContext(ctx, query, offset, limit)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list employees")
	}
	defer rows.Close()

	employees := []*employeeDomain.Employee{}
	for rows.Next() {
		employee, err := scanPGEmployee(rows)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan employee")
		}
		employees = append(employees, employee)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate employees")
	}

	return employees, nil
}

// Update modifies an existing employee.
func (p *PostgreSQLEmployeeRepository) Update(ctx context.Context, employee *employeeDomain.Employee) error {
	querier := database.GetTx(ctx, p.db)

	query := `UPDATE employees
			  SET name = $1, email = $2, department = $3, job_title = $4, is_active = $5, updated_at = $6
			  WHERE id = $7`

	_, err := querier.ExecContext(
		ctx,
		query,
		employee.Name,
		employee.Email,
		employee.Department,
		employee.JobTitle,
		employee.IsActive,
		employee.UpdatedAt,
		employee.ID,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to update employee")
	}
	return nil
}

// Delete removes an employee. Returns ErrEmployeeNotFound if the employee
// doesn't exist.
func (p *PostgreSQLEmployeeRepository) Delete(ctx context.Context, employeeID uuid.UUID) error {
	querier := database.GetTx(ctx, p.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM employees WHERE id = $1`, employeeID)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete employee")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to read affected rows")
	}
	if affected == 0 {
		return employeeDomain.ErrEmployeeNotFound
	}
	return nil
}

// NewPostgreSQLEmployeeRepository creates a new PostgreSQL employee repository.
func NewPostgreSQLEmployeeRepository(db *sql.DB) *PostgreSQLEmployeeRepository {
	return &PostgreSQLEmployeeRepository{db: db}
}
