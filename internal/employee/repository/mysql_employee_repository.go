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

// MySQLEmployeeRepository implements employee persistence for MySQL.
// UUIDs are stored as CHAR(36) strings.
type MySQLEmployeeRepository struct {
	db *sql.DB
}

const mysqlEmployeeColumns = `id, name, email, department, job_title, is_active, created_at, updated_at`

func isMySQLDuplicate(err error) bool {
	if err == nil {
		return false
	}
	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "duplicate entry") || strings.Contains(errMsg, "1062")
}

func scanMySQLEmployee(row interface {
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
func (m *MySQLEmployeeRepository) Create(ctx context.Context, employee *employeeDomain.Employee) error {
	querier := database.GetTx(ctx, m.db)

	query := `INSERT INTO employees (` + mysqlEmployeeColumns + `)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := querier.ExecContext(
		ctx,
		query,
		employee.ID.String(),
		employee.Name,
		employee.Email,
		employee.Department,
		employee.JobTitle,
		employee.IsActive,
		employee.CreatedAt,
		employee.UpdatedAt,
	)
	if err != nil {
		if isMySQLDuplicate(err) {
			return employeeDomain.ErrEmployeeAlreadyExists
		}
		return apperrors.Wrap(err, "failed to create employee")
	}
	return nil
}

// Get retrieves an employee by ID. Returns ErrEmployeeNotFound if not found.
func (m *MySQLEmployeeRepository) Get(ctx context.Context, employeeID uuid.UUID) (*employeeDomain.Employee, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT ` + mysqlEmployeeColumns + ` FROM employees WHERE id = ?`

	employee, err := scanMySQLEmployee(querier.QueryRowContext(ctx, query, employeeID.String()))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, employeeDomain.ErrEmployeeNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get employee")
	}
	return employee, nil
}

// List retrieves employees ordered by name with pagination.
func (m *MySQLEmployeeRepository) List(ctx context.Context, offset, limit int) ([]*employeeDomain.Employee, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT ` + mysqlEmployeeColumns + ` FROM employees ORDER BY name LIMIT ? OFFSET ?`

	rows, err := querier.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list employees")
	}
	defer rows.Close()

	employees := []*employeeDomain.Employee{}
	for rows.Next() {
		employee, err := scanMySQLEmployee(rows)
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
func (m *MySQLEmployeeRepository) Update(ctx context.Context, employee *employeeDomain.Employee) error {
	querier := database.GetTx(ctx, m.db)

	query := `UPDATE employees
			  SET name = ?, email = ?, department = ?, job_title = ?, is_active = ?, updated_at = ?
			  WHERE id = ?`

	_, err := querier.ExecContext(
		ctx,
		query,
		employee.Name,
		employee.Email,
		employee.Department,
		employee.JobTitle,
		employee.IsActive,
		employee.UpdatedAt,
		employee.ID.String(),
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to update employee")
	}
	return nil
}

// Delete removes an employee. Returns ErrEmployeeNotFound if the employee
// doesn't exist.
func (m *MySQLEmployeeRepository) Delete(ctx context.Context, employeeID uuid.UUID) error {
	querier := database.GetTx(ctx, m.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM employees WHERE id = ?`, employeeID.String())
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

// NewMySQLEmployeeRepository creates a new MySQL employee repository.
func NewMySQLEmployeeRepository(db *sql.DB) *MySQLEmployeeRepository {
	return &MySQLEmployeeRepository{db: db}
}
