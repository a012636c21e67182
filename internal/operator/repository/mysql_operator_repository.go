package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/badgeops/badgeops/internal/database"
	apperrors "github.com/badgeops/badgeops/internal/errors"
	operatorDomain "github.com/badgeops/badgeops/internal/operator/domain"
)

// MySQLOperatorRepository implements operator persistence for MySQL.
// UUIDs are stored as CHAR(36) strings.
type MySQLOperatorRepository struct {
	db *sql.DB
}

const mysqlOperatorColumns = `id, name, email, password, role_id, is_active, failed_attempts, locked_until,
	created_at, updated_at`

// isMySQLUniqueViolation checks if the error is a MySQL unique constraint violation.
func isMySQLUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	errMsg := strings.ToLower(err.Error())
	// MySQL: "Error 1062: Duplicate entry"
	return strings.Contains(errMsg, "duplicate entry") || strings.Contains(errMsg, "1062")
}

func scanMySQLOperator(row interface {
	Scan(dest ...any) error
}) (*operatorDomain.Operator, error) {
	var operator operatorDomain.Operator
	var lockedUntil sql.NullTime

	err := row.Scan(
		&operator.ID,
		&operator.Name,
		&operator.Email,
		&operator.Password,
		&operator.RoleID,
		&operator.IsActive,
		&operator.FailedAttempts,
		&lockedUntil,
		&operator.CreatedAt,
		&operator.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if lockedUntil.Valid {
		operator.LockedUntil = &lockedUntil.Time
	}
	return &operator, nil
}

// Create inserts a new operator. Returns ErrOperatorAlreadyExists on an email
// collision.
func (m *MySQLOperatorRepository) Create(ctx context.Context, operator *operatorDomain.Operator) error {
	querier := database.GetTx(ctx, m.db)

	query := `INSERT INTO operators (` + mysqlOperatorColumns + `)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := querier.ExecContext(
		ctx,
		query,
		operator.ID.String(),
		operator.Name,
		operator.Email,
		operator.Password,
		operator.RoleID.String(),
		operator.IsActive,
		operator.FailedAttempts,
		operator.LockedUntil,
		operator.CreatedAt,
		operator.UpdatedAt,
	)
	if err != nil {
		if isMySQLUniqueViolation(err) {
			return operatorDomain.ErrOperatorAlreadyExists
		}
		return apperrors.Wrap(err, "failed to create operator")
	}
	return nil
}

// Get retrieves an operator by ID. Returns ErrOperatorNotFound if not found.
func (m *MySQLOperatorRepository) Get(ctx context.Context, operatorID uuid.UUID) (*operatorDomain.Operator, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT ` + mysqlOperatorColumns + ` FROM operators WHERE id = ?`

	operator, err := scanMySQLOperator(querier.QueryRowContext(ctx, query, operatorID.String()))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, operatorDomain.ErrOperatorNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get operator")
	}
	return operator, nil
}

// GetByEmail retrieves an operator by email. Returns ErrOperatorNotFound if
// not found.
func (m *MySQLOperatorRepository) GetByEmail(ctx context.Context, email string) (*operatorDomain.Operator, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT ` + mysqlOperatorColumns + ` FROM operators WHERE email = ?`

	operator, err := scanMySQLOperator(querier.QueryRowContext(ctx, query, email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, operatorDomain.ErrOperatorNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get operator by email")
	}
	return operator, nil
}

// List retrieves operators ordered by name with pagination.
func (m *MySQLOperatorRepository) List(ctx context.Context, offset, limit int) ([]*operatorDomain.Operator, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT ` + mysqlOperatorColumns + ` FROM operators ORDER BY name LIMIT ? OFFSET ?`

	rows, err := querier.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list operators")
	}
	defer rows.Close()

	operators := []*operatorDomain.Operator{}
	for rows.Next() {
		operator, err := scanMySQLOperator(rows)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan operator")
		}
		operators = append(operators, operator)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate operators")
	}

	return operators, nil
}

// Update modifies an existing operator's mutable fields.
func (m *MySQLOperatorRepository) Update(ctx context.Context, operator *operatorDomain.Operator) error {
	querier := database.GetTx(ctx, m.db)

	query := `UPDATE operators
			  SET name = ?, email = ?, password = ?, role_id = ?, is_active = ?, updated_at = ?
			  WHERE id = ?`

	_, err := querier.ExecContext(
		ctx,
		query,
		operator.Name,
		operator.Email,
		operator.Password,
		operator.RoleID.String(),
		operator.IsActive,
		operator.UpdatedAt,
		operator.ID.String(),
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to update operator")
	}
	return nil
}

// UpdateLockState sets the failed-attempt counter and lockout expiry.
func (m *MySQLOperatorRepository) UpdateLockState(
	ctx context.Context,
	operatorID uuid.UUID,
	failedAttempts int,
	lockedUntil *time.Time,
) error {
	querier := database.GetTx(ctx, m.db)

	query := `UPDATE operators SET failed_attempts = ?, locked_until = ? WHERE id = ?`

	_, err := querier.ExecContext(ctx, query, failedAttempts, lockedUntil, operatorID.String())
	if err != nil {
		return apperrors.Wrap(err, "failed to update operator lock state")
	}
	return nil
}

// NewMySQLOperatorRepository creates a new MySQL operator repository.
func NewMySQLOperatorRepository(db *sql.DB) *MySQLOperatorRepository {
	return &MySQLOperatorRepository{db: db}
}
