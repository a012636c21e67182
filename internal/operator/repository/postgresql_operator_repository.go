// Package repository provides persistence implementations for operators and
// login sessions.
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

// isPostgresUniqueViolation checks if the error is a PostgreSQL unique
// constraint violation.
func isPostgresUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	errMsg := strings.ToLower(err.Error())
	// PostgreSQL: "duplicate key value violates unique constraint" or "pq: duplicate key"
	return strings.Contains(errMsg, "duplicate key") || strings.Contains(errMsg, "unique constraint")
}

// PostgreSQLOperatorRepository implements operator persistence for PostgreSQL.
type PostgreSQLOperatorRepository struct {
	db *sql.DB
}

const pgOperatorColumns = `id, name, email, password, role_id, is_active, failed_attempts, locked_until,
	created_at, updated_at`

func scanPGOperator(row interface {
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
func (p *PostgreSQLOperatorRepository) Create(ctx context.Context, operator *operatorDomain.Operator) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO operators (` + pgOperatorColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := querier.ExecContext(
		ctx,
		query,
		operator.ID,
		operator.Name,
		operator.Email,
		operator.Password,
		operator.RoleID,
		operator.IsActive,
		operator.FailedAttempts,
		operator.LockedUntil,
		operator.CreatedAt,
		operator.UpdatedAt,
	)
	if err != nil {
		if isPostgresUniqueViolation(err) {
			return operatorDomain.ErrOperatorAlreadyExists
		}
		return apperrors.Wrap(err, "failed to create operator")
	}
	return nil
}

// Get retrieves an operator by ID. Returns ErrOperatorNotFound if not found.
func (p *PostgreSQLOperatorRepository) Get(ctx context.Context, operatorID uuid.UUID) (*operatorDomain.Operator, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT ` + pgOperatorColumns + ` FROM operators WHERE id = $1`

	operator, err := scanPGOperator(querier.QueryRowContext(ctx, query, operatorID))
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
func (p *PostgreSQLOperatorRepository) GetByEmail(ctx context.Context, email string) (*operatorDomain.Operator, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT ` + pgOperatorColumns + ` FROM operators WHERE email = $1`

	operator, err := scanPGOperator(querier.QueryRowContext(ctx, query, email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, operatorDomain.ErrOperatorNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get operator by email")
	}
	return operator, nil
}

// List retrieves operators ordered by name with pagination.
func (p *PostgreSQLOperatorRepository) List(ctx context.Context, offset, limit int) ([]*operatorDomain.Operator, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT ` + pgOperatorColumns + ` FROM operators ORDER BY name OFFSET $1 LIMIT $2`

	rows, err := querier.QueryContext(ctx, query, offset, limit)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list operators")
	}
	defer rows.Close()

	operators := []*operatorDomain.Operator{}
	for rows.Next() {
		operator, err := scanPGOperator(rows)
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
func (p *PostgreSQLOperatorRepository) Update(ctx context.Context, operator *operatorDomain.Operator) error {
	querier := database.GetTx(ctx, p.db)

	query := `UPDATE operators
			  SET name = $1, email = $2, password = $3, role_id = $4, is_active = $5, updated_at = $6
			  WHERE id = $7`

	_, err := querier.ExecContext(
		ctx,
		query,
		operator.Name,
		operator.Email,
		operator.Password,
		operator.RoleID,
		operator.IsActive,
		operator.UpdatedAt,
		operator.ID,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to update operator")
	}
	return nil
}

// UpdateLockState sets the failed-attempt counter and lockout expiry.
func (p *PostgreSQLOperatorRepository) UpdateLockState(
	ctx context.Context,
	operatorID uuid.UUID,
	failedAttempts int,
	lockedUntil *time.Time,
) error {
	querier := database.GetTx(ctx, p.db)

	query := `UPDATE operators SET failed_attempts = $1, locked_until = $2 WHERE id = $3`

	_, err := querier.ExecContext(ctx, query, failedAttempts, lockedUntil, operatorID)
	if err != nil {
		return apperrors.Wrap(err, "failed to update operator lock state")
	}
	return nil
}

// NewPostgreSQLOperatorRepository creates a new PostgreSQL operator repository.
func NewPostgreSQLOperatorRepository(db *sql.DB) *PostgreSQLOperatorRepository {
	return &PostgreSQLOperatorRepository{db: db}
}
