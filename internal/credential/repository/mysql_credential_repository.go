package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	credentialDomain "github.com/badgeops/badgeops/internal/credential/domain"
	"github.com/badgeops/badgeops/internal/database"
	apperrors "github.com/badgeops/badgeops/internal/errors"
)

func isMySQLUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	errMsg := strings.ToLower(err.Error())
	// MySQL: "Error 1062: Duplicate entry"
	return strings.Contains(errMsg, "duplicate entry") || strings.Contains(errMsg, "1062")
}

// MySQLCredentialRepository implements credential persistence for MySQL.
// UUIDs are stored as CHAR(36) strings.
type MySQLCredentialRepository struct {
	db *sql.DB
}

const mysqlCredentialColumns = `id, employee_id, template_id, verify_code, status, issued_at, expires_at,
	created_by, printed_by, printed_at, created_at, updated_at`

func scanMySQLCredential(row interface {
	Scan(dest ...any) error
}) (*credentialDomain.Credential, error) {
	var credential credentialDomain.Credential
	var printedBy uuid.NullUUID
	var printedAt sql.NullTime

	err := row.Scan(
		&credential.ID,
		&credential.EmployeeID,
		&credential.TemplateID,
		&credential.VerifyCode,
		&credential.Status,
		&credential.IssuedAt,
		&credential.ExpiresAt,
		&credential.CreatedBy,
		&printedBy,
		&printedAt,
		&credential.CreatedAt,
		&credential.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if printedBy.Valid {
		credential.PrintedBy = &printedBy.UUID
	}
	if printedAt.Valid {
		credential.PrintedAt = &printedAt.Time
	}
	return &credential, nil
}

// Create inserts a new credential record. Returns ErrVerifyCodeConflict if
// the verification code collides with an existing record.
func (m *MySQLCredentialRepository) Create(ctx context.Context, credential *credentialDomain.Credential) error {
	querier := database.GetTx(ctx, m.db)

	query := `INSERT INTO credentials (` + mysqlCredentialColumns + `)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	var printedBy *string
	if credential.PrintedBy != nil {
		s := credential.PrintedBy.String()
		printedBy = &s
	}

	_, err := querier.ExecContext(
		ctx,
		query,
		credential.ID.String(),
		credential.EmployeeID.String(),
		credential.TemplateID.String(),
		credential.VerifyCode,
		credential.Status,
		credential.IssuedAt,
		credential.ExpiresAt,
		credential.CreatedBy.String(),
		printedBy,
		credential.PrintedAt,
		credential.CreatedAt,
		credential.UpdatedAt,
	)
	if err != nil {
		if isMySQLUniqueViolation(err) {
			return credentialDomain.ErrVerifyCodeConflict
		}
		return apperrors.Wrap(err, "failed to create credential")
	}
	return nil
}

// Get retrieves a credential by ID. Returns ErrCredentialNotFound if it
// doesn't exist.
func (m *MySQLCredentialRepository) Get(ctx context.Context, credentialID uuid.UUID) (*credentialDomain.Credential, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT ` + mysqlCredentialColumns + ` FROM credentials WHERE id = ?`

	credential, err := scanMySQLCredential(querier.QueryRowContext(ctx, query, credentialID.String()))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, credentialDomain.ErrCredentialNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get credential")
	}
	return credential, nil
}

// GetByVerifyCode retrieves a credential by its verification code.
func (m *MySQLCredentialRepository) GetByVerifyCode(ctx context.Context, code string) (*credentialDomain.Credential, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT ` + mysqlCredentialColumns + ` FROM credentials WHERE verify_code = ?`

	credential, err := scanMySQLCredential(querier.QueryRowContext(ctx, query, code))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, credentialDomain.ErrCredentialNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get credential by code")
	}
	return credential, nil
}

// List retrieves credentials ordered by created_at descending with pagination
// and an optional employee filter.
func (m *MySQLCredentialRepository) List(
	ctx context.Context,
	offset, limit int,
	employeeID *uuid.UUID,
) ([]*credentialDomain.Credential, error) {
	querier := database.GetTx(ctx, m.db)

	var employeeFilter *string
	if employeeID != nil {
		s := employeeID.String()
		employeeFilter = &s
	}

	query := `SELECT ` + mysqlCredentialColumns + `
			  FROM credentials
			  WHERE (? IS NULL OR employee_id = ?)
			  ORDER BY created_at DESC
			  LIMIT ? OFFSET ?`

	rows, err := querier.QueryContext(ctx, query, employeeFilter, employeeFilter, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list credentials")
	}
	defer rows.Close()

	credentials := []*credentialDomain.Credential{}
	for rows.Next() {
		credential, err := scanMySQLCredential(rows)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan credential")
		}
		credentials = append(credentials, credential)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate credentials")
	}

	return credentials, nil
}

// SwapStatus updates the record's status only if it still holds the expected
// status, returning false when the compare-and-swap loses.
func (m *MySQLCredentialRepository) SwapStatus(
	ctx context.Context,
	credentialID uuid.UUID,
	expected, next credentialDomain.Status,
	printedBy *uuid.UUID,
	at time.Time,
) (bool, error) {
	querier := database.GetTx(ctx, m.db)

	var query string
	var args []any
	if next == credentialDomain.StatusPrinted {
		var printer *string
		if printedBy != nil {
			s := printedBy.String()
			printer = &s
		}
		query = `UPDATE credentials
				 SET status = ?, printed_by = ?, printed_at = ?, updated_at = ?
				 WHERE id = ? AND status = ?`
		args = []any{next, printer, at, at, credentialID.String(), expected}
	} else {
		query = `UPDATE credentials
				 SET status = ?, updated_at = ?
				 WHERE id = ? AND status = ?`
		args = []any{next, at, credentialID.String(), expected}
	}

	result, err := querier.ExecContext(ctx, query, args...)
	if err != nil {
		return false, apperrors.Wrap(err, "failed to swap credential status")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, apperrors.Wrap(err, "failed to read affected rows")
	}
	return affected == 1, nil
}

// Delete removes a credential record. Returns ErrCredentialNotFound if the
// record doesn't exist.
func (m *MySQLCredentialRepository) Delete(ctx context.Context, credentialID uuid.UUID) error {
	querier := database.GetTx(ctx, m.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM credentials WHERE id = ?`, credentialID.String())
	if err != nil {
		return apperrors.Wrap(err, "failed to delete credential")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to read affected rows")
	}
	if affected == 0 {
		return credentialDomain.ErrCredentialNotFound
	}
	return nil
}

// ExpireOverdue materializes expired status for every non-terminal record
// whose expiry date has passed, returning the number updated. Idempotent.
func (m *MySQLCredentialRepository) ExpireOverdue(ctx context.Context, now time.Time) (int64, error) {
	querier := database.GetTx(ctx, m.db)

	query := `UPDATE credentials
			  SET status = ?, updated_at = ?
			  WHERE status IN (?, ?, ?) AND expires_at < ?`

	result, err := querier.ExecContext(
		ctx,
		query,
		credentialDomain.StatusExpired,
		now,
		credentialDomain.StatusCreated,
		credentialDomain.StatusReadyToPrint,
		credentialDomain.StatusPrinted,
		now,
	)
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to expire credentials")
	}

	expired, err := result.RowsAffected()
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to read affected rows")
	}
	return expired, nil
}

// NewMySQLCredentialRepository creates a new MySQL credential repository.
func NewMySQLCredentialRepository(db *sql.DB) *MySQLCredentialRepository {
	return &MySQLCredentialRepository{db: db}
}
