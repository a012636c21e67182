// Package repository provides persistence implementations for credential
// records.
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

func isPGUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "duplicate key") || strings.Contains(errMsg, "unique constraint")
}

// PostgreSQLCredentialRepository implements credential persistence for
// PostgreSQL. Uses native UUID types with transaction support via
// database.GetTx().
type PostgreSQLCredentialRepository struct {
	db *sql.DB
}

const pgCredentialColumns = `id, employee_id, template_id, verify_code, status, issued_at, expires_at,
	created_by, printed_by, printed_at, created_at, updated_at`

func scanPGCredential(row interface {
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
func (p *PostgreSQLCredentialRepository) Create(ctx context.Context, credential *credentialDomain.Credential) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO credentials (` + pgCredentialColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := querier.ExecContext(
		ctx,
		query,
		credential.ID,
		credential.EmployeeID,
		credential.TemplateID,
		credential.VerifyCode,
		credential.Status,
		credential.IssuedAt,
		credential.ExpiresAt,
		credential.CreatedBy,
		credential.PrintedBy,
		credential.PrintedAt,
		credential.CreatedAt,
		credential.UpdatedAt,
	)
	if err != nil {
		if isPGUniqueViolation(err) {
			return credentialDomain.ErrVerifyCodeConflict
		}
		return apperrors.Wrap(err, "failed to create credential")
	}
	return nil
}

// Get retrieves a credential by ID. Returns ErrCredentialNotFound if it
// doesn't exist.
func (p *PostgreSQLCredentialRepository) Get(ctx context.Context, credentialID uuid.UUID) (*credentialDomain.Credential, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT ` + pgCredentialColumns + ` FROM credentials WHERE id = $1`

	credential, err := scanPGCredential(querier.QueryRowContext(ctx, query, credentialID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, credentialDomain.ErrCredentialNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get credential")
	}
	return credential, nil
}

// GetByVerifyCode retrieves a credential by its verification code. Returns
// ErrCredentialNotFound for any code that does not resolve exactly.
func (p *PostgreSQLCredentialRepository) GetByVerifyCode(ctx context.Context, code string) (*credentialDomain.Credential, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT ` + pgCredentialColumns + ` FROM credentials WHERE verify_code = $1`

	credential, err := scanPGCredential(querier.QueryRowContext(ctx, query, code))
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
func (p *PostgreSQLCredentialRepository) List(
	ctx context.Context,
	offset, limit int,
	employeeID *uuid.UUID,
) ([]*credentialDomain.Credential, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT ` + pgCredentialColumns + `
			  FROM credentials
			  WHERE ($1::uuid IS NULL OR employee_id = $1)
			  ORDER BY created_at DESC
			  OFFSET $2 LIMIT $3`

	rows, err := querier.QueryContext(ctx, query, employeeID, offset, limit)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list credentials")
	}
	defer rows.Close()

	credentials := []*credentialDomain.Credential{}
	for rows.Next() {
		credential, err := scanPGCredential(rows)
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
// status, returning false when the compare-and-swap loses. PrintedBy stamps
// the printer when the swap reaches printed; it is ignored otherwise.
func (p *PostgreSQLCredentialRepository) SwapStatus(
	ctx context.Context,
	credentialID uuid.UUID,
	expected, next credentialDomain.Status,
	printedBy *uuid.UUID,
	at time.Time,
) (bool, error) {
	querier := database.GetTx(ctx, p.db)

	var query string
	var args []any
	if next == credentialDomain.StatusPrinted {
		query = `UPDATE credentials
				 SET status = $1, printed_by = $2, printed_at = $3, updated_at = $3
				 WHERE id = $4 AND status = $5`
		args = []any{next, printedBy, at, credentialID, expected}
	} else {
		query = `UPDATE credentials
				 SET status = $1, updated_at = $2
				 WHERE id = $3 AND status = $4`
		args = []any{next, at, credentialID, expected}
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

// Delete removes a credential record. This is the separately gated hard
// removal, not a lifecycle transition. Returns ErrCredentialNotFound if the
// record doesn't exist.
func (p *PostgreSQLCredentialRepository) Delete(ctx context.Context, credentialID uuid.UUID) error {
	querier := database.GetTx(ctx, p.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM credentials WHERE id = $1`, credentialID)
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
func (p *PostgreSQLCredentialRepository) ExpireOverdue(ctx context.Context, now time.Time) (int64, error) {
	querier := database.GetTx(ctx, p.db)

	query := `UPDATE credentials
			  SET status = $1, updated_at = $2
			  WHERE status IN ($3, $4, $5) AND expires_at < $2`

	result, err := querier.ExecContext(
		ctx,
		query,
		credentialDomain.StatusExpired,
		now,
		credentialDomain.StatusCreated,
		credentialDomain.StatusReadyToPrint,
		credentialDomain.StatusPrinted,
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

// NewPostgreSQLCredentialRepository creates a new PostgreSQL credential repository.
func NewPostgreSQLCredentialRepository(db *sql.DB) *PostgreSQLCredentialRepository {
	return &PostgreSQLCredentialRepository{db: db}
}
