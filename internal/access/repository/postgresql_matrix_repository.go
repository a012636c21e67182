package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/google/uuid"

	accessDomain "github.com/badgeops/badgeops/internal/access/domain"
	"github.com/badgeops/badgeops/internal/database"
	apperrors "github.com/badgeops/badgeops/internal/errors"
)

// PostgreSQLMatrixRepository implements permission matrix persistence for
// PostgreSQL. The full grant set for a role is one JSONB document; Replace
// upserts it in a single statement, so readers observe either the previous
// document or the new one, never a mix.
type PostgreSQLMatrixRepository struct {
	db *sql.DB
}

// Get retrieves the permission matrix for a role.
// Returns ErrMatrixNotFound if no matrix is stored for the role.
func (p *PostgreSQLMatrixRepository) Get(ctx context.Context, roleID uuid.UUID) (*accessDomain.Matrix, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT role_id, grants, updated_at FROM role_matrices WHERE role_id = $1`

	var matrix accessDomain.Matrix
	var grants []byte

	err := querier.QueryRowContext(ctx, query, roleID).Scan(&matrix.RoleID, &grants, &matrix.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, accessDomain.ErrMatrixNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get permission matrix")
	}

	if err := json.Unmarshal(grants, &matrix.Areas); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal grant document")
	}

	return &matrix, nil
}

// Replace swaps the entire grant set for a role in one upsert.
func (p *PostgreSQLMatrixRepository) Replace(ctx context.Context, matrix *accessDomain.Matrix) error {
	querier := database.GetTx(ctx, p.db)

	grants, err := json.Marshal(matrix.Areas)
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal grant document")
	}

	query := `INSERT INTO role_matrices (role_id, grants, updated_at)
			  VALUES ($1, $2, $3)
			  ON CONFLICT (role_id) DO UPDATE SET grants = $2, updated_at = $3`

	_, err = querier.ExecContext(ctx, query, matrix.RoleID, grants, matrix.UpdatedAt)
	if err != nil {
		return apperrors.Wrap(err, "failed to replace permission matrix")
	}
	return nil
}

// NewPostgreSQLMatrixRepository creates a new PostgreSQL matrix repository.
func NewPostgreSQLMatrixRepository(db *sql.DB) *PostgreSQLMatrixRepository {
	return &PostgreSQLMatrixRepository{db: db}
}
