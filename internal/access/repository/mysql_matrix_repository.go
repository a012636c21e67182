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

// MySQLMatrixRepository implements permission matrix persistence for MySQL.
// The full grant set for a role is one JSON document; Replace upserts it in
// a single statement.
type MySQLMatrixRepository struct {
	db *sql.DB
}

// Get retrieves the permission matrix for a role.
// Returns ErrMatrixNotFound if no matrix is stored for the role.
func (m *MySQLMatrixRepository) Get(ctx context.Context, roleID uuid.UUID) (*accessDomain.Matrix, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT role_id, grants, updated_at FROM role_matrices WHERE role_id = ?`

	var matrix accessDomain.Matrix
	var grants []byte

	err := querier.QueryRowContext(ctx, query, roleID.String()).Scan(&matrix.RoleID, &grants, &matrix.UpdatedAt)
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
func (m *MySQLMatrixRepository) Replace(ctx context.Context, matrix *accessDomain.Matrix) error {
	querier := database.GetTx(ctx, m.db)

	grants, err := json.Marshal(matrix.Areas)
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal grant document")
	}

	query := `INSERT INTO role_matrices (role_id, grants, updated_at)
			  VALUES (?, ?, ?)
			  ON DUPLICATE KEY UPDATE grants = VALUES(grants), updated_at = VALUES(updated_at)`

	_, err = querier.ExecContext(ctx, query, matrix.RoleID.String(), grants, matrix.UpdatedAt)
	if err != nil {
		return apperrors.Wrap(err, "failed to replace permission matrix")
	}
	return nil
}

// NewMySQLMatrixRepository creates a new MySQL matrix repository.
func NewMySQLMatrixRepository(db *sql.DB) *MySQLMatrixRepository {
	return &MySQLMatrixRepository{db: db}
}
