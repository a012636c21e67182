package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	accessDomain "github.com/badgeops/badgeops/internal/access/domain"
	"github.com/badgeops/badgeops/internal/database"
	apperrors "github.com/badgeops/badgeops/internal/errors"
)

// MySQLRoleRepository implements Role persistence for MySQL.
// UUIDs are stored as CHAR(36) strings.
type MySQLRoleRepository struct {
	db *sql.DB
}

// Create inserts a new role.
func (m *MySQLRoleRepository) Create(ctx context.Context, role *accessDomain.Role) error {
	querier := database.GetTx(ctx, m.db)

	query := `INSERT INTO roles (id, name, created_at) VALUES (?, ?, ?)`

	_, err := querier.ExecContext(ctx, query, role.ID.String(), role.Name, role.CreatedAt)
	if err != nil {
		return apperrors.Wrap(err, "failed to create role")
	}
	return nil
}

// Get retrieves a role by ID. Returns ErrRoleNotFound if it doesn't exist.
func (m *MySQLRoleRepository) Get(ctx context.Context, roleID uuid.UUID) (*accessDomain.Role, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, name, created_at FROM roles WHERE id = ?`

	var role accessDomain.Role
	err := querier.QueryRowContext(ctx, query, roleID.String()).Scan(&role.ID, &role.Name, &role.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, accessDomain.ErrRoleNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get role")
	}

	return &role, nil
}

// List retrieves roles ordered by name with pagination.
func (m *MySQLRoleRepository) List(ctx context.Context, offset, limit int) ([]*accessDomain.Role, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, name, created_at FROM roles ORDER BY name LIMIT ? OFFSET ?`

	rows, err := querier.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list roles")
	}
	defer rows.Close()

	roles := []*accessDomain.Role{}
	for rows.Next() {
		var role accessDomain.Role
		if err := rows.Scan(&role.ID, &role.Name, &role.CreatedAt); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan role")
		}
		roles = append(roles, &role)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate roles")
	}

	return roles, nil
}

// NewMySQLRoleRepository creates a new MySQL role repository.
func NewMySQLRoleRepository(db *sql.DB) *MySQLRoleRepository {
	return &MySQLRoleRepository{db: db}
}
