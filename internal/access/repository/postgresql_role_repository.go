// Package repository provides persistence implementations for roles and
// permission matrices.
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

// PostgreSQLRoleRepository implements Role persistence for PostgreSQL.
// Uses native UUID types with transaction support via database.GetTx().
type PostgreSQLRoleRepository struct {
	db *sql.DB
}

// Create inserts a new role.
func (p *PostgreSQLRoleRepository) Create(ctx context.Context, role *accessDomain.Role) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO roles (id, name, created_at) VALUES ($1, $2, $3)`

	_, err := querier.ExecContext(ctx, query, role.ID, role.Name, role.CreatedAt)
	if err != nil {
		return apperrors.Wrap(err, "failed to create role")
	}
	return nil
}

// Get retrieves a role by ID. Returns ErrRoleNotFound if it doesn't exist.
func (p *PostgreSQLRoleRepository) Get(ctx context.Context, roleID uuid.UUID) (*accessDomain.Role, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, name, created_at FROM roles WHERE id = $1`

	var role accessDomain.Role
	err := querier.QueryRowContext(ctx, query, roleID).Scan(&role.ID, &role.Name, &role.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, accessDomain.ErrRoleNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get role")
	}

	return &role, nil
}

// List retrieves roles ordered by name with pagination.
func (p *PostgreSQLRoleRepository) List(ctx context.Context, offset, limit int) ([]*accessDomain.Role, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, name, created_at FROM roles ORDER BY name OFFSET $1 LIMIT $2`

	rows, err := querier.QueryContext(ctx, query, offset, limit)
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

// NewPostgreSQLRoleRepository creates a new PostgreSQL role repository.
func NewPostgreSQLRoleRepository(db *sql.DB) *PostgreSQLRoleRepository {
	return &PostgreSQLRoleRepository{db: db}
}
