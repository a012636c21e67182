// Package repository provides persistence implementations for card templates.
package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/google/uuid"

	"github.com/badgeops/badgeops/internal/database"
	apperrors "github.com/badgeops/badgeops/internal/errors"
	templateDomain "github.com/badgeops/badgeops/internal/template/domain"
)

// PostgreSQLTemplateRepository implements template persistence for
// PostgreSQL. The layout document is stored as JSONB.
type PostgreSQLTemplateRepository struct {
	db *sql.DB
}

func scanPGTemplate(row interface {
	Scan(dest ...any) error
}) (*templateDomain.Template, error) {
	var template templateDomain.Template
	var layout []byte

	err := row.Scan(
		&template.ID,
		&template.Name,
		&layout,
		&template.IsDefault,
		&template.CreatedAt,
		&template.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(layout) > 0 {
		if err := json.Unmarshal(layout, &template.Layout); err != nil {
			return nil, err
		}
	}
	return &template, nil
}

// Create inserts a new template.
func (p *PostgreSQLTemplateRepository) Create(ctx context.Context, template *templateDomain.Template) error {
	querier := database.GetTx(ctx, p.db)

	layout, err := json.Marshal(template.Layout)
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal template layout")
	}

	query := `INSERT INTO templates (id, name, layout, is_default, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6)`

	_, err = querier.ExecContext(
		ctx,
		query,
		template.ID,
		template.Name,
		layout,
		template.IsDefault,
		template.CreatedAt,
		template.UpdatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create template")
	}
	return nil
}

// Get retrieves a template by ID. Returns ErrTemplateNotFound if not found.
func (p *PostgreSQLTemplateRepository) Get(ctx context.Context, templateID uuid.UUID) (*templateDomain.Template, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, name, layout, is_default, created_at, updated_at FROM templates WHERE id = $1`

	template, err := scanPGTemplate(querier.QueryRowContext(ctx, query, templateID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, templateDomain.ErrTemplateNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get template")
	}
	return template, nil
}

// List retrieves templates ordered by name with pagination.
func (p *PostgreSQLTemplateRepository) List(ctx context.Context, offset, limit int) ([]*templateDomain.Template, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, name, layout, is_default, created_at, updated_at
			  FROM templates ORDER BY name OFFSET $1 LIMIT $2`

	rows, err := querier.QueryContext(ctx, query, offset, limit)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list templates")
	}
	defer rows.Close()

	templates := []*templateDomain.Template{}
	for rows.Next() {
		template, err := scanPGTemplate(rows)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan template")
		}
		templates = append(templates, template)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate templates")
	}

	return templates, nil
}

// Update modifies an existing template.
func (p *PostgreSQLTemplateRepository) Update(ctx context.Context, template *templateDomain.Template) error {
	querier := database.GetTx(ctx, p.db)

	layout, err := json.Marshal(template.Layout)
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal template layout")
	}

	query := `UPDATE templates SET name = $1, layout = $2, is_default = $3, updated_at = $4 WHERE id = $5`

	_, err = querier.ExecContext(ctx, query, template.Name, layout, template.IsDefault, template.UpdatedAt, template.ID)
	if err != nil {
		return apperrors.Wrap(err, "failed to update template")
	}
	return nil
}

// Delete removes a template. Returns ErrTemplateNotFound if the template
// doesn't exist.
func (p *PostgreSQLTemplateRepository) Delete(ctx context.Context, templateID uuid.UUID) error {
	querier := database.GetTx(ctx, p.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM templates WHERE id = $1`, templateID)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete template")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to read affected rows")
	}
	if affected == 0 {
		return templateDomain.ErrTemplateNotFound
	}
	return nil
}

// NewPostgreSQLTemplateRepository creates a new PostgreSQL template repository.
func NewPostgreSQLTemplateRepository(db *sql.DB) *PostgreSQLTemplateRepository {
	return &PostgreSQLTemplateRepository{db: db}
}
