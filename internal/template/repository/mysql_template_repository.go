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

// MySQLTemplateRepository implements template persistence for MySQL.
// UUIDs are stored as CHAR(36) strings; the layout document as JSON.
type MySQLTemplateRepository struct {
	db *sql.DB
}

func scanMySQLTemplate(row interface {
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
func (m *MySQLTemplateRepository) Create(ctx context.Context, template *templateDomain.Template) error {
	querier := database.GetTx(ctx, m.db)

	layout, err := json.Marshal(template.Layout)
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal template layout")
	}

	query := `INSERT INTO templates (id, name, layout, is_default, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?)`

	_, err = querier.ExecContext(
		ctx,
		query,
		template.ID.String(),
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
func (m *MySQLTemplateRepository) Get(ctx context.Context, templateID uuid.UUID) (*templateDomain.Template, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, name, layout, is_default, created_at, updated_at FROM templates WHERE id = ?`

	template, err := scanMySQLTemplate(querier.QueryRowContext(ctx, query, templateID.String()))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, templateDomain.ErrTemplateNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get template")
	}
	return template, nil
}

// List retrieves templates ordered by name with pagination.
func (m *MySQLTemplateRepository) List(ctx context.Context, offset, limit int) ([]*templateDomain.Template, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, name, layout, is_default, created_at, updated_at
			  FROM templates ORDER BY name LIMIT ? OFFSET ?`

	rows, err := querier.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list templates")
	}
	defer rows.Close()

	templates := []*templateDomain.Template{}
	for rows.Next() {
		template, err := scanMySQLTemplate(rows)
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
func (m *MySQLTemplateRepository) Update(ctx context.Context, template *templateDomain.Template) error {
	querier := database.GetTx(ctx, m.db)

	layout, err := json.Marshal(template.Layout)
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal template layout")
	}

	query := `UPDATE templates SET name = ?, layout = ?, is_default = ?, updated_at = ? WHERE id = ?`

	_, err = querier.ExecContext(ctx, query, template.Name, layout, template.IsDefault, template.UpdatedAt, template.ID.String())
	if err != nil {
		return apperrors.Wrap(err, "failed to update template")
	}
	return nil
}

// Delete removes a template. Returns ErrTemplateNotFound if the template
// doesn't exist.
func (m *MySQLTemplateRepository) Delete(ctx context.Context, templateID uuid.UUID) error {
	querier := database.GetTx(ctx, m.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM templates WHERE id = ?`, templateID.String())
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

// NewMySQLTemplateRepository creates a new MySQL template repository.
func NewMySQLTemplateRepository(db *sql.DB) *MySQLTemplateRepository {
	return &MySQLTemplateRepository{db: db}
}
