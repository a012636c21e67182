// Package usecase implements business logic for card templates.
package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	templateDomain "github.com/badgeops/badgeops/internal/template/domain"
)

// TemplateRepository defines persistence operations for templates.
// Implementations must support transaction-aware operations via context propagation.
type TemplateRepository interface {
	Create(ctx context.Context, template *templateDomain.Template) error
	Get(ctx context.Context, templateID uuid.UUID) (*templateDomain.Template, error)
	List(ctx context.Context, offset, limit int) ([]*templateDomain.Template, error)
	Update(ctx context.Context, template *templateDomain.Template) error
	Delete(ctx context.Context, templateID uuid.UUID) error
}

// CreateTemplateInput carries the request to create a card layout.
type CreateTemplateInput struct {
	Name      string
	Layout    map[string]any
	IsDefault bool
}

// UpdateTemplateInput carries the request to update a card layout.
type UpdateTemplateInput struct {
	Name      string
	Layout    map[string]any
	IsDefault bool
}

// TemplateUseCase defines template administration operations. Authorization
// happens at the HTTP layer against the template-management area.
type TemplateUseCase interface {
	Create(ctx context.Context, input *CreateTemplateInput) (*templateDomain.Template, error)
	Get(ctx context.Context, templateID uuid.UUID) (*templateDomain.Template, error)
	List(ctx context.Context, offset, limit int) ([]*templateDomain.Template, error)
	Update(ctx context.Context, templateID uuid.UUID, input *UpdateTemplateInput) (*templateDomain.Template, error)
	Delete(ctx context.Context, templateID uuid.UUID) error
}

// templateUseCase implements TemplateUseCase.
type templateUseCase struct {
	templateRepo TemplateRepository
}

// Create stores a new card layout.
func (t *templateUseCase) Create(ctx context.Context, input *CreateTemplateInput) (*templateDomain.Template, error) {
	now := time.Now().UTC()
	template := &templateDomain.Template{
		ID:        uuid.Must(uuid.NewV7()),
		Name:      input.Name,
		Layout:    input.Layout,
		IsDefault: input.IsDefault,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := t.templateRepo.Create(ctx, template); err != nil {
		return nil, err
	}
	return template, nil
}

// Get retrieves a template by ID.
func (t *templateUseCase) Get(ctx context.Context, templateID uuid.UUID) (*templateDomain.Template, error) {
	return t.templateRepo.Get(ctx, templateID)
}

// List retrieves templates ordered by name with pagination.
func (t *templateUseCase) List(ctx context.Context, offset, limit int) ([]*templateDomain.Template, error) {
	return t.templateRepo.List(ctx, offset, limit)
}

// Update modifies a card layout.
func (t *templateUseCase) Update(
	ctx context.Context,
	templateID uuid.UUID,
	input *UpdateTemplateInput,
) (*templateDomain.Template, error) {
	template, err := t.templateRepo.Get(ctx, templateID)
	if err != nil {
		return nil, err
	}

	template.Name = input.Name
	template.Layout = input.Layout
	template.IsDefault = input.IsDefault
	template.UpdatedAt = time.Now().UTC()

	if err := t.templateRepo.Update(ctx, template); err != nil {
		return nil, err
	}
	return template, nil
}

// Delete removes a card layout.
func (t *templateUseCase) Delete(ctx context.Context, templateID uuid.UUID) error {
	return t.templateRepo.Delete(ctx, templateID)
}

// NewTemplateUseCase creates a TemplateUseCase with the provided repository.
func NewTemplateUseCase(templateRepo TemplateRepository) TemplateUseCase {
	return &templateUseCase{templateRepo: templateRepo}
}
