// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	"time"

	validation "github.com/jellydator/validation"

	templateDomain "github.com/badgeops/badgeops/internal/template/domain"
	customValidation "github.com/badgeops/badgeops/internal/validation"
)

// CreateTemplateRequest contains the parameters for creating a card layout.
type CreateTemplateRequest struct {
	Name      string         `json:"name"`
	Layout    map[string]any `json:"layout"`
	IsDefault bool           `json:"is_default"`
}

// Validate checks if the create template request is valid.
func (r *CreateTemplateRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, 255),
		),
		validation.Field(&r.Layout,
			validation.Required,
		),
	)
}

// UpdateTemplateRequest contains the parameters for updating a card layout.
type UpdateTemplateRequest struct {
	Name      string         `json:"name"`
	Layout    map[string]any `json:"layout"`
	IsDefault bool           `json:"is_default"`
}

// Validate checks if the update template request is valid.
func (r *UpdateTemplateRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, 255),
		),
		validation.Field(&r.Layout,
			validation.Required,
		),
	)
}

// TemplateResponse represents a card template in API responses.
type TemplateResponse struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Layout    map[string]any `json:"layout"`
	IsDefault bool           `json:"is_default"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// MapTemplateToResponse converts a domain template to an API response.
func MapTemplateToResponse(template *templateDomain.Template) TemplateResponse {
	return TemplateResponse{
		ID:        template.ID.String(),
		Name:      template.Name,
		Layout:    template.Layout,
		IsDefault: template.IsDefault,
		CreatedAt: template.CreatedAt,
		UpdatedAt: template.UpdatedAt,
	}
}

// ListTemplatesResponse represents a paginated list of templates in API responses.
type ListTemplatesResponse struct {
	Data []TemplateResponse `json:"data"`
}

// MapTemplatesToListResponse converts a slice of domain templates to a list API response.
func MapTemplatesToListResponse(templates []*templateDomain.Template) ListTemplatesResponse {
	templateResponses := make([]TemplateResponse, 0, len(templates))
	for _, template := range templates {
		templateResponses = append(templateResponses, MapTemplateToResponse(template))
	}
	return ListTemplatesResponse{
		Data: templateResponses,
	}
}
