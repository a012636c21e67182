// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/badgeops/badgeops/internal/validation"
)

// CreateCredentialRequest contains the parameters for issuing a new ID card.
type CreateCredentialRequest struct {
	EmployeeID string `json:"employee_id"`
	TemplateID string `json:"template_id"`
}

// Validate checks if the create credential request is valid.
func (r *CreateCredentialRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.EmployeeID,
			validation.Required,
			customValidation.NotBlank,
		),
		validation.Field(&r.TemplateID,
			validation.Required,
			customValidation.NotBlank,
		),
	)
}

// TransitionRequest contains the target status for a lifecycle transition.
// The server decides whether the edge from the current status is legal and
// which action the actor must hold; the client only names the destination.
type TransitionRequest struct {
	Status string `json:"status"`
}

// Validate checks if the transition request is valid.
func (r *TransitionRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Status,
			validation.Required,
			customValidation.NotBlank,
		),
	)
}
