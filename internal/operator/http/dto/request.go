// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/badgeops/badgeops/internal/validation"
)

// LoginRequest contains the parameters for operator login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks if the login request is valid.
func (r *LoginRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Email,
			validation.Required,
			customValidation.Email,
		),
		validation.Field(&r.Password,
			validation.Required,
			customValidation.NotBlank,
		),
	)
}

// CreateOperatorRequest contains the parameters for creating an operator account.
type CreateOperatorRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	RoleID   string `json:"role_id"`
	IsActive bool   `json:"is_active"`
}

// Validate checks if the create operator request is valid.
func (r *CreateOperatorRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, 255),
		),
		validation.Field(&r.Email,
			validation.Required,
			customValidation.Email,
		),
		validation.Field(&r.Password,
			validation.Required,
			customValidation.PasswordStrength{MinLength: 12},
		),
		validation.Field(&r.RoleID,
			validation.Required,
			customValidation.NotBlank,
		),
	)
}

// UpdateOperatorRequest contains the parameters for updating an operator account.
// Password is optional: empty leaves the stored hash unchanged.
type UpdateOperatorRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	RoleID   string `json:"role_id"`
	IsActive bool   `json:"is_active"`
}

// Validate checks if the update operator request is valid.
func (r *UpdateOperatorRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, 255),
		),
		validation.Field(&r.Email,
			validation.Required,
			customValidation.Email,
		),
		validation.Field(&r.Password,
			validation.When(r.Password != "", customValidation.PasswordStrength{MinLength: 12}),
		),
		validation.Field(&r.RoleID,
			validation.Required,
			customValidation.NotBlank,
		),
	)
}
