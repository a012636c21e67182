// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	"time"

	validation "github.com/jellydator/validation"

	employeeDomain "github.com/badgeops/badgeops/internal/employee/domain"
	customValidation "github.com/badgeops/badgeops/internal/validation"
)

// CreateEmployeeRequest contains the parameters for adding a directory entry.
type CreateEmployeeRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Department string `json:"department"`
	JobTitle   string `json:"job_title"`
}

// Validate checks if the create employee request is valid.
func (r *CreateEmployeeRequest) Validate() error {
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
		validation.Field(&r.Department,
			validation.Length(0, 255),
		),
		validation.Field(&r.JobTitle,
			validation.Length(0, 255),
		),
	)
}

// UpdateEmployeeRequest contains the parameters for updating a directory entry.
type UpdateEmployeeRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Department string `json:"department"`
	JobTitle   string `json:"job_title"`
	IsActive   bool   `json:"is_active"`
}

// Validate checks if the update employee request is valid.
func (r *UpdateEmployeeRequest) Validate() error {
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
		validation.Field(&r.Department,
			validation.Length(0, 255),
		),
		validation.Field(&r.JobTitle,
			validation.Length(0, 255),
		),
	)
}

// EmployeeResponse represents an employee in API responses.
type EmployeeResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Department string    `json:"department"`
	JobTitle   string    `json:"job_title"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// MapEmployeeToResponse converts a domain employee to an API response.
func MapEmployeeToResponse(employee *employeeDomain.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:         employee.ID.String(),
		Name:       employee.Name,
		Email:      employee.Email,
		Department: employee.Department,
		JobTitle:   employee.JobTitle,
		IsActive:   employee.IsActive,
		CreatedAt:  employee.CreatedAt,
		UpdatedAt:  employee.UpdatedAt,
	}
}

// ListEmployeesResponse represents a paginated list of employees in API responses.
type ListEmployeesResponse struct {
	Data []EmployeeResponse `json:"data"`
}

// MapEmployeesToListResponse converts a slice of domain employees to a list API response.
func MapEmployeesToListResponse(employees []*employeeDomain.Employee) ListEmployeesResponse {
	employeeResponses := make([]EmployeeResponse, 0, len(employees))
	for _, employee := range employees {
		employeeResponses = append(employeeResponses, MapEmployeeToResponse(employee))
	}
	return ListEmployeesResponse{
		Data: employeeResponses,
	}
}
