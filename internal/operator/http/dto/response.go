// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	"time"

	operatorDomain "github.com/badgeops/badgeops/internal/operator/domain"
	operatorUseCase "github.com/badgeops/badgeops/internal/operator/usecase"
)

// LoginResponse contains the result of a successful login.
// SECURITY: The token is only returned once and must be saved securely.
type LoginResponse struct {
	Token     string           `json:"token"`
	ExpiresAt time.Time        `json:"expires_at"`
	Operator  OperatorResponse `json:"operator"`
}

// MapLoginToResponse converts a login output to an API response.
func MapLoginToResponse(output *operatorUseCase.LoginOutput) LoginResponse {
	return LoginResponse{
		Token:     output.PlainToken,
		ExpiresAt: output.ExpiresAt,
		Operator:  MapOperatorToResponse(output.Operator),
	}
}

// OperatorResponse represents an operator in API responses (excludes the password hash).
type OperatorResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	RoleID    string    `json:"role_id"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MapOperatorToResponse converts a domain operator to an API response.
func MapOperatorToResponse(operator *operatorDomain.Operator) OperatorResponse {
	return OperatorResponse{
		ID:        operator.ID.String(),
		Name:      operator.Name,
		Email:     operator.Email,
		RoleID:    operator.RoleID.String(),
		IsActive:  operator.IsActive,
		CreatedAt: operator.CreatedAt,
		UpdatedAt: operator.UpdatedAt,
	}
}

// ListOperatorsResponse represents a paginated list of operators in API responses.
type ListOperatorsResponse struct {
	Data []OperatorResponse `json:"data"`
}

// MapOperatorsToListResponse converts a slice of domain operators to a list API response.
func MapOperatorsToListResponse(operators []*operatorDomain.Operator) ListOperatorsResponse {
	operatorResponses := make([]OperatorResponse, 0, len(operators))
	for _, operator := range operators {
		operatorResponses = append(operatorResponses, MapOperatorToResponse(operator))
	}
	return ListOperatorsResponse{
		Data: operatorResponses,
	}
}
