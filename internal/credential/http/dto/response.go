// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	"time"

	credentialDomain "github.com/badgeops/badgeops/internal/credential/domain"
)

// CredentialResponse represents a credential record in API responses.
// Status carries the effective status: a non-terminal record past its expiry
// date reads as expired.
type CredentialResponse struct {
	ID         string     `json:"id"`
	EmployeeID string     `json:"employee_id"`
	TemplateID string     `json:"template_id"`
	VerifyCode string     `json:"verify_code"`
	Status     string     `json:"status"`
	IssuedAt   time.Time  `json:"issued_at"`
	ExpiresAt  time.Time  `json:"expires_at"`
	CreatedBy  string     `json:"created_by"`
	PrintedBy  *string    `json:"printed_by,omitempty"`
	PrintedAt  *time.Time `json:"printed_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// MapCredentialToResponse converts a domain credential to an API response.
func MapCredentialToResponse(credential *credentialDomain.Credential) CredentialResponse {
	resp := CredentialResponse{
		ID:         credential.ID.String(),
		EmployeeID: credential.EmployeeID.String(),
		TemplateID: credential.TemplateID.String(),
		VerifyCode: credential.VerifyCode,
		Status:     string(credential.Status),
		IssuedAt:   credential.IssuedAt,
		ExpiresAt:  credential.ExpiresAt,
		CreatedBy:  credential.CreatedBy.String(),
		PrintedAt:  credential.PrintedAt,
		CreatedAt:  credential.CreatedAt,
		UpdatedAt:  credential.UpdatedAt,
	}
	if credential.PrintedBy != nil {
		printedBy := credential.PrintedBy.String()
		resp.PrintedBy = &printedBy
	}
	return resp
}

// ListCredentialsResponse represents a paginated list of credentials in API responses.
type ListCredentialsResponse struct {
	Data []CredentialResponse `json:"data"`
}

// MapCredentialsToListResponse converts a slice of domain credentials to a list API response.
func MapCredentialsToListResponse(credentials []*credentialDomain.Credential) ListCredentialsResponse {
	credentialResponses := make([]CredentialResponse, 0, len(credentials))
	for _, credential := range credentials {
		credentialResponses = append(credentialResponses, MapCredentialToResponse(credential))
	}
	return ListCredentialsResponse{
		Data: credentialResponses,
	}
}

// VerifyResponse represents the public verification result. It deliberately
// exposes less than the authenticated read: no verify code echo and no
// operator identifiers.
type VerifyResponse struct {
	EmployeeID string    `json:"employee_id"`
	Status     string    `json:"status"`
	IssuedAt   time.Time `json:"issued_at"`
	ExpiresAt  time.Time `json:"expires_at"`
}

// MapCredentialToVerifyResponse converts a domain credential to a public verification response.
func MapCredentialToVerifyResponse(credential *credentialDomain.Credential) VerifyResponse {
	return VerifyResponse{
		EmployeeID: credential.EmployeeID.String(),
		Status:     string(credential.Status),
		IssuedAt:   credential.IssuedAt,
		ExpiresAt:  credential.ExpiresAt,
	}
}
