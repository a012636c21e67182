// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	"time"

	accessDomain "github.com/badgeops/badgeops/internal/access/domain"
)

// RoleResponse represents a role in API responses.
type RoleResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// MapRoleToResponse converts a domain role to an API response.
func MapRoleToResponse(role *accessDomain.Role) RoleResponse {
	return RoleResponse{
		ID:        role.ID.String(),
		Name:      role.Name,
		CreatedAt: role.CreatedAt,
	}
}

// ListRolesResponse represents a paginated list of roles in API responses.
type ListRolesResponse struct {
	Data []RoleResponse `json:"data"`
}

// MapRolesToListResponse converts a slice of domain roles to a list API response.
func MapRolesToListResponse(roles []*accessDomain.Role) ListRolesResponse {
	roleResponses := make([]RoleResponse, 0, len(roles))
	for _, role := range roles {
		roleResponses = append(roleResponses, MapRoleToResponse(role))
	}
	return ListRolesResponse{
		Data: roleResponses,
	}
}

// MatrixResponse represents a role's complete grant set in API responses.
type MatrixResponse struct {
	RoleID    string                   `json:"role_id"`
	Areas     []accessDomain.AreaGrant `json:"areas"`
	UpdatedAt time.Time                `json:"updated_at"`
}

// MapMatrixToResponse converts a domain matrix to an API response.
func MapMatrixToResponse(matrix *accessDomain.Matrix) MatrixResponse {
	areas := matrix.Areas
	if areas == nil {
		areas = []accessDomain.AreaGrant{}
	}
	return MatrixResponse{
		RoleID:    matrix.RoleID.String(),
		Areas:     areas,
		UpdatedAt: matrix.UpdatedAt,
	}
}

// CheckGrantResponse answers a single affordance query.
type CheckGrantResponse struct {
	Area    string `json:"area"`
	Action  string `json:"action"`
	Allowed bool   `json:"allowed"`
}
