// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	accessDomain "github.com/badgeops/badgeops/internal/access/domain"
	customValidation "github.com/badgeops/badgeops/internal/validation"
)

// CreateRoleRequest contains the parameters for creating a new role.
type CreateRoleRequest struct {
	Name string `json:"name"`
}

// Validate checks if the create role request is valid.
func (r *CreateRoleRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, 255),
		),
	)
}

// ActionSetRequest carries the boolean grant flags for one area or sub-area.
type ActionSetRequest struct {
	View     bool `json:"view"`
	Add      bool `json:"add"`
	Edit     bool `json:"edit"`
	Delete   bool `json:"delete"`
	Assign   bool `json:"assign"`
	Approve  bool `json:"approve"`
	Generate bool `json:"generate"`
	Lost     bool `json:"lost"`
}

// SubareaGrantRequest carries a grant on a nested sub-area.
type SubareaGrantRequest struct {
	Title   string           `json:"title"`
	Actions ActionSetRequest `json:"actions"`
}

// AreaGrantRequest carries a grant on a top-level area plus its sub-areas.
type AreaGrantRequest struct {
	Title    string                `json:"title"`
	Actions  ActionSetRequest      `json:"actions"`
	Subareas []SubareaGrantRequest `json:"subareas"`
}

// ReplaceMatrixRequest contains the complete grant set replacing a role's
// matrix. There is no partial update: the caller always submits every area.
type ReplaceMatrixRequest struct {
	Areas []AreaGrantRequest `json:"areas"`
}

// Validate checks if the replace matrix request is valid.
func (r *ReplaceMatrixRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Areas,
			validation.Each(validation.By(validateAreaGrant)),
		),
	)
}

// validateAreaGrant validates a single area grant.
func validateAreaGrant(value interface{}) error {
	area, ok := value.(AreaGrantRequest)
	if !ok {
		return validation.NewError("validation_area_type", "must be an area grant")
	}

	return validation.ValidateStruct(&area,
		validation.Field(&area.Title,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, 255),
		),
		validation.Field(&area.Subareas,
			validation.Each(validation.By(validateSubareaGrant)),
		),
	)
}

// validateSubareaGrant validates a single sub-area grant.
func validateSubareaGrant(value interface{}) error {
	subarea, ok := value.(SubareaGrantRequest)
	if !ok {
		return validation.NewError("validation_subarea_type", "must be a sub-area grant")
	}

	return validation.ValidateStruct(&subarea,
		validation.Field(&subarea.Title,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, 255),
		),
	)
}

// MapActionSet converts an action set request to its domain form.
func MapActionSet(req ActionSetRequest) accessDomain.ActionSet {
	return accessDomain.ActionSet{
		View:     req.View,
		Add:      req.Add,
		Edit:     req.Edit,
		Delete:   req.Delete,
		Assign:   req.Assign,
		Approve:  req.Approve,
		Generate: req.Generate,
		Lost:     req.Lost,
	}
}

// MapAreas converts area grant requests to their domain form.
func MapAreas(reqs []AreaGrantRequest) []accessDomain.AreaGrant {
	areas := make([]accessDomain.AreaGrant, 0, len(reqs))
	for _, req := range reqs {
		area := accessDomain.AreaGrant{
			Title:   req.Title,
			Actions: MapActionSet(req.Actions),
		}
		for _, sub := range req.Subareas {
			area.Subareas = append(area.Subareas, accessDomain.SubareaGrant{
				Title:   sub.Title,
				Actions: MapActionSet(sub.Actions),
			})
		}
		areas = append(areas, area)
	}
	return areas
}
