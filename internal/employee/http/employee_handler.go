// Package http provides HTTP handlers for the employee directory.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	employeeDomain "github.com/badgeops/badgeops/internal/employee/domain"
	"github.com/badgeops/badgeops/internal/employee/http/dto"
	employeeUseCase "github.com/badgeops/badgeops/internal/employee/usecase"
	"github.com/badgeops/badgeops/internal/httputil"
	customValidation "github.com/badgeops/badgeops/internal/validation"
)

// EmployeeHandler handles HTTP requests for the employee directory.
// Route-level authorization against the employee-management area is applied
// by the router.
type EmployeeHandler struct {
	employeeUseCase employeeUseCase.EmployeeUseCase
	logger          *slog.Logger
}

// NewEmployeeHandler creates a new employee handler with required dependencies.
func NewEmployeeHandler(
	employeeUseCase employeeUseCase.EmployeeUseCase,
	logger *slog.Logger,
) *EmployeeHandler {
	return &EmployeeHandler{
		employeeUseCase: employeeUseCase,
		logger:          logger,
	}
}

// CreateHandler adds a new directory entry.
// POST /v1/employees - Requires add on the employee-management area.
// Returns 201 Created.
func (h *EmployeeHandler) CreateHandler(c *gin.Context) {
	var req dto.CreateEmployeeRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	input := &employeeUseCase.CreateEmployeeInput{
		Name:       req.Name,
		Email:      req.Email,
		Department: req.Department,
		JobTitle:   req.JobTitle,
	}

	employee, err := h.employeeUseCase.Create(c.Request.Context(), input)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	httputil.MakeJSONResponse(c, http.StatusCreated, dto.MapEmployeeToResponse(employee))
}

// GetHandler retrieves an employee by ID.
// GET /v1/employees/:id - Requires view on the employee-management area.
func (h *EmployeeHandler) GetHandler(c *gin.Context) {
	employeeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleErrorGin(c, employeeDomain.ErrEmployeeNotFound, h.logger)
		return
	}

	employee, err := h.employeeUseCase.Get(c.Request.Context(), employeeID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	httputil.MakeJSONResponse(c, http.StatusOK, dto.MapEmployeeToResponse(employee))
}

// ListHandler retrieves employees with pagination.
// GET /v1/employees - Requires view on the employee-management area.
func (h *EmployeeHandler) ListHandler(c *gin.Context) {
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	employees, err := h.employeeUseCase.List(c.Request.Context(), offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	httputil.MakeJSONResponse(c, http.StatusOK, dto.MapEmployeesToListResponse(employees))
}

// UpdateHandler modifies a directory entry.
// PUT /v1/employees/:id - Requires edit on the employee-management area.
func (h *EmployeeHandler) UpdateHandler(c *gin.Context) {
	employeeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleErrorGin(c, employeeDomain.ErrEmployeeNotFound, h.logger)
		return
	}

	var req dto.UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	input := &employeeUseCase.UpdateEmployeeInput{
		Name:       req.Name,
		Email:      req.Email,
		Department: req.Department,
		JobTitle:   req.JobTitle,
		IsActive:   req.IsActive,
	}

	employee, err := h.employeeUseCase.Update(c.Request.Context(), employeeID, input)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	httputil.MakeJSONResponse(c, http.StatusOK, dto.MapEmployeeToResponse(employee))
}

// DeleteHandler removes a directory entry.
// DELETE /v1/employees/:id - Requires delete on the employee-management area.
// Returns 204 No Content.
func (h *EmployeeHandler) DeleteHandler(c *gin.Context) {
	employeeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleErrorGin(c, employeeDomain.ErrEmployeeNotFound, h.logger)
		return
	}

	if err := h.employeeUseCase.Delete(c.Request.Context(), employeeID); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}
