package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	apperrors "github.com/badgeops/badgeops/internal/errors"
	"github.com/badgeops/badgeops/internal/httputil"
	operatorDomain "github.com/badgeops/badgeops/internal/operator/domain"
	"github.com/badgeops/badgeops/internal/operator/http/dto"
	operatorUseCase "github.com/badgeops/badgeops/internal/operator/usecase"
	customValidation "github.com/badgeops/badgeops/internal/validation"
)

// OperatorHandler handles HTTP requests for operator account administration.
// Route-level authorization against the user-management area is applied by the
// router; this handler only translates between the wire and the use case.
type OperatorHandler struct {
	operatorUseCase operatorUseCase.OperatorUseCase
	logger          *slog.Logger
}

// NewOperatorHandler creates a new operator handler with required dependencies.
func NewOperatorHandler(
	operatorUseCase operatorUseCase.OperatorUseCase,
	logger *slog.Logger,
) *OperatorHandler {
	return &OperatorHandler{
		operatorUseCase: operatorUseCase,
		logger:          logger,
	}
}

// CreateHandler creates a new operator account.
// POST /v1/operators - Requires add on the user-management area.
// Returns 201 Created with the operator (password hash excluded).
func (h *OperatorHandler) CreateHandler(c *gin.Context) {
	var req dto.CreateOperatorRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	roleID, err := uuid.Parse(req.RoleID)
	if err != nil {
		httputil.HandleErrorGin(c, apperrors.Wrap(apperrors.ErrInvalidInput, "invalid role_id"), h.logger)
		return
	}

	input := &operatorUseCase.CreateOperatorInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		RoleID:   roleID,
		IsActive: req.IsActive,
	}

	operator, err := h.operatorUseCase.Create(c.Request.Context(), input)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	httputil.MakeJSONResponse(c, http.StatusCreated, dto.MapOperatorToResponse(operator))
}

// GetHandler retrieves an operator account by ID.
// GET /v1/operators/:id - Requires view on the user-management area.
func (h *OperatorHandler) GetHandler(c *gin.Context) {
	operatorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleErrorGin(c, operatorDomain.ErrOperatorNotFound, h.logger)
		return
	}

	operator, err := h.operatorUseCase.Get(c.Request.Context(), operatorID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	httputil.MakeJSONResponse(c, http.StatusOK, dto.MapOperatorToResponse(operator))
}

// ListHandler retrieves operator accounts with pagination.
// GET /v1/operators - Requires view on the user-management area.
func (h *OperatorHandler) ListHandler(c *gin.Context) {
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	operators, err := h.operatorUseCase.List(c.Request.Context(), offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	httputil.MakeJSONResponse(c, http.StatusOK, dto.MapOperatorsToListResponse(operators))
}

// UpdateHandler updates an operator account.
// PUT /v1/operators/:id - Requires edit on the user-management area.
func (h *OperatorHandler) UpdateHandler(c *gin.Context) {
	operatorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleErrorGin(c, operatorDomain.ErrOperatorNotFound, h.logger)
		return
	}

	var req dto.UpdateOperatorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	roleID, err := uuid.Parse(req.RoleID)
	if err != nil {
		httputil.HandleErrorGin(c, apperrors.Wrap(apperrors.ErrInvalidInput, "invalid role_id"), h.logger)
		return
	}

	input := &operatorUseCase.UpdateOperatorInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		RoleID:   roleID,
		IsActive: req.IsActive,
	}

	operator, err := h.operatorUseCase.Update(c.Request.Context(), operatorID, input)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	httputil.MakeJSONResponse(c, http.StatusOK, dto.MapOperatorToResponse(operator))
}

// DeactivateHandler soft-deletes an operator account by setting it inactive.
// DELETE /v1/operators/:id - Requires delete on the user-management area.
// Returns 204 No Content.
func (h *OperatorHandler) DeactivateHandler(c *gin.Context) {
	operatorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleErrorGin(c, operatorDomain.ErrOperatorNotFound, h.logger)
		return
	}

	if err := h.operatorUseCase.Deactivate(c.Request.Context(), operatorID); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}

// UnlockHandler clears the lockout state for an operator account.
// POST /v1/operators/:id/unlock - Requires edit on the user-management area.
// Returns 204 No Content.
func (h *OperatorHandler) UnlockHandler(c *gin.Context) {
	operatorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleErrorGin(c, operatorDomain.ErrOperatorNotFound, h.logger)
		return
	}

	if err := h.operatorUseCase.Unlock(c.Request.Context(), operatorID); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}
