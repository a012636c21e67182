// Package http provides HTTP handlers for the ID-card lifecycle and the
// public verification surface.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	credentialDomain "github.com/badgeops/badgeops/internal/credential/domain"
	"github.com/badgeops/badgeops/internal/credential/http/dto"
	credentialUseCase "github.com/badgeops/badgeops/internal/credential/usecase"
	apperrors "github.com/badgeops/badgeops/internal/errors"
	"github.com/badgeops/badgeops/internal/httputil"
	operatorHTTP "github.com/badgeops/badgeops/internal/operator/http"
	customValidation "github.com/badgeops/badgeops/internal/validation"
)

// CredentialHandler handles HTTP requests for the credential lifecycle.
// Mutations pass the acting operator into the use case, which authorizes them
// through the access gate before touching the record.
type CredentialHandler struct {
	credentialUseCase credentialUseCase.CredentialUseCase
	logger            *slog.Logger
}

// NewCredentialHandler creates a new credential handler with required dependencies.
func NewCredentialHandler(
	credentialUseCase credentialUseCase.CredentialUseCase,
	logger *slog.Logger,
) *CredentialHandler {
	return &CredentialHandler{
		credentialUseCase: credentialUseCase,
		logger:            logger,
	}
}

// CreateHandler issues a new ID card in status created with a fresh
// verification code.
// POST /v1/credentials - The use case requires generate on the issuance area.
// Returns 201 Created.
func (h *CredentialHandler) CreateHandler(c *gin.Context) {
	operator, ok := operatorHTTP.GetOperator(c.Request.Context())
	if !ok || operator == nil {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	var req dto.CreateCredentialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	employeeID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		httputil.HandleErrorGin(c, apperrors.Wrap(apperrors.ErrInvalidInput, "invalid employee_id"), h.logger)
		return
	}

	templateID, err := uuid.Parse(req.TemplateID)
	if err != nil {
		httputil.HandleErrorGin(c, apperrors.Wrap(apperrors.ErrInvalidInput, "invalid template_id"), h.logger)
		return
	}

	input := &credentialUseCase.CreateCredentialInput{
		EmployeeID: employeeID,
		TemplateID: templateID,
	}

	credential, err := h.credentialUseCase.Create(c.Request.Context(), operator.ID, operator.RoleID, input)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	httputil.MakeJSONResponse(c, http.StatusCreated, dto.MapCredentialToResponse(credential))
}

// GetHandler retrieves a credential by ID with its effective status.
// GET /v1/credentials/:id - Requires view on the issuance area.
func (h *CredentialHandler) GetHandler(c *gin.Context) {
	credentialID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleErrorGin(c, credentialDomain.ErrCredentialNotFound, h.logger)
		return
	}

	credential, err := h.credentialUseCase.Get(c.Request.Context(), credentialID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	httputil.MakeJSONResponse(c, http.StatusOK, dto.MapCredentialToResponse(credential))
}

// ListHandler retrieves credentials with pagination and an optional
// employee_id filter.
// GET /v1/credentials?employee_id=<uuid> - Requires view on the issuance area.
func (h *CredentialHandler) ListHandler(c *gin.Context) {
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	var employeeID *uuid.UUID
	if raw := c.Query("employee_id"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			httputil.HandleErrorGin(c, apperrors.Wrap(apperrors.ErrInvalidInput, "invalid employee_id"), h.logger)
			return
		}
		employeeID = &parsed
	}

	credentials, err := h.credentialUseCase.List(c.Request.Context(), offset, limit, employeeID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	httputil.MakeJSONResponse(c, http.StatusOK, dto.MapCredentialsToListResponse(credentials))
}

// TransitionHandler advances a credential along one edge of the lifecycle.
// POST /v1/credentials/:id/transition - The use case validates the edge,
// authorizes the actor for the edge's required action, and applies the swap
// with a per-record compare-and-swap.
//
// Error responses keep the three failure categories distinguishable:
//   - 409 invalid_transition: the edge is not legal from the current status
//   - 403 forbidden: the edge is legal but the role lacks the action
//   - 404 not_found: the record does not exist
func (h *CredentialHandler) TransitionHandler(c *gin.Context) {
	operator, ok := operatorHTTP.GetOperator(c.Request.Context())
	if !ok || operator == nil {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	credentialID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleErrorGin(c, credentialDomain.ErrCredentialNotFound, h.logger)
		return
	}

	var req dto.TransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	credential, err := h.credentialUseCase.RequestTransition(
		c.Request.Context(),
		operator.ID,
		operator.RoleID,
		credentialID,
		credentialDomain.Status(req.Status),
	)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	httputil.MakeJSONResponse(c, http.StatusOK, dto.MapCredentialToResponse(credential))
}

// DeleteHandler hard-removes a credential record outside the state machine.
// DELETE /v1/credentials/:id - The use case requires delete on the issuance area.
// Returns 204 No Content.
func (h *CredentialHandler) DeleteHandler(c *gin.Context) {
	operator, ok := operatorHTTP.GetOperator(c.Request.Context())
	if !ok || operator == nil {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	credentialID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleErrorGin(c, credentialDomain.ErrCredentialNotFound, h.logger)
		return
	}

	if err := h.credentialUseCase.Delete(c.Request.Context(), operator.ID, operator.RoleID, credentialID); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}
