package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	accessDomain "github.com/badgeops/badgeops/internal/access/domain"
	"github.com/badgeops/badgeops/internal/access/http/dto"
	accessUseCase "github.com/badgeops/badgeops/internal/access/usecase"
	"github.com/badgeops/badgeops/internal/httputil"
	customValidation "github.com/badgeops/badgeops/internal/validation"
)

// RoleHandler handles HTTP requests for role administration.
type RoleHandler struct {
	matrixUseCase accessUseCase.MatrixUseCase
	logger        *slog.Logger
}

// NewRoleHandler creates a new role handler with required dependencies.
func NewRoleHandler(
	matrixUseCase accessUseCase.MatrixUseCase,
	logger *slog.Logger,
) *RoleHandler {
	return &RoleHandler{
		matrixUseCase: matrixUseCase,
		logger:        logger,
	}
}

// CreateHandler creates a new role with no matrix. Until a matrix is replaced
// in, the role denies every action.
// POST /v1/roles - Requires add on the role-management area.
// Returns 201 Created.
func (h *RoleHandler) CreateHandler(c *gin.Context) {
	var req dto.CreateRoleRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	role, err := h.matrixUseCase.CreateRole(c.Request.Context(), req.Name)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	httputil.MakeJSONResponse(c, http.StatusCreated, dto.MapRoleToResponse(role))
}

// GetHandler retrieves a role by ID.
// GET /v1/roles/:id - Requires view on the role-management area.
func (h *RoleHandler) GetHandler(c *gin.Context) {
	roleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleErrorGin(c, accessDomain.ErrRoleNotFound, h.logger)
		return
	}

	role, err := h.matrixUseCase.GetRole(c.Request.Context(), roleID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	httputil.MakeJSONResponse(c, http.StatusOK, dto.MapRoleToResponse(role))
}

// ListHandler retrieves roles with pagination.
// GET /v1/roles - Requires view on the role-management area.
func (h *RoleHandler) ListHandler(c *gin.Context) {
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	roles, err := h.matrixUseCase.ListRoles(c.Request.Context(), offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	httputil.MakeJSONResponse(c, http.StatusOK, dto.MapRolesToListResponse(roles))
}
