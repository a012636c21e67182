package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	accessDomain "github.com/badgeops/badgeops/internal/access/domain"
	"github.com/badgeops/badgeops/internal/access/http/dto"
	accessUseCase "github.com/badgeops/badgeops/internal/access/usecase"
	apperrors "github.com/badgeops/badgeops/internal/errors"
	"github.com/badgeops/badgeops/internal/httputil"
	operatorHTTP "github.com/badgeops/badgeops/internal/operator/http"
	customValidation "github.com/badgeops/badgeops/internal/validation"
)

// MatrixHandler handles HTTP requests for permission matrix administration.
type MatrixHandler struct {
	matrixUseCase accessUseCase.MatrixUseCase
	logger        *slog.Logger
}

// NewMatrixHandler creates a new matrix handler with required dependencies.
func NewMatrixHandler(
	matrixUseCase accessUseCase.MatrixUseCase,
	logger *slog.Logger,
) *MatrixHandler {
	return &MatrixHandler{
		matrixUseCase: matrixUseCase,
		logger:        logger,
	}
}

// GetHandler retrieves the stored matrix for a role.
// GET /v1/roles/:id/matrix - Requires view on the role-management area.
// Returns 404 when the role has no stored matrix.
func (h *MatrixHandler) GetHandler(c *gin.Context) {
	roleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleErrorGin(c, accessDomain.ErrRoleNotFound, h.logger)
		return
	}

	matrix, err := h.matrixUseCase.Get(c.Request.Context(), roleID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	httputil.MakeJSONResponse(c, http.StatusOK, dto.MapMatrixToResponse(matrix))
}

// ReplaceHandler swaps a role's entire grant set with the submitted areas.
// PUT /v1/roles/:id/matrix - Requires assign on the role-management area.
// Areas omitted from the request lose their grants: this is a wholesale
// replace, not a merge.
func (h *MatrixHandler) ReplaceHandler(c *gin.Context) {
	operator, ok := operatorHTTP.GetOperator(c.Request.Context())
	if !ok || operator == nil {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	roleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleErrorGin(c, accessDomain.ErrRoleNotFound, h.logger)
		return
	}

	var req dto.ReplaceMatrixRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	matrix, err := h.matrixUseCase.Replace(c.Request.Context(), operator.ID, roleID, dto.MapAreas(req.Areas))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	httputil.MakeJSONResponse(c, http.StatusOK, dto.MapMatrixToResponse(matrix))
}
