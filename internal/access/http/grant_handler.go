package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	accessDomain "github.com/badgeops/badgeops/internal/access/domain"
	"github.com/badgeops/badgeops/internal/access/http/dto"
	accessUseCase "github.com/badgeops/badgeops/internal/access/usecase"
	apperrors "github.com/badgeops/badgeops/internal/errors"
	"github.com/badgeops/badgeops/internal/httputil"
	operatorHTTP "github.com/badgeops/badgeops/internal/operator/http"
)

// GrantHandler answers affordance queries for the authenticated operator: the
// UI reads grants to decide which menus and buttons to render. Answers are
// advisory; the authoritative gate check still runs when an operation executes.
type GrantHandler struct {
	gate   accessUseCase.AccessGate
	logger *slog.Logger
}

// NewGrantHandler creates a new grant handler with required dependencies.
func NewGrantHandler(
	gate accessUseCase.AccessGate,
	logger *slog.Logger,
) *GrantHandler {
	return &GrantHandler{
		gate:   gate,
		logger: logger,
	}
}

// GrantsHandler returns the full matrix for the operator's role so the UI can
// render every affordance in one read. A role with no stored matrix yields an
// empty matrix, not an error.
// GET /v1/grants - Requires authentication only.
func (h *GrantHandler) GrantsHandler(c *gin.Context) {
	operator, ok := operatorHTTP.GetOperator(c.Request.Context())
	if !ok || operator == nil {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	matrix, err := h.gate.Grants(c.Request.Context(), operator.RoleID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	httputil.MakeJSONResponse(c, http.StatusOK, dto.MapMatrixToResponse(matrix))
}

// CheckHandler answers a single grant question without recording a decision.
// GET /v1/grants/check?area=<title>&action=<action> - Requires authentication only.
func (h *GrantHandler) CheckHandler(c *gin.Context) {
	operator, ok := operatorHTTP.GetOperator(c.Request.Context())
	if !ok || operator == nil {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	area := c.Query("area")
	action := c.Query("action")
	if area == "" || action == "" {
		httputil.HandleErrorGin(c,
			apperrors.Wrap(apperrors.ErrInvalidInput, "area and action query parameters are required"),
			h.logger)
		return
	}

	allowed, err := h.gate.Check(c.Request.Context(), operator.RoleID, area, accessDomain.Action(action))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	httputil.MakeJSONResponse(c, http.StatusOK, dto.CheckGrantResponse{
		Area:    area,
		Action:  action,
		Allowed: allowed,
	})
}
