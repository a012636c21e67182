package http

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/badgeops/badgeops/internal/httputil"
	"github.com/badgeops/badgeops/internal/operator/http/dto"
	operatorUseCase "github.com/badgeops/badgeops/internal/operator/usecase"
	customValidation "github.com/badgeops/badgeops/internal/validation"
)

// SessionHandler handles HTTP requests for operator login and logout.
type SessionHandler struct {
	sessionUseCase operatorUseCase.SessionUseCase
	logger         *slog.Logger
}

// NewSessionHandler creates a new session handler with required dependencies.
func NewSessionHandler(
	sessionUseCase operatorUseCase.SessionUseCase,
	logger *slog.Logger,
) *SessionHandler {
	return &SessionHandler{
		sessionUseCase: sessionUseCase,
		logger:         logger,
	}
}

// LoginHandler authenticates an operator and issues a session token.
// POST /v1/login - Unauthenticated, rate limited per IP.
// Returns 200 OK with the plain session token (returned once, never stored).
func (h *SessionHandler) LoginHandler(c *gin.Context) {
	var req dto.LoginRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	output, err := h.sessionUseCase.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	httputil.MakeJSONResponse(c, http.StatusOK, dto.MapLoginToResponse(output))
}

// LogoutHandler revokes the session behind the presented Bearer token.
// POST /v1/logout - Requires authentication. Idempotent.
// Returns 204 No Content.
func (h *SessionHandler) LogoutHandler(c *gin.Context) {
	plainToken := bearerToken(c)
	if plainToken == "" {
		// Authentication middleware already validated the header, so this
		// only happens when the route is wired without it.
		c.Status(http.StatusNoContent)
		return
	}

	if err := h.sessionUseCase.Logout(c.Request.Context(), plainToken); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}

// bearerToken extracts the Bearer token from the Authorization header.
// Returns "" when the header is missing or malformed.
func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	const bearerPrefix = "bearer "
	if len(authHeader) < len(bearerPrefix) ||
		!strings.EqualFold(authHeader[:len(bearerPrefix)], bearerPrefix) {
		return ""
	}
	return authHeader[len(bearerPrefix):]
}
