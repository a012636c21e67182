package http

import (
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "github.com/badgeops/badgeops/internal/errors"
	"github.com/badgeops/badgeops/internal/httputil"
	operatorUseCase "github.com/badgeops/badgeops/internal/operator/usecase"
)

// AuthenticationMiddleware provides authentication via Bearer session token
// in the Authorization header.
//
// The middleware:
// 1. Extracts the Bearer token from the Authorization header (case-insensitive)
// 2. Resolves the token to an active operator via sessionUseCase.Authenticate()
// 3. Stores the authenticated operator in the request context
// 4. Allows downstream handlers to access the operator via GetOperator()
//
// Authorization header format: "Bearer <token>" (case-insensitive "bearer")
//
// Error handling:
//   - Missing Authorization header → 401 Unauthorized
//   - Malformed Authorization header → 401 Unauthorized
//   - Invalid/expired/revoked session → 401 Unauthorized (from SessionUseCase.Authenticate)
//   - Deactivated operator → 401 Unauthorized (from SessionUseCase.Authenticate)
//   - Other errors → 500 Internal Server Error
func AuthenticationMiddleware(
	sessionUseCase operatorUseCase.SessionUseCase,
	logger *slog.Logger,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.Debug("authentication failed: missing authorization header")
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		// Parse Bearer token (case-insensitive)
		const bearerPrefix = "bearer "
		if len(authHeader) < len(bearerPrefix) ||
			!strings.EqualFold(authHeader[:len(bearerPrefix)], bearerPrefix) {
			logger.Debug("authentication failed: malformed authorization header")
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		plainToken := authHeader[len(bearerPrefix):]
		if plainToken == "" {
			logger.Debug("authentication failed: empty bearer token")
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		operator, err := sessionUseCase.Authenticate(c.Request.Context(), plainToken)
		if err != nil {
			logger.Debug("authentication failed",
				slog.String("error", err.Error()))
			httputil.HandleErrorGin(c, err, logger)
			c.Abort()
			return
		}

		// Store authenticated operator in context
		ctx := WithOperator(c.Request.Context(), operator)
		c.Request = c.Request.WithContext(ctx)

		logger.Debug("authentication successful",
			slog.String("operator_id", operator.ID.String()),
			slog.String("role_id", operator.RoleID.String()))

		c.Next()
	}
}
