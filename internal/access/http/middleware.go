// Package http provides HTTP middleware and handlers for access control:
// role administration, matrix replacement and grant affordance queries.
package http

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	accessDomain "github.com/badgeops/badgeops/internal/access/domain"
	accessUseCase "github.com/badgeops/badgeops/internal/access/usecase"
	apperrors "github.com/badgeops/badgeops/internal/errors"
	"github.com/badgeops/badgeops/internal/httputil"
	operatorHTTP "github.com/badgeops/badgeops/internal/operator/http"
)

// RequireAction authorizes the authenticated operator's role for one action on
// one capability area before the handler runs. This is the single choke point
// for route-level permissions: every decision goes through the gate, which
// records it in the audit sink and fails closed.
//
// MUST be used after AuthenticationMiddleware (requires authenticated operator
// in context).
//
// Error handling:
//   - No operator in context → 401 Unauthorized (authentication middleware not run)
//   - Role does not grant the action → 403 Forbidden
//   - Gate lookup failure → 500 Internal Server Error
func RequireAction(
	gate accessUseCase.AccessGate,
	areaTitle string,
	action accessDomain.Action,
	logger *slog.Logger,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		operator, ok := operatorHTTP.GetOperator(c.Request.Context())
		if !ok || operator == nil {
			logger.Debug("authorization failed: no authenticated operator in context")
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		err := gate.Authorize(c.Request.Context(), operator.ID, operator.RoleID, areaTitle, action)
		if err != nil {
			logger.Debug("authorization failed",
				slog.String("operator_id", operator.ID.String()),
				slog.String("area", areaTitle),
				slog.String("action", string(action)),
				slog.String("error", err.Error()))
			httputil.HandleErrorGin(c, err, logger)
			c.Abort()
			return
		}

		logger.Debug("authorization successful",
			slog.String("operator_id", operator.ID.String()),
			slog.String("area", areaTitle),
			slog.String("action", string(action)))

		c.Next()
	}
}
