// Package http provides HTTP handlers for audit log review.
package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/badgeops/badgeops/internal/audit/http/dto"
	auditUseCase "github.com/badgeops/badgeops/internal/audit/usecase"
	apperrors "github.com/badgeops/badgeops/internal/errors"
	"github.com/badgeops/badgeops/internal/httputil"
)

// AuditLogHandler handles HTTP requests for audit log review.
type AuditLogHandler struct {
	auditUseCase auditUseCase.AuditUseCase
	logger       *slog.Logger
}

// NewAuditLogHandler creates a new audit log handler with required dependencies.
func NewAuditLogHandler(
	auditUseCase auditUseCase.AuditUseCase,
	logger *slog.Logger,
) *AuditLogHandler {
	return &AuditLogHandler{
		auditUseCase: auditUseCase,
		logger:       logger,
	}
}

// ListHandler retrieves audit events newest first, with pagination and
// optional created_at_from / created_at_to RFC 3339 filters.
// GET /v1/audit-logs - Requires view on the audit-log area.
func (h *AuditLogHandler) ListHandler(c *gin.Context) {
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	createdAtFrom, err := parseTimeQuery(c, "created_at_from")
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	createdAtTo, err := parseTimeQuery(c, "created_at_to")
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	events, err := h.auditUseCase.List(c.Request.Context(), offset, limit, createdAtFrom, createdAtTo)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	httputil.MakeJSONResponse(c, http.StatusOK, dto.MapEventsToListResponse(events))
}

// parseTimeQuery parses an optional RFC 3339 time query parameter.
// Returns nil when the parameter is absent.
func parseTimeQuery(c *gin.Context, name string) (*time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}

	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, name+" must be an RFC 3339 timestamp")
	}
	return &parsed, nil
}
