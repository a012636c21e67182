// Package http provides HTTP handlers for card template administration.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/badgeops/badgeops/internal/httputil"
	templateDomain "github.com/badgeops/badgeops/internal/template/domain"
	"github.com/badgeops/badgeops/internal/template/http/dto"
	templateUseCase "github.com/badgeops/badgeops/internal/template/usecase"
	customValidation "github.com/badgeops/badgeops/internal/validation"
)

// TemplateHandler handles HTTP requests for card template administration.
// Route-level authorization against the template area is applied by the router.
type TemplateHandler struct {
	templateUseCase templateUseCase.TemplateUseCase
	logger          *slog.Logger
}

// NewTemplateHandler creates a new template handler with required dependencies.
func NewTemplateHandler(
	templateUseCase templateUseCase.TemplateUseCase,
	logger *slog.Logger,
) *TemplateHandler {
	return &TemplateHandler{
		templateUseCase: templateUseCase,
		logger:          logger,
	}
}

// CreateHandler stores a new card layout.
// POST /v1/templates - Requires add on the template area.
// Returns 201 Created.
func (h *TemplateHandler) CreateHandler(c *gin.Context) {
	var req dto.CreateTemplateRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	input := &templateUseCase.CreateTemplateInput{
		Name:      req.Name,
		Layout:    req.Layout,
		IsDefault: req.IsDefault,
	}

	template, err := h.templateUseCase.Create(c.Request.Context(), input)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	httputil.MakeJSONResponse(c, http.StatusCreated, dto.MapTemplateToResponse(template))
}

// GetHandler retrieves a template by ID.
// GET /v1/templates/:id - Requires view on the template area.
func (h *TemplateHandler) GetHandler(c *gin.Context) {
	templateID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleErrorGin(c, templateDomain.ErrTemplateNotFound, h.logger)
		return
	}

	template, err := h.templateUseCase.Get(c.Request.Context(), templateID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	httputil.MakeJSONResponse(c, http.StatusOK, dto.MapTemplateToResponse(template))
}

// ListHandler retrieves templates with pagination.
// GET /v1/templates - Requires view on the template area.
func (h *TemplateHandler) ListHandler(c *gin.Context) {
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	templates, err := h.templateUseCase.List(c.Request.Context(), offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	httputil.MakeJSONResponse(c, http.StatusOK, dto.MapTemplatesToListResponse(templates))
}

// UpdateHandler modifies a card layout.
// PUT /v1/templates/:id - Requires edit on the template area.
func (h *TemplateHandler) UpdateHandler(c *gin.Context) {
	templateID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleErrorGin(c, templateDomain.ErrTemplateNotFound, h.logger)
		return
	}

	var req dto.UpdateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	input := &templateUseCase.UpdateTemplateInput{
		Name:      req.Name,
		Layout:    req.Layout,
		IsDefault: req.IsDefault,
	}

	template, err := h.templateUseCase.Update(c.Request.Context(), templateID, input)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	httputil.MakeJSONResponse(c, http.StatusOK, dto.MapTemplateToResponse(template))
}

// DeleteHandler removes a card layout.
// DELETE /v1/templates/:id - Requires delete on the template area.
// Returns 204 No Content.
func (h *TemplateHandler) DeleteHandler(c *gin.Context) {
	templateID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleErrorGin(c, templateDomain.ErrTemplateNotFound, h.logger)
		return
	}

	if err := h.templateUseCase.Delete(c.Request.Context(), templateID); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}
