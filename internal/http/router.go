package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/metric"

	accessDomain "github.com/badgeops/badgeops/internal/access/domain"
	accessHTTP "github.com/badgeops/badgeops/internal/access/http"
	accessUseCase "github.com/badgeops/badgeops/internal/access/usecase"
	auditHTTP "github.com/badgeops/badgeops/internal/audit/http"
	"github.com/badgeops/badgeops/internal/config"
	credentialHTTP "github.com/badgeops/badgeops/internal/credential/http"
	employeeHTTP "github.com/badgeops/badgeops/internal/employee/http"
	"github.com/badgeops/badgeops/internal/httputil"
	"github.com/badgeops/badgeops/internal/metrics"
	operatorHTTP "github.com/badgeops/badgeops/internal/operator/http"
	templateHTTP "github.com/badgeops/badgeops/internal/template/http"
)

// RouterDeps holds everything the router needs to register routes: the gate
// that authorizes them, the handlers serving them, and the authentication
// middleware establishing the acting operator.
type RouterDeps struct {
	Config *config.Config
	Logger *slog.Logger

	// Authentication resolves the Bearer session token to an operator.
	Authentication gin.HandlerFunc

	// Gate authorizes route-level actions; nil disables RequireAction wiring
	// and is only acceptable in tests exercising public routes.
	Gate accessUseCase.AccessGate

	// MeterProvider enables per-request metrics when non-nil.
	MeterProvider metric.MeterProvider

	SessionHandler    *operatorHTTP.SessionHandler
	OperatorHandler   *operatorHTTP.OperatorHandler
	RoleHandler       *accessHTTP.RoleHandler
	MatrixHandler     *accessHTTP.MatrixHandler
	GrantHandler      *accessHTTP.GrantHandler
	CredentialHandler *credentialHTTP.CredentialHandler
	VerifyHandler     *credentialHTTP.VerifyHandler
	EmployeeHandler   *employeeHTTP.EmployeeHandler
	TemplateHandler   *templateHTTP.TemplateHandler
	AuditLogHandler   *auditHTTP.AuditLogHandler
}

// NewRouter assembles the Gin engine: ambient middleware, the public surface
// (login, verify, health) and the authenticated /v1 API with per-route
// authorization.
//
// Authorization has two layers. Collection-style admin areas (operators,
// employees, templates, roles, audit logs) are gated at the route with
// RequireAction. Credential lifecycle mutations are gated inside the use case
// instead, because the required action depends on the requested transition.
func NewRouter(deps RouterDeps) *gin.Engine {
	cfg := deps.Config
	logger := deps.Logger

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New())
	router.Use(CustomLoggerMiddleware(logger))

	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if cfg.MetricsEnabled && deps.MeterProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(deps.MeterProvider, cfg.MetricsNamespace))
	}

	// Health and readiness endpoints
	router.GET("/health", func(c *gin.Context) {
		httputil.MakeJSONResponse(c, http.StatusOK, gin.H{"status": "healthy"})
	})
	router.GET("/ready", func(c *gin.Context) {
		httputil.MakeJSONResponse(c, http.StatusOK, gin.H{"status": "ready"})
	})

	// Public surface: login (IP rate limited) and verify-by-code.
	login := router.Group("/v1")
	if cfg.RateLimitLoginEnabled {
		login.Use(operatorHTTP.LoginRateLimitMiddleware(
			cfg.RateLimitLoginRequestsPerSec,
			cfg.RateLimitLoginBurst,
			logger,
		))
	}
	login.POST("/login", deps.SessionHandler.LoginHandler)

	router.GET("/v1/verify/:code", deps.VerifyHandler.VerifyHandler)

	// Authenticated API.
	v1 := router.Group("/v1")
	v1.Use(deps.Authentication)
	if cfg.RateLimitEnabled {
		v1.Use(operatorHTTP.RateLimitMiddleware(cfg.RateLimitRequestsPerSec, cfg.RateLimitBurst, logger))
	}

	require := func(area string, action accessDomain.Action) gin.HandlerFunc {
		return accessHTTP.RequireAction(deps.Gate, area, action, logger)
	}

	v1.POST("/logout", deps.SessionHandler.LogoutHandler)

	// Affordance queries for the UI; authentication only.
	v1.GET("/grants", deps.GrantHandler.GrantsHandler)
	v1.GET("/grants/check", deps.GrantHandler.CheckHandler)

	// Role and matrix administration.
	v1.POST("/roles",
		require(accessDomain.AreaRoleManagement, accessDomain.ActionAdd),
		deps.RoleHandler.CreateHandler)
	v1.GET("/roles",
		require(accessDomain.AreaRoleManagement, accessDomain.ActionView),
		deps.RoleHandler.ListHandler)
	v1.GET("/roles/:id",
		require(accessDomain.AreaRoleManagement, accessDomain.ActionView),
		deps.RoleHandler.GetHandler)
	v1.GET("/roles/:id/matrix",
		require(accessDomain.AreaRoleManagement, accessDomain.ActionView),
		deps.MatrixHandler.GetHandler)
	v1.PUT("/roles/:id/matrix",
		require(accessDomain.AreaRoleManagement, accessDomain.ActionAssign),
		deps.MatrixHandler.ReplaceHandler)

	// Credential lifecycle. Reads are gated at the route; mutations authorize
	// inside the use case because the action depends on the transition.
	v1.POST("/credentials", deps.CredentialHandler.CreateHandler)
	v1.GET("/credentials",
		require(accessDomain.AreaCredentialIssuance, accessDomain.ActionView),
		deps.CredentialHandler.ListHandler)
	v1.GET("/credentials/:id",
		require(accessDomain.AreaCredentialIssuance, accessDomain.ActionView),
		deps.CredentialHandler.GetHandler)
	v1.POST("/credentials/:id/transition", deps.CredentialHandler.TransitionHandler)
	v1.DELETE("/credentials/:id", deps.CredentialHandler.DeleteHandler)

	// Employee directory.
	v1.POST("/employees",
		require(accessDomain.AreaEmployees, accessDomain.ActionAdd),
		deps.EmployeeHandler.CreateHandler)
	v1.GET("/employees",
		require(accessDomain.AreaEmployees, accessDomain.ActionView),
		deps.EmployeeHandler.ListHandler)
	v1.GET("/employees/:id",
		require(accessDomain.AreaEmployees, accessDomain.ActionView),
		deps.EmployeeHandler.GetHandler)
	v1.PUT("/employees/:id",
		require(accessDomain.AreaEmployees, accessDomain.ActionEdit),
		deps.EmployeeHandler.UpdateHandler)
	v1.DELETE("/employees/:id",
		require(accessDomain.AreaEmployees, accessDomain.ActionDelete),
		deps.EmployeeHandler.DeleteHandler)

	// Card templates.
	v1.POST("/templates",
		require(accessDomain.AreaTemplates, accessDomain.ActionAdd),
		deps.TemplateHandler.CreateHandler)
	v1.GET("/templates",
		require(accessDomain.AreaTemplates, accessDomain.ActionView),
		deps.TemplateHandler.ListHandler)
	v1.GET("/templates/:id",
		require(accessDomain.AreaTemplates, accessDomain.ActionView),
		deps.TemplateHandler.GetHandler)
	v1.PUT("/templates/:id",
		require(accessDomain.AreaTemplates, accessDomain.ActionEdit),
		deps.TemplateHandler.UpdateHandler)
	v1.DELETE("/templates/:id",
		require(accessDomain.AreaTemplates, accessDomain.ActionDelete),
		deps.TemplateHandler.DeleteHandler)

	// Operator accounts.
	v1.POST("/operators",
		require(accessDomain.AreaOperators, accessDomain.ActionAdd),
		deps.OperatorHandler.CreateHandler)
	v1.GET("/operators",
		require(accessDomain.AreaOperators, accessDomain.ActionView),
		deps.OperatorHandler.ListHandler)
	v1.GET("/operators/:id",
		require(accessDomain.AreaOperators, accessDomain.ActionView),
		deps.OperatorHandler.GetHandler)
	v1.PUT("/operators/:id",
		require(accessDomain.AreaOperators, accessDomain.ActionEdit),
		deps.OperatorHandler.UpdateHandler)
	v1.POST("/operators/:id/unlock",
		require(accessDomain.AreaOperators, accessDomain.ActionEdit),
		deps.OperatorHandler.UnlockHandler)
	v1.DELETE("/operators/:id",
		require(accessDomain.AreaOperators, accessDomain.ActionDelete),
		deps.OperatorHandler.DeactivateHandler)

	// Audit log review.
	v1.GET("/audit-logs",
		require(accessDomain.AreaAuditLogs, accessDomain.ActionView),
		deps.AuditLogHandler.ListHandler)

	return router
}
