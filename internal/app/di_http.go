package app

import (
	"go.opentelemetry.io/otel/metric"

	accessHTTP "github.com/badgeops/badgeops/internal/access/http"
	auditHTTP "github.com/badgeops/badgeops/internal/audit/http"
	credentialHTTP "github.com/badgeops/badgeops/internal/credential/http"
	employeeHTTP "github.com/badgeops/badgeops/internal/employee/http"
	"github.com/badgeops/badgeops/internal/http"
	operatorHTTP "github.com/badgeops/badgeops/internal/operator/http"
	templateHTTP "github.com/badgeops/badgeops/internal/template/http"
)

// initHTTPServer assembles the handler graph and wraps it in the API server.
func (c *Container) initHTTPServer() (*http.Server, error) {
	logger := c.Logger()

	sessionUseCase, err := c.SessionUseCase()
	if err != nil {
		return nil, err
	}
	operatorUseCase, err := c.OperatorUseCase()
	if err != nil {
		return nil, err
	}
	gate, err := c.AccessGate()
	if err != nil {
		return nil, err
	}
	matrixUseCase, err := c.MatrixUseCase()
	if err != nil {
		return nil, err
	}
	credentialUseCase, err := c.CredentialUseCase()
	if err != nil {
		return nil, err
	}
	verificationUseCase, err := c.VerificationUseCase()
	if err != nil {
		return nil, err
	}
	employeeUseCase, err := c.EmployeeUseCase()
	if err != nil {
		return nil, err
	}
	templateUseCase, err := c.TemplateUseCase()
	if err != nil {
		return nil, err
	}
	auditUseCase, err := c.AuditUseCase()
	if err != nil {
		return nil, err
	}

	var meterProvider metric.MeterProvider
	if provider, err := c.MetricsProvider(); err != nil {
		return nil, err
	} else if provider != nil {
		meterProvider = provider.MeterProvider()
	}

	router := http.NewRouter(http.RouterDeps{
		Config:         c.config,
		Logger:         logger,
		Authentication: operatorHTTP.AuthenticationMiddleware(sessionUseCase, logger),
		Gate:           gate,
		MeterProvider:  meterProvider,

		SessionHandler:    operatorHTTP.NewSessionHandler(sessionUseCase, logger),
		OperatorHandler:   operatorHTTP.NewOperatorHandler(operatorUseCase, logger),
		RoleHandler:       accessHTTP.NewRoleHandler(matrixUseCase, logger),
		MatrixHandler:     accessHTTP.NewMatrixHandler(matrixUseCase, logger),
		GrantHandler:      accessHTTP.NewGrantHandler(gate, logger),
		CredentialHandler: credentialHTTP.NewCredentialHandler(credentialUseCase, logger),
		VerifyHandler:     credentialHTTP.NewVerifyHandler(verificationUseCase, logger),
		EmployeeHandler:   employeeHTTP.NewEmployeeHandler(employeeUseCase, logger),
		TemplateHandler:   templateHTTP.NewTemplateHandler(templateUseCase, logger),
		AuditLogHandler:   auditHTTP.NewAuditLogHandler(auditUseCase, logger),
	})

	return http.NewServer(c.config.ServerHost, c.config.ServerPort, router, logger), nil
}
