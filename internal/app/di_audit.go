package app

import (
	"sync"

	auditRepository "github.com/badgeops/badgeops/internal/audit/repository"
	auditUsecase "github.com/badgeops/badgeops/internal/audit/usecase"
)

// auditComponents holds the audit module wiring.
type auditComponents struct {
	useCaseInit sync.Once
	useCase     auditUsecase.AuditUseCase
}

// AuditUseCase returns the audit use case: the sink gated operations report
// into plus the review queries.
func (c *Container) AuditUseCase() (auditUsecase.AuditUseCase, error) {
	c.auditComponents.useCaseInit.Do(func() {
		db, err := c.DB()
		if err != nil {
			c.initErrors["auditUseCase"] = err
			return
		}

		var eventRepo auditUsecase.EventRepository
		if c.config.DBDriver == "mysql" {
			eventRepo = auditRepository.NewMySQLEventRepository(db)
		} else {
			eventRepo = auditRepository.NewPostgreSQLEventRepository(db)
		}

		c.auditComponents.useCase = auditUsecase.NewAuditUseCase(eventRepo, c.Logger())
	})
	if storedErr, exists := c.initErrors["auditUseCase"]; exists {
		return nil, storedErr
	}
	return c.auditComponents.useCase, nil
}
