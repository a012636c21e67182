package app

import (
	"sync"

	operatorRepository "github.com/badgeops/badgeops/internal/operator/repository"
	operatorService "github.com/badgeops/badgeops/internal/operator/service"
	operatorUsecase "github.com/badgeops/badgeops/internal/operator/usecase"
)

// operatorComponents holds the operator module wiring.
type operatorComponents struct {
	reposInit    sync.Once
	operatorRepo operatorUsecase.OperatorRepository
	sessionRepo  operatorUsecase.SessionRepository

	servicesInit    sync.Once
	passwordService operatorService.PasswordService
	tokenService    operatorService.SessionTokenService

	operatorUseCaseInit sync.Once
	operatorUseCase     operatorUsecase.OperatorUseCase

	sessionUseCaseInit sync.Once
	sessionUseCase     operatorUsecase.SessionUseCase
}

// initOperatorRepositories selects repository implementations for the configured driver.
func (c *Container) initOperatorRepositories() error {
	var initErr error
	c.operatorComponents.reposInit.Do(func() {
		db, err := c.DB()
		if err != nil {
			initErr = err
			return
		}

		if c.config.DBDriver == "mysql" {
			c.operatorComponents.operatorRepo = operatorRepository.NewMySQLOperatorRepository(db)
			c.operatorComponents.sessionRepo = operatorRepository.NewMySQLSessionRepository(db)
		} else {
			c.operatorComponents.operatorRepo = operatorRepository.NewPostgreSQLOperatorRepository(db)
			c.operatorComponents.sessionRepo = operatorRepository.NewPostgreSQLSessionRepository(db)
		}
	})
	if initErr != nil {
		c.initErrors["operatorRepositories"] = initErr
	}
	if storedErr, exists := c.initErrors["operatorRepositories"]; exists {
		return storedErr
	}
	return nil
}

// initOperatorServices creates the password hashing and session token services.
func (c *Container) initOperatorServices() {
	c.operatorComponents.servicesInit.Do(func() {
		c.operatorComponents.passwordService = operatorService.NewPasswordService()
		c.operatorComponents.tokenService = operatorService.NewSessionTokenService()
	})
}

// OperatorUseCase returns the operator account administration use case.
func (c *Container) OperatorUseCase() (operatorUsecase.OperatorUseCase, error) {
	c.operatorComponents.operatorUseCaseInit.Do(func() {
		if err := c.initOperatorRepositories(); err != nil {
			c.initErrors["operatorUseCase"] = err
			return
		}
		c.initOperatorServices()

		c.operatorComponents.operatorUseCase = operatorUsecase.NewOperatorUseCase(
			c.operatorComponents.operatorRepo,
			c.operatorComponents.passwordService,
		)
	})
	if storedErr, exists := c.initErrors["operatorUseCase"]; exists {
		return nil, storedErr
	}
	return c.operatorComponents.operatorUseCase, nil
}

// SessionUseCase returns the login and request-authentication use case.
func (c *Container) SessionUseCase() (operatorUsecase.SessionUseCase, error) {
	c.operatorComponents.sessionUseCaseInit.Do(func() {
		if err := c.initOperatorRepositories(); err != nil {
			c.initErrors["sessionUseCase"] = err
			return
		}
		c.initOperatorServices()

		c.operatorComponents.sessionUseCase = operatorUsecase.NewSessionUseCase(
			c.config,
			c.operatorComponents.operatorRepo,
			c.operatorComponents.sessionRepo,
			c.operatorComponents.passwordService,
			c.operatorComponents.tokenService,
		)
	})
	if storedErr, exists := c.initErrors["sessionUseCase"]; exists {
		return nil, storedErr
	}
	return c.operatorComponents.sessionUseCase, nil
}

// SessionRepository returns the session repository for maintenance commands.
func (c *Container) SessionRepository() (operatorUsecase.SessionRepository, error) {
	if err := c.initOperatorRepositories(); err != nil {
		return nil, err
	}
	return c.operatorComponents.sessionRepo, nil
}
