package app

import (
	"sync"

	credentialRepository "github.com/badgeops/badgeops/internal/credential/repository"
	credentialService "github.com/badgeops/badgeops/internal/credential/service"
	credentialUsecase "github.com/badgeops/badgeops/internal/credential/usecase"
)

// credentialComponents holds the credential module wiring.
type credentialComponents struct {
	repoInit       sync.Once
	credentialRepo credentialUsecase.CredentialRepository

	codeServiceInit sync.Once
	codeService     credentialService.CodeService

	useCaseInit sync.Once
	useCase     credentialUsecase.CredentialUseCase

	verificationInit sync.Once
	verification     credentialUsecase.VerificationUseCase
}

// initCredentialRepository selects the repository implementation for the configured driver.
func (c *Container) initCredentialRepository() error {
	var initErr error
	c.credentialComponents.repoInit.Do(func() {
		db, err := c.DB()
		if err != nil {
			initErr = err
			return
		}

		if c.config.DBDriver == "mysql" {
			c.credentialComponents.credentialRepo = credentialRepository.NewMySQLCredentialRepository(db)
		} else {
			c.credentialComponents.credentialRepo = credentialRepository.NewPostgreSQLCredentialRepository(db)
		}
	})
	if initErr != nil {
		c.initErrors["credentialRepository"] = initErr
	}
	if storedErr, exists := c.initErrors["credentialRepository"]; exists {
		return storedErr
	}
	return nil
}

// CodeService returns the verification code generator.
func (c *Container) CodeService() credentialService.CodeService {
	c.credentialComponents.codeServiceInit.Do(func() {
		c.credentialComponents.codeService = credentialService.NewCodeService()
	})
	return c.credentialComponents.codeService
}

// CredentialUseCase returns the gated credential lifecycle use case.
func (c *Container) CredentialUseCase() (credentialUsecase.CredentialUseCase, error) {
	c.credentialComponents.useCaseInit.Do(func() {
		if err := c.initCredentialRepository(); err != nil {
			c.initErrors["credentialUseCase"] = err
			return
		}

		gate, err := c.AccessGate()
		if err != nil {
			c.initErrors["credentialUseCase"] = err
			return
		}

		auditUseCase, err := c.AuditUseCase()
		if err != nil {
			c.initErrors["credentialUseCase"] = err
			return
		}

		useCase := credentialUsecase.NewCredentialUseCase(
			c.config,
			c.credentialComponents.credentialRepo,
			c.CodeService(),
			gate,
			auditUseCase,
		)

		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			c.initErrors["credentialUseCase"] = err
			return
		}
		if businessMetrics != nil {
			useCase = credentialUsecase.NewCredentialUseCaseWithMetrics(useCase, businessMetrics)
		}

		c.credentialComponents.useCase = useCase
	})
	if storedErr, exists := c.initErrors["credentialUseCase"]; exists {
		return nil, storedErr
	}
	return c.credentialComponents.useCase, nil
}

// VerificationUseCase returns the public verify-by-code use case.
func (c *Container) VerificationUseCase() (credentialUsecase.VerificationUseCase, error) {
	c.credentialComponents.verificationInit.Do(func() {
		if err := c.initCredentialRepository(); err != nil {
			c.initErrors["verificationUseCase"] = err
			return
		}

		verification := credentialUsecase.NewVerificationUseCase(c.credentialComponents.credentialRepo)

		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			c.initErrors["verificationUseCase"] = err
			return
		}
		if businessMetrics != nil {
			verification = credentialUsecase.NewVerificationUseCaseWithMetrics(verification, businessMetrics)
		}

		c.credentialComponents.verification = verification
	})
	if storedErr, exists := c.initErrors["verificationUseCase"]; exists {
		return nil, storedErr
	}
	return c.credentialComponents.verification, nil
}
