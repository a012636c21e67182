package app

import (
	"sync"

	accessRepository "github.com/badgeops/badgeops/internal/access/repository"
	accessService "github.com/badgeops/badgeops/internal/access/service"
	accessUsecase "github.com/badgeops/badgeops/internal/access/usecase"
)

// accessComponents holds the access control module wiring.
type accessComponents struct {
	reposInit  sync.Once
	roleRepo   accessUsecase.RoleRepository
	matrixRepo accessUsecase.MatrixRepository

	cacheInit sync.Once
	cache     accessService.MatrixCache

	gateInit sync.Once
	gate     accessUsecase.AccessGate

	matrixUseCaseInit sync.Once
	matrixUseCase     accessUsecase.MatrixUseCase
}

// initAccessRepositories selects repository implementations for the configured driver.
func (c *Container) initAccessRepositories() error {
	var initErr error
	c.accessComponents.reposInit.Do(func() {
		db, err := c.DB()
		if err != nil {
			initErr = err
			return
		}

		if c.config.DBDriver == "mysql" {
			c.accessComponents.roleRepo = accessRepository.NewMySQLRoleRepository(db)
			c.accessComponents.matrixRepo = accessRepository.NewMySQLMatrixRepository(db)
		} else {
			c.accessComponents.roleRepo = accessRepository.NewPostgreSQLRoleRepository(db)
			c.accessComponents.matrixRepo = accessRepository.NewPostgreSQLMatrixRepository(db)
		}
	})
	if initErr != nil {
		c.initErrors["accessRepositories"] = initErr
	}
	if storedErr, exists := c.initErrors["accessRepositories"]; exists {
		return storedErr
	}
	return nil
}

// MatrixCache returns the in-memory matrix snapshot cache shared by the gate
// and the matrix use case. The TTL bounds how long a matrix written by
// another process can stay invisible to this instance's gate.
func (c *Container) MatrixCache() accessService.MatrixCache {
	c.accessComponents.cacheInit.Do(func() {
		c.accessComponents.cache = accessService.NewMatrixCache(c.config.MatrixCacheTTL)
	})
	return c.accessComponents.cache
}

// AccessGate returns the authorization gate every protected operation consults.
func (c *Container) AccessGate() (accessUsecase.AccessGate, error) {
	c.accessComponents.gateInit.Do(func() {
		if err := c.initAccessRepositories(); err != nil {
			c.initErrors["accessGate"] = err
			return
		}

		auditUseCase, err := c.AuditUseCase()
		if err != nil {
			c.initErrors["accessGate"] = err
			return
		}

		gate := accessUsecase.NewAccessGate(
			c.accessComponents.matrixRepo,
			c.MatrixCache(),
			auditUseCase,
		)

		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			c.initErrors["accessGate"] = err
			return
		}
		if businessMetrics != nil {
			gate = accessUsecase.NewAccessGateWithMetrics(gate, businessMetrics)
		}

		c.accessComponents.gate = gate
	})
	if storedErr, exists := c.initErrors["accessGate"]; exists {
		return nil, storedErr
	}
	return c.accessComponents.gate, nil
}

// MatrixUseCase returns the role and matrix administration use case.
func (c *Container) MatrixUseCase() (accessUsecase.MatrixUseCase, error) {
	c.accessComponents.matrixUseCaseInit.Do(func() {
		if err := c.initAccessRepositories(); err != nil {
			c.initErrors["matrixUseCase"] = err
			return
		}

		auditUseCase, err := c.AuditUseCase()
		if err != nil {
			c.initErrors["matrixUseCase"] = err
			return
		}

		txManager, err := c.TxManager()
		if err != nil {
			c.initErrors["matrixUseCase"] = err
			return
		}

		c.accessComponents.matrixUseCase = accessUsecase.NewMatrixUseCase(
			c.accessComponents.roleRepo,
			c.accessComponents.matrixRepo,
			c.MatrixCache(),
			auditUseCase,
			txManager,
		)
	})
	if storedErr, exists := c.initErrors["matrixUseCase"]; exists {
		return nil, storedErr
	}
	return c.accessComponents.matrixUseCase, nil
}
