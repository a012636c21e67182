package app

import (
	"sync"

	employeeRepository "github.com/badgeops/badgeops/internal/employee/repository"
	employeeUsecase "github.com/badgeops/badgeops/internal/employee/usecase"
	templateRepository "github.com/badgeops/badgeops/internal/template/repository"
	templateUsecase "github.com/badgeops/badgeops/internal/template/usecase"
)

// directoryComponents holds the employee directory and card template wiring.
type directoryComponents struct {
	employeeUseCaseInit sync.Once
	employeeUseCase     employeeUsecase.EmployeeUseCase

	templateUseCaseInit sync.Once
	templateUseCase     templateUsecase.TemplateUseCase
}

// EmployeeUseCase returns the employee directory use case.
func (c *Container) EmployeeUseCase() (employeeUsecase.EmployeeUseCase, error) {
	c.directoryComponents.employeeUseCaseInit.Do(func() {
		db, err := c.DB()
		if err != nil {
			c.initErrors["employeeUseCase"] = err
			return
		}

		var employeeRepo employeeUsecase.EmployeeRepository
		if c.config.DBDriver == "mysql" {
			employeeRepo = employeeRepository.NewMySQLEmployeeRepository(db)
		} else {
			employeeRepo = employeeRepository.NewPostgreSQLEmployeeRepository(db)
		}

		c.directoryComponents.employeeUseCase = employeeUsecase.NewEmployeeUseCase(employeeRepo)
	})
	if storedErr, exists := c.initErrors["employeeUseCase"]; exists {
		return nil, storedErr
	}
	return c.directoryComponents.employeeUseCase, nil
}

// TemplateUseCase returns the card template administration use case.
func (c *Container) TemplateUseCase() (templateUsecase.TemplateUseCase, error) {
	c.directoryComponents.templateUseCaseInit.Do(func() {
		db, err := c.DB()
		if err != nil {
			c.initErrors["templateUseCase"] = err
			return
		}

		var templateRepo templateUsecase.TemplateRepository
		if c.config.DBDriver == "mysql" {
			templateRepo = templateRepository.NewMySQLTemplateRepository(db)
		} else {
			templateRepo = templateRepository.NewPostgreSQLTemplateRepository(db)
		}

		c.directoryComponents.templateUseCase = templateUsecase.NewTemplateUseCase(templateRepo)
	})
	if storedErr, exists := c.initErrors["templateUseCase"]; exists {
		return nil, storedErr
	}
	return c.directoryComponents.templateUseCase, nil
}
