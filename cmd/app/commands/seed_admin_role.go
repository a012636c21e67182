package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	accessDomain "github.com/badgeops/badgeops/internal/access/domain"
	"github.com/badgeops/badgeops/internal/app"
	"github.com/badgeops/badgeops/internal/config"
)

// RunSeedAdminRole creates a role and replaces in a matrix granting every
// action on every well-known area. Used for bootstrap: roles and matrices are
// normally administered through the API, but the first operator needs a role
// that can reach it.
//
// The audit event for the replace records the nil actor, marking it as a
// system-initiated mutation.
func RunSeedAdminRole(ctx context.Context, name string) error {
	if name == "" {
		return fmt.Errorf("name is required")
	}

	cfg := config.Load()
	container := app.NewContainer(cfg)

	logger := container.Logger()
	logger.Info("seeding admin role", slog.String("name", name))

	defer closeContainer(container, logger)

	matrixUseCase, err := container.MatrixUseCase()
	if err != nil {
		return fmt.Errorf("failed to initialize matrix use case: %w", err)
	}

	role, err := matrixUseCase.CreateRole(ctx, name)
	if err != nil {
		return fmt.Errorf("failed to create role: %w", err)
	}

	fullSet := accessDomain.ActionSet{
		View:     true,
		Add:      true,
		Edit:     true,
		Delete:   true,
		Assign:   true,
		Approve:  true,
		Generate: true,
		Lost:     true,
	}

	areas := []accessDomain.AreaGrant{
		{Title: accessDomain.AreaCredentialIssuance, Actions: fullSet},
		{Title: accessDomain.AreaRoleManagement, Actions: fullSet},
		{Title: accessDomain.AreaEmployees, Actions: fullSet},
		{Title: accessDomain.AreaTemplates, Actions: fullSet},
		{Title: accessDomain.AreaOperators, Actions: fullSet},
		{Title: accessDomain.AreaAuditLogs, Actions: fullSet},
	}

	if _, err := matrixUseCase.Replace(ctx, uuid.Nil, role.ID, areas); err != nil {
		return fmt.Errorf("failed to replace matrix: %w", err)
	}

	fmt.Printf("Admin role created successfully\n")
	fmt.Printf("ID:   %s\n", role.ID)
	fmt.Printf("Name: %s\n", role.Name)
	return nil
}
