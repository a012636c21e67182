package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/badgeops/badgeops/internal/app"
	"github.com/badgeops/badgeops/internal/config"
	operatorUsecase "github.com/badgeops/badgeops/internal/operator/usecase"
)

// RunCreateOperator creates an operator account from the command line.
// Used for bootstrap: the first operator cannot be created through the API
// because no one can authenticate yet.
//
// Requirements: Database must be migrated and accessible, and the role must exist.
func RunCreateOperator(ctx context.Context, name, email, password, roleID string) error {
	if name == "" || email == "" || password == "" || roleID == "" {
		return fmt.Errorf("name, email, password and role-id are required")
	}

	parsedRoleID, err := uuid.Parse(roleID)
	if err != nil {
		return fmt.Errorf("invalid role-id: %w", err)
	}

	cfg := config.Load()
	container := app.NewContainer(cfg)

	logger := container.Logger()
	logger.Info("creating operator", slog.String("email", email))

	defer closeContainer(container, logger)

	operatorUseCase, err := container.OperatorUseCase()
	if err != nil {
		return fmt.Errorf("failed to initialize operator use case: %w", err)
	}

	operator, err := operatorUseCase.Create(ctx, &operatorUsecase.CreateOperatorInput{
		Name:     name,
		Email:    email,
		Password: password,
		RoleID:   parsedRoleID,
		IsActive: true,
	})
	if err != nil {
		return fmt.Errorf("failed to create operator: %w", err)
	}

	fmt.Printf("Operator created successfully\n")
	fmt.Printf("ID:    %s\n", operator.ID)
	fmt.Printf("Email: %s\n", operator.Email)
	return nil
}
