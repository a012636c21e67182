package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/badgeops/badgeops/internal/app"
	"github.com/badgeops/badgeops/internal/config"
)

// RunExpireCredentials materializes expired status for every non-terminal ID
// card past its expiry date. Reads already report expiry lazily; this batch
// keeps the stored rows in line for reporting and retention.
//
// Requirements: Database must be migrated and accessible.
func RunExpireCredentials(ctx context.Context) error {
	cfg := config.Load()
	container := app.NewContainer(cfg)

	logger := container.Logger()
	logger.Info("expiring overdue credentials")

	defer closeContainer(container, logger)

	credentialUseCase, err := container.CredentialUseCase()
	if err != nil {
		return fmt.Errorf("failed to initialize credential use case: %w", err)
	}

	count, err := credentialUseCase.ExpireOverdue(ctx)
	if err != nil {
		return fmt.Errorf("failed to expire credentials: %w", err)
	}

	fmt.Printf("Expired %d credential(s)\n", count)

	logger.Info("expiry completed", slog.Int64("count", count))
	return nil
}
