package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/badgeops/badgeops/internal/app"
	"github.com/badgeops/badgeops/internal/config"
)

// RunCleanAuditLogs deletes audit events older than the specified number of days.
//
// Requirements: Database must be migrated and accessible.
func RunCleanAuditLogs(ctx context.Context, days int) error {
	if days < 0 {
		return fmt.Errorf("days must be a positive number, got: %d", days)
	}

	cfg := config.Load()
	container := app.NewContainer(cfg)

	logger := container.Logger()
	logger.Info("cleaning audit logs", slog.Int("days", days))

	defer closeContainer(container, logger)

	auditUseCase, err := container.AuditUseCase()
	if err != nil {
		return fmt.Errorf("failed to initialize audit use case: %w", err)
	}

	cutoff := time.Now().UTC().AddDate(0, 0, -days)

	count, err := auditUseCase.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("failed to delete audit logs: %w", err)
	}

	fmt.Printf("Deleted %d audit log(s) older than %d day(s)\n", count, days)

	logger.Info("cleanup completed", slog.Int64("count", count))
	return nil
}
