package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/badgeops/badgeops/internal/app"
	"github.com/badgeops/badgeops/internal/config"
)

// RunCleanSessions deletes login sessions that have already expired. Expired
// sessions are refused at authentication regardless; this batch keeps the
// table from growing without bound.
//
// Requirements: Database must be migrated and accessible.
func RunCleanSessions(ctx context.Context) error {
	cfg := config.Load()
	container := app.NewContainer(cfg)

	logger := container.Logger()
	logger.Info("cleaning expired sessions")

	defer closeContainer(container, logger)

	sessionRepo, err := container.SessionRepository()
	if err != nil {
		return fmt.Errorf("failed to initialize session repository: %w", err)
	}

	count, err := sessionRepo.DeleteExpired(ctx, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to delete sessions: %w", err)
	}

	fmt.Printf("Deleted %d expired session(s)\n", count)

	logger.Info("cleanup completed", slog.Int64("count", count))
	return nil
}
