package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/badgeops/badgeops/cmd/app/commands"
)

// getMaintenanceCommands returns the scheduled maintenance commands.
func getMaintenanceCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "expire-credentials",
			Usage: "Materialize expired status for ID cards past their expiry date",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return commands.RunExpireCredentials(ctx)
			},
		},
		{
			Name:  "clean-audit-logs",
			Usage: "Delete audit logs older than the specified number of days",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:  "days",
					Value: 365,
					Usage: "Retention window in days",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return commands.RunCleanAuditLogs(ctx, int(cmd.Int("days")))
			},
		},
		{
			Name:  "clean-sessions",
			Usage: "Delete expired login sessions",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return commands.RunCleanSessions(ctx)
			},
		},
	}
}
