package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/badgeops/badgeops/cmd/app/commands"
)

// getAdminCommands returns the bootstrap commands for roles and operators.
func getAdminCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "create-operator",
			Usage: "Create an operator account",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "name",
					Usage: "Operator display name",
				},
				&cli.StringFlag{
					Name:  "email",
					Usage: "Operator login email",
				},
				&cli.StringFlag{
					Name:  "password",
					Usage: "Operator password (prompted when omitted is not supported; pass explicitly)",
				},
				&cli.StringFlag{
					Name:  "role-id",
					Usage: "Role ID the operator is assigned to",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return commands.RunCreateOperator(
					ctx,
					cmd.String("name"),
					cmd.String("email"),
					cmd.String("password"),
					cmd.String("role-id"),
				)
			},
		},
		{
			Name:  "seed-admin-role",
			Usage: "Create a role with a full-grant matrix for bootstrap",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "name",
					Value: "Administrator",
					Usage: "Role name",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return commands.RunSeedAdminRole(ctx, cmd.String("name"))
			},
		},
	}
}
