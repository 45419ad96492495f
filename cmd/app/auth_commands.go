package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/corpassist/secrets/cmd/app/commands"
	"github.com/corpassist/secrets/internal/app"
	"github.com/corpassist/secrets/internal/config"
)

func getAuthCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "issue-token",
			Usage: "Issue a bearer token for a user",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "user-id",
					Aliases: []string{"u"},
					Usage:   "User ID (UUID); a new one is generated when omitted",
				},
				&cli.StringFlag{
					Name:    "format",
					Aliases: []string{"f"},
					Value:   "text",
					Usage:   "Output format: 'text' or 'json'",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				container := app.NewContainer(config.Load())
				defer func() { _ = container.Shutdown(ctx) }()

				tokenService, err := container.TokenService()
				if err != nil {
					return err
				}

				return commands.RunIssueToken(
					tokenService,
					container.Logger(),
					commands.DefaultIO().Writer,
					cmd.String("user-id"),
					cmd.String("format"),
				)
			},
		},
	}
}
