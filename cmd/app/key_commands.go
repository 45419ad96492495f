package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/corpassist/secrets/cmd/app/commands"
	"github.com/corpassist/secrets/internal/app"
	"github.com/corpassist/secrets/internal/config"
)

func getKeyCommands() []*cli.Command {
	contextFlag := &cli.StringFlag{
		Name:    "context",
		Aliases: []string{"c"},
		Usage:   "Authorization context bound to the plaintext (may be empty)",
	}

	return []*cli.Command{
		{
			Name:  "create-master-key",
			Usage: "Generate a new master key for the string cipher",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "kms-key-uri",
					Value: "",
					Usage: "KMS key URI used to wrap the key (e.g., base64key://, gcpkms://projects/.../cryptoKeys/...)",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				container := app.NewContainer(config.Load())
				defer func() { _ = container.Shutdown(ctx) }()

				return commands.RunCreateMasterKey(
					ctx,
					container.KMSService(),
					container.Logger(),
					commands.DefaultIO().Writer,
					cmd.String("kms-key-uri"),
				)
			},
		},
		{
			Name:      "encrypt",
			Usage:     "Encrypt a value with the configured master key",
			ArgsUsage: "<plaintext>",
			Flags:     []cli.Flag{contextFlag},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				container := app.NewContainer(config.Load())
				defer func() { _ = container.Shutdown(ctx) }()

				cipher, err := container.StringCipher()
				if err != nil {
					return err
				}

				return commands.RunEncrypt(
					cipher,
					commands.DefaultIO().Writer,
					cmd.Args().First(),
					cmd.String("context"),
					cmd.IsSet("context"),
				)
			},
		},
		{
			Name:      "decrypt",
			Usage:     "Decrypt a blob produced by encrypt or stored by the service",
			ArgsUsage: "<blob>",
			Flags:     []cli.Flag{contextFlag},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				container := app.NewContainer(config.Load())
				defer func() { _ = container.Shutdown(ctx) }()

				cipher, err := container.StringCipher()
				if err != nil {
					return err
				}

				return commands.RunDecrypt(
					cipher,
					commands.DefaultIO().Writer,
					cmd.Args().First(),
					cmd.String("context"),
					cmd.IsSet("context"),
				)
			},
		},
	}
}
