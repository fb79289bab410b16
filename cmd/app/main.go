// Package main provides the entry point for the application with CLI commands.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/allisson/hdrivault/cmd/app/commands"
	"github.com/allisson/hdrivault/internal/config"
)

func main() {
	cfg := config.Load()

	cmd := &cli.Command{
		Name:    "hdrivault",
		Usage:   "Encrypted HDRI project document tooling",
		Version: "1.0.0",
		Commands: []*cli.Command{
			{
				Name:  "create-app-key",
				Usage: "Generate a new application key for envelope encryption",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "id",
						Aliases: []string{"i"},
						Value:   "",
						Usage:   "Application key ID (e.g., studio-key-2026)",
					},
					&cli.StringFlag{
						Name:  "kms-key-uri",
						Value: "",
						Usage: "Optional KMS keeper URI used to wrap the key (e.g., base64key://..., hashivault://...)",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunCreateAppKey(ctx, os.Stdout, cmd.String("id"), cmd.String("kms-key-uri"))
				},
			},
			{
				Name:      "inspect",
				Usage:     "Load a project document of any supported version and report its contents",
				ArgsUsage: "<project-file>",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunInspect(ctx, cfg, os.Stdout, cmd.Args().First())
				},
			},
			{
				Name:      "rewrap",
				Usage:     "Rewrite a project document at the current schema with freshly wrapped data keys",
				ArgsUsage: "<project-file>",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunRewrap(ctx, cfg, os.Stdout, cmd.Args().First())
				},
			},
			{
				Name:      "extract",
				Usage:     "Decrypt a single asset from a project document into a file",
				ArgsUsage: "<project-file>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "asset",
						Aliases:  []string{"a"},
						Usage:    "Name of the asset to extract",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "out",
						Aliases:  []string{"o"},
						Usage:    "Output file path",
						Required: true,
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunExtract(ctx, cfg, os.Stdout, cmd.Args().First(), cmd.String("asset"), cmd.String("out"))
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("command failed", slog.Any("error", err))
		os.Exit(1)
	}
}
