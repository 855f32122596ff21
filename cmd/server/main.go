package main

import (
	"context"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/yigit/college/internal/commands"
	"github.com/yigit/college/internal/pkg/logger"
	"github.com/yigit/college/internal/server"
)

// @title College Enrollment Report API
// @version 1.0
// @description Read-only access to the denormalized enrollment report
// @BasePath /api/v1

func main() {
	app := &cli.App{
		Name:            "server",
		Usage:           "serve the enrollment report over HTTP",
		Flags:           []cli.Flag{commands.ConfigFlag},
		HideHelpCommand: true,
		Action: func(c *cli.Context) error {
			srv, err := server.NewServer(context.Background(), c.String(commands.ConfigFlag.Name))
			if err != nil {
				return err
			}
			return srv.Run()
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
