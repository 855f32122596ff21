// Package commands builds the command line entry points. Each command loads
// configuration, opens one storage handle, runs a single operation and
// releases the handle before returning.
package commands

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/yigit/college/internal/bootstrap"
	"github.com/yigit/college/internal/config"
	"github.com/yigit/college/internal/pkg/logger"
)

// Runner is the single operation a command performs with an open handle
type Runner func(ctx context.Context, cfg *config.Config, lgr zerolog.Logger, h *bootstrap.Handle) error

// Prepare adjusts the loaded configuration from command flags before connecting
type Prepare func(c *cli.Context, cfg *config.Config) error

// ConfigFlag selects the configuration file
var ConfigFlag = &cli.StringFlag{
	Name:    "config",
	Aliases: []string{"c"},
	Usage:   "path to the YAML configuration file",
	Value:   bootstrap.DefaultConfigPath,
	EnvVars: []string{"COLLEGE_CONFIG"},
}

// Writers prepare the schema when they connect; readers never touch it
var (
	writerOptions = bootstrap.OpenOptions{EnsureSchema: true}
	readerOptions = bootstrap.OpenOptions{}
)

// withHandle is replaced in tests to observe how commands open storage
var withHandle = bootstrap.WithHandle

// NewApp wires a command around run. prepare may be nil.
func NewApp(name, usage string, flags []cli.Flag, opts bootstrap.OpenOptions, prepare Prepare, run Runner) *cli.App {
	return &cli.App{
		Name:            name,
		Usage:           usage,
		Flags:           append([]cli.Flag{ConfigFlag}, flags...),
		HideHelpCommand: true,
		Action: func(c *cli.Context) error {
			ctx, stop := signal.NotifyContext(c.Context, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			cfg, _, err := bootstrap.LoadConfigAndSetupLogger(c.String(ConfigFlag.Name))
			if err != nil {
				return err
			}
			lgr := logger.WithField("command", name)

			if prepare != nil {
				if err := prepare(c, cfg); err != nil {
					return err
				}
			}

			return withHandle(ctx, cfg, lgr, opts, func(ctx context.Context, h *bootstrap.Handle) error {
				return run(ctx, cfg, lgr, h)
			})
		},
	}
}
