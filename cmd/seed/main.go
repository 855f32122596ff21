package main

import (
	"os"

	"github.com/yigit/college/internal/commands"
	"github.com/yigit/college/internal/pkg/logger"
)

func main() {
	if err := commands.NewSeedApp().Run(os.Args); err != nil {
		logger.Error().Err(err).Msg("Failed to insert sample data")
		os.Exit(1)
	}
}
