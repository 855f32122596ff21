package main

import (
	"os"

	"github.com/yigit/college/internal/commands"
	"github.com/yigit/college/internal/pkg/logger"
)

func main() {
	if err := commands.NewReportApp().Run(os.Args); err != nil {
		logger.Error().Err(err).Msg("Failed to produce enrollment report")
		os.Exit(1)
	}
}
