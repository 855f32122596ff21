package main

import (
	"os"

	"github.com/yigit/college/internal/commands"
	"github.com/yigit/college/internal/pkg/logger"
)

func main() {
	if err := commands.NewEnrollApp().Run(os.Args); err != nil {
		logger.Error().Err(err).Msg("Failed to enroll students")
		os.Exit(1)
	}
}
