package commands

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/yigit/college/internal/app/services"
	"github.com/yigit/college/internal/bootstrap"
	"github.com/yigit/college/internal/config"
	"github.com/yigit/college/internal/pkg/apperrors"
	"github.com/yigit/college/internal/seed"
)

// NewSeedApp writes the sample students and classes
func NewSeedApp() *cli.App {
	return NewApp("seed", "insert the sample students and classes", nil, writerOptions, nil, RunSeed)
}

// RunSeed inserts the fixed student batch and then the fixed class batch
func RunSeed(ctx context.Context, cfg *config.Config, lgr zerolog.Logger, h *bootstrap.Handle) error {
	svc := services.NewSeedService(h.Repos.Students, h.Repos.Classes)

	result, err := svc.SeedCatalog(ctx, seed.Students(), seed.Classes())
	if err != nil {
		lgr.Warn().
			Int("students", result.Students).
			Int("classes", result.Classes).
			Int("batchInserted", apperrors.InsertedBefore(err)).
			Msg("Sample data only partially inserted; written records are kept")
		return fmt.Errorf("error inserting sample data: %w", err)
	}

	lgr.Info().
		Int("students", result.Students).
		Int("classes", result.Classes).
		Msg("Sample data inserted")
	return nil
}
