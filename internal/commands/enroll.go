package commands

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/yigit/college/internal/app/services"
	"github.com/yigit/college/internal/bootstrap"
	"github.com/yigit/college/internal/config"
	"github.com/yigit/college/internal/pkg/apperrors"
	"github.com/yigit/college/internal/seed"
)

// NewEnrollApp links the sample students to classes
func NewEnrollApp() *cli.App {
	return NewApp("enroll", "enroll the sample students into classes", nil, writerOptions, nil, RunEnroll)
}

// RunEnroll inserts the fixed enrollment batch
func RunEnroll(ctx context.Context, cfg *config.Config, lgr zerolog.Logger, h *bootstrap.Handle) error {
	n, err := services.NewEnrollmentService(h.Repos.Enrollments).Enroll(ctx, seed.Enrollments())
	if err != nil {
		lgr.Warn().Int("enrollments", n).Int("batchInserted", apperrors.InsertedBefore(err)).
			Msg("Enrollments only partially inserted; written records are kept")
		return err
	}

	lgr.Info().Int("enrollments", n).Msg("Students enrolled into classes")
	return nil
}
