package bootstrap

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/yigit/college/internal/app/migrations"
	"github.com/yigit/college/internal/app/repositories"
	"github.com/yigit/college/internal/config"
	"github.com/yigit/college/internal/db"
)

// Handle is one open storage connection and the repositories bound to it.
// It must be closed exactly once.
type Handle struct {
	Repos  *repositories.Repositories
	Driver string

	closeFn func(ctx context.Context) error
	closed  bool
}

// NewHandle wraps repos and the function releasing their connection
func NewHandle(driver string, repos *repositories.Repositories, closeFn func(ctx context.Context) error) *Handle {
	return &Handle{Repos: repos, Driver: driver, closeFn: closeFn}
}

// Close releases the connection. Closing twice is a no-op.
func (h *Handle) Close(ctx context.Context) error {
	if h == nil || h.closed {
		return nil
	}
	h.closed = true
	if h.closeFn == nil {
		return nil
	}
	return h.closeFn(ctx)
}

// OpenOptions controls what OpenHandle does beyond connecting
type OpenOptions struct {
	// EnsureSchema creates the unique identifier indexes (MongoDB) or applies
	// the embedded migrations (PostgreSQL). Only the writers set it; readers
	// leave existing data and schema untouched.
	EnsureSchema bool
}

// Opener opens a Handle for cfg
type Opener func(ctx context.Context, cfg *config.Config, lgr zerolog.Logger, opts OpenOptions) (*Handle, error)

// pgPool is the part of a pgx pool used by the migrator and the repositories
type pgPool interface {
	migrations.DB
	repositories.Querier
}

// OpenHandle connects to the configured driver and, when opts ask for it,
// prepares its schema.
func OpenHandle(ctx context.Context, cfg *config.Config, lgr zerolog.Logger, opts OpenOptions) (*Handle, error) {
	switch cfg.Database.Driver {
	case config.DriverPostgres:
		return openPostgres(ctx, cfg, lgr, opts)
	case config.DriverMongo, "":
		return openMongo(ctx, cfg, lgr, opts)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}
}

func openMongo(ctx context.Context, cfg *config.Config, lgr zerolog.Logger, opts OpenOptions) (*Handle, error) {
	lgr.Debug().Str("uri", cfg.Database.URI).Msg("Connecting to MongoDB...")
	mdb, err := db.NewMongoDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	h, err := newMongoHandle(ctx, mdb.Database, mdb.Close, opts, lgr)
	if err != nil {
		_ = mdb.Close(context.Background())
		return nil, err
	}

	lgr.Info().Str("database", cfg.Database.Name).Msg("Connected to MongoDB")
	return h, nil
}

func newMongoHandle(ctx context.Context, database *mongo.Database, closeFn func(context.Context) error, opts OpenOptions, lgr zerolog.Logger) (*Handle, error) {
	if opts.EnsureSchema {
		if err := repositories.EnsureIndexes(ctx, database); err != nil {
			return nil, err
		}
		lgr.Debug().Msg("Unique indexes ensured")
	}
	return NewHandle(config.DriverMongo, repositories.NewMongoRepositories(database), closeFn), nil
}

func openPostgres(ctx context.Context, cfg *config.Config, lgr zerolog.Logger, opts OpenOptions) (*Handle, error) {
	lgr.Debug().Str("host", cfg.Database.Host).Msg("Connecting to PostgreSQL...")
	pdb, err := db.NewPostgresDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	closeFn := func(context.Context) error {
		pdb.Close()
		return nil
	}
	h, err := newPostgresHandle(ctx, pdb.Pool, closeFn, opts, lgr)
	if err != nil {
		pdb.Close()
		return nil, err
	}

	lgr.Info().Str("database", cfg.Database.Name).Msg("Connected to PostgreSQL")
	return h, nil
}

func newPostgresHandle(ctx context.Context, pool pgPool, closeFn func(context.Context) error, opts OpenOptions, lgr zerolog.Logger) (*Handle, error) {
	if opts.EnsureSchema {
		if err := migrations.NewMigrator(pool, lgr).Migrate(ctx); err != nil {
			return nil, fmt.Errorf("database migrations failed: %w", err)
		}
	}
	return NewHandle(config.DriverPostgres, repositories.NewPostgresRepositories(pool), closeFn), nil
}

// WithHandle opens a handle, runs fn with it and releases it whether fn
// succeeds, fails or panics. When opening fails fn is never called.
func WithHandle(ctx context.Context, cfg *config.Config, lgr zerolog.Logger, opts OpenOptions, fn func(ctx context.Context, h *Handle) error) error {
	return withOpener(ctx, cfg, lgr, opts, OpenHandle, fn)
}

func withOpener(ctx context.Context, cfg *config.Config, lgr zerolog.Logger, opts OpenOptions, open Opener, fn func(ctx context.Context, h *Handle) error) (err error) {
	h, err := open(ctx, cfg, lgr, opts)
	if err != nil {
		return err
	}

	defer func() {
		// The caller's context may already be cancelled; release regardless.
		if cerr := h.Close(context.Background()); cerr != nil {
			lgr.Error().Err(cerr).Msg("Failed to close database connection")
			if err == nil {
				err = cerr
			}
			return
		}
		lgr.Info().Msg("Database connection closed")
	}()

	return fn(ctx, h)
}
