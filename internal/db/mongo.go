package db

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/yigit/college/internal/config"
	"github.com/yigit/college/internal/pkg/apperrors"
	"github.com/yigit/college/internal/pkg/logger"
)

// MongoDB holds one client and the database every collection lives in
type MongoDB struct {
	Client   *mongo.Client
	Database *mongo.Database
}

// NewMongoDB connects to the configured deployment and verifies it with a ping
func NewMongoDB(ctx context.Context, cfg *config.Config) (*MongoDB, error) {
	timeout := cfg.ConnectTimeout()
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	clientOpts := options.Client().
		ApplyURI(cfg.Database.URI).
		SetConnectTimeout(timeout).
		SetServerSelectionTimeout(timeout).
		SetMaxPoolSize(uint64(max(cfg.Database.MaxOpenConns, 1)))

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create mongo client: %v", apperrors.ErrConnectionFailed, err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		// Connect may have started background monitors even though the server is unreachable.
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("%w: failed to reach mongo: %v", apperrors.ErrConnectionFailed, err)
	}

	return &MongoDB{
		Client:   client,
		Database: client.Database(cfg.Database.Name),
	}, nil
}

// Close disconnects the client
func (db *MongoDB) Close(ctx context.Context) error {
	if db.Client == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := db.Client.Disconnect(ctx); err != nil {
		logger.Error().Err(err).Msg("Failed to disconnect mongo client")
		return fmt.Errorf("failed to disconnect mongo client: %w", err)
	}
	return nil
}
