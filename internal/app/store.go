package app

import (
	"context"
	"fmt"

	"readinglog/internal/book"
	"readinglog/internal/config"
	"readinglog/internal/platform/mongodb"
	"readinglog/internal/platform/postgres"

	"go.uber.org/zap"
)

const appName = "readinglog"

// Store is the opened book repository plus the hook that releases it.
type Store struct {
	Driver string
	Books  book.Repository
	close  func(ctx context.Context) error
}

// Close releases the store's connections.
func (s *Store) Close(ctx context.Context) error {
	if s.close == nil {
		return nil
	}
	return s.close(ctx)
}

// OpenStore creates the repository selected by cfg.StoreDriver. Neither
// driver waits for the server here; reachability is checked by App.Run.
func OpenStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Store, error) {
	switch cfg.StoreDriver {
	case config.DriverMongo:
		logger.Info("connecting to MongoDB",
			zap.String("uri", config.RedactDSN(cfg.MongoURI)),
			zap.String("database", cfg.MongoDatabase),
		)
		client, err := mongodb.Connect(ctx, cfg.MongoURI, appName)
		if err != nil {
			return nil, err
		}
		return &Store{
			Driver: cfg.StoreDriver,
			Books:  book.NewMongoRepo(client.Database(cfg.MongoDatabase), cfg.StoreTimeout),
			close:  client.Disconnect,
		}, nil

	case config.DriverPostgres:
		logger.Info("connecting to Postgres", zap.String("dsn", config.RedactDSN(cfg.PostgresDSN)))
		pool, err := postgres.Open(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, err
		}
		return &Store{
			Driver: cfg.StoreDriver,
			Books:  book.NewPostgresRepo(pool, cfg.StoreTimeout),
			close: func(context.Context) error {
				pool.Close()
				return nil
			},
		}, nil

	case config.DriverMemory:
		logger.Warn("using in-memory store; data is lost on restart")
		return &Store{Driver: cfg.StoreDriver, Books: book.NewMemoryRepo()}, nil
	}
	return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
}
