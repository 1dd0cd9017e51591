package app

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/VladPetriv/finance_tracker/config"
	"github.com/VladPetriv/finance_tracker/internal/api/rest"
	"github.com/VladPetriv/finance_tracker/internal/service"
	"github.com/VladPetriv/finance_tracker/internal/store"
	"github.com/VladPetriv/finance_tracker/pkg/database"
	"github.com/VladPetriv/finance_tracker/pkg/logger"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

// Run is used to start the application.
func Run(cfg *config.Config, logger *logger.Logger) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewMongoDB(ctx, database.MongoDBOptions{
		URI:            cfg.MongoDB.URI,
		Database:       cfg.MongoDB.Database,
		ConnectTimeout: cfg.MongoDB.ConnectTimeout,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("create mongodb connection")
	}

	prepareDatabase(ctx, cfg, logger, db)

	stores := service.Stores{
		Category:    store.NewCategory(db),
		Transaction: store.NewTransaction(db),
	}

	services := service.Services{
		Category: service.NewCategory(logger, stores.Category),
		Transaction: service.NewTransaction(&service.TransactionOptions{
			Logger:         logger,
			Stores:         stores,
			ResolveWorkers: cfg.Resolve.Workers,
		}),
	}

	server := rest.New(rest.Options{
		Logger:         logger,
		Services:       services,
		Database:       db,
		Address:        cfg.HTTP.Address(),
		RequestTimeout: cfg.HTTP.RequestTimeout,
	})

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		return server.ListenAndServe()
	})

	group.Go(func() error {
		<-groupCtx.Done()
		logger.Info().Msg("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return errors.Join(server.Shutdown(shutdownCtx), db.Close(shutdownCtx))
	})

	err = group.Wait()
	if err != nil {
		logger.Fatal().Err(err).Msg("run application")
	}

	logger.Info().Msg("application stopped")
}

// prepareDatabase checks the connection and installs collection validators.
// The server starts anyway, requests fail with persistence errors until MongoDB is reachable.
func prepareDatabase(ctx context.Context, cfg *config.Config, logger *logger.Logger, db *database.MongoDB) {
	ctx, cancel := context.WithTimeout(ctx, cfg.MongoDB.ConnectTimeout)
	defer cancel()

	err := db.Ping(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("mongodb is not reachable")
		return
	}
	logger.Info().Str("database", cfg.MongoDB.Database).Msg("connected to mongodb")

	err = store.EnsureSchema(ctx, db)
	if err != nil {
		logger.Error().Err(err).Msg("ensure mongodb schema")
	}
}
