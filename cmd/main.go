package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hermes-ido/internal/adapter/amqp"
	"hermes-ido/internal/adapter/badgerstore"
	httpadapter "hermes-ido/internal/adapter/http"
	"hermes-ido/internal/adapter/ledger"
	"hermes-ido/internal/adapter/postgres"
	"hermes-ido/internal/adapter/scheduler"
	"hermes-ido/internal/adapter/stream"
	"hermes-ido/internal/adapter/usecase"
	"hermes-ido/internal/config"
	"hermes-ido/internal/core/port"
	"hermes-ido/internal/db"
)

// seedOwner owns the demo campaigns created in the dev environment.
const seedOwner = "demo-owner"

// main is the entry point of the sale engine. It loads configuration,
// opens the configured campaign store, wires the token ledger, event
// publishers and resolver job, then serves the HTTP API until it receives
// a termination signal.
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	var logger *slog.Logger
	{
		var handler slog.Handler
		switch cfg.Log.SlogFormat() {
		case "json":
			handler = slog.NewJSONHandler(os.Stdout, cfg.Log.HandlerOptions())
		default:
			handler = slog.NewTextHandler(os.Stdout, cfg.Log.HandlerOptions())
		}
		logger = slog.New(handler)
	}

	if err = run(cfg, logger); err != nil {
		logger.Error("fatal error", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(cfg config.Config, logger *slog.Logger) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	repo, closeRepo, err := openStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeRepo()

	tokens := ledger.New(cfg.Ledger.Custody)
	if volatileLedger(cfg) {
		// TODO: persist ledger balances next to the campaign store.
		logger.Warn("token ledger is in-memory while campaigns are persisted; balances reset on restart",
			slog.String("store", cfg.Store.Driver),
			slog.String("custody", cfg.Ledger.Custody))
	}
	hub := stream.NewHub(logger)
	defer hub.Close()
	publishers := usecase.Publishers{hub}

	if cfg.AMQP.URL != "" {
		pub, err := amqp.Dial(ctx, cfg.AMQP, logger)
		if err != nil {
			return err
		}
		defer pub.Close()
		publishers = append(publishers, pub)
	}

	svc := usecase.NewIDOUseCase(repo, tokens,
		usecase.WithPublisher(publishers),
		usecase.WithLogger(logger))

	if cfg.Env == "dev" {
		if err = seed(ctx, svc); err != nil {
			logger.Error("seed error", slog.Any("error", err))
		}
	}

	if cfg.Resolver.Schedule != "" {
		job, err := scheduler.NewResolver(svc, cfg.Resolver.Actor, logger).Start(cfg.Resolver.Schedule)
		if err != nil {
			return err
		}
		defer func() { <-job.Stop().Done() }()
		logger.Info("resolver scheduled", slog.String("schedule", cfg.Resolver.Schedule))
	}

	opts := []httpadapter.Option{httpadapter.WithEvents(hub)}
	if cfg.Ledger.DevEndpoints {
		opts = append(opts, httpadapter.WithLedger(tokens))
		logger.Warn("dev ledger endpoints enabled")
	}
	handler := httpadapter.NewHandler(svc, logger, opts...)
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err = <-serveErr:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, stop := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer stop()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
	return nil
}

// openStore returns the campaign registry selected by STORE_DRIVER and a
// func releasing its resources.
func openStore(ctx context.Context, cfg config.Config, logger *slog.Logger) (port.CampaignRepository, func(), error) {
	switch cfg.Store.Driver {
	case "postgres":
		if cfg.Psql.RunMigrations {
			if err := db.Migrate(cfg.Psql.Addr.String(), logger); err != nil {
				return nil, nil, fmt.Errorf("migrate: %w", err)
			}
		}
		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			return nil, nil, fmt.Errorf("database connection: %w", err)
		}
		return postgres.NewCampaignRepository(pool), pool.Close, nil
	default:
		bdb, err := db.NewBadger(cfg.Badger, logger)
		if err != nil {
			return nil, nil, err
		}
		closeFn := func() {
			if err := bdb.Close(); err != nil {
				logger.Error("badger close error", slog.Any("error", err))
			}
		}
		return badgerstore.NewCampaignRepository(bdb), closeFn, nil
	}
}

// seed creates demo campaigns unless the store already holds some.
func seed(ctx context.Context, svc port.IDOUseCase) error {
	existing, err := svc.ListCampaigns(ctx, nil)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}
	return db.Seed(ctx, svc, seedOwner, time.Now())
}

// volatileLedger reports whether campaigns outlive the in-process ledger.
func volatileLedger(cfg config.Config) bool {
	return cfg.Store.Driver == "postgres" || !cfg.Badger.InMemory
}
