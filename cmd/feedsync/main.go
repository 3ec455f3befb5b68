package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-feed-sync/internal/adapter"
	"github.com/MKhiriev/go-feed-sync/internal/config"
	"github.com/MKhiriev/go-feed-sync/internal/logger"
	"github.com/MKhiriev/go-feed-sync/internal/service"
	"github.com/MKhiriev/go-feed-sync/internal/store"
	"github.com/MKhiriev/go-feed-sync/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("feedsync")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Str("backend", cfg.Backend.Type).Str("dsn", cfg.Storage.DB.DSN).Msg("received configs")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	db, err := store.NewConnectSQLite(ctx, cfg.Storage.DB.DSN, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting local database")
	}
	defer db.Close()

	backend, err := newBackendAdapter(cfg.Backend)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating backend adapter")
	}

	coordinator := service.NewSyncCoordinator(
		backend,
		store.NewSyncStatusRepository(db, log),
		store.NewLocalRepository(db, log),
		db,
		log,
		service.Options{
			FlushThreshold: cfg.Sync.FlushThreshold,
			MaxStreamPages: cfg.Sync.MaxStreamPages,
		},
	)
	if err = coordinator.AccountDidInitialize(ctx); err != nil {
		log.Fatal().Err(err).Msg("error initializing account")
	}

	jobs := workers.NewWorkers(
		workers.NewRefreshJob(coordinator, cfg.Sync.Interval, log),
	)
	jobs.Run()

	<-ctx.Done()
	log.Info().Msg("shutting down")
	jobs.Stop()
}

// newBackendAdapter maps the configured backend type onto its adapter.
func newBackendAdapter(cfg config.Backend) (adapter.BackendAdapter, error) {
	switch cfg.Type {
	case config.BackendCloudSync:
		return adapter.NewCloudSyncAdapter(adapter.CloudSyncConfig{
			BaseURL:      cfg.BaseURL,
			RefreshToken: cfg.RefreshToken,
			Timeout:      cfg.RequestTimeout,
		}), nil
	case config.BackendREST:
		return adapter.NewRESTAdapter(adapter.RESTConfig{
			BaseURL:  cfg.BaseURL,
			Username: cfg.Username,
			Password: cfg.Password,
			Timeout:  cfg.RequestTimeout,
		}), nil
	case config.BackendReaderAPI:
		return adapter.NewReaderAPIAdapter(adapter.ReaderAPIConfig{
			BaseURL:  cfg.BaseURL,
			Username: cfg.Username,
			Password: cfg.Password,
			Timeout:  cfg.RequestTimeout,
		}), nil
	case config.BackendLocal:
		return adapter.NewLocalAdapter(), nil
	default:
		return nil, fmt.Errorf("unknown backend type %q", cfg.Type)
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
