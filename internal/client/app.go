package client

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-budget-sync/internal/adapter"
	"github.com/MKhiriev/go-budget-sync/internal/cache"
	"github.com/MKhiriev/go-budget-sync/internal/cli"
	"github.com/MKhiriev/go-budget-sync/internal/config"
	"github.com/MKhiriev/go-budget-sync/internal/logger"
	"github.com/MKhiriev/go-budget-sync/internal/service"
	"github.com/MKhiriev/go-budget-sync/models"
)

// App owns the client process: the local cache, the remote store adapter,
// the client services, the command-line surface, and the background drain
// job.
type App struct {
	cfg        *config.ClientConfig
	cacheStore cache.Store
	services   *service.ClientServices
	cli        *cli.CLI
	logger     *logger.Logger
}

// NewApp wires the client from configuration: it opens the bbolt cache,
// builds the remote store adapter, and assembles the services and the
// command tree on top of them.
func NewApp(cfg *config.ClientConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	cacheStore, err := cache.NewBoltStore(cfg.Storage.Cache.Path)
	if err != nil {
		return nil, fmt.Errorf("open local cache: %w", err)
	}

	remote, err := adapter.NewHTTPRemoteStore(cfg.Adapter, cfg.App, log)
	if err != nil {
		cacheStore.Close()
		return nil, fmt.Errorf("create remote store adapter: %w", err)
	}

	services := service.NewClientServices(cacheStore, remote, log)

	return &App{
		cfg:        cfg,
		cacheStore: cacheStore,
		services:   services,
		cli:        cli.New(services, buildInfo, log),
		logger:     log,
	}, nil
}

// Run executes one command invocation. The background drain job runs for
// the lifetime of the invocation so long-lived commands still replay the
// deferred queue periodically.
func (a *App) Run(args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	a.services.DrainJob.Start(ctx, a.cfg.Workers.DrainInterval)
	defer a.services.DrainJob.Stop()

	defer func() {
		if err := a.cacheStore.Close(); err != nil {
			a.logger.Error().Err(err).Str("func", "App.Run").Msg("error closing local cache")
		}
	}()

	if err := a.cli.Execute(ctx, args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return err
	}

	return nil
}
