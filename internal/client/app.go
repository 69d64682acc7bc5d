package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/zotero-sync/internal/adapter"
	"github.com/MKhiriev/zotero-sync/internal/config"
	"github.com/MKhiriev/zotero-sync/internal/logger"
	"github.com/MKhiriev/zotero-sync/internal/service"
	"github.com/MKhiriev/zotero-sync/internal/store"
	"github.com/MKhiriev/zotero-sync/internal/tui"
	"github.com/MKhiriev/zotero-sync/internal/workers"
	"github.com/MKhiriev/zotero-sync/models"
)

const metricsFlushInterval = time.Minute

type App struct {
	cfg      *config.ClientConfig
	storages *store.ClientStorages
	services *service.ClientServices
	out      io.Writer
	logger   *logger.Logger

	// MetricsFile, when set, receives the sync metrics in the Prometheus
	// text format after every session.
	MetricsFile string
}

// NewApp opens the local replica and builds the client services. The
// returned App must be closed.
func NewApp(cfg *config.ClientConfig, out io.Writer, logger *logger.Logger) (*App, error) {
	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, logger)
	if err != nil {
		return nil, fmt.Errorf("create server adapter: %w", err)
	}

	storages, err := store.NewClientStorages(cfg.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	return newApp(cfg, storages, service.NewClientServices(cfg, storages, serverAdapter, logger), out, logger), nil
}

func newApp(cfg *config.ClientConfig, storages *store.ClientStorages, services *service.ClientServices, out io.Writer, logger *logger.Logger) *App {
	return &App{cfg: cfg, storages: storages, services: services, out: out, logger: logger}
}

func (a *App) Close() error {
	return a.storages.Close()
}

// Login stores the API key for creds and runs the first sync.
func (a *App) Login(ctx context.Context, creds models.Credentials) error {
	account, err := a.services.AuthService.Login(ctx, creds)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "logged in as %s (%d)\n", account.Name, account.UserID)

	return a.sync(ctx, account)
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.services.AuthService.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "logged out")
	return nil
}

// Sync runs one session for the stored account.
func (a *App) Sync(ctx context.Context) error {
	account, err := a.services.AuthService.RestoreSession(ctx)
	if err != nil {
		return err
	}
	return a.sync(ctx, account)
}

// Status prints the stored versions and the pending deletions.
func (a *App) Status(ctx context.Context) error {
	account, err := a.services.AuthService.RestoreSession(ctx)
	if err != nil {
		return err
	}

	libs, queue, err := a.services.LibraryService.Status(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, tui.RenderStatus(account, libs, queue))
	return nil
}

// Run syncs once and then keeps the replica in sync on the configured
// interval until SIGINT or SIGTERM.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return a.Watch(ctx)
}

// Watch is Run bound to ctx instead of process signals.
func (a *App) Watch(ctx context.Context) error {
	account, err := a.services.AuthService.RestoreSession(ctx)
	if err != nil {
		return err
	}

	if err := a.sync(ctx, account); err != nil && !errors.Is(err, service.ErrSyncInProgress) {
		a.logger.Err(err).Str("func", "App.Watch").Msg("initial sync failed")
	}

	ws := workers.NewWorkers(
		workers.WorkerFunc(func(ctx context.Context) error {
			a.services.SyncJob.Start(ctx, account, a.cfg.Workers.SyncInterval)
			<-ctx.Done()
			a.services.SyncJob.Stop()
			return nil
		}),
		workers.WorkerFunc(a.logChanges),
		workers.WorkerFunc(a.flushMetrics),
	)

	err = ws.Run(ctx)
	a.services.Sessions.Cancel()
	a.services.Sessions.Wait()
	return err
}

func (a *App) sync(ctx context.Context, account models.Session) error {
	summary, err := a.services.Sessions.Run(ctx, account)
	if errors.Is(err, service.ErrSyncInProgress) {
		return err
	}

	fmt.Fprintln(a.out, tui.RenderSummary(summary, err))
	a.writeMetrics()
	return err
}

// logChanges records every committed change batch of the replica.
func (a *App) logChanges(ctx context.Context) error {
	changes, unsubscribe := a.services.LibraryService.Subscribe()
	defer unsubscribe()

	for {
		select {
		case <-ctx.Done():
			return nil
		case batch, ok := <-changes:
			if !ok {
				return nil
			}
			a.logger.Info().
				Str("library", batch.Library.String()).
				Str("object_type", string(batch.Type)).
				Int("added", len(batch.Added)).
				Int("updated", len(batch.Updated)).
				Int("removed", len(batch.Removed)).
				Msg("replica changed")
		}
	}
}

func (a *App) flushMetrics(ctx context.Context) error {
	if a.MetricsFile == "" {
		return nil
	}

	t := time.NewTicker(metricsFlushInterval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			a.writeMetrics()
			return nil
		case <-t.C:
			a.writeMetrics()
		}
	}
}

func (a *App) writeMetrics() {
	if a.MetricsFile == "" {
		return
	}
	if err := a.services.Metrics.WriteTextfile(a.MetricsFile); err != nil {
		a.logger.Err(err).Str("func", "App.writeMetrics").Str("path", a.MetricsFile).Msg("write metrics file")
	}
}
