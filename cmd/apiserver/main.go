package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/zotero-sync/internal/config"
	"github.com/MKhiriev/zotero-sync/internal/handler"
	"github.com/MKhiriev/zotero-sync/internal/logger"
	"github.com/MKhiriev/zotero-sync/internal/server"
	"github.com/MKhiriev/zotero-sync/internal/service"
	"github.com/MKhiriev/zotero-sync/internal/store"
	"github.com/MKhiriev/zotero-sync/internal/telemetry"
	"github.com/MKhiriev/zotero-sync/internal/tui"
	"github.com/MKhiriev/zotero-sync/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "apiserver",
		Short:         "In-memory library API server for local development and tests",
		Version:       buildVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd)
		},
	}
	cmd.SetVersionTemplate(tui.RenderBuildInfo("apiserver", models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)) + "\n")
	config.RegisterServerFlags(cmd.Flags())

	return cmd
}

func run(cmd *cobra.Command) error {
	log := logger.NewLogger("zsync-apiserver")

	cfg, err := config.GetServerConfig(cmd.Flags())
	if err != nil {
		log.Err(err).Msg("error getting configs")
		return err
	}

	services := service.NewServices(store.NewStorages(log), cfg, log)
	if cfg.FixturesPath != "" {
		if err := service.LoadFixtures(cmd.Context(), services, cfg.FixturesPath); err != nil {
			log.Err(err).Str("path", cfg.FixturesPath).Msg("error loading fixtures")
			return err
		}
	}

	handlers, err := handler.NewHandlers(services, telemetry.NewHTTPMetrics(), cfg, log)
	if err != nil {
		log.Err(err).Msg("error creating handlers")
		return err
	}

	srv, err := server.NewServer(handlers, cfg, log)
	if err != nil {
		log.Err(err).Msg("error creating server")
		return fmt.Errorf("create server: %w", err)
	}

	srv.RunServer()
	return nil
}
