package handler

import (
	"github.com/MKhiriev/zotero-sync/internal/config"
	"github.com/MKhiriev/zotero-sync/internal/handler/http"
	"github.com/MKhiriev/zotero-sync/internal/logger"
	"github.com/MKhiriev/zotero-sync/internal/service"
	"github.com/MKhiriev/zotero-sync/internal/telemetry"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, metrics *telemetry.HTTPMetrics, cfg *config.ServerConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg == nil || cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{HTTP: http.NewHandler(services, metrics, logger)}, nil
}
