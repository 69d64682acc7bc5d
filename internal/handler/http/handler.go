package http

import (
	"github.com/MKhiriev/zotero-sync/internal/logger"
	"github.com/MKhiriev/zotero-sync/internal/service"
	"github.com/MKhiriev/zotero-sync/internal/telemetry"
	"github.com/MKhiriev/zotero-sync/internal/utils"
)

type Handler struct {
	services *service.Services
	metrics  *telemetry.HTTPMetrics
	traceIDs *utils.UUIDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, metrics *telemetry.HTTPMetrics, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		metrics:  metrics,
		traceIDs: utils.NewUUIDGenerator(),
		logger:   logger,
	}
}
