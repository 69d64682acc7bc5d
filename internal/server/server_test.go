package server

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/zotero-sync/internal/config"
	"github.com/MKhiriev/zotero-sync/internal/handler"
	"github.com/MKhiriev/zotero-sync/internal/logger"
	"github.com/MKhiriev/zotero-sync/internal/service"
	"github.com/MKhiriev/zotero-sync/internal/store"
	"github.com/MKhiriev/zotero-sync/internal/telemetry"
)

func newTestServer(t *testing.T) *server {
	t.Helper()

	cfg := &config.ServerConfig{HTTPAddress: "127.0.0.1:0", KeySignKey: "k", KeyTTL: time.Hour}
	services := service.NewServices(store.NewStorages(logger.Nop()), cfg, logger.Nop())
	handlers, err := handler.NewHandlers(services, telemetry.NewHTTPMetrics(), cfg, logger.Nop())
	require.NoError(t, err)

	srv, err := NewServer(handlers, cfg, logger.Nop())
	require.NoError(t, err)
	return srv.(*server)
}

func TestNewServer_NoHandlers(t *testing.T) {
	_, err := NewServer(&handler.Handlers{}, &config.ServerConfig{HTTPAddress: ":8080"}, logger.Nop())
	assert.ErrorIs(t, err, errNoHTTPHandler)
}

func TestServer_RunAndShutdown(t *testing.T) {
	s := newTestServer(t)

	require.NoError(t, s.httpServer.listen())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.run(ctx) }()

	url := fmt.Sprintf("http://%s/metrics", s.httpServer.listener.Addr())

	resp, err := http.Get(url)
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}

	_, err = http.Get(url)
	assert.Error(t, err)
}
