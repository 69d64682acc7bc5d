package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/zotero-sync/internal/config"
	"github.com/MKhiriev/zotero-sync/internal/logger"
	"github.com/MKhiriev/zotero-sync/internal/telemetry"
)

// http.NewHandler only stores the services pointer, so nil is safe for
// construction-time tests.
func TestNewHandlers(t *testing.T) {
	h, err := NewHandlers(nil, telemetry.NewHTTPMetrics(), &config.ServerConfig{HTTPAddress: ":8080"}, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, h)
	assert.NotNil(t, h.HTTP)
}

func TestNewHandlers_NoAddress(t *testing.T) {
	for _, cfg := range []*config.ServerConfig{nil, {}} {
		h, err := NewHandlers(nil, telemetry.NewHTTPMetrics(), cfg, logger.Nop())

		require.ErrorIs(t, err, errNoHandlersAreCreated)
		assert.Nil(t, h)
	}
}

func TestNewHandlers_IndependentInstances(t *testing.T) {
	cfg := &config.ServerConfig{HTTPAddress: ":8080"}
	metrics := telemetry.NewHTTPMetrics()

	h1, err1 := NewHandlers(nil, metrics, cfg, logger.Nop())
	h2, err2 := NewHandlers(nil, metrics, cfg, logger.Nop())

	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.NotSame(t, h1, h2)
	assert.NotSame(t, h1.HTTP, h2.HTTP)
}
