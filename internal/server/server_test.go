package server

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-chat-client/internal/config"
	httpHandler "github.com/MKhiriev/go-chat-client/internal/handler/http"
	"github.com/MKhiriev/go-chat-client/internal/logger"
	"github.com/MKhiriev/go-chat-client/internal/service"
	"github.com/MKhiriev/go-chat-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() config.DevServerConfig {
	return config.DevServerConfig{
		Address:  "127.0.0.1:0",
		APIKey:   "key",
		Secret:   "secret",
		TokenTTL: time.Hour,
	}
}

func newTestServer(t *testing.T, cfg config.DevServerConfig) *server {
	t.Helper()

	services, err := service.NewServices(cfg, models.NewAppBuildInfo("test", "", ""), logger.Nop())
	require.NoError(t, err)

	srv, err := NewServer(httpHandler.NewHandler(services, logger.Nop()), services, cfg, logger.Nop())
	require.NoError(t, err)

	return srv.(*server)
}

func TestNewServer_MissingParts(t *testing.T) {
	services, err := service.NewServices(testConfig(), models.NewAppBuildInfo("test", "", ""), logger.Nop())
	require.NoError(t, err)
	handler := httpHandler.NewHandler(services, logger.Nop())

	noAddress := testConfig()
	noAddress.Address = ""

	tests := []struct {
		name     string
		handler  *httpHandler.Handler
		services *service.Services
		cfg      config.DevServerConfig
	}{
		{"nil handler", nil, services, testConfig()},
		{"nil services", handler, nil, testConfig()},
		{"empty address", handler, services, noAddress},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, err := NewServer(tt.handler, tt.services, tt.cfg, logger.Nop())

			assert.Nil(t, srv)
			assert.ErrorIs(t, err, errNoServerIsCreated)
		})
	}
}

func TestServer_RunServesUntilContextDone(t *testing.T) {
	srv := newTestServer(t, testConfig())
	require.NoError(t, srv.httpServer.listen())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	resp, err := http.Get("http://" + srv.Addr() + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "test", body["version"])

	cancel()
	select {
	case err = <-done:
		assert.NoError(t, err)
	case <-time.After(shutdownTimeout + time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestServer_RunFailsOnBusyAddress(t *testing.T) {
	first := newTestServer(t, testConfig())
	require.NoError(t, first.httpServer.listen())
	t.Cleanup(func() { _ = first.httpServer.listener.Close() })

	cfg := testConfig()
	cfg.Address = first.Addr()
	second := newTestServer(t, cfg)

	err := second.Run(context.Background())

	assert.Error(t, err)
}

func TestServer_ShutdownWithoutRun(t *testing.T) {
	srv := newTestServer(t, testConfig())

	assert.NotPanics(t, srv.Shutdown)
}
