package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-chat-client/internal/config"
	"github.com/MKhiriev/go-chat-client/internal/logger"
	"github.com/MKhiriev/go-chat-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDevServerConfig() config.DevServerConfig {
	return config.DevServerConfig{
		Address:    "localhost:0",
		APIKey:     testAPIKey,
		Secret:     testSignKey,
		DemoUserID: "alice",
		TokenTTL:   time.Hour,
	}
}

func TestNewServices(t *testing.T) {
	services, err := NewServices(testDevServerConfig(), models.NewAppBuildInfo("1.2.3", "", ""), logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, services)
	assert.NotNil(t, services.AuthService)
	assert.NotNil(t, services.ChannelService)
	assert.NotNil(t, services.ConnectionService)
	assert.NotNil(t, services.ChatterJob)
	assert.Equal(t, "1.2.3", services.AppInfoService.GetAppVersion(context.Background()))

	got, err := services.ChannelService.QueryChannels(context.Background(), "alice", memberQuery("alice"))
	require.NoError(t, err)
	assert.Len(t, got, 4)
}

func TestNewServices_DefaultDemoUser(t *testing.T) {
	cfg := testDevServerConfig()
	cfg.DemoUserID = ""

	services, err := NewServices(cfg, models.NewAppBuildInfo("dev", "", ""), logger.Nop())
	require.NoError(t, err)

	got, err := services.ChannelService.QueryChannels(context.Background(), DefaultDemoUserID, memberQuery(DefaultDemoUserID))
	require.NoError(t, err)
	assert.Len(t, got, 4)
}

func TestNewServices_EmptyVersion(t *testing.T) {
	services, err := NewServices(testDevServerConfig(), models.NewAppBuildInfo("", "", ""), logger.Nop())

	assert.Nil(t, services)
	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
}
