package service

import (
	"time"

	"github.com/MKhiriev/go-chat-client/internal/config"
	"github.com/MKhiriev/go-chat-client/internal/logger"
	"github.com/MKhiriev/go-chat-client/models"
)

type Services struct {
	AuthService       AuthService
	ChannelService    ChannelService
	ConnectionService ConnectionService
	AppInfoService    AppInfoService
	ChatterJob        ChatterJob
}

// NewServices builds the services over a fresh in-memory hub seeded with the
// demo channels of cfg.DemoUserID.
func NewServices(cfg config.DevServerConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(buildInfo, logger)
	if err != nil {
		return nil, err
	}

	h := newHub(logger.WithComponent("hub"))
	seed(h, cfg.DemoUserID, time.Now())

	channels := newChannelService(h, logger.WithComponent("channels"))

	return &Services{
		AuthService:       NewAuthService(cfg.APIKey, cfg.Secret, cfg.TokenTTL, logger),
		ChannelService:    newChannelValidationService(channels),
		ConnectionService: newConnectionService(h, logger.WithComponent("connections")),
		AppInfoService:    appInfo,
		ChatterJob:        NewChatterJob(channels, logger.WithComponent("chatter")),
	}, nil
}
