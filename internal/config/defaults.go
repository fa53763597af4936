package config

import (
	"time"

	"github.com/MKhiriev/go-chat-client/models"
)

// Default values applied to fields that no other source set.
const (
	DefaultHTTPAddress     = "http://localhost:8080"
	DefaultRequestTimeout  = 15 * time.Second
	DefaultPingInterval    = 25 * time.Second
	DefaultChannelLimit    = 10
	DefaultDevAddress      = "localhost:8080"
	DefaultChatterInterval = 30 * time.Second
	DefaultTokenTTL        = 24 * time.Hour
	DefaultLogLevel        = "info"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Chat: Chat{
			DisplayName:       models.DefaultDisplayName,
			AvatarURLTemplate: models.DefaultAvatarURLTemplate,
			ChannelLimit:      DefaultChannelLimit,
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
			PingInterval:   DefaultPingInterval,
		},
		DevServer: DevServer{
			Address:         DefaultDevAddress,
			ChatterInterval: DefaultChatterInterval,
			TokenTTL:        DefaultTokenTTL,
		},
		Log: Log{Level: DefaultLogLevel},
	}
}
