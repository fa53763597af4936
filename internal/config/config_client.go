package config

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-chat-client/models"
)

// ClientSession holds the values the chat session needs to authenticate and
// present the user.
type ClientSession struct {
	// APIKey selects the backend application instance.
	APIKey string
	// Token authenticates the user.
	Token string
	// UserID identifies the chat participant.
	UserID string
	// Profile describes how the user is presented to other participants.
	Profile models.Profile
	// ChannelLimit caps the number of channels loaded at setup.
	ChannelLimit int
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the REST base URL used by the client.
	HTTPAddress string
	// WSAddress is the realtime base URL. Empty means "derive from HTTPAddress".
	WSAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
	// PingInterval is how often the realtime connection is pinged.
	PingInterval time.Duration
}

// ClientLog holds client logging settings.
type ClientLog struct {
	Level string
	File  string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Session contains credentials and the user profile.
	Session ClientSession
	// Adapter contains client transport addresses and timeouts.
	Adapter ClientAdapter
	// Log contains logging settings.
	Log ClientLog
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// Missing credentials are not reported here. The session store owns that
// check so the failure surfaces as its own configuration error.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		Session: ClientSession{
			APIKey: cfg.Chat.APIKey,
			Token:  cfg.Chat.Token,
			UserID: cfg.Chat.UserID,
			Profile: models.Profile{
				Name:              cfg.Chat.DisplayName,
				AvatarURLTemplate: cfg.Chat.AvatarURLTemplate,
			},
			ChannelLimit: cfg.Chat.ChannelLimit,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			WSAddress:      cfg.Adapter.WSAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			PingInterval:   cfg.Adapter.PingInterval,
		},
		Log: ClientLog{
			Level: cfg.Log.Level,
			File:  cfg.Log.File,
		},
	}
}
