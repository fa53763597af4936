package config

import (
	"fmt"
	"time"
)

// DevServerConfig is the configuration of the local backend emulator.
type DevServerConfig struct {
	// Address is the listen address, "host:port".
	Address string
	// APIKey is the only application key the emulator accepts.
	APIKey string
	// Secret signs and verifies user tokens.
	Secret string
	// DemoUserID is the user the emulator seeds channels for and mints a
	// token for at startup. Optional.
	DemoUserID string
	// ChatterInterval is how often a synthetic message is posted. Zero
	// disables chatter.
	ChatterInterval time.Duration
	// TokenTTL is the lifetime of the minted demo token.
	TokenTTL time.Duration
	// LogLevel is the minimum log level.
	LogLevel string
}

// GetDevServerConfig builds and validates the dev server config view.
func GetDevServerConfig() (*DevServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	devCfg := newDevServerConfig(cfg)
	return devCfg, devCfg.validate()
}

func newDevServerConfig(cfg *StructuredConfig) *DevServerConfig {
	return &DevServerConfig{
		Address:         cfg.DevServer.Address,
		APIKey:          cfg.Chat.APIKey,
		Secret:          cfg.DevServer.Secret,
		DemoUserID:      cfg.Chat.UserID,
		ChatterInterval: cfg.DevServer.ChatterInterval,
		TokenTTL:        cfg.DevServer.TokenTTL,
		LogLevel:        cfg.Log.Level,
	}
}
