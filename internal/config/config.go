// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container. It aggregates
// all sub-configurations and is populated by merging values from environment
// variables, command-line flags, an optional JSON file and defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Chat holds the chat application credentials and the identity of the
	// connecting user.
	Chat Chat `envPrefix:"CHAT_"`

	// Adapter holds the addresses and timeouts used to reach the chat
	// backend.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// DevServer holds settings of the local backend emulator.
	DevServer DevServer `envPrefix:"DEVSERVER_"`

	// Log holds logging settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Chat holds the values that identify the chat application and the user.
type Chat struct {
	// APIKey selects the backend application instance.
	// Env: CHAT_API_KEY
	APIKey string `env:"API_KEY"`

	// Token authenticates the user.
	// Env: CHAT_TOKEN
	Token string `env:"TOKEN"`

	// UserID identifies the chat participant.
	// Env: CHAT_USER_ID
	UserID string `env:"USER_ID"`

	// DisplayName is shown to other participants.
	// Env: CHAT_DISPLAY_NAME
	DisplayName string `env:"DISPLAY_NAME"`

	// AvatarURLTemplate is the avatar URL with a {name} placeholder.
	// Env: CHAT_AVATAR_URL_TEMPLATE
	AvatarURLTemplate string `env:"AVATAR_URL_TEMPLATE"`

	// ChannelLimit caps the number of channels loaded at setup.
	// Env: CHAT_CHANNEL_LIMIT
	ChannelLimit int `env:"CHANNEL_LIMIT"`
}

// Adapter holds the settings of the outbound transport.
type Adapter struct {
	// HTTPAddress is the base URL of the REST API (e.g. "http://localhost:8080").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// WSAddress is the base URL of the realtime endpoint. When empty it is
	// derived from HTTPAddress by switching the scheme to ws/wss.
	// Env: ADAPTER_WS_ADDRESS
	WSAddress string `env:"WS_ADDRESS"`

	// RequestTimeout bounds every REST request (e.g. "15s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// PingInterval is how often the realtime connection is pinged.
	// Env: ADAPTER_PING_INTERVAL
	PingInterval time.Duration `env:"PING_INTERVAL"`
}

// DevServer holds settings of the local backend emulator.
type DevServer struct {
	// Address is the TCP address to listen on, "host:port".
	// Env: DEVSERVER_ADDRESS
	Address string `env:"ADDRESS"`

	// Secret signs and verifies user tokens (HS256).
	// Env: DEVSERVER_SECRET
	Secret string `env:"SECRET"`

	// ChatterInterval is how often the emulator posts a synthetic message.
	// Env: DEVSERVER_CHATTER_INTERVAL
	ChatterInterval time.Duration `env:"CHATTER_INTERVAL"`

	// TokenTTL is the lifetime of tokens minted for the demo user.
	// Env: DEVSERVER_TOKEN_TTL
	TokenTTL time.Duration `env:"TOKEN_TTL"`
}

// Log holds logging settings.
type Log struct {
	// Level is the minimum level (debug, info, warn, error).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`

	// File is where the interactive client writes its log.
	// Env: LOG_FILE
	File string `env:"FILE"`
}

// GetStructuredConfig loads, merges, and validates the configuration from all
// available sources.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
