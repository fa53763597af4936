package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidChatConfigs indicates invalid chat session settings
	// (for example, a negative channel limit).
	ErrInvalidChatConfigs = errors.New("invalid chat configuration")
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing HTTP address or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidDevServerConfigs indicates invalid dev server settings
	// (for example, missing signing secret).
	ErrInvalidDevServerConfigs = errors.New("invalid dev server configuration")
	// ErrInvalidEnvConfigs indicates a CHAT_*, ADAPTER_*, DEVSERVER_* or LOG_*
	// variable that does not parse into its field type.
	ErrInvalidEnvConfigs = errors.New("invalid environment configuration")
)
