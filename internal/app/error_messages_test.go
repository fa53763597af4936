package app

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-chat-client/internal/adapter"
	"github.com/MKhiriev/go-chat-client/internal/config"
	"github.com/MKhiriev/go-chat-client/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"configuration missing", fmt.Errorf("%w: api key", store.ErrConfigurationMissing), MsgConfigurationMissing},
		{"invalid chat config", fmt.Errorf("%w: channel limit", config.ErrInvalidChatConfigs), MsgInvalidConfiguration},
		{"invalid adapter config", config.ErrInvalidAdapterConfigs, MsgInvalidConfiguration},
		{"malformed env variable", fmt.Errorf("%w: CHAT_CHANNEL_LIMIT", config.ErrInvalidEnvConfigs), MsgInvalidConfiguration},
		{"connect rejected", fmt.Errorf("%w: %w", store.ErrAuthenticationFailure, adapter.ErrUnauthorized), MsgAuthenticationFailed},
		{"query rejected", fmt.Errorf("%w: %w", store.ErrQueryFailure, adapter.ErrBadRequest), MsgQueryFailed},
		{"throttled query", fmt.Errorf("%w: %w", store.ErrQueryFailure, adapter.ErrTooManyRequests), MsgRateLimited},
		// token mismatch wins over the generic authentication failure
		{"token for another user", fmt.Errorf("%w: %w", store.ErrAuthenticationFailure, adapter.ErrTokenUserMismatch), MsgTokenUserMismatch},
		{"not connected", adapter.ErrNotConnected, MsgNotConnected},
		{"canceled", fmt.Errorf("setup: %w", context.Canceled), MsgCanceled},
		{"deadline", context.DeadlineExceeded, MsgServerUnavailable},
		{"unknown", errors.New("boom"), MsgInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UserMessage(tt.err))
		})
	}
}
