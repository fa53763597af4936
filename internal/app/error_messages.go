// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains user-facing message strings shared by the client
// binary and the terminal UI.
//
// All Msg* constants are short, human-readable descriptions of a failure
// category. [UserMessage] picks the right one for an error returned by the
// session store, the chat adapter or the configuration layer, so the wording
// stays consistent between the status line and the exit log.
package app

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-chat-client/internal/adapter"
	"github.com/MKhiriev/go-chat-client/internal/config"
	"github.com/MKhiriev/go-chat-client/internal/store"
)

const (
	// MsgConfigurationMissing is shown when the API key, the user token or
	// the user ID is not configured.
	MsgConfigurationMissing = "chat is not configured: set CHAT_API_KEY, CHAT_TOKEN and CHAT_USER_ID"

	// MsgInvalidConfiguration is shown when a configured value is malformed,
	// e.g. a negative channel limit or an unparsable address.
	MsgInvalidConfiguration = "invalid configuration"

	// MsgAuthenticationFailed is shown when the backend rejects the connect
	// handshake.
	MsgAuthenticationFailed = "authentication failed"

	// MsgTokenUserMismatch is shown when the configured token was issued for
	// another user ID.
	MsgTokenUserMismatch = "token was issued for another user"

	// MsgQueryFailed is shown when the channel list cannot be loaded.
	MsgQueryFailed = "could not load channels"

	// MsgServerUnavailable is shown when the backend cannot be reached.
	MsgServerUnavailable = "network is unavailable or the server is down"

	// MsgRateLimited is shown when the backend throttles the client.
	MsgRateLimited = "too many requests, try again later"

	// MsgNotConnected is shown when an operation needs a realtime connection
	// that is not open.
	MsgNotConnected = "not connected"

	// MsgCanceled is shown when the operation was abandoned by the user.
	MsgCanceled = "operation canceled"

	// MsgInternalError is shown for everything else.
	MsgInternalError = "internal error"
)

// messageRule maps an error category to its message. Rules are checked in
// order, the most specific first.
type messageRule struct {
	target  error
	message string
}

var messageRules = []messageRule{
	{adapter.ErrTokenUserMismatch, MsgTokenUserMismatch},
	{store.ErrConfigurationMissing, MsgConfigurationMissing},
	{config.ErrInvalidChatConfigs, MsgInvalidConfiguration},
	{config.ErrInvalidAdapterConfigs, MsgInvalidConfiguration},
	{config.ErrInvalidDevServerConfigs, MsgInvalidConfiguration},
	{config.ErrInvalidEnvConfigs, MsgInvalidConfiguration},
	{adapter.ErrTooManyRequests, MsgRateLimited},
	{store.ErrAuthenticationFailure, MsgAuthenticationFailed},
	{store.ErrQueryFailure, MsgQueryFailed},
	{adapter.ErrUnauthorized, MsgAuthenticationFailed},
	{adapter.ErrNotConnected, MsgNotConnected},
	{context.Canceled, MsgCanceled},
	{context.DeadlineExceeded, MsgServerUnavailable},
}

// UserMessage returns the message to show for err, or "" for nil.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	for _, rule := range messageRules {
		if errors.Is(err, rule.target) {
			return rule.message
		}
	}
	return MsgInternalError
}
