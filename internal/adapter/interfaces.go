// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the chat backend.
//
// The primary abstraction is [ChatClient], which decouples the session store
// from the underlying protocol. The package ships a REST plus websocket
// implementation ([NewStreamClient]).
//
// Error values defined in errors.go are mapped from HTTP status codes and
// connection.error payloads so that callers can use [errors.Is] for
// transport-agnostic error handling (e.g. [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-chat-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/chat_client_mock.go -package=mock

// EventHandler receives realtime events. Handlers run on the client's read
// goroutine and must not block.
type EventHandler func(event *models.Event)

// ChatClient defines communication with the chat backend. Implementations
// are responsible for serialisation, authentication and mapping
// transport-level errors to the sentinel values defined in this package.
type ChatClient interface {
	// ConnectUser authenticates user with token and opens the realtime
	// connection. Only one connection may be open at a time.
	ConnectUser(ctx context.Context, user models.User, token string) (models.Connection, error)

	// QueryChannels returns the channels matching filter in the given order.
	// With opts.Watch set, the connection is subscribed to events of every
	// returned channel and the client keeps their State current.
	QueryChannels(ctx context.Context, filter models.Filter, sort []models.SortOption, opts models.QueryOptions) ([]*models.Channel, error)

	// On registers handler for eventType, or for every event when eventType
	// is [models.EventAll]. The returned function removes the registration.
	On(eventType string, handler EventHandler) (unsubscribe func())

	// Disconnect closes the realtime connection. It is safe to call when not
	// connected.
	Disconnect(ctx context.Context) error
}
