package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-chat-client/internal/logger"
	"github.com/MKhiriev/go-chat-client/internal/utils"
	"github.com/MKhiriev/go-chat-client/models"
)

type connectionService struct {
	hub    *hub
	ids    *utils.UUIDGenerator
	logger *logger.Logger
}

func newConnectionService(h *hub, logger *logger.Logger) ConnectionService {
	return &connectionService{
		hub:    h,
		ids:    utils.NewUUIDGenerator(),
		logger: logger,
	}
}

func (c *connectionService) Open(ctx context.Context, user models.User) (*Connection, error) {
	if user.ID == "" {
		return nil, fmt.Errorf("%w: empty user ID", ErrInvalidDataProvided)
	}

	c.hub.mu.Lock()
	defer c.hub.mu.Unlock()

	conn := &Connection{
		ID:      c.ids.Generate(),
		User:    c.hub.upsertUser(user),
		events:  make(chan models.Event, connectionEventBuffer),
		watched: make(map[string]struct{}),
	}
	c.hub.connections[conn.ID] = conn

	c.logger.Info().
		Str("connection_id", conn.ID).
		Str("user_id", conn.User.ID).
		Int("connections", len(c.hub.connections)).
		Msg("connection opened")

	return conn, nil
}

func (c *connectionService) Close(connectionID string) {
	c.hub.mu.Lock()
	defer c.hub.mu.Unlock()

	conn, ok := c.hub.connections[connectionID]
	if !ok {
		return
	}
	delete(c.hub.connections, connectionID)
	close(conn.events)

	c.logger.Info().
		Str("connection_id", connectionID).
		Str("user_id", conn.User.ID).
		Int("connections", len(c.hub.connections)).
		Msg("connection closed")
}
