package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-chat-client/models"
)

type AuthService interface {
	CheckAPIKey(apiKey string) error
	CreateToken(ctx context.Context, userID string) (string, error)
	ParseToken(ctx context.Context, tokenString string) (string, error)
}

// ChannelService answers channel queries and accepts new messages on behalf
// of an authenticated user.
type ChannelService interface {
	// QueryChannels returns the channels visible to userID that match req.
	// When req.Watch is set, the connection named in req is subscribed to the
	// returned channels.
	QueryChannels(ctx context.Context, userID string, req models.QueryChannelsRequest) ([]models.ChannelStateResponse, error)

	// SendMessage appends a message to a channel and pushes message.new to
	// every connection watching it.
	SendMessage(ctx context.Context, userID, channelType, channelID string, msg models.Message) (models.Message, error)
}

// ConnectionService tracks realtime connections.
type ConnectionService interface {
	// Open upserts user and registers a connection for it.
	Open(ctx context.Context, user models.User) (*Connection, error)

	// Close unregisters the connection and closes its event channel. Closing
	// an unknown connection is a no-op.
	Close(connectionID string)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// ChatterJob posts synthetic messages into seeded channels so connected
// clients have realtime traffic to show.
type ChatterJob interface {
	// Start launches the job. It stops a previously started run first.
	Start(ctx context.Context, interval time.Duration)

	// Stop cancels the job and waits for it to exit.
	Stop()
}
