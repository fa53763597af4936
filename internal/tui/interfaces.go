package tui

import (
	"context"

	"github.com/MKhiriev/go-chat-client/internal/store"
	"github.com/MKhiriev/go-chat-client/models"
)

// SessionStore is the part of [store.ChatSessionStore] the UI reads from.
type SessionStore interface {
	SetupUser(ctx context.Context) error

	UserID() string
	User() models.User

	ChannelList() []*models.Channel
	ActiveChannel() *models.Channel
	SetActiveChannel(ch *models.Channel)

	Subscribe(buffer int) (<-chan store.Change, func())
}
