package models

import "time"

// Event types delivered over the realtime connection.
const (
	// EventAll subscribes a handler to every event type.
	EventAll = "*"

	EventHealthCheck     = "health.check"
	EventConnectionError = "connection.error"
	EventMessageNew      = "message.new"
	EventMessageUpdated  = "message.updated"
	EventMessageDeleted  = "message.deleted"
	EventChannelUpdated  = "channel.updated"
	EventMemberAdded     = "member.added"
	EventMemberRemoved   = "member.removed"

	// EventConnectionChanged is emitted locally when the realtime connection
	// is lost.
	EventConnectionChanged = "connection.changed"
)

// Event is a single realtime notification. Fields that do not apply to the
// event type are left empty.
type Event struct {
	Type         string    `json:"type"`
	CID          string    `json:"cid,omitempty"`
	ChannelID    string    `json:"channel_id,omitempty"`
	ChannelType  string    `json:"channel_type,omitempty"`
	Message      *Message  `json:"message,omitempty"`
	User         *User     `json:"user,omitempty"`
	ConnectionID string    `json:"connection_id,omitempty"`
	Me           *User     `json:"me,omitempty"`
	Error        *APIError `json:"error,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
