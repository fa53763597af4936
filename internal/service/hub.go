// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"sync"
	"time"

	"github.com/MKhiriev/go-chat-client/internal/logger"
	"github.com/MKhiriev/go-chat-client/models"
)

// connectionEventBuffer is the number of events queued per connection before
// new events for it are dropped.
const connectionEventBuffer = 64

// Connection is a realtime connection registered with the hub.
type Connection struct {
	ID     string
	User   models.User
	events chan models.Event

	// watched is guarded by the hub lock.
	watched map[string]struct{}
}

// Events returns the stream of events pushed to the connection. It is closed
// when the connection is unregistered.
func (c *Connection) Events() <-chan models.Event {
	return c.events
}

type channelRecord struct {
	channel   models.Channel
	createdAt time.Time
	members   []string
	messages  []models.Message
}

func (r *channelRecord) hasMember(userID string) bool {
	for _, m := range r.members {
		if m == userID {
			return true
		}
	}
	return false
}

// hub is the in-memory state shared by the services.
type hub struct {
	mu          sync.RWMutex
	users       map[string]models.User
	channels    map[string]*channelRecord
	connections map[string]*Connection

	logger *logger.Logger
}

func newHub(logger *logger.Logger) *hub {
	return &hub{
		users:       make(map[string]models.User),
		channels:    make(map[string]*channelRecord),
		connections: make(map[string]*Connection),
		logger:      logger,
	}
}

// upsertUser stores user, keeping previously known fields that user leaves
// empty. Caller holds h.mu.
func (h *hub) upsertUser(user models.User) models.User {
	if known, ok := h.users[user.ID]; ok {
		if user.Name == "" {
			user.Name = known.Name
		}
		if user.Image == "" {
			user.Image = known.Image
		}
	}
	h.users[user.ID] = user
	return user
}

// userRef returns a copy of the stored user, or a bare descriptor for an
// unknown ID. Caller holds h.mu.
func (h *hub) userRef(userID string) *models.User {
	u, ok := h.users[userID]
	if !ok {
		u = models.User{ID: userID}
	}
	return &u
}

// addChannel registers a channel with the given members. Caller holds h.mu.
func (h *hub) addChannel(channelType, id, name string, createdAt time.Time, members ...string) *channelRecord {
	ch := models.NewChannel(channelType, id)
	ch.Name = name
	ch.State = nil

	rec := &channelRecord{
		channel:   *ch,
		createdAt: createdAt,
		members:   members,
	}
	h.channels[ch.CID] = rec
	return rec
}

// appendMessage stores msg in rec and fans it out as message.new. Caller
// holds h.mu for writing.
func (h *hub) appendMessage(rec *channelRecord, msg models.Message) {
	rec.messages = append(rec.messages, msg)
	lastMessageAt := msg.CreatedAt
	rec.channel.LastMessageAt = &lastMessageAt

	h.broadcast(rec.channel.CID, models.Event{
		Type:        models.EventMessageNew,
		CID:         rec.channel.CID,
		ChannelID:   rec.channel.ID,
		ChannelType: rec.channel.Type,
		Message:     &msg,
		User:        msg.User,
		CreatedAt:   msg.CreatedAt,
	})
}

// broadcast pushes event to every connection watching cid. A connection with
// a full queue misses the event. Caller holds h.mu.
func (h *hub) broadcast(cid string, event models.Event) {
	for _, conn := range h.connections {
		if _, ok := conn.watched[cid]; !ok {
			continue
		}
		select {
		case conn.events <- event:
		default:
			h.logger.Warn().
				Str("connection_id", conn.ID).
				Str("cid", cid).
				Str("event", event.Type).
				Msg("connection queue is full, event dropped")
		}
	}
}

// snapshot builds the query response entry for rec. Caller holds h.mu.
func (h *hub) snapshot(rec *channelRecord, withState bool, messageLimit int) models.ChannelStateResponse {
	entry := models.ChannelStateResponse{Channel: rec.channel}
	entry.Channel.MemberCount = len(rec.members)
	if rec.channel.LastMessageAt != nil {
		t := *rec.channel.LastMessageAt
		entry.Channel.LastMessageAt = &t
	}

	if !withState {
		return entry
	}

	entry.Members = make([]models.Member, 0, len(rec.members))
	for _, id := range rec.members {
		entry.Members = append(entry.Members, models.Member{UserID: id, User: h.userRef(id)})
	}

	messages := rec.messages
	if messageLimit > 0 && len(messages) > messageLimit {
		messages = messages[len(messages)-messageLimit:]
	}
	entry.Messages = make([]models.Message, len(messages))
	copy(entry.Messages, messages)

	return entry
}
