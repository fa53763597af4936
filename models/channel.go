package models

import (
	"sync"
	"time"
)

// ChannelTypeMessaging is the channel type used for user-to-user
// conversations.
const ChannelTypeMessaging = "messaging"

// Channel is a conversation thread as returned by a channel query.
//
// Channels are handed around by pointer: the chat client keeps updating the
// State of watched channels, and every holder of the pointer observes it.
// Once a channel has a State, its descriptor fields change only through
// Refresh and are guarded by the State lock; read them with DisplayName and
// LastActivity.
type Channel struct {
	CID           string     `json:"cid"`
	ID            string     `json:"id"`
	Type          string     `json:"type"`
	Name          string     `json:"name,omitempty"`
	LastMessageAt *time.Time `json:"last_message_at,omitempty"`
	MemberCount   int        `json:"member_count"`
	Members       []Member   `json:"-"`

	State *ChannelState `json:"-"`
}

// NewChannel returns a channel with an empty state.
func NewChannel(channelType, id string) *Channel {
	return &Channel{
		CID:   channelType + ":" + id,
		ID:    id,
		Type:  channelType,
		State: NewChannelState(),
	}
}

// rlock locks the channel for reading and returns the matching unlock.
func (c *Channel) rlock() func() {
	if c.State == nil {
		return func() {}
	}
	c.State.mu.RLock()
	return c.State.mu.RUnlock
}

// DisplayName returns Name, falling back to the channel ID.
func (c *Channel) DisplayName() string {
	defer c.rlock()()

	if c.Name != "" {
		return c.Name
	}
	return c.ID
}

// LastActivity returns the newer of LastMessageAt and the creation time of
// the last message in State. The zero time means the channel has no
// messages.
func (c *Channel) LastActivity() time.Time {
	defer c.rlock()()

	var last time.Time
	if c.LastMessageAt != nil {
		last = *c.LastMessageAt
	}
	if c.State != nil {
		if t := c.State.lastMessageAt(); t.After(last) {
			last = t
		}
	}
	return last
}

// Refresh copies the descriptor fields of from and the member list into c.
// CID and State are kept.
func (c *Channel) Refresh(from Channel, members []Member) {
	if c.State != nil {
		c.State.mu.Lock()
		defer c.State.mu.Unlock()
	}

	c.ID = from.ID
	c.Type = from.Type
	c.Name = from.Name
	c.LastMessageAt = from.LastMessageAt
	c.MemberCount = from.MemberCount
	c.Members = members
}

// ChannelState holds the mutable, live part of a channel.
type ChannelState struct {
	mu       sync.RWMutex
	messages []Message
}

// NewChannelState returns an empty state.
func NewChannelState(messages ...Message) *ChannelState {
	return &ChannelState{messages: messages}
}

// Messages returns the current message list. The slice is shared, callers
// must not modify it.
func (s *ChannelState) Messages() []Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.messages
}

// SetMessages replaces the message list.
func (s *ChannelState) SetMessages(messages []Message) {
	s.mu.Lock()
	s.messages = messages
	s.mu.Unlock()
}

// LastMessageAt returns the creation time of the last message, or the zero
// time for an empty list.
func (s *ChannelState) LastMessageAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastMessageAt()
}

func (s *ChannelState) lastMessageAt() time.Time {
	if len(s.messages) == 0 {
		return time.Time{}
	}
	return s.messages[len(s.messages)-1].CreatedAt
}

// AddMessage appends msg unless a message with the same ID is already
// present.
func (s *ChannelState) AddMessage(msg Message) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if msg.ID != "" {
		for _, m := range s.messages {
			if m.ID == msg.ID {
				return false
			}
		}
	}
	// copy on append so slices handed out by Messages stay stable
	next := make([]Message, len(s.messages), len(s.messages)+1)
	copy(next, s.messages)
	s.messages = append(next, msg)
	return true
}

// Member is a channel membership record.
type Member struct {
	UserID string `json:"user_id"`
	User   *User  `json:"user,omitempty"`
	Role   string `json:"role,omitempty"`
}

// Message is a single chat message.
type Message struct {
	ID        string    `json:"id"`
	CID       string    `json:"cid,omitempty"`
	Text      string    `json:"text"`
	Type      string    `json:"type,omitempty"`
	User      *User     `json:"user,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Author returns the sender's display name, falling back to the user ID.
func (m Message) Author() string {
	if m.User == nil {
		return "?"
	}
	if m.User.Name != "" {
		return m.User.Name
	}
	return m.User.ID
}
