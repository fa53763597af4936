package store

import "fmt"

// ChangeKind tells subscribers which part of the session changed.
type ChangeKind int

const (
	// ActiveChannelChanged is emitted after SetActiveChannel and after the
	// first channel of a query becomes active.
	ActiveChannelChanged ChangeKind = iota + 1
	// ChannelsChanged is emitted after the registry has been populated.
	ChannelsChanged
	// MessagesChanged is emitted when a watched channel received a message.
	// Change.CID names the channel.
	MessagesChanged
	// ConnectionLost is emitted when the realtime connection dropped.
	ConnectionLost
)

func (k ChangeKind) String() string {
	switch k {
	case ActiveChannelChanged:
		return "active_channel_changed"
	case ChannelsChanged:
		return "channels_changed"
	case MessagesChanged:
		return "messages_changed"
	case ConnectionLost:
		return "connection_lost"
	default:
		return fmt.Sprintf("change(%d)", int(k))
	}
}

// Change is a single store notification.
type Change struct {
	Kind ChangeKind
	CID  string
}

// Subscribe returns a channel of store changes and a function that removes
// the subscription and closes the channel. Sends never block: a subscriber
// that does not keep up with buffer pending changes misses the newer ones.
func (s *ChatSessionStore) Subscribe(buffer int) (<-chan Change, func()) {
	if buffer < 1 {
		buffer = 1
	}
	ch := make(chan Change, buffer)

	s.subsMu.Lock()
	s.nextSubID++
	id := s.nextSubID
	s.subs[id] = ch
	s.subsMu.Unlock()

	return ch, func() {
		s.subsMu.Lock()
		defer s.subsMu.Unlock()
		if sub, ok := s.subs[id]; ok {
			delete(s.subs, id)
			close(sub)
		}
	}
}

func (s *ChatSessionStore) notify(change Change) {
	s.subsMu.Lock()
	defer s.subsMu.Unlock()

	for id, sub := range s.subs {
		select {
		case sub <- change:
		default:
			s.logger.Debug().
				Uint64("subscriber", id).
				Stringer("kind", change.Kind).
				Msg("subscriber is slow, change dropped")
		}
	}
}

func (s *ChatSessionStore) closeSubscribers() {
	s.subsMu.Lock()
	defer s.subsMu.Unlock()

	for id, sub := range s.subs {
		delete(s.subs, id)
		close(sub)
	}
}
