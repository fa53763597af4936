package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-chat-client/models"
)

// SetupUser connects the configured user and loads their channels. Connect
// strictly precedes the query; a failure of either is returned as is and
// nothing is retried.
func (s *ChatSessionStore) SetupUser(ctx context.Context) error {
	if err := s.connectUser(ctx); err != nil {
		return err
	}

	return s.loadChannels(ctx)
}

func (s *ChatSessionStore) connectUser(ctx context.Context) error {
	user := s.profile.Descriptor(s.userID)

	conn, err := s.client.ConnectUser(ctx, user, s.token)
	if err != nil {
		s.logger.Err(err).
			Str("func", "ChatSessionStore.connectUser").
			Str("user_id", s.userID).
			Msg("connect rejected")
		return fmt.Errorf("%w: %w", ErrAuthenticationFailure, err)
	}

	if conn.Me.ID == "" {
		conn.Me = user
	}

	s.mu.Lock()
	s.user = conn.Me
	s.mu.Unlock()

	s.logger.Info().
		Str("user_id", s.userID).
		Str("connection_id", conn.ConnectionID).
		Msg("user connected")

	return nil
}

// loadChannels queries the user's messaging channels, most recently active
// first, and watches them. The registry is only touched on success.
func (s *ChatSessionStore) loadChannels(ctx context.Context) error {
	filter := models.MemberChannelsFilter(models.ChannelTypeMessaging, s.userID)
	sort := []models.SortOption{{Field: "last_message_at", Direction: models.SortDescending}}
	opts := models.QueryOptions{Limit: s.channelLimit, Watch: true, State: true}

	channels, err := s.client.QueryChannels(ctx, filter, sort, opts)
	if err != nil {
		s.logger.Err(err).
			Str("func", "ChatSessionStore.loadChannels").
			Str("user_id", s.userID).
			Msg("channel query rejected")
		return fmt.Errorf("%w: %w", ErrQueryFailure, err)
	}

	s.mu.Lock()
	for _, ch := range channels {
		s.channels[ch.CID] = ch
	}
	if len(channels) > 0 {
		s.activeChannel = channels[0]
	}
	if s.unsubscribe == nil {
		s.unsubscribe = []func(){
			s.client.On(models.EventMessageNew, s.handleMessageNew),
			s.client.On(models.EventConnectionChanged, s.handleConnectionChanged),
		}
	}
	s.mu.Unlock()

	s.logger.Info().
		Int("count", len(channels)).
		Msg("channels loaded")

	s.notify(Change{Kind: ChannelsChanged})
	if len(channels) > 0 {
		s.notify(Change{Kind: ActiveChannelChanged, CID: channels[0].CID})
	}

	return nil
}

// handleMessageNew runs on the client's read goroutine, after the client has
// appended the message to the watched channel. It reassigns the channel's
// message list to itself so observers of the list see an update, and
// signals the change. The read goroutine is the only writer of the list, so
// the reassignment cannot lose a message.
func (s *ChatSessionStore) handleMessageNew(event *models.Event) {
	if event == nil || event.Message == nil {
		return
	}

	s.mu.RLock()
	ch, ok := s.channels[event.CID]
	s.mu.RUnlock()
	if !ok || ch.State == nil {
		s.logger.Debug().
			Str("cid", event.CID).
			Msg("message for unknown channel ignored")
		return
	}

	ch.State.SetMessages(ch.State.Messages())
	s.notify(Change{Kind: MessagesChanged, CID: event.CID})
}

func (s *ChatSessionStore) handleConnectionChanged(*models.Event) {
	s.logger.Warn().Str("user_id", s.userID).Msg("realtime connection lost")
	s.notify(Change{Kind: ConnectionLost})
}
