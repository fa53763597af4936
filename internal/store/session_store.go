// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store holds the chat session state of the client: the connected
// user, the registry of loaded channels and the active channel.
//
// [ChatSessionStore] is safe for concurrent use. Realtime notifications are
// delivered on the chat client's read goroutine and may race with UI calls
// such as [ChatSessionStore.SetActiveChannel]; the last write wins.
package store

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/MKhiriev/go-chat-client/internal/adapter"
	"github.com/MKhiriev/go-chat-client/internal/config"
	"github.com/MKhiriev/go-chat-client/internal/logger"
	"github.com/MKhiriev/go-chat-client/models"
	"github.com/samber/lo"
)

// DefaultChannelLimit is the number of channels loaded by SetupUser when
// the configuration does not set one.
const DefaultChannelLimit = 10

// ClientFactory creates an unauthenticated chat client for apiKey.
type ClientFactory func(apiKey string) (adapter.ChatClient, error)

// ChatSessionStore is the observable chat session of a single user.
type ChatSessionStore struct {
	client       adapter.ChatClient
	userID       string
	token        string
	profile      models.Profile
	channelLimit int

	mu            sync.RWMutex
	user          models.User
	activeChannel *models.Channel
	channels      map[string]*models.Channel
	unsubscribe   []func()

	subsMu    sync.Mutex
	subs      map[uint64]chan Change
	nextSubID uint64

	logger *logger.Logger
}

// NewChatSessionStore validates cfg and creates the chat client through
// newClient. The API key, the token and the user ID are required; when one
// of them is empty [ErrConfigurationMissing] is returned and newClient is
// not called.
func NewChatSessionStore(cfg config.ClientSession, newClient ClientFactory, log *logger.Logger) (*ChatSessionStore, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: API key is not defined", ErrConfigurationMissing)
	}
	if cfg.Token == "" {
		return nil, fmt.Errorf("%w: token is not defined", ErrConfigurationMissing)
	}
	if cfg.UserID == "" {
		return nil, fmt.Errorf("%w: user ID is not defined", ErrConfigurationMissing)
	}

	profile := cfg.Profile
	if profile == (models.Profile{}) {
		profile = models.DefaultProfile()
	}

	channelLimit := cfg.ChannelLimit
	if channelLimit <= 0 {
		channelLimit = DefaultChannelLimit
	}

	client, err := newClient(cfg.APIKey)
	if err != nil {
		return nil, fmt.Errorf("create chat client: %w", err)
	}

	return &ChatSessionStore{
		client:       client,
		userID:       cfg.UserID,
		token:        cfg.Token,
		profile:      profile,
		channelLimit: channelLimit,
		channels:     make(map[string]*models.Channel),
		subs:         make(map[uint64]chan Change),
		logger:       log.WithComponent("session-store"),
	}, nil
}

// Client returns the chat client the store was built with.
func (s *ChatSessionStore) Client() adapter.ChatClient {
	return s.client
}

// UserID returns the configured user ID.
func (s *ChatSessionStore) UserID() string {
	return s.userID
}

// User returns the backend's view of the connected user. Before SetupUser
// succeeds it is the descriptor built from the profile.
func (s *ChatSessionStore) User() models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user.ID == "" {
		return s.profile.Descriptor(s.userID)
	}
	return s.user
}

// ActiveChannel returns the active channel or nil.
func (s *ChatSessionStore) ActiveChannel() *models.Channel {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.activeChannel
}

// SetActiveChannel replaces the active channel. ch is not required to be in
// the registry; nil unsets it.
func (s *ChatSessionStore) SetActiveChannel(ch *models.Channel) {
	s.mu.Lock()
	s.activeChannel = ch
	s.mu.Unlock()

	var cid string
	if ch != nil {
		cid = ch.CID
	}
	s.notify(Change{Kind: ActiveChannelChanged, CID: cid})
}

// Channel looks a channel up in the registry.
func (s *ChatSessionStore) Channel(cid string) (*models.Channel, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ch, ok := s.channels[cid]
	return ch, ok
}

// Channels returns a copy of the registry keyed by cid.
func (s *ChatSessionStore) Channels() map[string]*models.Channel {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return lo.Assign(s.channels)
}

// ChannelList returns the registered channels, most recently active first.
func (s *ChatSessionStore) ChannelList() []*models.Channel {
	s.mu.RLock()
	list := lo.Values(s.channels)
	s.mu.RUnlock()

	slices.SortFunc(list, func(a, b *models.Channel) int {
		if c := b.LastActivity().Compare(a.LastActivity()); c != 0 {
			return c
		}
		return cmp.Compare(a.CID, b.CID)
	})
	return list
}

// Close drops the event subscriptions, disconnects the client and closes
// every subscriber channel.
func (s *ChatSessionStore) Close(ctx context.Context) error {
	s.mu.Lock()
	unsubscribe := s.unsubscribe
	s.unsubscribe = nil
	s.mu.Unlock()

	for _, fn := range unsubscribe {
		if fn != nil {
			fn()
		}
	}

	err := s.client.Disconnect(ctx)
	s.closeSubscribers()
	if err != nil {
		return fmt.Errorf("disconnect chat client: %w", err)
	}

	return nil
}
