package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-chat-client/internal/config"
	"github.com/MKhiriev/go-chat-client/internal/logger"
	"github.com/MKhiriev/go-chat-client/internal/utils"
	"github.com/MKhiriev/go-chat-client/models"
	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
)

const (
	authTypeJWT      = "jwt"
	eventReadLimit   = 1 << 20
	closeReasonLeave = "client disconnect"
)

type streamClient struct {
	apiKey       string
	client       *utils.HTTPClient
	wsBaseURL    string
	pingInterval time.Duration

	mu           sync.RWMutex
	conn         *websocket.Conn
	token        string
	connectionID string
	stopLoops    context.CancelFunc
	loopsDone    *sync.WaitGroup

	handlersMu sync.RWMutex
	handlers   map[string]map[uint64]EventHandler
	nextID     uint64

	watchedMu sync.RWMutex
	watched   map[string]*models.Channel

	logger *logger.Logger
}

// NewStreamClient constructs the REST plus websocket implementation of
// [ChatClient] for the application identified by apiKey. It normalises the
// REST base URL from adapterCfg.HTTPAddress and derives the websocket base URL
// from it unless adapterCfg.WSAddress is set.
//
// No network interaction happens until ConnectUser.
func NewStreamClient(apiKey string, adapterCfg config.ClientAdapter, log *logger.Logger) (ChatClient, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("empty api key")
	}

	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	wsBaseURL, err := websocketBaseURL(baseURL, adapterCfg.WSAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter websocket address: %w", err)
	}

	return &streamClient{
		apiKey:       apiKey,
		client:       utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		wsBaseURL:    wsBaseURL,
		pingInterval: adapterCfg.PingInterval,
		handlers:     make(map[string]map[uint64]EventHandler),
		watched:      make(map[string]*models.Channel),
		logger:       log.WithComponent("chat-client"),
	}, nil
}

// ConnectUser implements [ChatClient]. It checks that token was issued for
// user.ID, dials GET {ws}/connect and waits for the first frame: health.check
// completes the connection, connection.error rejects it.
func (s *streamClient) ConnectUser(ctx context.Context, user models.User, token string) (models.Connection, error) {
	if user.ID == "" {
		return models.Connection{}, fmt.Errorf("%w: empty user id", ErrBadRequest)
	}

	tokenUserID, err := utils.ParseUserIDFromToken(token)
	if err != nil {
		return models.Connection{}, fmt.Errorf("%w: malformed token: %w", ErrUnauthorized, err)
	}
	if tokenUserID != user.ID {
		return models.Connection{}, fmt.Errorf("%w: token user %q, connecting user %q", ErrTokenUserMismatch, tokenUserID, user.ID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.conn != nil {
		return models.Connection{}, ErrAlreadyConnected
	}

	connectURL, err := s.connectURL(user, token)
	if err != nil {
		return models.Connection{}, err
	}

	conn, resp, err := websocket.Dial(ctx, connectURL, nil)
	if err != nil {
		if resp != nil {
			body, _ := io.ReadAll(resp.Body)
			return models.Connection{}, mapStatus(resp.StatusCode, errorBody(body))
		}
		return models.Connection{}, fmt.Errorf("connect dial: %w", err)
	}
	conn.SetReadLimit(eventReadLimit)

	var first models.Event
	if err = wsjson.Read(ctx, conn, &first); err != nil {
		conn.Close(websocket.StatusProtocolError, "no handshake event")
		return models.Connection{}, fmt.Errorf("connect read handshake: %w", err)
	}

	switch first.Type {
	case models.EventHealthCheck:
	case models.EventConnectionError:
		conn.Close(websocket.StatusNormalClosure, "rejected")
		return models.Connection{}, mapAPIError(first.Error)
	default:
		conn.Close(websocket.StatusProtocolError, "unexpected handshake event")
		return models.Connection{}, fmt.Errorf("connect: unexpected first event %q", first.Type)
	}

	connection := models.Connection{ConnectionID: first.ConnectionID}
	if first.Me != nil {
		connection.Me = *first.Me
	} else {
		connection.Me = user
	}

	loopCtx, cancel := context.WithCancel(context.Background())
	wg := &sync.WaitGroup{}

	s.conn = conn
	s.token = token
	s.connectionID = first.ConnectionID
	s.stopLoops = cancel
	s.loopsDone = wg

	wg.Add(1)
	go func() {
		defer wg.Done()
		s.readLoop(loopCtx, conn)
	}()
	if s.pingInterval > 0 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.pingLoop(loopCtx, conn)
		}()
	}

	s.logger.Info().
		Str("user_id", user.ID).
		Str("connection_id", connection.ConnectionID).
		Msg("connected to chat backend")

	return connection, nil
}

func (s *streamClient) connectURL(user models.User, token string) (string, error) {
	payload, err := json.Marshal(models.ConnectRequest{
		UserID:                       user.ID,
		UserDetails:                  user,
		ServerDeterminesConnectionID: true,
	})
	if err != nil {
		return "", fmt.Errorf("connect encode user: %w", err)
	}

	query := url.Values{}
	query.Set("api_key", s.apiKey)
	query.Set("json", string(payload))
	query.Set("authorization", token)
	query.Set("stream-auth-type", authTypeJWT)

	return s.wsBaseURL + "/connect?" + query.Encode(), nil
}

// QueryChannels implements [ChatClient]. It POSTs the query to
// POST /channels. Watched channels are cached by cid: a channel that is
// already watched has its descriptor and State refreshed and the cached
// pointer is returned.
func (s *streamClient) QueryChannels(ctx context.Context, filter models.Filter, sort []models.SortOption, opts models.QueryOptions) ([]*models.Channel, error) {
	s.mu.RLock()
	connected := s.conn != nil
	token := s.token
	connectionID := s.connectionID
	s.mu.RUnlock()

	if !connected {
		return nil, ErrNotConnected
	}

	body := models.QueryChannelsRequest{
		FilterConditions: filter,
		Sort:             sort,
		Limit:            opts.Limit,
		Offset:           opts.Offset,
		Watch:            opts.Watch,
		State:            opts.State,
		Presence:         opts.Presence,
		MessageLimit:     opts.MessageLimit,
	}
	if opts.Watch || opts.Presence {
		body.ConnectionID = connectionID
	}

	var result models.QueryChannelsResponse
	resp, err := s.client.R().
		SetContext(ctx).
		SetQueryParam("api_key", s.apiKey).
		SetHeader("Authorization", token).
		SetHeader("Stream-Auth-Type", authTypeJWT).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(&result).
		Post("/channels")
	if err != nil {
		return nil, fmt.Errorf("query channels request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	channels := make([]*models.Channel, 0, len(result.Channels))
	for i := range result.Channels {
		channels = append(channels, s.resolveChannel(&result.Channels[i], opts.Watch))
	}

	s.logger.Debug().
		Int("count", len(channels)).
		Bool("watch", opts.Watch).
		Msg("channels queried")

	return channels, nil
}

// resolveChannel turns one response entry into a channel, reusing the cached
// pointer when the cid is already watched.
func (s *streamClient) resolveChannel(entry *models.ChannelStateResponse, watch bool) *models.Channel {
	cid := entry.Channel.CID
	if cid == "" {
		cid = entry.Channel.Type + ":" + entry.Channel.ID
	}

	s.watchedMu.Lock()
	defer s.watchedMu.Unlock()

	if existing, ok := s.watched[cid]; ok {
		existing.Refresh(entry.Channel, entry.Members)
		existing.State.SetMessages(entry.Messages)
		return existing
	}

	ch := entry.Channel
	ch.CID = cid
	ch.Members = entry.Members
	ch.State = models.NewChannelState(entry.Messages...)

	if watch {
		s.watched[cid] = &ch
	}
	return &ch
}

// On implements [ChatClient].
func (s *streamClient) On(eventType string, handler EventHandler) func() {
	s.handlersMu.Lock()
	s.nextID++
	id := s.nextID
	if s.handlers[eventType] == nil {
		s.handlers[eventType] = make(map[uint64]EventHandler)
	}
	s.handlers[eventType][id] = handler
	s.handlersMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.handlersMu.Lock()
			delete(s.handlers[eventType], id)
			if len(s.handlers[eventType]) == 0 {
				delete(s.handlers, eventType)
			}
			s.handlersMu.Unlock()
		})
	}
}

// Disconnect implements [ChatClient]. It forgets watched channels, closes the
// websocket with a normal closure and waits for the loops to stop.
func (s *streamClient) Disconnect(ctx context.Context) error {
	s.mu.Lock()
	conn := s.conn
	stop := s.stopLoops
	done := s.loopsDone
	s.conn = nil
	s.token = ""
	s.connectionID = ""
	s.stopLoops = nil
	s.loopsDone = nil
	s.mu.Unlock()

	s.watchedMu.Lock()
	s.watched = make(map[string]*models.Channel)
	s.watchedMu.Unlock()

	if conn == nil {
		return nil
	}

	closeErr := conn.Close(websocket.StatusNormalClosure, closeReasonLeave)
	stop()

	stopped := make(chan struct{})
	go func() {
		done.Wait()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-ctx.Done():
		return ctx.Err()
	}

	s.logger.Info().Msg("disconnected from chat backend")

	if closeErr != nil && !errors.Is(closeErr, net.ErrClosed) {
		return fmt.Errorf("disconnect: %w", closeErr)
	}
	return nil
}

func (s *streamClient) readLoop(ctx context.Context, conn *websocket.Conn) {
	for {
		var event models.Event
		if err := wsjson.Read(ctx, conn, &event); err != nil {
			if ctx.Err() != nil || !s.isCurrent(conn) {
				return
			}

			s.logger.Warn().Err(err).Msg("realtime connection lost")
			s.dropConnection(conn)
			s.dispatch(&models.Event{
				Type:      models.EventConnectionChanged,
				CreatedAt: time.Now(),
			})
			return
		}

		s.applyEvent(&event)
		s.dispatch(&event)
	}
}

func (s *streamClient) pingLoop(ctx context.Context, conn *websocket.Conn) {
	ticker := time.NewTicker(s.pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(ctx, s.pingInterval)
			err := conn.Ping(pingCtx)
			cancel()
			if err != nil {
				if ctx.Err() == nil {
					s.logger.Warn().Err(err).Msg("realtime ping failed")
				}
				return
			}
		}
	}
}

// applyEvent keeps watched channel state current before handlers see the
// event.
func (s *streamClient) applyEvent(event *models.Event) {
	if event.Type != models.EventMessageNew || event.Message == nil {
		return
	}

	s.watchedMu.RLock()
	ch, ok := s.watched[event.CID]
	s.watchedMu.RUnlock()
	if !ok {
		return
	}

	msg := *event.Message
	if msg.CID == "" {
		msg.CID = event.CID
	}
	ch.State.AddMessage(msg)
}

func (s *streamClient) dispatch(event *models.Event) {
	s.handlersMu.RLock()
	handlers := make([]EventHandler, 0, len(s.handlers[event.Type])+len(s.handlers[models.EventAll]))
	for _, h := range s.handlers[event.Type] {
		handlers = append(handlers, h)
	}
	for _, h := range s.handlers[models.EventAll] {
		handlers = append(handlers, h)
	}
	s.handlersMu.RUnlock()

	for _, h := range handlers {
		h(event)
	}
}

func (s *streamClient) isCurrent(conn *websocket.Conn) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.conn == conn
}

// dropConnection clears the connection state if conn is still current.
func (s *streamClient) dropConnection(conn *websocket.Conn) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.conn != conn {
		return
	}
	s.stopLoops()
	s.conn = nil
	s.token = ""
	s.connectionID = ""
	s.stopLoops = nil
	s.loopsDone = nil
	conn.CloseNow()
}
