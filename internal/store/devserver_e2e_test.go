package store_test

import (
	"context"
	"errors"
	"net"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-chat-client/internal/adapter"
	"github.com/MKhiriev/go-chat-client/internal/config"
	httpHandler "github.com/MKhiriev/go-chat-client/internal/handler/http"
	"github.com/MKhiriev/go-chat-client/internal/logger"
	"github.com/MKhiriev/go-chat-client/internal/service"
	"github.com/MKhiriev/go-chat-client/internal/store"
	"github.com/MKhiriev/go-chat-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	e2eAPIKey = "e2e-api-key"
	e2eSecret = "e2e-secret"
	e2eUserID = "rogelio"
)

// startDevServer runs the development backend on an httptest server. The
// returned function cancels the context of every request, which ends the
// open websocket connections.
func startDevServer(t *testing.T) (*httptest.Server, *service.Services, context.CancelFunc) {
	t.Helper()

	cfg := config.DevServerConfig{
		Address:    "127.0.0.1:0",
		APIKey:     e2eAPIKey,
		Secret:     e2eSecret,
		DemoUserID: e2eUserID,
		TokenTTL:   time.Hour,
	}
	services, err := service.NewServices(cfg, models.NewAppBuildInfo("e2e", "", ""), logger.Nop())
	require.NoError(t, err)

	baseCtx, cancel := context.WithCancel(context.Background())
	srv := httptest.NewUnstartedServer(httpHandler.NewHandler(services, logger.Nop()).Init())
	srv.Config.BaseContext = func(net.Listener) context.Context { return baseCtx }
	srv.Start()
	t.Cleanup(func() {
		cancel()
		srv.Close()
	})

	return srv, services, cancel
}

func newE2EStore(t *testing.T, srv *httptest.Server, token string) *store.ChatSessionStore {
	t.Helper()

	factory := func(apiKey string) (adapter.ChatClient, error) {
		return adapter.NewStreamClient(apiKey, config.ClientAdapter{
			HTTPAddress:    srv.URL,
			RequestTimeout: 5 * time.Second,
		}, logger.Nop())
	}

	s, err := store.NewChatSessionStore(config.ClientSession{
		APIKey: e2eAPIKey,
		Token:  token,
		UserID: e2eUserID,
	}, factory, logger.Nop())
	require.NoError(t, err)

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.Close(ctx)
	})
	return s
}

func waitForChange(t *testing.T, changes <-chan store.Change, kind store.ChangeKind) store.Change {
	t.Helper()
	deadline := time.After(3 * time.Second)
	for {
		select {
		case c, ok := <-changes:
			require.True(t, ok, "changes channel closed")
			if c.Kind == kind {
				return c
			}
		case <-deadline:
			t.Fatalf("no %s change received", kind)
		}
	}
}

func TestDevServer_SetupUserAndRealtimeMessage(t *testing.T) {
	srv, services, _ := startDevServer(t)
	ctx := context.Background()

	token, err := services.AuthService.CreateToken(ctx, e2eUserID)
	require.NoError(t, err)

	s := newE2EStore(t, srv, token)
	changes, unsubscribe := s.Subscribe(16)
	defer unsubscribe()

	require.NoError(t, s.SetupUser(ctx))

	// the user is upserted with the default profile
	assert.Equal(t, e2eUserID, s.User().ID)
	assert.Equal(t, models.DefaultDisplayName, s.User().Name)

	list := s.ChannelList()
	require.Len(t, list, 4)
	assert.Equal(t, "messaging:general", list[0].CID)

	active := s.ActiveChannel()
	require.NotNil(t, active)
	assert.Equal(t, "messaging:general", active.CID)
	assert.Len(t, active.State.Messages(), 2)

	_, err = services.ChannelService.SendMessage(ctx, "marge", models.ChannelTypeMessaging, "design", models.Message{Text: "fresh mockups"})
	require.NoError(t, err)

	change := waitForChange(t, changes, store.MessagesChanged)
	assert.Equal(t, "messaging:design", change.CID)

	design, ok := s.Channel("messaging:design")
	require.True(t, ok)
	messages := design.State.Messages()
	require.Len(t, messages, 1)
	assert.Equal(t, "fresh mockups", messages[0].Text)
	assert.Equal(t, "messaging:design", s.ChannelList()[0].CID)
}

func TestDevServer_RejectedToken(t *testing.T) {
	srv, _, _ := startDevServer(t)

	// signed with another secret, the dev server refuses it
	forged, err := service.NewAuthService(e2eAPIKey, "other-secret", time.Hour, logger.Nop()).
		CreateToken(context.Background(), e2eUserID)
	require.NoError(t, err)

	s := newE2EStore(t, srv, forged)
	err = s.SetupUser(context.Background())

	require.Error(t, err)
	assert.True(t, errors.Is(err, store.ErrAuthenticationFailure))
	assert.True(t, errors.Is(err, adapter.ErrUnauthorized))
	assert.Nil(t, s.ActiveChannel())
	assert.Empty(t, s.Channels())
}

func TestDevServer_ConnectionLost(t *testing.T) {
	srv, services, dropConnections := startDevServer(t)
	ctx := context.Background()

	token, err := services.AuthService.CreateToken(ctx, e2eUserID)
	require.NoError(t, err)

	s := newE2EStore(t, srv, token)
	changes, unsubscribe := s.Subscribe(16)
	defer unsubscribe()
	require.NoError(t, s.SetupUser(ctx))

	dropConnections()

	waitForChange(t, changes, store.ConnectionLost)
}
