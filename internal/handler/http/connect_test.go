package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-chat-client/internal/service"
	"github.com/MKhiriev/go-chat-client/models"
	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// connectURL builds a ws:// connect URL for srv.
func connectURL(t *testing.T, srv *httptest.Server, apiKey, token, userID string) string {
	t.Helper()

	payload, err := json.Marshal(models.ConnectRequest{
		UserID:                       userID,
		UserDetails:                  models.User{ID: userID, Name: "Alice"},
		ServerDeterminesConnectionID: true,
	})
	require.NoError(t, err)

	query := url.Values{}
	query.Set(apiKeyParam, apiKey)
	query.Set("json", string(payload))
	query.Set(authorizationParam, token)
	query.Set(authTypeParam, authTypeJWT)

	return "ws" + strings.TrimPrefix(srv.URL, "http") + "/connect?" + query.Encode()
}

func startTestServer(t *testing.T) (*httptest.Server, *service.Services, string) {
	t.Helper()
	router, services, token := newTestRouter(t)
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv, services, token
}

func readEvent(t *testing.T, conn *websocket.Conn) models.Event {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	var event models.Event
	require.NoError(t, wsjson.Read(ctx, conn, &event))
	return event
}

// ─────────────────────────────────────────────
// GET /connect
// ─────────────────────────────────────────────

func TestConnect_Handshake(t *testing.T) {
	srv, _, token := startTestServer(t)

	conn, _, err := websocket.Dial(context.Background(), connectURL(t, srv, testAPIKey, token, testUserID), nil)
	require.NoError(t, err)
	defer conn.CloseNow()

	event := readEvent(t, conn)

	assert.Equal(t, models.EventHealthCheck, event.Type)
	assert.NotEmpty(t, event.ConnectionID)
	require.NotNil(t, event.Me)
	assert.Equal(t, testUserID, event.Me.ID)
	assert.Equal(t, "Alice", event.Me.Name)

	require.NoError(t, conn.Close(websocket.StatusNormalClosure, ""))
}

func TestConnect_RejectedCredentials(t *testing.T) {
	srv, services, token := startTestServer(t)

	bobToken, err := services.AuthService.CreateToken(context.Background(), "bob")
	require.NoError(t, err)

	tests := []struct {
		name     string
		token    string
		userID   string
		wantCode int
	}{
		{name: "garbage token", token: "garbage", userID: testUserID, wantCode: codeTokenNotValid},
		{name: "token of another user", token: bobToken, userID: testUserID, wantCode: codeTokenUserMismatch},
		{name: "missing token", token: "", userID: testUserID, wantCode: codeAuthentication},
		{name: "valid token, mismatching payload", token: token, userID: "bob", wantCode: codeTokenUserMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, _, err := websocket.Dial(context.Background(), connectURL(t, srv, testAPIKey, tt.token, tt.userID), nil)
			require.NoError(t, err)
			defer conn.CloseNow()

			event := readEvent(t, conn)

			assert.Equal(t, models.EventConnectionError, event.Type)
			require.NotNil(t, event.Error)
			assert.Equal(t, tt.wantCode, event.Error.Code)
			assert.Equal(t, http.StatusUnauthorized, event.Error.StatusCode)
		})
	}
}

func TestConnect_ForeignUserDetails(t *testing.T) {
	srv, _, token := startTestServer(t)

	payload, err := json.Marshal(models.ConnectRequest{
		UserID:      testUserID,
		UserDetails: models.User{ID: "mallory", Name: "Mallory"},
	})
	require.NoError(t, err)

	u, err := url.Parse(connectURL(t, srv, testAPIKey, token, testUserID))
	require.NoError(t, err)
	query := u.Query()
	query.Set("json", string(payload))
	u.RawQuery = query.Encode()

	conn, _, err := websocket.Dial(context.Background(), u.String(), nil)
	require.NoError(t, err)
	defer conn.CloseNow()

	event := readEvent(t, conn)

	assert.Equal(t, models.EventConnectionError, event.Type)
	require.NotNil(t, event.Error)
	assert.Equal(t, codeInputError, event.Error.Code)
	assert.Equal(t, http.StatusBadRequest, event.Error.StatusCode)
}

func TestConnect_InvalidAPIKeyFailsUpgrade(t *testing.T) {
	srv, _, token := startTestServer(t)

	_, resp, err := websocket.Dial(context.Background(), connectURL(t, srv, "wrong", token, testUserID), nil)

	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestConnect_PushesWatchedMessages(t *testing.T) {
	srv, services, token := startTestServer(t)
	ctx := context.Background()

	conn, _, err := websocket.Dial(ctx, connectURL(t, srv, testAPIKey, token, testUserID), nil)
	require.NoError(t, err)
	defer conn.CloseNow()

	handshake := readEvent(t, conn)
	require.Equal(t, models.EventHealthCheck, handshake.Type)

	query := memberQuery()
	query.Watch = true
	query.ConnectionID = handshake.ConnectionID
	_, err = services.ChannelService.QueryChannels(ctx, testUserID, query)
	require.NoError(t, err)

	_, err = services.ChannelService.SendMessage(ctx, "ollie", models.ChannelTypeMessaging, "random", models.Message{Text: "ping"})
	require.NoError(t, err)

	event := readEvent(t, conn)
	assert.Equal(t, models.EventMessageNew, event.Type)
	assert.Equal(t, "messaging:random", event.CID)
	require.NotNil(t, event.Message)
	assert.Equal(t, "ping", event.Message.Text)
}

func TestConnect_ServerCloseSendsStatus(t *testing.T) {
	srv, services, token := startTestServer(t)

	conn, _, err := websocket.Dial(context.Background(), connectURL(t, srv, testAPIKey, token, testUserID), nil)
	require.NoError(t, err)
	defer conn.CloseNow()

	handshake := readEvent(t, conn)
	require.Equal(t, models.EventHealthCheck, handshake.Type)

	// closing the backend side ends the write loop, the read loop is still
	// blocked on the client
	services.ConnectionService.Close(handshake.ConnectionID)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, _, err = conn.Read(ctx)

	require.Error(t, err)
	assert.Equal(t, websocket.StatusNormalClosure, websocket.CloseStatus(err))
	var closeErr websocket.CloseError
	require.ErrorAs(t, err, &closeErr)
	assert.Equal(t, "closing", closeErr.Reason)
}

// ─────────────────────────────────────────────
// closeStatus
// ─────────────────────────────────────────────

func TestCloseStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want websocket.StatusCode
	}{
		{name: "nil", err: nil, want: websocket.StatusNormalClosure},
		{name: "canceled", err: context.Canceled, want: websocket.StatusNormalClosure},
		{name: "peer normal close", err: websocket.CloseError{Code: websocket.StatusNormalClosure}, want: websocket.StatusNormalClosure},
		{name: "peer going away", err: websocket.CloseError{Code: websocket.StatusGoingAway}, want: websocket.StatusNormalClosure},
		{name: "other", err: assert.AnError, want: websocket.StatusInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := closeStatus(tt.err)
			assert.Equal(t, tt.want, got)
		})
	}
}
