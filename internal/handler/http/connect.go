package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/MKhiriev/go-chat-client/internal/logger"
	"github.com/MKhiriev/go-chat-client/internal/service"
	"github.com/MKhiriev/go-chat-client/models"
	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
)

const connectReadLimit = 1 << 16

// connect upgrades the request to a websocket and registers a realtime
// connection for the user in the "json" query parameter.
//
// Authentication happens after the upgrade: a rejected token is reported
// with a connection.error event followed by a policy violation close. A
// successful connect is acknowledged with a health.check event carrying the
// connection ID and the stored user. Afterwards the backend pushes events of
// watched channels until either side closes.
func (h *Handler) connect(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		InsecureSkipVerify: true,
	})
	if err != nil {
		log.Err(err).Msg("websocket accept failed")
		return
	}
	defer conn.CloseNow()
	conn.SetReadLimit(connectReadLimit)

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	user, err := h.authenticateConnect(ctx, r.URL.Query())
	if err != nil {
		log.Err(err).Msg("connect rejected")
		rejectConnection(ctx, conn, err)
		return
	}

	c, err := h.services.ConnectionService.Open(ctx, user)
	if err != nil {
		log.Err(err).Msg("error opening connection")
		rejectConnection(ctx, conn, err)
		return
	}
	defer h.services.ConnectionService.Close(c.ID)

	me := c.User
	err = wsjson.Write(ctx, conn, models.Event{
		Type:         models.EventHealthCheck,
		ConnectionID: c.ID,
		Me:           &me,
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		log.Err(err).Str("connection_id", c.ID).Msg("error writing handshake")
		return
	}

	errCh := make(chan error, 2)
	go func() {
		errCh <- readLoop(ctx, conn)
	}()
	go func() {
		errCh <- writeLoop(ctx, conn, c)
	}()

	err = <-errCh
	status, reason := closeStatus(err)
	if status != websocket.StatusNormalClosure {
		log.Warn().Err(err).Str("connection_id", c.ID).Msg("connection closed with error")
	}

	// a cancelled Read drops the connection without a close frame, so the
	// status goes out before the loops are cancelled
	if closeErr := conn.Close(status, reason); closeErr != nil {
		log.Debug().Err(closeErr).Str("connection_id", c.ID).Msg("close handshake incomplete")
	}
	cancel()
	<-errCh
}

// authenticateConnect validates the credentials of a connect request and
// returns the user to register.
func (h *Handler) authenticateConnect(ctx context.Context, query url.Values) (models.User, error) {
	if authType := query.Get(authTypeParam); authType != "" && authType != authTypeJWT {
		return models.User{}, ErrUnsupportedAuthType
	}

	token := query.Get(authorizationParam)
	if token == "" {
		return models.User{}, ErrEmptyAuthorizationHeader
	}

	userID, err := h.services.AuthService.ParseToken(ctx, token)
	if err != nil {
		return models.User{}, err
	}

	var payload models.ConnectRequest
	if err = json.Unmarshal([]byte(query.Get("json")), &payload); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidConnectPayload, err)
	}
	if payload.UserID != userID {
		return models.User{}, fmt.Errorf("%w: token user %q, payload user %q", service.ErrTokenUserMismatch, userID, payload.UserID)
	}
	if err = h.validator.Validate(ctx, payload); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidConnectPayload, err)
	}

	user := payload.UserDetails
	user.ID = userID
	return user, nil
}

// rejectConnection reports err as a connection.error event and closes conn.
func rejectConnection(ctx context.Context, conn *websocket.Conn, err error) {
	info := errorInfoFromError(err)
	_ = wsjson.Write(ctx, conn, models.Event{
		Type: models.EventConnectionError,
		Error: &models.APIError{
			Code:       info.code,
			Message:    err.Error(),
			StatusCode: info.status,
		},
		CreatedAt: time.Now().UTC(),
	})
	conn.Close(websocket.StatusPolicyViolation, http.StatusText(info.status))
}

// readLoop drains client frames so control frames are processed. Clients
// send no data messages.
func readLoop(ctx context.Context, conn *websocket.Conn) error {
	for {
		if _, _, err := conn.Read(ctx); err != nil {
			return err
		}
	}
}

func writeLoop(ctx context.Context, conn *websocket.Conn, c *service.Connection) error {
	for {
		select {
		case event, ok := <-c.Events():
			if !ok {
				return nil
			}
			if err := wsjson.Write(ctx, conn, event); err != nil {
				return err
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// closeStatus picks the close status for the error that ended a connection.
func closeStatus(err error) (websocket.StatusCode, string) {
	if err == nil || errors.Is(err, context.Canceled) || errors.Is(err, io.EOF) {
		return websocket.StatusNormalClosure, "closing"
	}

	switch websocket.CloseStatus(err) {
	case websocket.StatusNormalClosure, websocket.StatusGoingAway:
		return websocket.StatusNormalClosure, "closing"
	}

	return websocket.StatusInternalError, "internal error"
}
