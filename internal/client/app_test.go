package client

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-chat-client/internal/config"
	"github.com/MKhiriev/go-chat-client/internal/logger"
	"github.com/MKhiriev/go-chat-client/internal/store"
	"github.com/MKhiriev/go-chat-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type spySession struct {
	closed   int
	closeErr error
}

func (s *spySession) Close(context.Context) error {
	s.closed++
	return s.closeErr
}

type stubUI struct {
	err error
	ran bool
}

func (u *stubUI) Run(ctx context.Context) error {
	u.ran = true
	return u.err
}

func TestApp_RunClosesSession(t *testing.T) {
	tests := []struct {
		name     string
		uiErr    error
		closeErr error
		wantErr  bool
	}{
		{name: "clean exit"},
		{name: "ui failure", uiErr: errors.New("setup failed"), wantErr: true},
		// a failed disconnect is logged, not returned
		{name: "close failure", closeErr: errors.New("disconnect"), wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session := &spySession{closeErr: tt.closeErr}
			ui := &stubUI{err: tt.uiErr}

			err := newApp(session, ui, logger.Nop()).Run()

			assert.True(t, ui.ran)
			assert.Equal(t, 1, session.closed)
			if tt.wantErr {
				assert.ErrorIs(t, err, tt.uiErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestNewApp_MissingCredentials(t *testing.T) {
	cfg := &config.ClientConfig{
		Session: config.ClientSession{APIKey: "key", UserID: "rogelio"},
		Adapter: config.ClientAdapter{HTTPAddress: "http://localhost:8080"},
	}

	app, err := NewApp(cfg, models.AppBuildInfo{}, logger.Nop())

	assert.Nil(t, app)
	assert.ErrorIs(t, err, store.ErrConfigurationMissing)
}

func TestNewApp(t *testing.T) {
	cfg := &config.ClientConfig{
		Session: config.ClientSession{APIKey: "key", Token: "token", UserID: "rogelio"},
		Adapter: config.ClientAdapter{HTTPAddress: "http://localhost:8080"},
	}

	app, err := NewApp(cfg, models.AppBuildInfo{}, logger.Nop())

	require.NoError(t, err)
	assert.NotNil(t, app.session)
	assert.NotNil(t, app.ui)
}
