package client

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/go-chat-client/internal/adapter"
	"github.com/MKhiriev/go-chat-client/internal/config"
	"github.com/MKhiriev/go-chat-client/internal/logger"
	"github.com/MKhiriev/go-chat-client/internal/store"
	"github.com/MKhiriev/go-chat-client/internal/tui"
	"github.com/MKhiriev/go-chat-client/models"
)

const closeTimeout = 5 * time.Second

var _ Client = (*App)(nil)

type App struct {
	session Session
	ui      UI
	logger  *logger.Logger
}

// NewApp builds the session store over a stream client and the terminal UI
// bound to it.
func NewApp(cfg *config.ClientConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	factory := func(apiKey string) (adapter.ChatClient, error) {
		return adapter.NewStreamClient(apiKey, cfg.Adapter, log)
	}

	session, err := store.NewChatSessionStore(cfg.Session, factory, log)
	if err != nil {
		return nil, fmt.Errorf("create session store: %w", err)
	}

	ui, err := tui.New(session, buildInfo, log)
	if err != nil {
		return nil, fmt.Errorf("create ui: %w", err)
	}

	return newApp(session, ui, log), nil
}

func newApp(session Session, ui UI, log *logger.Logger) *App {
	return &App{session: session, ui: ui, logger: log}
}

// Run shows the UI until the user quits or the process is asked to stop,
// then disconnects the session.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	runErr := a.ui.Run(ctx)

	closeCtx, cancel := context.WithTimeout(context.Background(), closeTimeout)
	defer cancel()
	if err := a.session.Close(closeCtx); err != nil {
		a.logger.Err(err).Str("func", "App.Run").Msg("error closing chat session")
	}

	if runErr != nil {
		return fmt.Errorf("client run: %w", runErr)
	}

	a.logger.Info().Msg("client stopped")
	return nil
}
