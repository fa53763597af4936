package server

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/go-chat-client/internal/config"
	httpHandler "github.com/MKhiriev/go-chat-client/internal/handler/http"
	"github.com/MKhiriev/go-chat-client/internal/logger"
	"github.com/MKhiriev/go-chat-client/internal/service"
)

const shutdownTimeout = 5 * time.Second

type server struct {
	httpServer      *httpServer
	chatter         service.ChatterJob
	chatterInterval time.Duration

	logger *logger.Logger
}

// NewServer wires the HTTP handler and the chatter job of services into a
// server listening on cfg.Address.
func NewServer(handler *httpHandler.Handler, services *service.Services, cfg config.DevServerConfig, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handler == nil || services == nil || cfg.Address == "" {
		return nil, errNoServerIsCreated
	}

	return &server{
		httpServer:      newHTTPServer(handler.Init(), cfg.Address, logger),
		chatter:         services.ChatterJob,
		chatterInterval: cfg.ChatterInterval,
		logger:          logger,
	}, nil
}

// RunServer serves until SIGTERM, SIGINT or SIGQUIT.
func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := s.Run(ctx); err != nil {
		s.logger.Err(err).Msg("error running server")
	}
}

// Run serves until ctx is done or the listener fails, then shuts down.
func (s *server) Run(ctx context.Context) error {
	if err := s.httpServer.listen(); err != nil {
		return err
	}

	if s.chatter != nil {
		s.chatter.Start(ctx, s.chatterInterval)
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info().Msg("Launching HTTP server")
		errCh <- s.httpServer.RunServer()
	}()

	var err error
	select {
	case <-ctx.Done():
	case err = <-errCh:
	}

	s.Shutdown()
	if err == nil {
		err = <-errCh
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return err
}

// Addr returns the address the server listens on.
func (s *server) Addr() string {
	return s.httpServer.Addr()
}

func (s *server) Shutdown() {
	if s.chatter != nil {
		s.chatter.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	s.httpServer.Shutdown(ctx)
}
