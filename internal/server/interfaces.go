package server

import "context"

// Server defines the lifecycle contract of the development backend.
type Server interface {
	// RunServer starts serving and blocks until a stop signal arrives.
	RunServer()

	// Run starts serving and blocks until ctx is done or serving fails.
	Run(ctx context.Context) error

	// Addr returns the listen address. Once Run has bound the listener it
	// holds the actual port.
	Addr() string

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
