// Package server runs the development chat backend.
//
// It binds the HTTP listener, starts the chatter job, and shuts both down
// gracefully on a stop signal or context cancellation.
package server
