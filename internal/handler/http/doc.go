// Package http implements the HTTP transport of the development chat
// backend.
//
// It exposes the websocket connect endpoint, the channel query and message
// endpoints, and the middleware in front of them: request tracing, access
// logging, API key and user token checks. Requests are delegated to the
// service layer.
package http
