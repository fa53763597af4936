// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run() error
}

// UI is the interactive front end of the client.
type UI interface {
	Run(ctx context.Context) error
}

// Session is the part of the session store the app owns the lifecycle of.
type Session interface {
	Close(ctx context.Context) error
}
