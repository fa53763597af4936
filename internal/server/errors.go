// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	// errNoServerIsCreated is returned by NewServer when the handler, the
	// services or the listen address is missing.
	errNoServerIsCreated = errors.New("no server is created: handler, services and address are required")
)
