// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive chat client runtime.
//
// It wires the chat transport, the session store and the terminal UI into a
// single process lifecycle and disconnects the session on exit.
package client
