// Package tui renders the chat session in the terminal.
//
// The UI is a single bubbletea program bound to a [SessionStore]. It runs
// the store setup as a command, redraws on every store change and lets the
// user pick the active channel.
package tui
