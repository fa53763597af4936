package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-chat-client/internal/store"
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

const statusTTL = 2 * time.Second

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

func cmdSetupUser(ctx context.Context, s SessionStore) tea.Cmd {
	return func() tea.Msg {
		return setupDoneMsg{err: s.SetupUser(ctx)}
	}
}

// cmdWaitForChange blocks until the store publishes the next change. The
// model re-issues it after every storeChangedMsg.
func cmdWaitForChange(changes <-chan store.Change) tea.Cmd {
	if changes == nil {
		return nil
	}
	return func() tea.Msg {
		change, ok := <-changes
		if !ok {
			return changesClosedMsg{}
		}
		return storeChangedMsg{change: change}
	}
}

func cmdCopyToClipboard(cid string) tea.Cmd {
	return func() tea.Msg {
		if err := writeClipboard(cid); err != nil {
			return copyFailedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{cid: cid}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
