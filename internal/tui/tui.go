package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-chat-client/internal/logger"
	"github.com/MKhiriev/go-chat-client/models"
	tea "github.com/charmbracelet/bubbletea"
)

// changeBuffer is the number of store changes the UI may lag behind before
// older ones are dropped. Every change triggers a full refresh, so a dropped
// change is never lost in the view.
const changeBuffer = 64

var ErrNoStore = errors.New("tui: session store is nil")

type TUI struct {
	store     SessionStore
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(s SessionStore, buildInfo models.AppBuildInfo, log *logger.Logger) (*TUI, error) {
	if s == nil {
		return nil, ErrNoStore
	}
	return &TUI{store: s, buildInfo: buildInfo, logger: log.WithComponent("tui")}, nil
}

// Run sets the session up and shows it until the user quits. A failed setup
// is shown to the user and returned once they quit.
func (t *TUI) Run(ctx context.Context) error {
	changes, unsubscribe := t.store.Subscribe(changeBuffer)
	defer unsubscribe()

	m := newModel(ctx, t.store, changes, t.buildInfo, t.logger)
	finalModel, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		return fmt.Errorf("run tui: %w", err)
	}

	result, ok := finalModel.(model)
	if !ok {
		return tea.ErrProgramKilled
	}
	return result.setupErr
}
