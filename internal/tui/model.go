package tui

import (
	"context"

	"github.com/MKhiriev/go-chat-client/internal/logger"
	"github.com/MKhiriev/go-chat-client/internal/store"
	"github.com/MKhiriev/go-chat-client/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// maxVisibleMessages is how many of the newest messages of the active
// channel are rendered.
const maxVisibleMessages = 15

type model struct {
	ctx       context.Context
	store     SessionStore
	changes   <-chan store.Change
	buildInfo models.AppBuildInfo
	logger    *logger.Logger

	spinner  spinner.Model
	loading  bool
	setupErr error

	channels []*models.Channel
	cursor   int

	connectionLost bool
	showBuildInfo  bool
	status         string
}

func newModel(ctx context.Context, s SessionStore, changes <-chan store.Change, buildInfo models.AppBuildInfo, log *logger.Logger) model {
	sp := spinner.New()
	sp.Spinner = spinner.MiniDot

	return model{
		ctx:       ctx,
		store:     s,
		changes:   changes,
		buildInfo: buildInfo,
		logger:    log,
		spinner:   sp,
		loading:   true,
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		cmdSetupUser(m.ctx, m.store),
		cmdWaitForChange(m.changes),
	)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKeys(msg)

	case setupDoneMsg:
		m.loading = false
		if msg.err != nil {
			m.setupErr = msg.err
			m.logger.Err(msg.err).Str("func", "model.Update").Msg("session setup failed")
			return m, nil
		}
		m.refresh()
		return m, nil

	case storeChangedMsg:
		if msg.change.Kind == store.ConnectionLost {
			m.connectionLost = true
		}
		m.refresh()
		return m, cmdWaitForChange(m.changes)

	case changesClosedMsg:
		m.changes = nil
		return m, nil

	case copiedMsg:
		m.status = "copied " + msg.cid
		return m, cmdClearStatus()

	case copyFailedMsg:
		m.status = msg.err.Error()
		return m, cmdClearStatus()

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.quit) {
		return m, tea.Quit
	}

	if m.showBuildInfo {
		if key.Matches(msg, keys.esc) || key.Matches(msg, keys.about) {
			m.showBuildInfo = false
		}
		return m, nil
	}

	if key.Matches(msg, keys.about) {
		m.showBuildInfo = true
		return m, nil
	}

	// nothing else to do until the channels are loaded
	if m.loading || m.setupErr != nil {
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, keys.down):
		if m.cursor < len(m.channels)-1 {
			m.cursor++
		}
	case key.Matches(msg, keys.enter):
		if ch := m.selected(); ch != nil {
			m.store.SetActiveChannel(ch)
			m.refresh()
		}
	case key.Matches(msg, keys.esc):
		m.store.SetActiveChannel(nil)
		m.refresh()
	case key.Matches(msg, keys.copy):
		active := m.store.ActiveChannel()
		if active == nil {
			m.status = "no active channel"
			return m, cmdClearStatus()
		}
		return m, cmdCopyToClipboard(active.CID)
	case key.Matches(msg, keys.redraw):
		m.refresh()
	}

	return m, nil
}

// refresh reloads the channel list from the store. The cursor stays on the
// channel it pointed at, even when the order changed.
func (m *model) refresh() {
	var current string
	if ch := m.selected(); ch != nil {
		current = ch.CID
	}

	m.channels = m.store.ChannelList()

	m.cursor = min(m.cursor, max(len(m.channels)-1, 0))
	for i, ch := range m.channels {
		if ch.CID == current {
			m.cursor = i
			break
		}
	}
}

func (m model) selected() *models.Channel {
	if m.cursor < 0 || m.cursor >= len(m.channels) {
		return nil
	}
	return m.channels[m.cursor]
}
