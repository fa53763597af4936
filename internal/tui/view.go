package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-chat-client/models"
	"github.com/charmbracelet/lipgloss"
)

const hotKeysHelp = "↑/↓: move • enter: open • esc: close • c: copy cid • r: redraw • v: about • q: quit"

func (m model) View() string {
	if m.showBuildInfo {
		return renderBuildInfoWindow(m.buildInfo)
	}

	if m.loading {
		return renderPage("CHAT", fmt.Sprintf("%s connecting as %s...", m.spinner.View(), m.store.UserID()), "q: quit")
	}

	if m.setupErr != nil {
		data := errorStyle.Render(humanizeError(m.setupErr)) + "\n\n" + helpStyle.Render(m.setupErr.Error())
		return renderPage("CHAT", data, "q: quit")
	}

	active := m.store.ActiveChannel()
	body := lipgloss.JoinHorizontal(lipgloss.Top,
		channelPaneStyle.Render(m.viewChannels(active)),
		messagePaneStyle.Render(viewMessages(active)),
	)

	if m.connectionLost {
		body += "\n\n" + errorStyle.Render("connection lost, realtime updates stopped")
	}
	if m.status != "" {
		body += "\n\n" + m.status
	}

	return renderPage(m.title(), body, hotKeysHelp)
}

func (m model) title() string {
	user := m.store.User()
	name := user.Name
	if name == "" {
		name = m.store.UserID()
	}
	return fmt.Sprintf("CHAT • %s", name)
}

func (m model) viewChannels(active *models.Channel) string {
	if len(m.channels) == 0 {
		return "no channels"
	}

	now := time.Now()
	nameWidth := channelPaneWidth - 10

	var b strings.Builder
	for i, ch := range m.channels {
		marker := "  "
		if active != nil && ch.CID == active.CID {
			marker = "* "
		}

		line := fmt.Sprintf("%s%-*s %s",
			marker,
			nameWidth,
			fitText(ch.DisplayName(), nameWidth),
			formatActivity(ch.LastActivity(), now),
		)

		switch {
		case i == m.cursor:
			line = selectedStyle.Render(line)
		case marker != "  ":
			line = activeStyle.Render(line)
		}

		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(line)
	}
	return b.String()
}

func viewMessages(active *models.Channel) string {
	if active == nil {
		return helpStyle.Render("no active channel, press enter to open one")
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("#" + active.DisplayName()))
	b.WriteString("  ")
	b.WriteString(helpStyle.Render(active.CID))
	b.WriteString("\n\n")

	var messages []models.Message
	if active.State != nil {
		messages = active.State.Messages()
	}
	if len(messages) == 0 {
		b.WriteString(helpStyle.Render("no messages yet"))
		return b.String()
	}

	if len(messages) > maxVisibleMessages {
		messages = messages[len(messages)-maxVisibleMessages:]
	}
	for i, msg := range messages {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(timeStyle.Render(msg.CreatedAt.Local().Format("15:04")))
		b.WriteString(" ")
		b.WriteString(authorStyle.Render(msg.Author()))
		b.WriteString(": ")
		b.WriteString(msg.Text)
	}
	return b.String()
}
