package tui

import "github.com/MKhiriev/go-chat-client/internal/store"

type setupDoneMsg struct {
	err error
}

type storeChangedMsg struct {
	change store.Change
}

// changesClosedMsg is sent once the store closed the subscription.
type changesClosedMsg struct{}

type copiedMsg struct {
	cid string
}

type copyFailedMsg struct {
	err error
}

type clearStatusMsg struct{}
