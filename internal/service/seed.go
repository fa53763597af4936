package service

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-chat-client/models"
)

// DefaultDemoUserID is the user the demo channels are seeded for when no
// user ID is configured.
const DefaultDemoUserID = "rogelio"

var seedBots = []models.User{
	{ID: "marge", Name: "Marge"},
	{ID: "ollie", Name: "Ollie"},
	{ID: "pixel", Name: "Pixel"},
}

type seedMessage struct {
	userID string
	text   string
	ago    time.Duration
}

type seedChannel struct {
	id       string
	name     string
	age      time.Duration
	members  []string
	messages []seedMessage
}

// demoChannels returns the channels created at startup. The demo user is
// added to every channel except the bot lounge.
func demoChannels(demoUserID string) []seedChannel {
	return []seedChannel{
		{
			id: "general", name: "General", age: 72 * time.Hour,
			members: []string{demoUserID, "marge", "ollie", "pixel"},
			messages: []seedMessage{
				{userID: "marge", text: "Morning everyone!", ago: 50 * time.Minute},
				{userID: "ollie", text: "Standup moved to 11.", ago: 10 * time.Minute},
			},
		},
		{
			id: "random", name: "Random", age: 48 * time.Hour,
			members: []string{demoUserID, "ollie"},
			messages: []seedMessage{
				{userID: "ollie", text: "Anyone seen my headphones?", ago: 30 * time.Minute},
			},
		},
		{
			id: "support", name: "Support", age: 24 * time.Hour,
			members: []string{demoUserID, "pixel"},
			messages: []seedMessage{
				{userID: "pixel", text: "Ticket #42 is resolved.", ago: 2 * time.Hour},
			},
		},
		{
			id: "design", name: "Design", age: 12 * time.Hour,
			members: []string{demoUserID, "marge"},
		},
		{
			id: "bots", name: "Bot lounge", age: 96 * time.Hour,
			members: []string{"marge", "ollie", "pixel"},
			messages: []seedMessage{
				{userID: "pixel", text: "beep", ago: 5 * time.Minute},
			},
		},
	}
}

// seed fills h with the demo users, channels and messages.
func seed(h *hub, demoUserID string, now time.Time) {
	if demoUserID == "" {
		demoUserID = DefaultDemoUserID
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.upsertUser(models.User{ID: demoUserID})
	for _, bot := range seedBots {
		h.upsertUser(bot)
	}

	for _, sc := range demoChannels(demoUserID) {
		rec := h.addChannel(models.ChannelTypeMessaging, sc.id, sc.name, now.Add(-sc.age), sc.members...)
		for j, sm := range sc.messages {
			h.appendMessage(rec, models.Message{
				ID:        fmt.Sprintf("seed-%s-%d", sc.id, j),
				CID:       rec.channel.CID,
				Text:      sm.text,
				Type:      "regular",
				User:      h.userRef(sm.userID),
				CreatedAt: now.Add(-sm.ago).UTC(),
			})
		}
	}

	h.logger.Info().
		Str("demo_user_id", demoUserID).
		Int("channels", len(h.channels)).
		Msg("demo data seeded")
}

// chatterLine is one canned message posted by the chatter job.
type chatterLine struct {
	channelID string
	userID    string
	text      string
}

var chatterScript = []chatterLine{
	{channelID: "general", userID: "marge", text: "Coffee's ready."},
	{channelID: "random", userID: "ollie", text: "Found them, they were on my head."},
	{channelID: "support", userID: "pixel", text: "New ticket in the queue."},
	{channelID: "general", userID: "pixel", text: "Deploy finished."},
	{channelID: "design", userID: "marge", text: "Uploaded the new mockups."},
	{channelID: "bots", userID: "ollie", text: "boop"},
}
