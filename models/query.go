package models

// Filter is a channel query filter in the backend's MongoDB-like syntax,
// e.g. {"type": "messaging", "members": {"$in": ["alice"]}}.
type Filter map[string]any

// MemberChannelsFilter returns the filter that selects channels of
// channelType that userID is a member of.
func MemberChannelsFilter(channelType, userID string) Filter {
	return Filter{
		"type":    channelType,
		"members": map[string]any{"$in": []string{userID}},
	}
}

// Sort directions.
const (
	SortAscending  = 1
	SortDescending = -1
)

// SortOption orders channel query results by a single field.
type SortOption struct {
	Field     string `json:"field"`
	Direction int    `json:"direction"`
}

// QueryOptions controls paging and realtime behaviour of a channel query.
type QueryOptions struct {
	// Limit caps the number of channels returned.
	Limit int `json:"limit,omitempty"`

	// Offset skips the first channels of the result.
	Offset int `json:"offset,omitempty"`

	// Watch subscribes the current connection to events of every returned
	// channel.
	Watch bool `json:"watch"`

	// State asks the backend to include messages and members.
	State bool `json:"state"`

	// Presence subscribes to presence changes of channel members.
	Presence bool `json:"presence"`

	// MessageLimit caps the number of messages returned per channel.
	MessageLimit int `json:"message_limit,omitempty"`
}
