package models

// ConnectRequest is the JSON document passed in the "json" query parameter
// of the websocket connect endpoint.
type ConnectRequest struct {
	// UserID must match the user_id claim of the token.
	UserID string `json:"user_id"`

	// UserDetails is upserted on the backend when the connection succeeds.
	UserDetails User `json:"user_details"`

	// ServerDeterminesConnectionID asks the backend to assign the
	// connection ID and report it in the first health.check event.
	ServerDeterminesConnectionID bool `json:"server_determines_connection_id"`
}

// QueryChannelsRequest is the body of POST /channels.
type QueryChannelsRequest struct {
	FilterConditions Filter       `json:"filter_conditions"`
	Sort             []SortOption `json:"sort,omitempty"`
	Limit            int          `json:"limit,omitempty"`
	Offset           int          `json:"offset,omitempty"`
	Watch            bool         `json:"watch"`
	State            bool         `json:"state"`
	Presence         bool         `json:"presence"`
	MessageLimit     int          `json:"message_limit,omitempty"`

	// ConnectionID is required when Watch or Presence is set.
	ConnectionID string `json:"connection_id,omitempty"`
}

// ChannelStateResponse is one channel entry of a query response.
type ChannelStateResponse struct {
	Channel  Channel   `json:"channel"`
	Messages []Message `json:"messages"`
	Members  []Member  `json:"members"`
}

// QueryChannelsResponse is the body returned by POST /channels.
type QueryChannelsResponse struct {
	Channels []ChannelStateResponse `json:"channels"`
	Duration string                 `json:"duration,omitempty"`
}

// SendMessageRequest is the body of POST /channels/{type}/{id}/message.
type SendMessageRequest struct {
	Message Message `json:"message"`
}

// SendMessageResponse is returned by POST /channels/{type}/{id}/message.
type SendMessageResponse struct {
	Message  Message `json:"message"`
	Duration string  `json:"duration,omitempty"`
}
