package models

import (
	"net/url"
	"strings"
)

// DefaultDisplayName is the profile name used when no display name is
// configured.
const DefaultDisplayName = "Rogelio"

// DefaultAvatarURLTemplate is the avatar URL template used when none is
// configured. The {name} placeholder is replaced with the URL-escaped display
// name.
const DefaultAvatarURLTemplate = "https://getstream.io/random_png/?name={name}"

// User is the participant descriptor exchanged with the chat backend on
// connect and embedded in messages and members.
type User struct {
	// ID is the backend-wide unique user identifier.
	ID string `json:"id"`

	// Name is the display name shown in UI.
	Name string `json:"name,omitempty"`

	// Image is the avatar URL.
	Image string `json:"image,omitempty"`
}

// Profile describes how the connecting user is presented to other
// participants. It is kept separate from the user identifier so that
// presentation can vary per deployment without touching authentication.
type Profile struct {
	// Name is the display name.
	Name string `json:"name"`

	// AvatarURLTemplate is the avatar URL with a {name} placeholder.
	AvatarURLTemplate string `json:"avatar_url_template"`
}

// DefaultProfile returns the profile used when nothing is configured.
func DefaultProfile() Profile {
	return Profile{Name: DefaultDisplayName, AvatarURLTemplate: DefaultAvatarURLTemplate}
}

// AvatarURL renders the avatar template for the profile name.
func (p Profile) AvatarURL() string {
	if p.AvatarURLTemplate == "" {
		return ""
	}
	return strings.ReplaceAll(p.AvatarURLTemplate, "{name}", url.QueryEscape(p.Name))
}

// Descriptor builds the [User] sent to the backend for userID.
func (p Profile) Descriptor(userID string) User {
	return User{
		ID:    userID,
		Name:  p.Name,
		Image: p.AvatarURL(),
	}
}

// Connection is returned by a successful connect handshake.
type Connection struct {
	// ConnectionID identifies the realtime connection on the backend. It is
	// attached to watch queries so the backend knows where to push events.
	ConnectionID string `json:"connection_id"`

	// Me is the backend's view of the connected user.
	Me User `json:"me"`
}
