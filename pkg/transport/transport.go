// Package transport provides the pub/sub client that carries chat
// messages between peers sharing a link. The core components never talk
// to the network themselves; they see only this package's Client
// interface and the messages it delivers.
package transport

import (
	"github.com/rs/zerolog"

	"github.com/telepathic-chat/chatkit/pkg/chat"
)

// Config configures a transport connection.
type Config struct {
	// LinkID identifies the shared conversation; peers that start with
	// the same link id see each other's messages.
	LinkID string
	// Endpoint is the base URL of the relay server. Both http(s) and
	// ws(s) schemes are accepted.
	Endpoint string
	// OnMessage is invoked from the read loop for every incoming chat
	// message. It must not block.
	OnMessage func(chat.Message)
	// NameFile is the path where the generated user name is persisted.
	// Empty disables persistence and a fresh guest name is generated
	// each start.
	NameFile string
	// Log receives connection-level events.
	Log zerolog.Logger
}

// Client is a handle to a started transport connection.
type Client interface {
	// GetOrCreateUserName returns the persisted user name for this
	// machine, generating and storing a guest name on first use.
	GetOrCreateUserName() string
	// UpdateName changes the user name on the relay and persists it.
	UpdateName(name string)
	// SendMessage publishes text to every peer on the link.
	// Delivery is fire-and-forget; failures are logged, not returned.
	SendMessage(text string)
	// Close tears down the connection.
	Close() error
}
