// Package session orchestrates one chat conversation: it owns the
// transcript, the display name, and the bot state, and wires bot engine
// output and transport delivery together. The session itself contains no
// logic beyond that wiring; the interesting decisions live in pkg/bot and
// pkg/richtext.
package session

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/telepathic-chat/chatkit/pkg/bot"
	"github.com/telepathic-chat/chatkit/pkg/chat"
	"github.com/telepathic-chat/chatkit/pkg/transport"
)

// nameCommand is the in-chat admin command that changes the display name.
const nameCommand = "/name"

// NotificationUser is the pseudo user that signs local system messages.
const NotificationUser = "Notification"

// Options configures a Session.
type Options struct {
	// DisplayName is the initial display name. Empty falls back to the
	// transport's persisted user name.
	DisplayName string
	// Engine is the optional bot; nil means no bot responses.
	Engine *bot.Engine
	// InitialState seeds the bot state machine.
	InitialState bot.State
	Log          zerolog.Logger
}

// Session owns one conversation. It is not safe for concurrent use;
// callers must serialize Submit and Receive (the TUI does so through its
// event loop). Bot state is carried between Evaluate calls exclusively by
// the session.
type Session struct {
	client      transport.Client
	engine      *bot.Engine
	log         zerolog.Logger
	displayName string
	state       bot.State
	transcript  *chat.Transcript
}

// New creates a session on top of a started transport client.
func New(client transport.Client, opts Options) *Session {
	name := opts.DisplayName
	if name == "" {
		name = client.GetOrCreateUserName()
	}
	return &Session{
		client:      client,
		engine:      opts.Engine,
		log:         opts.Log,
		displayName: name,
		state:       opts.InitialState,
		transcript:  chat.NewTranscript(),
	}
}

// DisplayName returns the current display name.
func (s *Session) DisplayName() string {
	return s.displayName
}

// State returns the current bot state.
func (s *Session) State() bot.State {
	return s.state
}

// Transcript returns the conversation transcript.
func (s *Session) Transcript() *chat.Transcript {
	return s.transcript
}

// Receive appends a message delivered by the transport.
func (s *Session) Receive(msg chat.Message) {
	s.transcript.Append(msg)
}

// Submit handles an outgoing user submission: admin commands, bot
// evaluation, privacy, and transport delivery. It returns the messages
// appended to the transcript, in order. Blank submissions are ignored.
func (s *Session) Submit(text string) []chat.Message {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	prior := s.transcript.Messages()
	toAdd := []chat.Message{{UserName: s.displayName, Text: text}}
	private := false

	// The /name command renames the user locally and on the relay; the
	// confirmation is a private notification that never leaves this peer.
	if strings.Contains(strings.ToLower(text), nameCommand) {
		newName := strings.TrimSpace(strings.Replace(text, nameCommand+" ", "", 1))
		s.displayName = newName
		s.client.UpdateName(newName)
		toAdd = append(toAdd, chat.Message{
			UserName: NotificationUser,
			Text: fmt.Sprintf(
				"Your name has been updated, %s. Change it at any time by typing %q.",
				newName, nameCommand+" your-new-name",
			),
		})
		private = true
		s.log.Info().Str("name", newName).Msg("display name updated")
	}

	// Bot evaluation runs against the transcript as it was before this
	// submission; the engine's disable policy inspects prior messages.
	if s.engine != nil {
		res := s.engine.Evaluate(s.state, text, prior)
		s.state = res.Next
		if res.Private {
			private = true
		}
		toAdd = append(toAdd, res.Messages...)
	}

	if !private {
		s.client.SendMessage(text)
	}

	s.transcript.Append(toAdd...)
	return toAdd
}
