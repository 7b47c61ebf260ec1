package main

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/telepathic-chat/chatkit/pkg/chat"
)

// chatMessageMsg delivers a message received from the relay bridge goroutine.
type chatMessageMsg struct {
	msg chat.Message
}

// inputSubmitMsg carries the text the user submitted from the input box.
type inputSubmitMsg struct {
	text string
}

// programReadyMsg passes the *tea.Program to the model so it can start the
// bridge goroutine.
type programReadyMsg struct {
	program *tea.Program
}

// emojiReadyMsg signals that an emoji dataset finished loading and the
// transcript should be re-rendered with the fuller table.
type emojiReadyMsg struct{}

// initDrainMsg fires after a short delay so that stale terminal responses
// (e.g. OSC 11 background-color replies) are discarded before focusing input.
type initDrainMsg struct{}
