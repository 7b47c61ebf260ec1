package main

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/telepathic-chat/chatkit/pkg/chat"
	"github.com/telepathic-chat/chatkit/pkg/emoji"
)

// chatViewModel renders the transcript into a scrollable viewport. It keeps
// one pre-rendered block per message so a new message only costs one render;
// rebuild re-renders everything, which is needed when the emoji table grows
// after its async load.
type chatViewModel struct {
	viewport viewport.Model
	blocks   []string
	ready    bool
}

func newChatView() chatViewModel {
	return chatViewModel{}
}

func (m *chatViewModel) setSize(width, height int) {
	if !m.ready {
		m.viewport = viewport.New(width, height)
		m.ready = true
	} else {
		m.viewport.Width = width
		m.viewport.Height = height
	}
	m.updateViewport()
}

// addMessage appends a rendered message block and scrolls to it.
func (m *chatViewModel) addMessage(msg chat.Message, you string, table *emoji.Table) {
	m.blocks = append(m.blocks, renderMessage(msg, you, table))
	m.updateViewport()
}

// addBlock appends an already-rendered block, e.g. the help screen.
func (m *chatViewModel) addBlock(block string) {
	m.blocks = append(m.blocks, block)
	m.updateViewport()
}

// rebuild re-renders the whole transcript.
func (m *chatViewModel) rebuild(msgs []chat.Message, you string, table *emoji.Table) {
	m.blocks = m.blocks[:0]
	for _, msg := range msgs {
		m.blocks = append(m.blocks, renderMessage(msg, you, table))
	}
	m.updateViewport()
}

func (m *chatViewModel) updateViewport() {
	if !m.ready {
		return
	}
	atBottom := m.viewport.AtBottom()
	m.viewport.SetContent(strings.Join(m.blocks, "\n"))
	if atBottom {
		m.viewport.GotoBottom()
	}
}

func (m chatViewModel) Update(msg tea.Msg) (chatViewModel, tea.Cmd) {
	if !m.ready {
		return m, nil
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m chatViewModel) View() string {
	if !m.ready {
		return ""
	}
	return m.viewport.View()
}
