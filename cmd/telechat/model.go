package main

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/telepathic-chat/chatkit/pkg/chat"
	"github.com/telepathic-chat/chatkit/pkg/emoji"
	"github.com/telepathic-chat/chatkit/pkg/session"
)

// appModel is the root bubbletea model.
type appModel struct {
	ctx          context.Context
	sess         *session.Session
	emojiTable   *emoji.Table
	incoming     <-chan chat.Message
	chatView     chatViewModel
	inputBox     inputModel
	statusBar    statusBarModel
	cancelBridge context.CancelFunc
	width        int
	height       int
}

func newAppModel(ctx context.Context, sess *session.Session, table *emoji.Table, incoming <-chan chat.Message, cfg session.Config) appModel {
	return appModel{
		ctx:        ctx,
		sess:       sess,
		emojiTable: table,
		incoming:   incoming,
		chatView:   newChatView(),
		inputBox:   newInput(cfg.Textarea.Hint(), cfg.Textarea.RowLimit()),
		statusBar:  newStatusBar(cfg.Link, sess.DisplayName()),
	}
}

func (m appModel) Init() tea.Cmd {
	// Delay focusing the input so that stale terminal escape-sequence
	// responses (e.g. OSC 11 background-color) are drained first.
	return tea.Tick(200*time.Millisecond, func(time.Time) tea.Msg {
		return initDrainMsg{}
	})
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case initDrainMsg:
		cmd := m.inputBox.enable()
		return m, cmd

	case programReadyMsg:
		m.cancelBridge = startBridge(m.ctx, msg.program, m.incoming)
		return m, nil

	case inputSubmitMsg:
		return m.handleSubmit(msg)

	case chatMessageMsg:
		m.sess.Receive(msg.msg)
		m.chatView.addMessage(msg.msg, m.sess.DisplayName(), m.emojiTable)
		return m, nil

	case emojiReadyMsg:
		// Re-render so shortcodes submitted before the table loaded pick
		// up their glyphs.
		m.statusBar.emojiCount = m.emojiTable.Len()
		m.chatView.rebuild(m.sess.Transcript().Messages(), m.sess.DisplayName(), m.emojiTable)
		return m, nil
	}

	var cmd tea.Cmd
	m.inputBox, cmd = m.inputBox.Update(msg)
	return m, cmd
}

func (m appModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.chatView.View(),
		m.inputBox.View(),
		m.statusBar.View(),
	)
}

func (m *appModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height

	initMarkdownRenderer(m.width - 4)
	m.inputBox.setWidth(m.width)
	m.recalcLayout()

	var cmd tea.Cmd
	m.chatView, cmd = m.chatView.Update(msg)
	return m, cmd
}

func (m *appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		if m.cancelBridge != nil {
			m.cancelBridge()
		}
		return m, tea.Quit

	case tea.KeyPgUp, tea.KeyPgDown:
		var cmd tea.Cmd
		m.chatView, cmd = m.chatView.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.inputBox, cmd = m.inputBox.Update(msg)
	return m, cmd
}

func (m *appModel) handleSubmit(msg inputSubmitMsg) (tea.Model, tea.Cmd) {
	text := msg.text

	if text == "/quit" || text == "/exit" {
		if m.cancelBridge != nil {
			m.cancelBridge()
		}
		return m, tea.Quit
	}

	if text == "/help" {
		m.chatView.addBlock(helpText())
		m.recalcLayout()
		return m, nil
	}

	for _, added := range m.sess.Submit(text) {
		m.chatView.addMessage(added, m.sess.DisplayName(), m.emojiTable)
	}
	m.statusBar.name = m.sess.DisplayName()
	m.recalcLayout()
	return m, nil
}

func (m *appModel) recalcLayout() {
	if m.width == 0 || m.height == 0 {
		return
	}
	// Status bar = 1 line, input box = border(2) + content lines.
	statusHeight := 1
	inputHeight := lipgloss.Height(m.inputBox.View())
	chatHeight := max(m.height-inputHeight-statusHeight, 1)
	m.chatView.setSize(m.width, chatHeight)
}
