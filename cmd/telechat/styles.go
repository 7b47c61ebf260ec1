package main

import "github.com/charmbracelet/lipgloss"

// Centralized style definitions for the TUI.
var (
	// Message author prefixes.
	userPrefixStyle         = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4")) // blue
	peerPrefixStyle         = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6")) // cyan
	notificationPrefixStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3")) // yellow

	// Inline markup spans.
	boldSpanStyle   = lipgloss.NewStyle().Bold(true)
	italicSpanStyle = lipgloss.NewStyle().Italic(true)
	strikeSpanStyle = lipgloss.NewStyle().Strikethrough(true)
	codeSpanStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Background(lipgloss.Color("0")) // green on black

	// General utility styles.
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8")) // gray

	messageBlockStyle = lipgloss.NewStyle().PaddingLeft(1)
)
