package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/telepathic-chat/chatkit/pkg/chat"
	"github.com/telepathic-chat/chatkit/pkg/emoji"
	"github.com/telepathic-chat/chatkit/pkg/richtext"
	"github.com/telepathic-chat/chatkit/pkg/session"
)

// renderMessage formats one chat message for the viewport: a styled author
// prefix followed by the body with inline markup applied. Continuation lines
// are indented to align under the first line.
func renderMessage(msg chat.Message, you string, table *emoji.Table) string {
	prefix := prefixFor(msg.UserName, you).Render(msg.UserName + " > ")

	lines := strings.Split(msg.Text, "\n")
	var sb strings.Builder
	sb.WriteString(prefix)
	sb.WriteString(renderLine(lines[0], table))
	for _, line := range lines[1:] {
		sb.WriteString("\n  ")
		sb.WriteString(renderLine(line, table))
	}

	return messageBlockStyle.Render(sb.String())
}

func prefixFor(author, you string) lipgloss.Style {
	switch author {
	case you:
		return userPrefixStyle
	case session.NotificationUser:
		return notificationPrefixStyle
	default:
		return peerPrefixStyle
	}
}

// renderLine tokenizes one line and styles each span.
func renderLine(line string, table *emoji.Table) string {
	var sb strings.Builder
	for _, span := range richtext.Tokenize(line) {
		sb.WriteString(renderSpan(span, table))
	}
	return sb.String()
}

func renderSpan(span richtext.Span, table *emoji.Table) string {
	switch span.Kind {
	case richtext.Emoji:
		// Unresolved shortcodes keep their :tag: form so the reader still
		// sees what was meant.
		entry := table.Resolve(span.Raw)
		if g := entry.Glyph(); g != "" {
			return g
		}
		return span.Raw
	case richtext.Bold:
		return boldSpanStyle.Render(span.Text())
	case richtext.Italic:
		return italicSpanStyle.Render(span.Text())
	case richtext.Strike:
		return strikeSpanStyle.Render(span.Text())
	case richtext.Code:
		return codeSpanStyle.Render(span.Text())
	default:
		return span.Raw
	}
}
