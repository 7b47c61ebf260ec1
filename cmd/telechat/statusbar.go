package main

import "fmt"

// statusBarModel shows the link, the current display name, and how many
// emoji shortcodes are loaded.
type statusBarModel struct {
	link       string
	name       string
	emojiCount int
}

func newStatusBar(link, name string) statusBarModel {
	return statusBarModel{link: link, name: name}
}

func (m statusBarModel) View() string {
	line := fmt.Sprintf(" %s · you are %s", m.link, m.name)
	if m.emojiCount > 0 {
		line += fmt.Sprintf(" · %d emoji", m.emojiCount)
	}
	return statusStyle.Render(line)
}
