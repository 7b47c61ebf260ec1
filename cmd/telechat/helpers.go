package main

import (
	"errors"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/joho/godotenv"
)

// mdRenderer renders markdown to terminal-formatted output.
var mdRenderer *glamour.TermRenderer

func initMarkdownRenderer(width int) {
	if width <= 0 {
		width = 100
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return
	}
	mdRenderer = r
}

// renderMarkdown converts markdown text to terminal-formatted output.
func renderMarkdown(text string) string {
	if mdRenderer == nil {
		return text
	}
	out, err := mdRenderer.Render(text)
	if err != nil {
		return text
	}
	return strings.TrimRight(out, "\n")
}

const helpMarkdown = `# telechat

## Commands

| Command | Effect |
| --- | --- |
| ` + "`/name your-new-name`" + ` | Change your display name |
| ` + "`/help`" + ` | Show this help message |
| ` + "`/quit`" + ` | Exit the chat |

## Markup

| You type | You get |
| --- | --- |
| ` + "`*word*`" + ` | **bold** |
| ` + "`_word_`" + ` | *italic* |
| ` + "`~word~`" + ` | ~~strikethrough~~ |
| ` + "`` `code` ``" + ` | inline code |
| ` + "`:smile:`" + ` | emoji |

Markers only take effect when they wrap a single whitespace-free word.
`

// helpText renders the in-chat help screen.
func helpText() string {
	return renderMarkdown(helpMarkdown)
}

// loadDotEnv loads environment variables from path. Missing files are ignored.
func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
