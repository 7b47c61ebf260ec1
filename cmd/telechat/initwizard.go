package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/huh"
)

type wizardAnswers struct {
	Link        string
	Endpoint    string
	DisplayName string
	MaxRows     string
	WithBot     bool
	SlackEmoji  bool
}

const configTemplate = `link: %s
endpoint: %s
display_name: %s

textarea:
  max_rows: %d
  placeholder: Type something...
`

const emojiSection = `
emoji:
  slack_token: ${SLACK_EMOJI_TOKEN}
`

const botSection = `
bot:
  display_name: Greeter
  initial_state: 1
  rules:
    - condition: 1
      kind: simple
      text: Hi there! Want a quick tour of the markup? (yes/no)
      new_state: 2
    - condition: 2
      kind: yes_no
      text:
        yes: 'Wrap a word in *stars* for bold, _underscores_ for italic, and :smile: for emoji.'
        no: Alright, happy chatting!
      new_state:
        yes: 3
        no: 3
`

// runWizard asks for the connection basics and renders a starter config.
func runWizard() ([]byte, error) {
	answers := wizardAnswers{
		Endpoint: "https://relay.telepathic.dev",
		MaxRows:  "4",
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Link").
				Description("Peers that join the same link see each other's messages.").
				Value(&answers.Link).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("link is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Relay endpoint").
				Value(&answers.Endpoint),
			huh.NewInput().
				Title("Display name").
				Description("Leave empty to use a persisted guest name.").
				Value(&answers.DisplayName),
			huh.NewInput().
				Title("Input box rows").
				Description("Maximum visible rows of the message box.").
				Value(&answers.MaxRows).
				Validate(func(s string) error {
					n, err := strconv.Atoi(s)
					if err != nil || n < 1 {
						return fmt.Errorf("enter a positive number")
					}
					return nil
				}),
			huh.NewConfirm().
				Title("Add a starter bot?").
				Description("A small greeter that demonstrates the rule format.").
				Value(&answers.WithBot),
			huh.NewConfirm().
				Title("Load custom Slack emoji?").
				Description("Reads the legacy token from $SLACK_EMOJI_TOKEN at startup.").
				Value(&answers.SlackEmoji),
		),
	)

	if err := form.Run(); err != nil {
		return nil, fmt.Errorf("wizard: %w", err)
	}

	maxRows, _ := strconv.Atoi(answers.MaxRows)
	yaml := fmt.Sprintf(configTemplate, answers.Link, answers.Endpoint, answers.DisplayName, maxRows)
	if answers.SlackEmoji {
		yaml += emojiSection
	}
	if answers.WithBot {
		yaml += botSection
	}

	return []byte(yaml), nil
}

// runInit runs the wizard and writes the resulting config file. Existing
// files are never overwritten.
func runInit(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}

	configYAML, err := runWizard()
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, configYAML, 0o644); err != nil {
		return err
	}

	fmt.Printf("Wrote %s\n", path)
	return nil
}
