package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/telepathic-chat/chatkit/pkg/bot"
)

func writeConfig(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
link: team-room
endpoint: https://relay.example.com
display_name: alice
textarea:
  max_rows: 6
  placeholder: Say something nice
bot:
  display_name: Greeter
  initial_state: 1
  disable_on_user: admin
  rules:
    - condition: 1
      kind: simple
      text: Welcome!
      new_state: 2
    - condition: 2
      kind: yes_no
      text: {yes: Great!, no: Too bad}
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "team-room", cfg.Link)
	assert.Equal(t, "alice", cfg.DisplayName)
	assert.Equal(t, 6, cfg.Textarea.RowLimit())
	assert.Equal(t, "Say something nice", cfg.Textarea.Hint())

	require.NotNil(t, cfg.Bot)
	require.Len(t, cfg.Bot.Rules, 2)
	assert.Equal(t, bot.YesNo, cfg.Bot.Rules[1].Kind)

	engine, state := cfg.Bot.Engine()
	assert.Equal(t, "Greeter", engine.DisplayName())
	assert.Equal(t, 1, state)
}

func TestLoadConfig_ExpandsEnv(t *testing.T) {
	t.Setenv("CHATKIT_TEST_TOKEN", "xoxs-secret")

	path := writeConfig(t, `
link: l
endpoint: https://relay.example.com
emoji:
  slack_token: ${CHATKIT_TEST_TOKEN}
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "xoxs-secret", cfg.Emoji.SlackToken)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestConfig_Validate_RequiresLinkAndEndpoint(t *testing.T) {
	assert.Error(t, Config{Endpoint: "https://x"}.Validate())
	assert.Error(t, Config{Link: "l"}.Validate())
	assert.NoError(t, Config{Link: "l", Endpoint: "https://x"}.Validate())
}

func TestConfig_Validate_BotRules(t *testing.T) {
	cfg := Config{Link: "l", Endpoint: "https://x", Bot: &BotConfig{
		Rules: []bot.Rule{{Kind: bot.Simple, Text: bot.Scalar("hi")}},
	}}
	assert.Error(t, cfg.Validate(), "missing condition")

	cfg.Bot.Rules = []bot.Rule{{Condition: 1, Kind: "sometimes", Text: bot.Scalar("hi")}}
	assert.Error(t, cfg.Validate(), "unknown kind")

	cfg.Bot.Rules = []bot.Rule{{Condition: 1, Text: bot.Scalar("hi")}}
	assert.NoError(t, cfg.Validate(), "empty kind defaults to simple")
}

func TestTextareaConfig_Defaults(t *testing.T) {
	var ta TextareaConfig

	assert.Equal(t, 4, ta.RowLimit())
	assert.Equal(t, "Type something...", ta.Hint())
}

func TestBotConfig_Engine_Defaults(t *testing.T) {
	b := &BotConfig{}

	engine, state := b.Engine()
	assert.Equal(t, "Bot", engine.DisplayName())
	assert.Equal(t, 1, state)
}
