package session

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/telepathic-chat/chatkit/pkg/bot"
)

// Config is the top-level chat configuration.
type Config struct {
	// Link identifies the shared conversation on the relay.
	Link string `yaml:"link"`
	// Endpoint is the relay server base URL.
	Endpoint string `yaml:"endpoint"`
	// DisplayName overrides the persisted transport user name.
	DisplayName string         `yaml:"display_name"`
	Textarea    TextareaConfig `yaml:"textarea"`
	Emoji       EmojiConfig    `yaml:"emoji"`
	Bot         *BotConfig     `yaml:"bot"`
	// LogFile receives structured logs; empty discards them.
	LogFile string `yaml:"log_file"`
}

// TextareaConfig holds the input box settings.
type TextareaConfig struct {
	MaxRows     int    `yaml:"max_rows"`
	Placeholder string `yaml:"placeholder"`
}

// RowLimit returns the configured maximum visible rows, defaulting to 4.
func (t TextareaConfig) RowLimit() int {
	if t.MaxRows <= 0 {
		return 4
	}
	return t.MaxRows
}

// Hint returns the configured placeholder, defaulting to the classic one.
func (t TextareaConfig) Hint() string {
	if t.Placeholder == "" {
		return "Type something..."
	}
	return t.Placeholder
}

// EmojiConfig points at the emoji datasets.
type EmojiConfig struct {
	UnicodeURL string `yaml:"unicode_url"`
	CustomURL  string `yaml:"custom_url"`
	// SlackToken is the legacy token appended to the custom listing
	// request; the custom load is skipped when empty.
	SlackToken string `yaml:"slack_token"`
}

// BotConfig describes an optional bot attached to the session.
type BotConfig struct {
	DisplayName   string            `yaml:"display_name"`
	InitialState  bot.State         `yaml:"initial_state"`
	DisableOnUser bot.DisablePolicy `yaml:"disable_on_user"`
	Rules         []bot.Rule        `yaml:"rules"`
}

// Engine builds the bot engine and its initial state from the config.
// The initial state defaults to 1 when unset.
func (b *BotConfig) Engine() (*bot.Engine, bot.State) {
	name := b.DisplayName
	if name == "" {
		name = "Bot"
	}
	state := b.InitialState
	if state == nil {
		state = 1
	}
	return bot.New(name, b.Rules, b.DisableOnUser), state
}

// LoadConfig reads a YAML file and returns a Config. Environment
// variables referenced as ${VAR} or $VAR in the YAML are expanded before
// parsing, so secrets like the Slack token can live in the environment
// rather than the file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("session: load config: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return Config{}, fmt.Errorf("session: parse config: %w", err)
	}

	return cfg, nil
}

// Validate checks that the configuration is internally consistent.
func (c Config) Validate() error {
	if c.Link == "" {
		return fmt.Errorf("session: config: link is required")
	}
	if c.Endpoint == "" {
		return fmt.Errorf("session: config: endpoint is required")
	}

	if c.Bot != nil {
		for i, r := range c.Bot.Rules {
			if r.Condition == nil {
				return fmt.Errorf("session: config: bot rule %d: condition is required", i)
			}
			switch r.Kind {
			case "", bot.Simple, bot.YesNo:
			default:
				return fmt.Errorf("session: config: bot rule %d: unknown kind %q", i, r.Kind)
			}
		}
	}

	return nil
}
