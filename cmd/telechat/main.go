package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/telepathic-chat/chatkit/pkg/chat"
	"github.com/telepathic-chat/chatkit/pkg/emoji"
	"github.com/telepathic-chat/chatkit/pkg/session"
	"github.com/telepathic-chat/chatkit/pkg/transport"
)

const defaultConfigPath = "telechat.yaml"

func main() {
	// Handle subcommands before flag parsing.
	if len(os.Args) > 1 && os.Args[1] == "init" {
		initCmd := flag.NewFlagSet("init", flag.ExitOnError)
		initCmd.Usage = func() {
			fmt.Fprintf(os.Stderr, "Usage: telechat init [flags]\n\nCreate a config file interactively.\n\nFlags:\n")
			initCmd.PrintDefaults()
		}
		configPath := initCmd.String("config", defaultConfigPath, "path of the config file to create")
		_ = initCmd.Parse(os.Args[2:])

		if err := runInit(*configPath); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}

		return
	}

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: telechat [flags]\n       telechat <command> [flags]\n\nFlags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nCommands:\n  init    Create a config file interactively\n")
	}

	configPath := flag.String("config", defaultConfigPath, "path to configuration file")
	envFile := flag.String("env", ".env", "path to .env file (ignored if missing)")
	flag.Parse()

	if err := loadDotEnv(*envFile); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if err := run(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := session.LoadConfig(configPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, closeLog, err := newLogger(cfg.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	// Buffer early relay traffic until the bridge starts draining; the
	// read loop must never block on the UI.
	incoming := make(chan chat.Message, 64)
	client, err := transport.Start(ctx, transport.Config{
		LinkID:   cfg.Link,
		Endpoint: cfg.Endpoint,
		NameFile: defaultNameFile(),
		Log:      log,
		OnMessage: func(m chat.Message) {
			select {
			case incoming <- m:
			default:
				log.Warn().Str("user", m.UserName).Msg("dropping message, UI not draining")
			}
		},
	})
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	opts := session.Options{DisplayName: cfg.DisplayName, Log: log}
	if cfg.Bot != nil {
		opts.Engine, opts.InitialState = cfg.Bot.Engine()
	}
	sess := session.New(client, opts)

	table := &emoji.Table{}
	loader := &emoji.Loader{
		Table:      table,
		UnicodeURL: cfg.Emoji.UnicodeURL,
		CustomURL:  cfg.Emoji.CustomURL,
		Token:      cfg.Emoji.SlackToken,
		Log:        log,
	}

	model := newAppModel(ctx, sess, table, incoming, cfg)

	p := tea.NewProgram(model)

	// Hand the program to the model so it can start the bridge, then load
	// the emoji datasets without holding up the first frame.
	go func() {
		p.Send(programReadyMsg{program: p})
		loader.Load(ctx)
		p.Send(emojiReadyMsg{})
	}()

	_, err = p.Run()
	return err
}

// newLogger opens a file-backed zerolog logger, or a no-op one when no log
// file is configured. TUI programs own the terminal, so logs never go to
// stderr.
func newLogger(path string) (zerolog.Logger, func(), error) {
	if path == "" {
		return zerolog.Nop(), func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Logger{}, nil, fmt.Errorf("open log file: %w", err)
	}

	log := zerolog.New(f).With().Timestamp().Logger()
	return log, func() { _ = f.Close() }, nil
}

// defaultNameFile is where the generated guest name persists between runs.
func defaultNameFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "telechat", "username")
}
