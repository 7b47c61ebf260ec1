package transport

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/google/uuid"

	"github.com/telepathic-chat/chatkit/pkg/chat"
)

const writeTimeout = 5 * time.Second

// frame is the JSON wire format exchanged with the relay.
type frame struct {
	Type     string `json:"type"`
	LinkID   string `json:"linkId,omitempty"`
	UserName string `json:"userName,omitempty"`
	Text     string `json:"text,omitempty"`
}

const (
	frameJoin    = "join"
	frameMessage = "message"
	frameName    = "name"
)

// wsClient is the websocket-backed transport client.
type wsClient struct {
	cfg    Config
	conn   *websocket.Conn
	cancel context.CancelFunc

	mu       sync.Mutex
	userName string
}

// Start dials the relay, joins the configured link, and begins delivering
// incoming messages to cfg.OnMessage until the context is cancelled or
// the client is closed.
func Start(ctx context.Context, cfg Config) (Client, error) {
	u, err := wsURL(cfg.Endpoint, cfg.LinkID)
	if err != nil {
		return nil, fmt.Errorf("transport: %w", err)
	}

	conn, _, err := websocket.Dial(ctx, u, nil)
	if err != nil {
		return nil, fmt.Errorf("transport: dial %s: %w", u, err)
	}

	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	c := &wsClient{
		cfg:      cfg,
		conn:     conn,
		cancel:   cancel,
		userName: loadOrCreateName(cfg.NameFile),
	}

	if err := c.write(runCtx, frame{Type: frameJoin, LinkID: cfg.LinkID, UserName: c.userName}); err != nil {
		cancel()
		_ = conn.CloseNow()
		return nil, fmt.Errorf("transport: join link %q: %w", cfg.LinkID, err)
	}

	cfg.Log.Info().Str("link", cfg.LinkID).Str("user", c.userName).Msg("transport connected")

	go c.readLoop(runCtx)

	return c, nil
}

// wsURL derives the websocket URL for a link from the endpoint base.
// The http(s) schemes map to ws(s), matching standard proxy setups.
func wsURL(endpoint, linkID string) (string, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return "", fmt.Errorf("parse endpoint: %w", err)
	}

	switch u.Scheme {
	case "http":
		u.Scheme = "ws"
	case "https":
		u.Scheme = "wss"
	case "ws", "wss":
	default:
		return "", fmt.Errorf("unsupported endpoint scheme %q", u.Scheme)
	}

	u.Path = strings.TrimSuffix(u.Path, "/") + "/links/" + url.PathEscape(linkID)
	return u.String(), nil
}

func (c *wsClient) readLoop(ctx context.Context) {
	for {
		var f frame
		if err := wsjson.Read(ctx, c.conn, &f); err != nil {
			if ctx.Err() == nil && websocket.CloseStatus(err) != websocket.StatusNormalClosure {
				c.cfg.Log.Warn().Err(err).Msg("transport read loop ended")
			}
			return
		}

		if f.Type != frameMessage {
			continue
		}
		if c.cfg.OnMessage != nil {
			c.cfg.OnMessage(chat.Message{UserName: f.UserName, Text: f.Text})
		}
	}
}

func (c *wsClient) write(ctx context.Context, f frame) error {
	wctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()
	return wsjson.Write(wctx, c.conn, f)
}

func (c *wsClient) GetOrCreateUserName() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.userName
}

func (c *wsClient) UpdateName(name string) {
	c.mu.Lock()
	c.userName = name
	c.mu.Unlock()

	saveName(c.cfg.NameFile, name)

	if err := c.write(context.Background(), frame{Type: frameName, UserName: name}); err != nil {
		c.cfg.Log.Warn().Err(err).Msg("transport name update failed")
	}
}

func (c *wsClient) SendMessage(text string) {
	c.mu.Lock()
	name := c.userName
	c.mu.Unlock()

	if err := c.write(context.Background(), frame{Type: frameMessage, UserName: name, Text: text}); err != nil {
		c.cfg.Log.Warn().Err(err).Msg("transport send failed")
	}
}

func (c *wsClient) Close() error {
	c.cancel()
	if err := c.conn.Close(websocket.StatusNormalClosure, "bye"); err != nil {
		return fmt.Errorf("transport: close: %w", err)
	}
	return nil
}

// loadOrCreateName reads the persisted user name, generating and storing
// a fresh guest name when none exists. Persistence failures fall back to
// an unsaved guest name; a name is never an error.
func loadOrCreateName(path string) string {
	if path != "" {
		if data, err := os.ReadFile(path); err == nil {
			if name := strings.TrimSpace(string(data)); name != "" {
				return name
			}
		}
	}

	name := "guest-" + uuid.NewString()[:8]
	saveName(path, name)
	return name
}

func saveName(path, name string) {
	if path == "" {
		return
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return
	}
	_ = os.WriteFile(path, []byte(name+"\n"), 0o644)
}
