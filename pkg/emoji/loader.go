package emoji

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// DefaultUnicodeURL is the canonical Unicode emoji dataset (iamcal
// emoji-data), a JSON array of records with short_names, name and unified.
const DefaultUnicodeURL = "https://raw.githubusercontent.com/iamcal/emoji-data/master/emoji.json"

// DefaultCustomURL is the Slack custom emoji listing endpoint. It returns
// {"emoji": {shortcode: imageURL}} and requires a legacy token appended as
// a query parameter.
const DefaultCustomURL = "https://slack.com/api/emoji.list"

// Loader fetches emoji datasets over HTTP and merges them into a Table.
// Loads are one-shot and asynchronous relative to resolution: a failed
// load leaves the already-merged table untouched.
type Loader struct {
	Table      *Table
	UnicodeURL string // defaults to DefaultUnicodeURL
	CustomURL  string // defaults to DefaultCustomURL
	Token      string // Slack legacy token; custom load is skipped when empty
	Client     *http.Client
	Log        zerolog.Logger
}

// unicodeRecord is one entry of the iamcal emoji-data array.
type unicodeRecord struct {
	ShortNames []string `json:"short_names"`
	Name       string   `json:"name"`
	Unified    string   `json:"unified"`
}

// customListing is the shape of the Slack emoji.list response.
type customListing struct {
	Emoji map[string]string `json:"emoji"`
}

// Load fetches the Unicode dataset and, if a token is configured, the
// custom dataset, merging each into the table as it arrives. Failures are
// logged and do not surface to the caller; the table simply keeps whatever
// has been merged so far.
func (l *Loader) Load(ctx context.Context) {
	if err := l.LoadUnicode(ctx); err != nil {
		l.Log.Warn().Err(err).Msg("unicode emoji load failed")
	}
	if l.Token == "" {
		return
	}
	if err := l.LoadCustom(ctx); err != nil {
		l.Log.Warn().Err(err).Msg("custom emoji load failed")
	}
}

// LoadUnicode fetches the Unicode dataset and flattens it into the table,
// one entry per short name.
func (l *Loader) LoadUnicode(ctx context.Context) error {
	url := l.UnicodeURL
	if url == "" {
		url = DefaultUnicodeURL
	}

	body, err := l.fetch(ctx, url)
	if err != nil {
		return fmt.Errorf("emoji: load unicode: %w", err)
	}

	var records []unicodeRecord
	if err := json.Unmarshal(body, &records); err != nil {
		return fmt.Errorf("emoji: parse unicode dataset: %w", err)
	}

	entries := make(map[string]Entry)
	for _, r := range records {
		for _, name := range r.ShortNames {
			entries[name] = Entry{Description: r.Name, Unicode: r.Unified}
		}
	}
	l.Table.Merge(entries)

	l.Log.Debug().Int("entries", len(entries)).Msg("unicode emoji loaded")
	return nil
}

// LoadCustom fetches the custom shortcode → image URL listing and merges
// it into the table. Custom entries overlay Unicode ones on collision.
func (l *Loader) LoadCustom(ctx context.Context) error {
	url := l.CustomURL
	if url == "" {
		url = DefaultCustomURL
	}
	if l.Token != "" {
		url += "?token=" + l.Token
	}

	body, err := l.fetch(ctx, url)
	if err != nil {
		return fmt.Errorf("emoji: load custom: %w", err)
	}

	var listing customListing
	if err := json.Unmarshal(body, &listing); err != nil {
		return fmt.Errorf("emoji: parse custom listing: %w", err)
	}

	entries := make(map[string]Entry, len(listing.Emoji))
	for name, imageURL := range listing.Emoji {
		entries[name] = Entry{ImageURL: imageURL}
	}
	l.Table.Merge(entries)

	l.Log.Debug().Int("entries", len(entries)).Msg("custom emoji loaded")
	return nil
}

func (l *Loader) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	client := l.Client
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}

	return io.ReadAll(resp.Body)
}
