package emoji

import (
	"strings"
	"sync"
)

// Table is a thread-safe shortcode → Entry map. The zero value is ready
// to use. Loads merge into the table while readers resolve against it, so
// access is guarded; an empty or partially loaded table is always valid.
type Table struct {
	mu      sync.RWMutex
	once    sync.Once
	entries map[string]Entry
}

// init ensures internal structures are allocated.
func (t *Table) init() {
	t.once.Do(func() {
		t.entries = make(map[string]Entry)
	})
}

// Merge overlays entries onto the table. On key collision the incoming
// entry wins, so later loads take precedence over earlier ones.
func (t *Table) Merge(entries map[string]Entry) {
	t.init()
	t.mu.Lock()
	defer t.mu.Unlock()

	for k, v := range entries {
		t.entries[k] = v
	}
}

// Lookup returns the entry for a bare shortcode (no colons) and whether
// it was found.
func (t *Table) Lookup(shortcode string) (Entry, bool) {
	if t == nil {
		return Entry{}, false
	}
	t.init()
	t.mu.RLock()
	defer t.mu.RUnlock()

	e, ok := t.entries[shortcode]
	return e, ok
}

// Len returns the number of entries in the table.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	t.init()
	t.mu.RLock()
	defer t.mu.RUnlock()

	return len(t.entries)
}

// Snapshot returns a copy of the table's entries.
func (t *Table) Snapshot() map[string]Entry {
	if t == nil {
		return nil
	}
	t.init()
	t.mu.RLock()
	defer t.mu.RUnlock()

	cp := make(map[string]Entry, len(t.entries))
	for k, v := range t.entries {
		cp[k] = v
	}
	return cp
}

// Resolve maps a raw shortcode tag to its glyph descriptor. Leading and
// trailing colon markers are stripped before lookup. A miss returns the
// zero Entry; callers degrade to showing nothing or the raw tag.
func (t *Table) Resolve(shortcode string) Entry {
	e, _ := t.Lookup(strings.Trim(shortcode, ":"))
	return e
}
