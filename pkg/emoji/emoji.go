// Package emoji resolves chat shortcodes (":smile:") to renderable glyph
// descriptors. A shortcode maps either to a custom image URL or to a
// Unicode glyph described by a name and a hexadecimal code sequence.
//
// The shortcode table is populated asynchronously by a Loader; resolution
// against a partially loaded or empty table degrades to an empty
// descriptor and never fails.
package emoji

import (
	"strconv"
	"strings"
)

// Entry is a resolved glyph descriptor. Custom entries set ImageURL only;
// Unicode entries set Description and Unicode (a dash-separated sequence
// of hexadecimal codepoints, e.g. "1F1FA-1F1F8").
type Entry struct {
	ImageURL    string
	Description string
	Unicode     string
}

// IsZero reports whether the entry carries no glyph at all, i.e. the
// shortcode lookup missed.
func (e Entry) IsZero() bool {
	return e.ImageURL == "" && e.Description == "" && e.Unicode == ""
}

// Glyph decodes the Unicode hex sequence into the renderable string.
// It returns "" for custom-image entries and for malformed hex codes.
func (e Entry) Glyph() string {
	if e.Unicode == "" {
		return ""
	}

	var b strings.Builder
	for _, part := range strings.Split(e.Unicode, "-") {
		cp, err := strconv.ParseUint(part, 16, 32)
		if err != nil {
			return ""
		}
		b.WriteRune(rune(cp))
	}
	return b.String()
}
