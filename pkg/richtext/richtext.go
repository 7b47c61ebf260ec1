// Package richtext splits raw chat message text into typed content spans
// (emoji, bold, italic, strikethrough, code, plain text).
//
// Markup follows the Slack-style conventions: :shortcode:, *bold*,
// _italic_, ~strike~ and `code`. A marker pair only matches when the
// enclosed run contains no whitespace, so markup never spans a space.
package richtext

import (
	"regexp"
	"strings"
)

// Kind classifies a span of message text.
type Kind string

const (
	Emoji  Kind = "emoji"
	Bold   Kind = "bold"
	Italic Kind = "italic"
	Strike Kind = "strike"
	Code   Kind = "code"
	Plain  Kind = "plain"
)

// Span is a classified substring of a message. Raw holds the exact input
// slice, marker characters included; concatenating the Raw fields of a
// tokenized message reproduces the original text.
type Span struct {
	Kind Kind
	Raw  string
}

var (
	emojiRe  = regexp.MustCompile(`:\S*:`)
	boldRe   = regexp.MustCompile(`\*\S*\*`)
	italicRe = regexp.MustCompile(`_\S*_`)
	strikeRe = regexp.MustCompile(`~\S*~`)
	codeRe   = regexp.MustCompile("`\\S*`")
)

// passes lists the marker classes in the order the split passes run.
// The order is part of the tokenizer contract: overlapping markup is
// partitioned by whichever pattern runs first, so markers do not compose.
var passes = []struct {
	kind Kind
	re   *regexp.Regexp
}{
	{Emoji, emojiRe},
	{Bold, boldRe},
	{Italic, italicRe},
	{Strike, strikeRe},
	{Code, codeRe},
}

// Tokenize splits text into an ordered sequence of spans. It is pure and
// deterministic; the concatenated Raw fields always reproduce text exactly.
// Empty input yields a single empty plain span.
func Tokenize(text string) []Span {
	frags := []string{text}
	for _, p := range passes {
		next := make([]string, 0, len(frags))
		for _, f := range frags {
			next = append(next, splitAround(f, p.re)...)
		}
		frags = next
	}

	if len(frags) == 0 {
		return []Span{{Kind: Plain, Raw: ""}}
	}

	spans := make([]Span, len(frags))
	for i, f := range frags {
		spans[i] = Span{Kind: classify(f), Raw: f}
	}
	return spans
}

// splitAround partitions f into the substrings matched by re and the text
// between them, in input order. Empty gaps are discarded.
func splitAround(f string, re *regexp.Regexp) []string {
	locs := re.FindAllStringIndex(f, -1)
	if locs == nil {
		if f == "" {
			return nil
		}
		return []string{f}
	}

	var out []string
	last := 0
	for _, loc := range locs {
		if loc[0] > last {
			out = append(out, f[last:loc[0]])
		}
		out = append(out, f[loc[0]:loc[1]])
		last = loc[1]
	}
	if last < len(f) {
		out = append(out, f[last:])
	}
	return out
}

// classify re-tests a final fragment against the marker patterns in pass
// order. A fragment that survived every split intact is classified here
// rather than tagged during its own pass.
func classify(f string) Kind {
	for _, p := range passes {
		if p.re.MatchString(f) {
			return p.kind
		}
	}
	return Plain
}

// Text returns the renderable text of the span: bold, italic, strike and
// code spans have every occurrence of their marker character removed;
// emoji and plain spans are returned as-is. Emoji shortcode markers are
// stripped by the resolver at lookup time instead.
func (s Span) Text() string {
	switch s.Kind {
	case Bold:
		return strings.ReplaceAll(s.Raw, "*", "")
	case Italic:
		return strings.ReplaceAll(s.Raw, "_", "")
	case Strike:
		return strings.ReplaceAll(s.Raw, "~", "")
	case Code:
		return strings.ReplaceAll(s.Raw, "`", "")
	default:
		return s.Raw
	}
}
