// Package emoji classifies and tokenizes emoji glyphs in message text.
package emoji

import (
	"strings"

	"github.com/forPelevin/gomoji"
	"github.com/rivo/uniseg"
)

// IsEmojiOnly reports whether the trimmed text consists solely of emoji
// glyphs (whitespace between glyphs is tolerated). Empty text is not
// emoji-only.
func IsEmojiOnly(text string) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		return false
	}
	found := false
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		cluster := g.Str()
		if strings.TrimSpace(cluster) == "" {
			continue
		}
		if !gomoji.ContainsEmoji(cluster) {
			return false
		}
		found = true
	}
	return found
}

// Tokens returns every emoji glyph in text in order of occurrence,
// repeats included. Grapheme clusters keep multi-codepoint emoji
// (skin tones, ZWJ sequences) intact.
func Tokens(text string) []string {
	var tokens []string
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		cluster := g.Str()
		if strings.TrimSpace(cluster) == "" {
			continue
		}
		if gomoji.ContainsEmoji(cluster) {
			tokens = append(tokens, cluster)
		}
	}
	return tokens
}
