package parse

import (
	"strings"

	"github.com/threadstat/threadstat/internal/dom"
	"github.com/threadstat/threadstat/internal/thread"
)

// reactionClass marks the export's reaction annotation element. The match
// is against the full class attribute, the way the export writes it.
const reactionClass = "meta"

type classified struct {
	skip     bool
	reaction *thread.Reaction
	item     thread.ContentItem
}

// classifyNode decides what one sibling node contributes to a message.
// Decision order: skip, reaction, media, text. First match wins.
func classifyNode(node *dom.Node, participants []string) classified {
	text := strings.TrimSpace(node.Text())

	// stray whitespace/separator nodes between sibling elements
	if text == "" && node.ChildCount() == 0 {
		return classified{skip: true}
	}

	if node.ClassAttr() == reactionClass {
		r := ExtractReaction(node.Text(), participants)
		return classified{reaction: &r}
	}

	if fc := node.FirstChild(); fc != nil && fc.IsElement() && (fc.Tag() == "img" || fc.Tag() == "video") {
		return classified{item: thread.Media{URL: fc.Attr("src")}}
	}

	return classified{item: thread.Text{Content: text}}
}

// ExtractReaction recovers author and glyph from the combined text of a
// reaction node. Participant names are stripped first to isolate the
// glyph, then the glyph is stripped from the original to recover the
// author fragment. The order matters. This is a string-difference
// heuristic, not token-aware parsing: a participant name overlapping the
// glyph text misattributes, which matches the export's own limits.
func ExtractReaction(raw string, participants []string) thread.Reaction {
	content := raw
	for _, name := range participants {
		if name == "" {
			continue
		}
		content = strings.ReplaceAll(content, name, "")
	}
	content = strings.TrimSpace(content)

	author := raw
	if content != "" {
		author = strings.ReplaceAll(author, content, "")
	}

	return thread.Reaction{
		Author:  strings.TrimSpace(author),
		Content: content,
	}
}
