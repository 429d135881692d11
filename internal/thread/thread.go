// Package thread holds the parsed export model. Values are built once by
// the parser and never mutated afterwards.
package thread

import (
	"strings"

	"github.com/threadstat/threadstat/internal/dates"
)

type Thread struct {
	Participants []string
	Messages     []Message
}

type Message struct {
	Author    string
	Sent      dates.Stamp
	Items     []ContentItem
	Reactions []Reaction
}

// Timestamp returns the message instant as epoch seconds.
func (m *Message) Timestamp() int64 {
	return m.Sent.Unix()
}

// ItemCount is the number of content items. A message that carried only an
// unrenderable attachment has zero items; that is valid and tracked
// separately by statistics.
func (m *Message) ItemCount() int {
	return len(m.Items)
}

// Words returns all whitespace-delimited tokens across the message's text
// items, in source order. Media items contribute nothing.
func (m *Message) Words() []string {
	var words []string
	for _, item := range m.Items {
		switch it := item.(type) {
		case Text:
			words = append(words, strings.Fields(it.Content)...)
		case Media:
		}
	}
	return words
}

func (m *Message) WordCount() int {
	return len(m.Words())
}

// ContentItem is the closed set of message payload kinds. Consumers switch
// exhaustively over Text and Media.
type ContentItem interface {
	isContentItem()
}

// Text is a plain textual payload, already trimmed.
type Text struct {
	Content string
}

// Media references an embedded image or video by its src URL. The URL may
// be empty when the export omitted the attribute.
type Media struct {
	URL string
}

func (Text) isContentItem()  {}
func (Media) isContentItem() {}

// Reaction is an emoji acknowledgment attached to a message, attributed to
// the participant who placed it.
type Reaction struct {
	Author  string
	Content string
}
