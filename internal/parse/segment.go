package parse

import (
	"github.com/threadstat/threadstat/internal/dom"
	"github.com/threadstat/threadstat/internal/thread"
)

// segmentMessage collects one message's content from the run of siblings
// following its boundary node. The export does not nest content under the
// message header; it lives as following-sibling markup until the next
// boundary (or end of parent when next is nil). Items and reactions keep
// encounter order; skipped nodes leave no trace.
func segmentMessage(boundary, next *dom.Node, participants []string) ([]thread.ContentItem, []thread.Reaction) {
	var items []thread.ContentItem
	var reactions []thread.Reaction

	for sib := boundary.NextSibling(); sib != nil && !sib.Is(next); sib = sib.NextSibling() {
		c := classifyNode(sib, participants)
		switch {
		case c.skip:
		case c.reaction != nil:
			reactions = append(reactions, *c.reaction)
		default:
			items = append(items, c.item)
		}
	}

	return items, reactions
}
