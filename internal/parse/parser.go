// Package parse reconstructs a message thread from the export's HTML
// document: participants from the thread header, message boundaries from
// repeated .message nodes, and each message's content from the run of
// siblings up to the next boundary.
package parse

import (
	"fmt"
	"strings"

	"github.com/threadstat/threadstat/internal/dates"
	"github.com/threadstat/threadstat/internal/dom"
	"github.com/threadstat/threadstat/internal/thread"
)

// DefaultYear is the calendar year retained when none is configured.
const DefaultYear = 2017

// Options configure a Parser. The zero value of Limit means "emit
// nothing"; use DefaultOptions (or a negative Limit) for unbounded.
type Options struct {
	Year        int              // only messages dated in this year are emitted
	Limit       int              // maximum emitted messages, < 0 = unbounded
	Offset      int              // year-accepted boundaries to skip before emitting
	SeedAuthors []string         // names unioned into participants, no de-duplication
	Resolver    *dates.Resolver  // nil = builtin zone table
}

// DefaultOptions returns the export defaults: year 2017, no windowing.
func DefaultOptions() Options {
	return Options{Year: DefaultYear, Limit: -1}
}

type Parser struct {
	doc      *dom.Document
	year     int
	limit    int
	offset   int
	seeds    []string
	resolver *dates.Resolver
}

// New builds a Parser over an already-loaded document.
func New(doc *dom.Document, opts Options) *Parser {
	if opts.Year == 0 {
		opts.Year = DefaultYear
	}
	if opts.Resolver == nil {
		opts.Resolver = dates.NewResolver(nil)
	}
	return &Parser{
		doc:      doc,
		year:     opts.Year,
		limit:    opts.Limit,
		offset:   opts.Offset,
		seeds:    opts.SeedAuthors,
		resolver: opts.Resolver,
	}
}

// ParseThread builds the full thread. The returned value is not mutated
// afterwards and is owned by the caller. Errors identify the stage that
// failed (participants, or message N).
func (p *Parser) ParseThread() (*thread.Thread, error) {
	parsed, err := p.parseParticipants()
	if err != nil {
		return nil, fmt.Errorf("participants: %w", err)
	}

	// seeded names first, export names after; duplicates are the
	// caller's responsibility
	participants := append(append([]string{}, p.seeds...), parsed...)

	messages, err := p.parseMessages(participants)
	if err != nil {
		return nil, err
	}

	return &thread.Thread{Participants: participants, Messages: messages}, nil
}

// parseParticipants reads the thread-level participants block, whose text
// is "Participants: A, B, C".
func (p *Parser) parseParticipants() ([]string, error) {
	container, err := p.doc.FirstClass("thread")
	if err != nil {
		return nil, err
	}
	if container == nil {
		return nil, &ShapeError{What: "no .thread container"}
	}

	node := container.NthChild(1)
	if node == nil {
		return nil, &ShapeError{What: ".thread has no participants node"}
	}

	text := strings.TrimSpace(node.Text())
	text = strings.TrimPrefix(text, "Participants: ")
	return strings.Split(text, ", "), nil
}

func (p *Parser) parseMessages(participants []string) ([]thread.Message, error) {
	boundaries, err := p.doc.FindClass("message")
	if err != nil {
		return nil, err
	}

	var messages []thread.Message
	accepted, hidden := 0, 0

	for i, boundary := range boundaries {
		stamp, err := p.boundaryStamp(boundary)
		if err != nil {
			return nil, fmt.Errorf("message %d: %w", i, err)
		}

		// permanent filter, independent of offset/limit
		if stamp.Year() != p.year {
			continue
		}

		if p.limit >= 0 && accepted+hidden >= p.limit {
			break
		}

		// boundary consumed by the offset window, not emitted
		if hidden < p.offset {
			hidden++
			continue
		}

		// The segmentation range is structural: the adjacent boundary in
		// the document bounds this message even when that boundary itself
		// fails the year filter.
		var next *dom.Node
		if i+1 < len(boundaries) {
			next = boundaries[i+1]
		}

		author, err := p.boundaryAuthor(boundary)
		if err != nil {
			return nil, fmt.Errorf("message %d: %w", i, err)
		}

		items, reactions := segmentMessage(boundary, next, participants)
		messages = append(messages, thread.Message{
			Author:    author,
			Sent:      stamp,
			Items:     items,
			Reactions: reactions,
		})
		accepted++
	}

	return messages, nil
}

// header returns the boundary's first child element, which holds the
// author and date nodes.
func (p *Parser) header(boundary *dom.Node) (*dom.Node, error) {
	h := boundary.ChildElement(0)
	if h == nil {
		return nil, &ShapeError{What: "boundary node has no header child"}
	}
	return h, nil
}

func (p *Parser) boundaryStamp(boundary *dom.Node) (dates.Stamp, error) {
	h, err := p.header(boundary)
	if err != nil {
		return dates.Stamp{}, err
	}
	dateNode := h.ChildElement(1)
	if dateNode == nil {
		return dates.Stamp{}, &ShapeError{What: "boundary header has no date node"}
	}
	return p.resolver.Parse(strings.TrimSpace(dateNode.Text()))
}

func (p *Parser) boundaryAuthor(boundary *dom.Node) (string, error) {
	h, err := p.header(boundary)
	if err != nil {
		return "", err
	}
	authorNode := h.ChildElement(0)
	if authorNode == nil {
		return "", &ShapeError{What: "boundary header has no author node"}
	}
	return strings.TrimSpace(authorNode.Text()), nil
}
