package parse

import (
	"strings"
	"testing"

	"github.com/threadstat/threadstat/internal/dom"
	"github.com/threadstat/threadstat/internal/thread"
)

// TestExtractReaction verifies the order-dependent string-difference
// extraction: names stripped first, then the remaining glyph stripped
// from the original to recover the author.
func TestExtractReaction(t *testing.T) {
	participants := []string{"Alice", "Bob"}

	tests := []struct {
		name        string
		raw         string
		wantAuthor  string
		wantContent string
	}{
		{"author then glyph", "Alice😀", "Alice", "😀"},
		{"glyph then author", "😀Bob", "Bob", "😀"},
		{"spacing", " Alice 😀 ", "Alice", "😀"},
		{"multi-glyph", "Alice😀😀", "Alice", "😀😀"},
		{"unknown author kept as glyph", "Carol😀", "", "Carol😀"},
		{"only name", "Alice", "Alice", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := ExtractReaction(tt.raw, participants)
			if r.Author != tt.wantAuthor {
				t.Errorf("Author = %q, want %q", r.Author, tt.wantAuthor)
			}
			if r.Content != tt.wantContent {
				t.Errorf("Content = %q, want %q", r.Content, tt.wantContent)
			}
		})
	}
}

// TestExtractReactionEmptyParticipants verifies empty names never
// participate in stripping.
func TestExtractReactionEmptyParticipants(t *testing.T) {
	r := ExtractReaction("Alice😀", []string{"", "Alice"})
	if r.Author != "Alice" || r.Content != "😀" {
		t.Errorf("got %+v, want Alice/😀", r)
	}
}

// TestClassifyNode verifies the decision order: skip, reaction, media,
// text — first match wins.
func TestClassifyNode(t *testing.T) {
	participants := []string{"Alice", "Bob"}

	tests := []struct {
		name  string
		html  string
		check func(t *testing.T, c classified)
	}{
		{
			name: "plain text",
			html: `<p> Hello world </p>`,
			check: func(t *testing.T, c classified) {
				txt, ok := c.item.(thread.Text)
				if !ok {
					t.Fatalf("item = %T, want Text", c.item)
				}
				if txt.Content != "Hello world" {
					t.Errorf("Content = %q, want trimmed text", txt.Content)
				}
			},
		},
		{
			name: "media image",
			html: `<p><img src="photo.jpg"/></p>`,
			check: func(t *testing.T, c classified) {
				m, ok := c.item.(thread.Media)
				if !ok {
					t.Fatalf("item = %T, want Media", c.item)
				}
				if m.URL != "photo.jpg" {
					t.Errorf("URL = %q, want photo.jpg", m.URL)
				}
			},
		},
		{
			name: "media video without src",
			html: `<p><video></video></p>`,
			check: func(t *testing.T, c classified) {
				m, ok := c.item.(thread.Media)
				if !ok {
					t.Fatalf("item = %T, want Media", c.item)
				}
				if m.URL != "" {
					t.Errorf("URL = %q, want empty", m.URL)
				}
			},
		},
		{
			name: "reaction",
			html: `<div class="meta">Alice😀</div>`,
			check: func(t *testing.T, c classified) {
				if c.reaction == nil {
					t.Fatal("want reaction")
				}
				if c.reaction.Author != "Alice" || c.reaction.Content != "😀" {
					t.Errorf("reaction = %+v", c.reaction)
				}
			},
		},
		{
			name: "empty element is skipped",
			html: `<p></p>`,
			check: func(t *testing.T, c classified) {
				if !c.skip {
					t.Error("empty childless node should be skipped")
				}
			},
		},
		{
			name: "whitespace-only text node with children is text, not skip",
			html: `<p><span></span></p>`,
			check: func(t *testing.T, c classified) {
				if c.skip {
					t.Fatal("node with children must not be skipped")
				}
				txt, ok := c.item.(thread.Text)
				if !ok {
					t.Fatalf("item = %T, want Text", c.item)
				}
				if txt.Content != "" {
					t.Errorf("Content = %q, want empty", txt.Content)
				}
			},
		},
		{
			name: "meta marker must match the whole class attribute",
			html: `<div class="meta extra">Alice😀</div>`,
			check: func(t *testing.T, c classified) {
				if c.reaction != nil {
					t.Error("partial class match should not classify as reaction")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := dom.Load(strings.NewReader(`<html><body><div class="wrap">` + tt.html + `</div></body></html>`))
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			wrap, err := doc.FirstClass("wrap")
			if err != nil || wrap == nil {
				t.Fatalf("wrapper lookup failed: %v", err)
			}
			node := wrap.FirstChild()
			if node == nil {
				t.Fatal("fixture has no node")
			}
			tt.check(t, classifyNode(node, participants))
		})
	}
}
