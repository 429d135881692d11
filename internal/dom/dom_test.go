package dom

import (
	"strings"
	"testing"
)

const sample = `<html><body>` +
	`<div class="thread">Chat` +
	`<div>Participants: Alice, Bob</div>` +
	`<div class="message"><div class="message_header"><span class="user">Alice</span><span class="meta">date</span></div></div>` +
	`<p>Hello</p>` +
	`<div class="message"><div class="message_header"><span class="user">Bob</span><span class="meta">date</span></div></div>` +
	`</div></body></html>`

func load(t *testing.T, s string) *Document {
	t.Helper()
	doc, err := Load(strings.NewReader(s))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	return doc
}

// TestFindClass verifies class queries match tokens, not substrings, and
// return nodes in document order.
func TestFindClass(t *testing.T) {
	doc := load(t, sample)

	nodes, err := doc.FindClass("message")
	if err != nil {
		t.Fatalf("FindClass failed: %v", err)
	}
	if len(nodes) != 2 {
		t.Fatalf("FindClass returned %d nodes, want 2 (message_header must not match)", len(nodes))
	}

	first := nodes[0].ChildElement(0).ChildElement(0)
	if got := first.Text(); got != "Alice" {
		t.Errorf("first boundary author = %q, want Alice", got)
	}
}

// TestFirstClass verifies single-node lookup and the nil miss case.
func TestFirstClass(t *testing.T) {
	doc := load(t, sample)

	n, err := doc.FirstClass("thread")
	if err != nil {
		t.Fatalf("FirstClass failed: %v", err)
	}
	if n == nil {
		t.Fatal("FirstClass returned nil for present class")
	}

	missing, err := doc.FirstClass("absent")
	if err != nil {
		t.Fatalf("FirstClass failed: %v", err)
	}
	if missing != nil {
		t.Error("FirstClass should return nil for absent class")
	}
}

// TestChildAccess verifies node-kind-sensitive child accessors: NthChild
// sees text nodes, ChildElement skips them.
func TestChildAccess(t *testing.T) {
	doc := load(t, sample)

	container, _ := doc.FirstClass("thread")
	// child 0 is the text node "Chat", child 1 the participants div
	if got := strings.TrimSpace(container.NthChild(0).Text()); got != "Chat" {
		t.Errorf("NthChild(0) = %q, want Chat", got)
	}
	if got := strings.TrimSpace(container.NthChild(1).Text()); got != "Participants: Alice, Bob" {
		t.Errorf("NthChild(1) = %q", got)
	}
	// first child element skips the leading text node
	if got := strings.TrimSpace(container.ChildElement(0).Text()); got != "Participants: Alice, Bob" {
		t.Errorf("ChildElement(0) = %q", got)
	}
}

// TestSiblingWalk verifies the sibling iteration and identity check used
// by message segmentation.
func TestSiblingWalk(t *testing.T) {
	doc := load(t, sample)

	boundaries, err := doc.FindClass("message")
	if err != nil {
		t.Fatalf("FindClass failed: %v", err)
	}

	var between []string
	for sib := boundaries[0].NextSibling(); sib != nil && !sib.Is(boundaries[1]); sib = sib.NextSibling() {
		between = append(between, strings.TrimSpace(sib.Text()))
	}
	if len(between) != 1 || between[0] != "Hello" {
		t.Errorf("siblings between boundaries = %v, want [Hello]", between)
	}
}

// TestHasClass verifies token matching on multi-class attributes.
func TestHasClass(t *testing.T) {
	doc := load(t, `<div class="a b c">x</div>`)
	nodes, err := doc.FindClass("b")
	if err != nil {
		t.Fatalf("FindClass failed: %v", err)
	}
	if len(nodes) != 1 {
		t.Fatalf("FindClass returned %d nodes, want 1", len(nodes))
	}
	if !nodes[0].HasClass("c") || nodes[0].HasClass("d") {
		t.Error("HasClass token matching broken")
	}
}
