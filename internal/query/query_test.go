package query

import (
	"strings"
	"testing"
	"time"

	"github.com/threadstat/threadstat/internal/dates"
	"github.com/threadstat/threadstat/internal/thread"
)

func testThread() *thread.Thread {
	stamp := dates.StampOf(time.Date(2018, 1, 1, 10, 0, 0, 0, time.UTC))
	return &thread.Thread{
		Participants: []string{"Alice", "Bob"},
		Messages: []thread.Message{
			{Author: "Alice", Sent: stamp, Items: []thread.ContentItem{
				thread.Text{Content: "the quick brown fox"},
			}},
			{Author: "Bob", Sent: stamp, Items: []thread.ContentItem{
				thread.Text{Content: "quick reply about nothing"},
				thread.Media{URL: "fox-photo.jpg"},
			}},
			{Author: "Alice", Sent: stamp, Items: []thread.ContentItem{
				thread.Text{Content: "你好世界"},
			}},
		},
	}
}

func open(t *testing.T) *Index {
	t.Helper()
	ix, err := Open(testThread())
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { ix.Close() })
	return ix
}

// TestSearchFTS verifies full-text matching with snippet markers.
func TestSearchFTS(t *testing.T) {
	ix := open(t)

	results, err := ix.Search("quick", Options{})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("Search returned %d results, want 2", len(results))
	}
	for _, r := range results {
		if !strings.Contains(r.Snippet, ">>>quick<<<") {
			t.Errorf("snippet %q missing match markers", r.Snippet)
		}
	}
}

// TestSearchAuthorFilter verifies the author restriction.
func TestSearchAuthorFilter(t *testing.T) {
	ix := open(t)

	results, err := ix.Search("quick", Options{Author: "Bob"})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(results) != 1 || results[0].Author != "Bob" {
		t.Errorf("results = %+v, want only Bob", results)
	}
}

// TestSearchNoResults verifies a clean miss.
func TestSearchNoResults(t *testing.T) {
	ix := open(t)

	results, err := ix.Search("zebra", Options{})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("results = %+v, want none", results)
	}
}

// TestSearchCJKFallback verifies the LIKE fallback for ideograph queries,
// which unicode61 cannot tokenize.
func TestSearchCJKFallback(t *testing.T) {
	ix := open(t)

	results, err := ix.Search("你好", Options{})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("results = %+v, want 1", results)
	}
	if !strings.Contains(results[0].Snippet, ">>>你好<<<") {
		t.Errorf("snippet %q missing match markers", results[0].Snippet)
	}
}

// TestMediaIndexed verifies media URLs are searchable as items.
func TestMediaIndexed(t *testing.T) {
	ix := open(t)

	results, err := ix.Search("photo", Options{})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(results) != 1 || results[0].Kind != "media" {
		t.Errorf("results = %+v, want one media hit", results)
	}
}
