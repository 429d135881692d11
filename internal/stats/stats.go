// Package stats computes descriptive aggregates over a parsed thread.
// Every query is an independent, read-only reduction; there is no shared
// cache and methods may be called in any order or not at all.
package stats

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/threadstat/threadstat/internal/emoji"
	"github.com/threadstat/threadstat/internal/thread"
)

const topSize = 10

// minWordLength is exclusive: only tokens longer than this count toward
// the word rankings.
const minWordLength = 4

type Aggregator struct {
	t *thread.Thread
}

func New(t *thread.Thread) *Aggregator {
	return &Aggregator{t: t}
}

// TotalMessages sums content-item counts across all messages. A message
// with zero items contributes 0, not 1.
func (a *Aggregator) TotalMessages() int {
	total := 0
	for i := range a.t.Messages {
		total += a.t.Messages[i].ItemCount()
	}
	return total
}

// MessagesWithoutText counts messages with no content items at all, e.g.
// unrenderable attachments.
func (a *Aggregator) MessagesWithoutText() int {
	count := 0
	for i := range a.t.Messages {
		if a.t.Messages[i].ItemCount() == 0 {
			count++
		}
	}
	return count
}

// WordCount sums whitespace-delimited tokens across all text items.
func (a *Aggregator) WordCount() int {
	total := 0
	for i := range a.t.Messages {
		total += a.t.Messages[i].WordCount()
	}
	return total
}

// DayActivity is one calendar day's content-item total.
type DayActivity struct {
	Date  string
	Count int
}

// MostActiveDay returns the day with the highest content-item total. Ties
// resolve to the earlier day in message order, mirroring a stable
// descending sort.
func (a *Aggregator) MostActiveDay() DayActivity {
	days := newTally()
	for i := range a.t.Messages {
		m := &a.t.Messages[i]
		days.add(m.Sent.DateKey(), m.ItemCount())
	}

	var best DayActivity
	for i, key := range days.order {
		if i == 0 || days.counts[key] > best.Count {
			best = DayActivity{Date: key, Count: days.counts[key]}
		}
	}
	return best
}

// MessagesByAuthor maps author to total content-item count.
func (a *Aggregator) MessagesByAuthor() map[string]int {
	byAuthor := make(map[string]int)
	for i := range a.t.Messages {
		m := &a.t.Messages[i]
		byAuthor[m.Author] += m.ItemCount()
	}
	return byAuthor
}

// AuthorCounts maps author to a content-item count within one group.
type AuthorCounts map[string]int

// KeyedCounts is one outer group (day, month, weekday or hour) with its
// per-author totals.
type KeyedCounts struct {
	Key      string
	ByAuthor AuthorCounts
}

// MessagesByDayAndAuthor groups item counts by calendar day then author.
// Days appear in first-seen (chronological) order.
func (a *Aggregator) MessagesByDayAndAuthor() []KeyedCounts {
	return a.groupByKeyAndAuthor(func(m *thread.Message) string { return m.Sent.DateKey() }, false)
}

// MessagesByMonthAndAuthor groups item counts by month then author, in
// first-seen order.
func (a *Aggregator) MessagesByMonthAndAuthor() []KeyedCounts {
	return a.groupByKeyAndAuthor(func(m *thread.Message) string { return m.Sent.MonthKey() }, false)
}

// MessagesByWeekdayAndAuthor groups item counts by ISO weekday then
// author, sorted ascending by weekday.
func (a *Aggregator) MessagesByWeekdayAndAuthor() []KeyedCounts {
	return a.groupByKeyAndAuthor(func(m *thread.Message) string { return m.Sent.WeekdayKey() }, true)
}

// MessagesByHourAndAuthor groups item counts by hour of day then author,
// sorted ascending by hour.
func (a *Aggregator) MessagesByHourAndAuthor() []KeyedCounts {
	return a.groupByKeyAndAuthor(func(m *thread.Message) string { return m.Sent.HourKey() }, true)
}

func (a *Aggregator) groupByKeyAndAuthor(key func(*thread.Message) string, sorted bool) []KeyedCounts {
	var order []string
	groups := make(map[string]AuthorCounts)

	for i := range a.t.Messages {
		m := &a.t.Messages[i]
		k := key(m)
		g, ok := groups[k]
		if !ok {
			g = make(AuthorCounts)
			groups[k] = g
			order = append(order, k)
		}
		g[m.Author] += m.ItemCount()
	}

	if sorted {
		sort.Strings(order)
	}

	out := make([]KeyedCounts, 0, len(order))
	for _, k := range order {
		out = append(out, KeyedCounts{Key: k, ByAuthor: groups[k]})
	}
	return out
}

// ReactionsByAuthor maps reaction author to the number of reactions they
// placed, flattened across all messages.
func (a *Aggregator) ReactionsByAuthor() map[string]int {
	byAuthor := make(map[string]int)
	for i := range a.t.Messages {
		for _, r := range a.t.Messages[i].Reactions {
			byAuthor[r.Author]++
		}
	}
	return byAuthor
}

// EmojiCountsByAuthor maps message author to the number of their content
// items that are emoji-only text.
func (a *Aggregator) EmojiCountsByAuthor() map[string]int {
	byAuthor := make(map[string]int)
	for i := range a.t.Messages {
		m := &a.t.Messages[i]
		for _, item := range m.Items {
			switch it := item.(type) {
			case thread.Text:
				if emoji.IsEmojiOnly(it.Content) {
					byAuthor[m.Author]++
				}
			case thread.Media:
			}
		}
	}
	return byAuthor
}

// WordCountsByAuthor maps message author to their total word count.
func (a *Aggregator) WordCountsByAuthor() map[string]int {
	byAuthor := make(map[string]int)
	for i := range a.t.Messages {
		m := &a.t.Messages[i]
		byAuthor[m.Author] += m.WordCount()
	}
	return byAuthor
}

// Ranked is one (key, count) pair from a descending ranking.
type Ranked struct {
	Key   string
	Count int
}

// MostUsedEmojis ranks every emoji glyph across all text items and
// returns the top 10, ties broken by first-seen order.
func (a *Aggregator) MostUsedEmojis() []Ranked {
	glyphs := newTally()
	for i := range a.t.Messages {
		for _, item := range a.t.Messages[i].Items {
			switch it := item.(type) {
			case thread.Text:
				for _, g := range emoji.Tokens(it.Content) {
					glyphs.add(g, 1)
				}
			case thread.Media:
			}
		}
	}
	return glyphs.top(topSize)
}

// MostUsedWords ranks whitespace tokens longer than four characters,
// lower-cased, and returns the top 10, ties broken by first-seen order.
func (a *Aggregator) MostUsedWords() []Ranked {
	words := newTally()
	for i := range a.t.Messages {
		for _, w := range a.t.Messages[i].Words() {
			if utf8.RuneCountInString(w) <= minWordLength {
				continue
			}
			words.add(strings.ToLower(w), 1)
		}
	}
	return words.top(topSize)
}
