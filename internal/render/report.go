// Package render turns parsed threads and their statistics into plain
// terminal output.
package render

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/threadstat/threadstat/internal/stats"
	"github.com/threadstat/threadstat/internal/thread"
)

const (
	colorReset = "\033[0m"
	colorTitle = "\033[1;34m" // bold blue
	colorDim   = "\033[2m"
	colorBar   = "\033[36m" // cyan
)

const barWidth = 40

// Report writes the full statistics report for a thread.
func Report(w io.Writer, t *thread.Thread, agg *stats.Aggregator) {
	title(w, "Thread")
	fmt.Fprintf(w, "  Participants: %s\n", strings.Join(t.Participants, ", "))

	title(w, "Totals")
	fmt.Fprintf(w, "  Messages:         %d\n", agg.TotalMessages())
	fmt.Fprintf(w, "  Without text:     %d\n", agg.MessagesWithoutText())
	fmt.Fprintf(w, "  Words:            %d\n", agg.WordCount())
	day := agg.MostActiveDay()
	fmt.Fprintf(w, "  Most active day:  %s (%d)\n", day.Date, day.Count)

	title(w, "Messages by author")
	authorTable(w, agg.MessagesByAuthor())

	title(w, "Words by author")
	authorTable(w, agg.WordCountsByAuthor())

	title(w, "Reactions by author")
	authorTable(w, agg.ReactionsByAuthor())

	title(w, "Emoji-only messages by author")
	authorTable(w, agg.EmojiCountsByAuthor())

	title(w, "By month")
	groupTable(w, agg.MessagesByMonthAndAuthor())

	title(w, "By weekday")
	groupTable(w, agg.MessagesByWeekdayAndAuthor())

	title(w, "By hour")
	hourHistogram(w, agg.MessagesByHourAndAuthor())

	title(w, "Top emojis")
	rankedTable(w, agg.MostUsedEmojis())

	title(w, "Top words")
	rankedTable(w, agg.MostUsedWords())
}

func title(w io.Writer, s string) {
	fmt.Fprintf(w, "\n%s=== %s ===%s\n", colorTitle, s, colorReset)
}

// authorTable prints author counts in descending order, authors aligned
// with runewidth so wide glyph names line up.
func authorTable(w io.Writer, counts map[string]int) {
	if len(counts) == 0 {
		fmt.Fprintf(w, "  %s(none)%s\n", colorDim, colorReset)
		return
	}

	authors := make([]string, 0, len(counts))
	width := 0
	for a := range counts {
		authors = append(authors, a)
		if aw := runewidth.StringWidth(a); aw > width {
			width = aw
		}
	}
	sort.Slice(authors, func(i, j int) bool {
		if counts[authors[i]] != counts[authors[j]] {
			return counts[authors[i]] > counts[authors[j]]
		}
		return authors[i] < authors[j]
	})

	for _, a := range authors {
		fmt.Fprintf(w, "  %s  %d\n", runewidth.FillRight(a, width), counts[a])
	}
}

func groupTable(w io.Writer, groups []stats.KeyedCounts) {
	for _, g := range groups {
		total := 0
		parts := make([]string, 0, len(g.ByAuthor))
		authors := sortedKeys(g.ByAuthor)
		for _, a := range authors {
			total += g.ByAuthor[a]
			parts = append(parts, fmt.Sprintf("%s %d", a, g.ByAuthor[a]))
		}
		fmt.Fprintf(w, "  %s  %-5d %s(%s)%s\n", g.Key, total, colorDim, strings.Join(parts, ", "), colorReset)
	}
}

// hourHistogram renders per-hour totals as bars scaled to the busiest hour.
func hourHistogram(w io.Writer, groups []stats.KeyedCounts) {
	max := 0
	totals := make([]int, len(groups))
	for i, g := range groups {
		for _, n := range g.ByAuthor {
			totals[i] += n
		}
		if totals[i] > max {
			max = totals[i]
		}
	}
	if max == 0 {
		fmt.Fprintf(w, "  %s(none)%s\n", colorDim, colorReset)
		return
	}

	for i, g := range groups {
		n := totals[i] * barWidth / max
		fmt.Fprintf(w, "  %s  %s%s%s %d\n", g.Key, colorBar, strings.Repeat("█", n), colorReset, totals[i])
	}
}

func rankedTable(w io.Writer, ranked []stats.Ranked) {
	if len(ranked) == 0 {
		fmt.Fprintf(w, "  %s(none)%s\n", colorDim, colorReset)
		return
	}
	for i, r := range ranked {
		fmt.Fprintf(w, "  %2d. %s  %d\n", i+1, r.Key, r.Count)
	}
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
