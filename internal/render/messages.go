package render

import (
	"fmt"
	"io"

	"github.com/threadstat/threadstat/internal/thread"
)

const (
	colorAuthor   = "\033[1;32m" // bold green
	colorMedia    = "\033[35m"   // magenta
	colorReaction = "\033[33m"   // yellow
)

// Messages writes one line per content item plus reaction lines, for
// piped output. Contentless messages still get a header line so nothing
// silently disappears.
func Messages(w io.Writer, t *thread.Thread) {
	for i := range t.Messages {
		m := &t.Messages[i]
		sent := m.Sent.Time().Format("2006-01-02 15:04")

		if len(m.Items) == 0 {
			fmt.Fprintf(w, "%s%s%s  %s%s%s  %s(no content)%s\n",
				colorDim, sent, colorReset, colorAuthor, m.Author, colorReset, colorDim, colorReset)
		}

		for _, item := range m.Items {
			switch it := item.(type) {
			case thread.Text:
				fmt.Fprintf(w, "%s%s%s  %s%s%s  %s\n",
					colorDim, sent, colorReset, colorAuthor, m.Author, colorReset, it.Content)
			case thread.Media:
				fmt.Fprintf(w, "%s%s%s  %s%s%s  %s[media] %s%s\n",
					colorDim, sent, colorReset, colorAuthor, m.Author, colorReset, colorMedia, it.URL, colorReset)
			}
		}

		for _, r := range m.Reactions {
			fmt.Fprintf(w, "%s%s%s  %s%s reacted %s%s\n",
				colorDim, sent, colorReset, colorReaction, r.Author, r.Content, colorReset)
		}
	}
}
