// Package tui is an interactive browser over a parsed thread: a
// filterable message list on the left, the selected message's full
// content on the right.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/threadstat/threadstat/internal/thread"
)

// entry is one message prepared for listing: a short label, a lowercase
// haystack for filtering, and the rendered preview.
type entry struct {
	label    string
	haystack string
	preview  string
}

type model struct {
	entries     []entry
	filtered    []int // indices into entries
	cursor      int
	listOffset  int
	filterInput textinput.Model
	preview     viewport.Model
	previewIdx  int // entry index currently rendered, -1 = none
	width       int
	height      int
	ready       bool
}

func newEntries(t *thread.Thread) []entry {
	entries := make([]entry, 0, len(t.Messages))
	for i := range t.Messages {
		m := &t.Messages[i]
		sent := m.Sent.Time().Format("2006-01-02 15:04")

		summary := "(no content)"
		for _, item := range m.Items {
			if txt, ok := item.(thread.Text); ok {
				summary = strings.ReplaceAll(txt.Content, "\n", " ")
				break
			}
			summary = "[media]"
		}

		var b strings.Builder
		fmt.Fprintf(&b, "%s\n%s\n\n", m.Author, sent)
		for _, item := range m.Items {
			switch it := item.(type) {
			case thread.Text:
				b.WriteString(it.Content)
				b.WriteString("\n")
			case thread.Media:
				fmt.Fprintf(&b, "[media] %s\n", it.URL)
			}
		}
		if len(m.Items) == 0 {
			b.WriteString("(no content)\n")
		}
		if len(m.Reactions) > 0 {
			b.WriteString("\nReactions:\n")
			for _, r := range m.Reactions {
				fmt.Fprintf(&b, "  %s %s\n", r.Content, r.Author)
			}
		}

		entries = append(entries, entry{
			label:    fmt.Sprintf("%s %s %s", sent, styleAuthor.Render(m.Author), summary),
			haystack: strings.ToLower(m.Author + " " + summary + " " + b.String()),
			preview:  b.String(),
		})
	}
	return entries
}

// Run starts the browser and blocks until the user quits.
func Run(t *thread.Thread) error {
	ti := textinput.New()
	ti.Placeholder = "Filter..."
	ti.Focus()
	ti.Prompt = "> "
	ti.PromptStyle = styleInputPrompt
	ti.TextStyle = styleInput
	ti.CharLimit = 256

	m := model{
		entries:     newEntries(t),
		filterInput: ti,
		preview:     viewport.New(0, 0),
		previewIdx:  -1,
	}
	m.applyFilter("")

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *model) applyFilter(query string) {
	query = strings.ToLower(strings.TrimSpace(query))
	m.filtered = m.filtered[:0]
	for i := range m.entries {
		if query == "" || strings.Contains(m.entries[i].haystack, query) {
			m.filtered = append(m.filtered, i)
		}
	}
	if m.cursor >= len(m.filtered) {
		m.cursor = len(m.filtered) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.listOffset = 0
}

func (m *model) refreshPreview() {
	if len(m.filtered) == 0 {
		m.previewIdx = -1
		m.preview.SetContent("")
		return
	}
	idx := m.filtered[m.cursor]
	if idx == m.previewIdx {
		return
	}
	m.previewIdx = idx
	m.preview.SetContent(m.entries[idx].preview)
	m.preview.GotoTop()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.preview.Width = m.previewWidth() - 2
		m.preview.Height = m.panelHeight() - 2

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, keys.Down):
			if m.cursor < len(m.filtered)-1 {
				m.cursor++
			}
		case key.Matches(msg, keys.PreviewUp):
			m.preview.HalfViewUp()
		case key.Matches(msg, keys.PreviewDn):
			m.preview.HalfViewDown()
		default:
			var cmd tea.Cmd
			before := m.filterInput.Value()
			m.filterInput, cmd = m.filterInput.Update(msg)
			if m.filterInput.Value() != before {
				m.applyFilter(m.filterInput.Value())
			}
			m.refreshPreview()
			return m, cmd
		}

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.preview, cmd = m.preview.Update(msg)
		return m, cmd
	}

	m.refreshPreview()
	return m, nil
}

func (m model) listWidth() int {
	return m.width / 2
}

func (m model) previewWidth() int {
	return m.width - m.listWidth()
}

func (m model) panelHeight() int {
	// input row + status row
	return m.height - 2
}

func (m model) View() string {
	if !m.ready {
		return "loading..."
	}

	listH := m.panelHeight() - 2
	if listH < 1 {
		listH = 1
	}

	// keep cursor visible
	offset := m.listOffset
	if m.cursor < offset {
		offset = m.cursor
	}
	if m.cursor >= offset+listH {
		offset = m.cursor - listH + 1
	}

	var list strings.Builder
	for i := offset; i < len(m.filtered) && i < offset+listH; i++ {
		label := m.entries[m.filtered[i]].label
		if i == m.cursor {
			list.WriteString(styleListSelected.Render("> " + label))
		} else {
			list.WriteString(styleListNormal.Render("  " + label))
		}
		list.WriteString("\n")
	}

	listPanel := stylePanelBorder.
		Width(m.listWidth() - 2).
		Height(listH).
		Render(list.String())

	previewPanel := stylePanelBorder.
		Width(m.previewWidth() - 2).
		Height(listH).
		Render(m.preview.View())

	panels := lipgloss.JoinHorizontal(lipgloss.Top, listPanel, previewPanel)

	status := styleStatusBar.Render(fmt.Sprintf(
		"%d/%d messages  %s",
		len(m.filtered), len(m.entries),
		styleTitle.Render("up/dn move  C-u/C-d scroll  esc quit"),
	))

	return m.filterInput.View() + "\n" + panels + "\n" + status
}
