package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"atrium/internal/site"
)

// searchState is the search overlay: a text input filtering the item
// registry, with its own result cursor. While open it takes every key
// before anything else on the page, back intent included.
type searchState struct {
	open    bool
	input   textinput.Model
	results []site.Item
	cursor  int
}

func newSearchState() searchState {
	ti := textinput.New()
	ti.Placeholder = "search"
	ti.Prompt = "/ "
	ti.CharLimit = 64
	return searchState{input: ti}
}

// openOverlay resets and opens the overlay with every item listed.
func (s *searchState) openOverlay(registry *site.Registry) tea.Cmd {
	s.open = true
	s.input.SetValue("")
	s.results = registry.Search("")
	s.cursor = 0
	return s.input.Focus()
}

// closeOverlay closes the overlay, dropping its state.
func (s *searchState) closeOverlay() {
	s.open = false
	s.input.Blur()
	s.results = nil
	s.cursor = 0
}

// handleKey routes one key while the overlay is open. It returns the id
// to navigate to when a result is chosen, and whether the overlay
// consumed the key.
func (s *searchState) handleKey(msg tea.KeyMsg, registry *site.Registry) (openID string, cmd tea.Cmd) {
	switch msg.String() {
	case "esc":
		s.closeOverlay()
		return "", nil
	case "enter":
		if len(s.results) > 0 {
			id := s.results[s.cursor].ID
			s.closeOverlay()
			return id, nil
		}
		return "", nil
	case "up":
		if s.cursor > 0 {
			s.cursor--
		}
		return "", nil
	case "down":
		if s.cursor < len(s.results)-1 {
			s.cursor++
		}
		return "", nil
	}

	var c tea.Cmd
	s.input, c = s.input.Update(msg)
	s.results = registry.Search(s.input.Value())
	if s.cursor >= len(s.results) {
		s.cursor = 0
	}
	return "", c
}

// view renders the overlay box.
func (s *searchState) view(width int) string {
	var b strings.Builder
	b.WriteString(s.input.View())
	b.WriteString("\n\n")
	if len(s.results) == 0 {
		b.WriteString(searchResultKind.Render("no matches"))
	}
	for i, it := range s.results {
		line := it.Title + " " + searchResultKind.Render("("+string(it.Kind)+")")
		if i == s.cursor {
			line = searchResultSelected.Render("▸ ") + line
		} else {
			line = "  " + line
		}
		b.WriteString(searchResult.Render(line))
		if i < len(s.results)-1 {
			b.WriteString("\n")
		}
	}

	box := searchBox.Render(b.String())
	if width > lipgloss.Width(box) {
		return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(box)
	}
	return box
}
