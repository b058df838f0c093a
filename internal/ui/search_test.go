package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"atrium/internal/nav"
)

func TestSearch_OpenFilterAndNavigate(t *testing.T) {
	// Given: the overlay opened from home
	m := newTestModel(t, nav.Home())
	m = press(t, m, keyRune('/'))
	if !m.search.open {
		t.Fatal("/ should open the search overlay")
	}
	containsAll(t, stripANSI(m.View()), "Hello", "Photos", "Places")

	// When: a query narrows the results
	m = press(t, m, keyRune('p'))
	m = press(t, m, keyRune('h'))
	plain := stripANSI(m.View())
	if !strings.Contains(plain, "Photos") {
		t.Errorf("filtered results missing Photos:\n%s", plain)
	}
	if strings.Contains(plain, "Places") {
		t.Errorf("filter should have dropped Places:\n%s", plain)
	}

	// Then: enter opens the selected result and closes the overlay
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.search.open {
		t.Error("enter should close the overlay")
	}
	if m.Machine().ActiveItem() != "gallery" {
		t.Errorf("ActiveItem() = %q, want gallery", m.Machine().ActiveItem())
	}
}

func TestSearch_EscClosesWithoutNavigating(t *testing.T) {
	m := newTestModel(t, nav.Home())
	m = press(t, m, keyRune('/'))

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	if m.search.open {
		t.Error("esc should close the overlay")
	}
	if m.Machine().InFlight() || m.Machine().ActiveItem() != "" {
		t.Error("closing the overlay must not navigate")
	}
}

func TestSearch_TakesPriorityOverBackIntent(t *testing.T) {
	// Esc with the overlay open must close it, not unwind the gallery.
	m := newTestModel(t, nav.Home())
	m = navigateTo(t, m, "gallery", "a")
	m = press(t, m, keyRune('/'))

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	if m.search.open {
		t.Error("esc should close the overlay")
	}
	if m.Machine().ActiveItem() != "gallery" {
		t.Errorf("ActiveItem() = %q, overlay esc must not navigate", m.Machine().ActiveItem())
	}
}

func TestSearch_CursorMovesWithinResults(t *testing.T) {
	m := newTestModel(t, nav.Home())
	m = press(t, m, keyRune('/'))

	m = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if m.search.cursor != 1 {
		t.Errorf("cursor = %d, want 1", m.search.cursor)
	}
	m = press(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m = press(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if m.search.cursor != 0 {
		t.Errorf("cursor = %d, want 0 (clamped)", m.search.cursor)
	}
}

func TestSearch_NoMatches(t *testing.T) {
	m := newTestModel(t, nav.Home())
	m = press(t, m, keyRune('/'))
	for _, r := range "zzz" {
		m = press(t, m, keyRune(r))
	}

	containsAll(t, stripANSI(m.View()), "no matches")

	// Enter with no results does nothing.
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Machine().InFlight() {
		t.Error("enter with no results must not navigate")
	}
}
