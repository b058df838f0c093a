package ui

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"atrium/internal/gallery"
	"atrium/internal/localstore"
	"atrium/internal/nav"
	"atrium/internal/site"
	"atrium/internal/worldmap"
)

// testContent is a minimal site: two posts, a gallery, a map.
var testContent = fstest.MapFS{
	"site.yaml": &fstest.MapFile{Data: []byte(`
title: testsite
items:
  - id: hello
    title: Hello
    kind: post
    blurb: first post
    source: posts/hello.md
  - id: gallery
    title: Photos
    kind: gallery
    blurb: pictures
  - id: map
    title: Places
    kind: map
    blurb: pins
  - id: broken
    title: Broken
    kind: post
    blurb: bad source
    source: posts/missing.md
`)},
	"posts/hello.md": &fstest.MapFile{Data: []byte("# Hello\n\nbody text\n")},
	"gallery.yaml": &fstest.MapFile{Data: []byte(`
collections:
  - id: a
    title: First
    cover: "*"
    photos:
      - caption: one
        art: "~"
      - caption: two
        art: "~"
      - caption: three
        art: "~"
`)},
	"places.yaml": &fstest.MapFile{Data: []byte(`
places:
  - name: Somewhere
    lat: 10
    lon: 20
`)},
}

// newTestModel builds a sized model over the test content with a zero
// fade, so transitions complete as fast as the pump can run them.
func newTestModel(t *testing.T, initial nav.Location) Model {
	t.Helper()

	registry, err := site.Load(testContent)
	if err != nil {
		t.Fatalf("site.Load() error = %v", err)
	}
	collections, err := gallery.LoadCollections(testContent)
	if err != nil {
		t.Fatalf("gallery.LoadCollections() error = %v", err)
	}
	places, err := worldmap.LoadPlaces(testContent)
	if err != nil {
		t.Fatalf("worldmap.LoadPlaces() error = %v", err)
	}
	store := localstore.NewFileStore(t.TempDir())

	m := NewModel(registry, collections, places, store, initial, "dark", 0)
	sized, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return sized.(Model)
}

// pump runs a command chain to completion through the model, expanding
// batches and ignoring spinner ticks, the way the program loop would.
func pump(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()

	queue := []tea.Cmd{cmd}
	for steps := 0; len(queue) > 0; steps++ {
		if steps > 1000 {
			t.Fatal("pump did not settle after 1000 steps")
		}
		next := queue[0]
		queue = queue[1:]
		if next == nil {
			continue
		}
		msg := next()
		if msg == nil {
			continue
		}
		if batch, ok := msg.(tea.BatchMsg); ok {
			queue = append(queue, batch...)
			continue
		}
		if _, ok := msg.(spinner.TickMsg); ok {
			// Following the spinner's tick chain would never settle.
			continue
		}
		updated, out := m.Update(msg)
		m = updated.(Model)
		queue = append(queue, out)
	}
	return m
}

// press feeds one key and pumps any resulting commands to completion.
func press(t *testing.T, m Model, msg tea.KeyMsg) Model {
	t.Helper()
	updated, cmd := m.Update(msg)
	return pump(t, updated.(Model), cmd)
}

// keyRune builds a plain character key message.
func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// navigateTo drives a full committed navigation from test setup.
func navigateTo(t *testing.T, m Model, id, sub string) Model {
	t.Helper()
	cmd := m.Machine().NavigateTo(id, sub)
	m = pump(t, m, cmd)
	if m.Machine().InFlight() {
		t.Fatalf("navigation to %q did not settle", id)
	}
	return m
}

// stripANSI removes ANSI escape sequences from a string.
func stripANSI(s string) string {
	var out []byte
	i := 0
	for i < len(s) {
		if s[i] == '\x1b' && i+1 < len(s) && s[i+1] == '[' {
			j := i + 2
			for j < len(s) && (s[j] < 'A' || s[j] > 'Z') && (s[j] < 'a' || s[j] > 'z') {
				j++
			}
			if j < len(s) {
				j++
			}
			i = j
		} else {
			out = append(out, s[i])
			i++
		}
	}
	return string(out)
}

// containsAll fails the test unless every needle appears in haystack.
func containsAll(t *testing.T, haystack string, needles ...string) {
	t.Helper()
	for _, n := range needles {
		if !strings.Contains(haystack, n) {
			t.Errorf("output missing %q in:\n%s", n, haystack)
		}
	}
}
