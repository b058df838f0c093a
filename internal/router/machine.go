// Package router implements the page's top-level view state machine: it
// owns which view is visible, keeps the location query and history stack
// in lockstep with it, sequences the timed fade transitions between
// views, and resolves generic back intent against the gallery's nested
// state machine.
package router

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"atrium/internal/nav"
	"atrium/internal/site"
)

// View is the machine's top-level state.
type View int

const (
	ViewHome   View = iota // the tile grid
	ViewDetail             // a post, the gallery, or the map
)

// Phase is the machine's position inside a transition.
type Phase int

const (
	PhaseIdle    Phase = iota
	PhaseFadeOut       // old container dimming
	PhaseLoading       // container blank, content fetch in flight
	PhaseFadeIn        // new container brightening
)

// fadeFrames is the number of tick frames per fade half.
const fadeFrames = 6

// Content is the loaded result of a detail render, produced by the
// Renderer collaborator. A non-nil Err means the container shows an
// error panel instead; the error's identity distinguishes a missing
// item from a failed load.
type Content struct {
	Kind site.Kind
	Body string
	Err  error
}

// Renderer produces the content for a detail location. For gallery-typed
// ids the implementation hands the container to the gallery controller
// (honoring the deep-link collection) and returns an empty body; the
// controller renders live from then on.
type Renderer interface {
	Render(loc nav.Location, width int) (Content, error)
}

// Catalog answers what kind of item an id names, letting the machine
// treat gallery items specially without seeing gallery internals.
type Catalog interface {
	Kind(id string) (site.Kind, bool)
}

// NestedNavigator is the gallery controller as the machine sees it:
// three methods, nothing else.
type NestedNavigator interface {
	HandleBack() bool
	IsNested() bool
	Reset()
}

// request is one pending navigation: a target location and whether the
// transition should push a history entry (in-app origin) or not (the
// history has already moved).
type request struct {
	target nav.Location
	push   bool
}

// Machine is the top-level view state machine. One instance per page
// session; all mutation happens through its methods on the event loop.
type Machine struct {
	history  *nav.History
	renderer Renderer
	catalog  Catalog
	nested   NestedNavigator
	fade     time.Duration
	width    int

	current nav.Location // committed state; lags the history mid-transition
	showing nav.Location // which container View() renders right now
	content Content

	phase  Phase
	frame  int
	seq    int // transition sequence number; stale phase messages are dropped
	target nav.Location
	queue  []request
}

// NewMachine creates a machine over an existing history stack. The
// committed and visible state both start at Home; Start issues the deep
// link transition when the history opens elsewhere.
func NewMachine(history *nav.History, renderer Renderer, catalog Catalog, nested NestedNavigator, fade time.Duration) *Machine {
	return &Machine{
		history:  history,
		renderer: renderer,
		catalog:  catalog,
		nested:   nested,
		fade:     fade,
		width:    80,
	}
}

// Start issues the session's first transition when the history was
// opened on a deep link. Opening on Home needs no transition.
func (m *Machine) Start() tea.Cmd {
	if m.history.Current().IsHome() {
		return nil
	}
	return m.submit(request{target: m.history.Current()})
}

// NavigateTo requests a transition to the detail view for (id, sub),
// pushing a history entry. Self-navigation to the current target is a
// no-op.
func (m *Machine) NavigateTo(id, sub string) tea.Cmd {
	return m.submit(request{target: nav.Location{ID: id, Collection: sub}, push: true})
}

// NavigateHome requests a transition back to the home view, pushing a
// history entry.
func (m *Machine) NavigateHome() tea.Cmd {
	return m.submit(request{target: nav.Home(), push: true})
}

// HandleHistoryMove runs a transition to a location the history cursor
// has already moved to, so no entry is pushed. Everything else follows
// the same ordered sequence as an in-app navigation.
func (m *Machine) HandleHistoryMove(loc nav.Location) tea.Cmd {
	return m.submit(request{target: loc})
}

// submit applies the idempotence and queuing rules before a transition
// may begin. Mid-flight requests are queued in order, never interleaved
// and never dropped, except that a duplicate of the effective tail
// target is discarded.
func (m *Machine) submit(req request) tea.Cmd {
	if m.InFlight() {
		if req.target == m.tailTarget() {
			return nil
		}
		m.queue = append(m.queue, req)
		return nil
	}
	if req.target == m.current {
		return nil
	}
	return m.begin(req)
}

// tailTarget is where the machine will end up once everything pending
// has run: the last queued target, or the in-flight one.
func (m *Machine) tailTarget() nav.Location {
	if n := len(m.queue); n > 0 {
		return m.queue[n-1].target
	}
	return m.target
}

// begin starts the ordered transition sequence. The history entry is
// written eagerly here; the committed state changes only at commit.
func (m *Machine) begin(req request) tea.Cmd {
	if req.push {
		m.history.Push(req.target)
	}
	m.target = req.target
	m.seq++
	m.frame = 0
	m.phase = PhaseFadeOut
	return m.tick()
}

// Update consumes the machine's own phase messages and drives the
// transition forward. Messages from a superseded sequence are ignored.
func (m *Machine) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case frameMsg:
		if msg.seq != m.seq {
			return nil
		}
		switch m.phase {
		case PhaseFadeOut:
			m.frame++
			if m.frame < fadeFrames {
				return m.tick()
			}
			// Fade-out complete: swap containers, then load.
			m.showing = m.target
			m.phase = PhaseLoading
			return m.load()
		case PhaseFadeIn:
			m.frame++
			if m.frame < fadeFrames {
				return m.tick()
			}
			return m.commit()
		}

	case loadedMsg:
		if msg.seq != m.seq || m.phase != PhaseLoading {
			return nil
		}
		m.content = msg.content
		m.phase = PhaseFadeIn
		m.frame = 0
		return m.tick()
	}
	return nil
}

// load produces the asynchronous content fetch for the target. Home has
// no content to fetch; the loaded message still flows through so the
// phase ordering is identical for every transition.
func (m *Machine) load() tea.Cmd {
	seq, target, width := m.seq, m.target, m.width
	if target.IsHome() {
		return func() tea.Msg {
			return loadedMsg{seq: seq}
		}
	}
	renderer := m.renderer
	return func() tea.Msg {
		c, err := renderer.Render(target, width)
		if err != nil {
			c = Content{Err: err}
		}
		return loadedMsg{seq: seq, content: c}
	}
}

// commit finalizes the transition: the committed state takes the target
// values, gallery reset hygiene runs, and the next queued request, if
// any, begins.
func (m *Machine) commit() tea.Cmd {
	prev := m.current
	m.current = m.target
	m.phase = PhaseIdle
	m.frame = 0

	// Leaving a gallery item entirely resets the nested machine, so no
	// stale collection or index leaks into a future re-entry.
	if prev.ID != m.current.ID && prev.ID != "" {
		if k, ok := m.catalog.Kind(prev.ID); ok && k == site.KindGallery {
			m.nested.Reset()
		}
	}

	for len(m.queue) > 0 {
		next := m.queue[0]
		m.queue = m.queue[1:]
		if next.target == m.current {
			continue
		}
		return m.begin(next)
	}
	return nil
}

// tick schedules the next fade frame for the current sequence.
func (m *Machine) tick() tea.Cmd {
	seq := m.seq
	return tea.Tick(m.frameInterval(), func(time.Time) tea.Msg {
		return frameMsg{seq: seq}
	})
}

// frameInterval is the wall time between fade frames. A zero fade
// duration still ticks, immediately, so the phase ordering never
// changes shape.
func (m *Machine) frameInterval() time.Duration {
	return m.fade / fadeFrames
}

// SetWidth records the container width passed to the renderer.
func (m *Machine) SetWidth(w int) {
	if w > 0 {
		m.width = w
	}
}

// View returns the committed top-level state.
func (m *Machine) View() View {
	if m.current.IsHome() {
		return ViewHome
	}
	return ViewDetail
}

// ActiveItem returns the committed detail item id, empty on Home.
func (m *Machine) ActiveItem() string {
	return m.current.ID
}

// ActiveSub returns the committed sub-parameter.
func (m *Machine) ActiveSub() string {
	return m.current.Collection
}

// Current returns the committed location.
func (m *Machine) Current() nav.Location {
	return m.current
}

// Showing returns the location whose container is visible right now.
// During fade-out this is still the old view; it flips at the swap.
func (m *Machine) Showing() nav.Location {
	return m.showing
}

// Content returns the loaded detail content for the showing container.
func (m *Machine) Content() Content {
	return m.content
}

// Phase returns the machine's position inside a transition.
func (m *Machine) Phase() Phase {
	return m.phase
}

// InFlight reports whether a transition is running or queued.
func (m *Machine) InFlight() bool {
	return m.phase != PhaseIdle || len(m.queue) > 0
}

// FadeLevel is the showing container's brightness in [0, 1]: 1 when
// idle, descending through fade-out, 0 while loading, ascending through
// fade-in.
func (m *Machine) FadeLevel() float64 {
	switch m.phase {
	case PhaseFadeOut:
		return 1 - float64(m.frame)/fadeFrames
	case PhaseLoading:
		return 0
	case PhaseFadeIn:
		return float64(m.frame) / fadeFrames
	default:
		return 1
	}
}

// History returns the session's navigation stack.
func (m *Machine) History() *nav.History {
	return m.history
}
