// Package ui is the page shell: the root Bubble Tea model that renders
// the header, the active container, and the help bar, and routes input
// between the search overlay, the gallery controller, the home grid
// navigator, and the top-level view machine.
package ui

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"atrium/internal/gallery"
	"atrium/internal/homegrid"
	"atrium/internal/localstore"
	"atrium/internal/markdown"
	"atrium/internal/nav"
	"atrium/internal/router"
	"atrium/internal/site"
	"atrium/internal/worldmap"
)

// themeKey is the key-value store key holding the persisted theme.
const themeKey = "theme"

// maxContentWidth caps how wide post and map content renders.
const maxContentWidth = 96

// contentRenderer produces detail content by item kind. The machine
// calls it during the loading phase; for gallery items it hands the
// container to the controller and the controller renders live from
// then on.
type contentRenderer struct {
	registry *site.Registry
	gallery  *gallery.Controller
	md       *markdown.Renderer
	places   []worldmap.Place
}

func (r *contentRenderer) Render(loc nav.Location, width int) (router.Content, error) {
	it, ok := r.registry.Get(loc.ID)
	if !ok {
		return router.Content{}, fmt.Errorf("ui: rendering %q: %w", loc.ID, site.ErrNotFound)
	}
	switch it.Kind {
	case site.KindPost:
		src, err := r.registry.PostSource(loc.ID)
		if err != nil {
			return router.Content{}, err
		}
		body, err := r.md.Render(src, width)
		if err != nil {
			return router.Content{}, err
		}
		return router.Content{Kind: site.KindPost, Body: body}, nil
	case site.KindGallery:
		r.gallery.Enter(loc.Collection)
		return router.Content{Kind: site.KindGallery}, nil
	case site.KindMap:
		return router.Content{Kind: site.KindMap, Body: worldmap.Render(r.places, width)}, nil
	}
	return router.Content{}, fmt.Errorf("ui: item %q has unrenderable kind %q", loc.ID, it.Kind)
}

// Model is the root Bubble Tea model for the page.
type Model struct {
	registry *site.Registry
	machine  *router.Machine
	resolver *router.BackResolver
	gallery  *gallery.Controller
	grid     *homegrid.Navigator
	renderer *contentRenderer
	store    *localstore.FileStore

	homeKeys homeKeys
	postKeys postKeys
	galKeys  galleryKeys
	srchKeys searchKeys
	help     help.Model
	spinner  spinner.Model
	viewport viewport.Model
	search   searchState

	theme     string
	width     int
	height    int
	vpContent string
}

// NewModel wires the page together for one session. The store may be
// nil, disabling theme persistence.
func NewModel(registry *site.Registry, collections []gallery.Collection, places []worldmap.Place, store *localstore.FileStore, initial nav.Location, theme string, fade time.Duration) Model {
	ctrl := gallery.NewController(collections)
	renderer := &contentRenderer{
		registry: registry,
		gallery:  ctrl,
		md:       markdown.New(theme),
		places:   places,
	}
	history := nav.NewHistory(initial)
	machine := router.NewMachine(history, renderer, registry, ctrl, fade)

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Model{
		registry: registry,
		machine:  machine,
		resolver: router.NewBackResolver(machine, registry, ctrl),
		gallery:  ctrl,
		grid:     homegrid.NewNavigator(len(registry.Items())),
		renderer: renderer,
		store:    store,
		homeKeys: HomeKeyMap(),
		postKeys: PostKeyMap(),
		galKeys:  GalleryKeyMap(),
		srchKeys: SearchKeyMap(),
		help:     help.New(),
		spinner:  sp,
		viewport: viewport.New(0, 0),
		search:   newSearchState(),
		theme:    theme,
	}
}

// Machine exposes the view machine for program-level assertions.
func (m Model) Machine() *router.Machine {
	return m.machine
}

// Init starts the spinner and the deep-link transition, if any.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.machine.Start())
}

// Update routes messages: window geometry, pointer, keys through the
// overlay/gallery/grid/global order, and everything else to the machine.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.machine.SetWidth(m.contentWidth())
		m.viewport.Width = msg.Width
		m.viewport.Height = m.containerHeight()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}

	cmd := m.machine.Update(msg)
	m.syncViewport()
	return m, cmd
}

// handleKey processes one key press with the page's routing order:
// search overlay first, then global chrome, then whichever controller
// owns the visible container.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.search.open {
		openID, cmd := m.search.handleKey(msg, m.registry)
		if openID != "" {
			return m, m.machine.NavigateTo(openID, "")
		}
		return m, cmd
	}

	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "/":
		return m, m.search.openOverlay(m.registry)
	case "t":
		return m.toggleTheme()
	case "[":
		if loc, ok := m.machine.History().Back(); ok {
			return m, m.machine.HandleHistoryMove(loc)
		}
		return m, nil
	case "]":
		if loc, ok := m.machine.History().Forward(); ok {
			return m, m.machine.HandleHistoryMove(loc)
		}
		return m, nil
	}

	if m.machine.Showing().IsHome() {
		return m.handleHomeKey(msg)
	}
	return m.handleDetailKey(msg)
}

// handleHomeKey drives the grid navigator.
func (m Model) handleHomeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "up":
		m.grid.Step(homegrid.Up)
	case "down":
		m.grid.Step(homegrid.Down)
	case "left":
		m.grid.Step(homegrid.Left)
	case "right":
		m.grid.Step(homegrid.Right)
	case "esc":
		m.grid.Clear()
	case "enter":
		if pos, ok := m.grid.Activate(); ok {
			items := m.registry.Items()
			if pos < len(items) {
				return m, m.machine.NavigateTo(items[pos].ID, "")
			}
		}
	}
	return m, nil
}

// handleDetailKey routes keys while a detail container is visible: back
// intent goes to the resolver, gallery keys to the controller, and
// scrolling to the post viewport.
func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "backspace":
		return m, m.resolver.Resolve()
	}

	if k, ok := m.registry.Kind(m.machine.Showing().ID); ok && k == site.KindGallery {
		m.handleGalleryKey(msg)
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// handleGalleryKey drives the gallery controller while it owns the
// container. The page never reaches into its state; it only forwards
// movement intents appropriate to the controller's mode.
func (m Model) handleGalleryKey(msg tea.KeyMsg) {
	switch m.gallery.Mode() {
	case gallery.ModeCollections:
		switch msg.String() {
		case "up":
			m.gallery.MoveListCursor(-1)
		case "down":
			m.gallery.MoveListCursor(1)
		case "enter":
			m.gallery.OpenAtCursor()
		}
	case gallery.ModeViewer:
		switch msg.String() {
		case "left":
			m.gallery.Prev()
		case "right":
			m.gallery.Next()
		case "g", "enter":
			m.gallery.ToggleGrid()
		}
	case gallery.ModeGrid:
		switch msg.String() {
		case "left":
			m.gallery.MoveGridCursor(-1)
		case "right":
			m.gallery.MoveGridCursor(1)
		case "up":
			m.gallery.MoveGridCursor(-gallery.GridColumns)
		case "down":
			m.gallery.MoveGridCursor(gallery.GridColumns)
		case "g":
			m.gallery.ToggleGrid()
		case "enter":
			m.gallery.SelectAtCursor()
		}
	}
}

// handleMouse clears the keyboard cursor on genuine pointer motion and
// hit-tests clicks against the home tiles.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if !m.machine.Showing().IsHome() || m.search.open {
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionMotion:
		m.grid.PointerMoved()
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if pos, ok := tileAt(msg.X, msg.Y, m.width); ok {
			items := m.registry.Items()
			if pos < len(items) {
				return m, m.machine.NavigateTo(items[pos].ID, "")
			}
		}
	}
	return m, nil
}

// toggleTheme flips dark/light, rebuilds the markdown renderer, and
// persists the choice when a store is wired.
func (m Model) toggleTheme() (tea.Model, tea.Cmd) {
	if m.theme == "dark" {
		m.theme = "light"
	} else {
		m.theme = "dark"
	}
	m.renderer.md = markdown.New(m.theme)
	if m.store != nil {
		// A failed write loses only the preference; not worth surfacing.
		_ = m.store.Set(themeKey, m.theme)
	}
	return m, nil
}

// syncViewport keeps the post viewport fed with the machine's loaded
// content, rewinding to the top on a fresh body.
func (m *Model) syncViewport() {
	c := m.machine.Content()
	if c.Kind != site.KindPost || c.Err != nil || c.Body == m.vpContent {
		return
	}
	m.vpContent = c.Body
	m.viewport.SetContent(c.Body)
	m.viewport.GotoTop()
}

// contentWidth is the width handed to content renderers.
func (m Model) contentWidth() int {
	w := m.width - 4
	if w > maxContentWidth {
		w = maxContentWidth
	}
	if w < 1 {
		w = maxContentWidth
	}
	return w
}

// containerHeight is the usable height between header and help bar.
func (m Model) containerHeight() int {
	h := m.height - headerHeight - helpBarHeight - 1
	if h < 1 {
		return 1
	}
	return h
}

// View renders header, container (faded per the machine), and help bar.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var container string
	switch {
	case m.search.open:
		container = m.search.view(m.width)
	case m.machine.Phase() == router.PhaseLoading:
		container = loadingText.Render(m.spinner.View() + " loading")
	default:
		container = applyFade(m.renderContainer(), m.machine.FadeLevel(), m.theme == "dark")
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		container,
		"",
		m.help.View(m.currentKeys()),
	)
}

// renderHeader draws the site title, the current location query, and
// the history back/forward indicators.
func (m Model) renderHeader() string {
	back, fwd := headerArrowOff.Render("‹"), headerArrowOff.Render("›")
	if m.machine.History().CanBack() {
		back = headerArrowOn.Render("‹")
	}
	if m.machine.History().CanForward() {
		fwd = headerArrowOn.Render("›")
	}

	left := headerTitle.Render(m.registry.SiteTitle()) + "  " +
		headerLocation.Render(m.machine.History().Current().String())
	right := back + " " + fwd

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	line := left + lipgloss.NewStyle().Width(gap).Render("") + right
	rule := headerRule.Render(repeat("─", m.width))
	return line + "\n" + rule
}

// renderContainer draws whichever container is visible right now.
func (m Model) renderContainer() string {
	showing := m.machine.Showing()
	if showing.IsHome() {
		selected := -1
		if pos, ok := m.grid.Selected(); ok {
			selected = pos
		}
		return renderHome(m.registry.Items(), monogramFor(m.registry.SiteTitle()), selected, m.width)
	}

	c := m.machine.Content()
	if c.Err != nil {
		return m.renderErrorPanel(showing, c.Err)
	}
	switch c.Kind {
	case site.KindGallery:
		return m.gallery.View(m.contentWidth())
	case site.KindPost:
		return m.viewport.View()
	default:
		return c.Body
	}
}

// renderErrorPanel draws the terminal error view for a failed detail
// load: not-found and load-failure get distinguishable messages, both
// with the way home.
func (m Model) renderErrorPanel(loc nav.Location, err error) string {
	var title, body string
	if errors.Is(err, site.ErrNotFound) {
		title = "Nothing here"
		body = fmt.Sprintf("No page answers to ?%s.", loc.Query())
	} else {
		title = "Couldn't load this page"
		body = err.Error()
	}
	panel := errorPanel.Render(
		errorTitle.Render(title) + "\n\n" +
			errorBody.Render(body) + "\n\n" +
			errorBody.Render("Press esc to go home."),
	)
	return panel
}

// currentKeys picks the help bindings for whichever surface owns input.
func (m Model) currentKeys() help.KeyMap {
	switch {
	case m.search.open:
		return m.srchKeys
	case m.machine.Showing().IsHome():
		return m.homeKeys
	default:
		if k, ok := m.registry.Kind(m.machine.Showing().ID); ok && k == site.KindGallery {
			return m.galKeys
		}
		return m.postKeys
	}
}

// repeat is strings.Repeat guarded against negative widths.
func repeat(s string, n int) string {
	if n <= 0 {
		return ""
	}
	out := make([]byte, 0, n*len(s))
	for i := 0; i < n; i++ {
		out = append(out, s...)
	}
	return string(out)
}
