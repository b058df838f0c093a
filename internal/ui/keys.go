package ui

import "github.com/charmbracelet/bubbles/key"

// homeKeys holds key bindings for the home grid.
type homeKeys struct {
	Move    key.Binding
	Open    key.Binding
	Search  key.Binding
	Theme   key.Binding
	HistBack    key.Binding
	HistForward key.Binding
	Quit    key.Binding
}

// ShortHelp returns the home bindings for the help bar.
func (k homeKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Move, k.Open, k.Search, k.Theme, k.Quit}
}

// FullHelp returns the home bindings grouped for expanded help.
func (k homeKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Move, k.Open, k.Search},
		{k.HistBack, k.HistForward, k.Theme, k.Quit},
	}
}

// postKeys holds key bindings while a post or the map is showing.
type postKeys struct {
	Scroll key.Binding
	Back   key.Binding
	HistBack    key.Binding
	HistForward key.Binding
	Quit   key.Binding
}

// ShortHelp returns the detail bindings for the help bar.
func (k postKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Scroll, k.Back, k.HistBack, k.HistForward, k.Quit}
}

// FullHelp returns the detail bindings grouped for expanded help.
func (k postKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Scroll, k.Back},
		{k.HistBack, k.HistForward, k.Quit},
	}
}

// galleryKeys holds key bindings while the gallery owns the container.
type galleryKeys struct {
	Move   key.Binding
	Open   key.Binding
	Grid   key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns the gallery bindings for the help bar.
func (k galleryKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Move, k.Open, k.Grid, k.Back, k.Quit}
}

// FullHelp returns the gallery bindings grouped for expanded help.
func (k galleryKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Move, k.Open, k.Grid},
		{k.Back, k.Quit},
	}
}

// searchKeys holds key bindings while the search overlay is open.
type searchKeys struct {
	Move   key.Binding
	Open   key.Binding
	Close  key.Binding
}

// ShortHelp returns the search bindings for the help bar.
func (k searchKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Move, k.Open, k.Close}
}

// FullHelp returns the search bindings grouped for expanded help.
func (k searchKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Move, k.Open, k.Close}}
}

// HomeKeyMap returns the key bindings for the home grid.
func HomeKeyMap() homeKeys {
	return homeKeys{
		Move: key.NewBinding(
			key.WithKeys("up", "down", "left", "right"),
			key.WithHelp("←↑↓→", "move"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "theme"),
		),
		HistBack: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "history back"),
		),
		HistForward: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "history forward"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// PostKeyMap returns the key bindings for post and map views.
func PostKeyMap() postKeys {
	return postKeys{
		Scroll: key.NewBinding(
			key.WithKeys("up", "down", "pgup", "pgdown"),
			key.WithHelp("↑/↓", "scroll"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "backspace"),
			key.WithHelp("esc", "back"),
		),
		HistBack: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "history back"),
		),
		HistForward: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "history forward"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// GalleryKeyMap returns the key bindings for the gallery container.
func GalleryKeyMap() galleryKeys {
	return galleryKeys{
		Move: key.NewBinding(
			key.WithKeys("up", "down", "left", "right"),
			key.WithHelp("←↑↓→", "move"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		Grid: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "grid"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "backspace"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// SearchKeyMap returns the key bindings for the search overlay.
func SearchKeyMap() searchKeys {
	return searchKeys{
		Move: key.NewBinding(
			key.WithKeys("up", "down"),
			key.WithHelp("↑/↓", "move"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
	}
}
