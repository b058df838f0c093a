package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Tile geometry in cells. The home layout is 4×4 tiles with the center
// four merged into one monogram block.
const (
	tileWidth  = 18
	tileHeight = 4
)

// helpBarHeight is the number of lines reserved for the help bar at the bottom.
const helpBarHeight = 1

// headerHeight is the number of lines the header occupies, rule included.
const headerHeight = 2

var (
	accent = lipgloss.AdaptiveColor{Light: "4", Dark: "12"}
	dim    = lipgloss.AdaptiveColor{Light: "240", Dark: "245"}
	faint  = lipgloss.AdaptiveColor{Light: "250", Dark: "240"}
	errRed = lipgloss.AdaptiveColor{Light: "1", Dark: "9"}

	headerTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent)

	headerLocation = lipgloss.NewStyle().
			Foreground(dim)

	headerArrowOn = lipgloss.NewStyle().
			Foreground(accent)

	headerArrowOff = lipgloss.NewStyle().
			Foreground(faint)

	headerRule = lipgloss.NewStyle().
			Foreground(faint)

	tileBox = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(faint).
		Width(tileWidth - 2).
		Height(tileHeight - 2).
		Padding(0, 1)

	tileBoxSelected = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Width(tileWidth - 2).
			Height(tileHeight - 2).
			Padding(0, 1)

	tileTitle = lipgloss.NewStyle().
			Bold(true)

	tileBlurb = lipgloss.NewStyle().
			Foreground(dim)

	monogramBox = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(accent).
			Width(2*tileWidth - 2).
			Height(2*tileHeight - 2).
			Align(lipgloss.Center, lipgloss.Center).
			Bold(true).
			Foreground(accent)

	errorTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(errRed)

	errorBody = lipgloss.NewStyle().
			Foreground(dim)

	errorPanel = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(errRed).
			Padding(1, 2)

	loadingText = lipgloss.NewStyle().
			Foreground(dim)

	searchBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 1)

	searchResult = lipgloss.NewStyle()

	searchResultSelected = lipgloss.NewStyle().
				Bold(true).
				Foreground(accent)

	searchResultKind = lipgloss.NewStyle().
				Foreground(dim)
)
