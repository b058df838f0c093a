package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"atrium/internal/homegrid"
	"atrium/internal/site"
)

// gridTop is the screen row where the home grid starts: the header plus
// one blank line.
const gridTop = headerHeight + 1

// gridXOffset centers the 4-tile-wide grid within width.
func gridXOffset(width int) int {
	off := (width - 4*tileWidth) / 2
	if off < 0 {
		off = 0
	}
	return off
}

// renderHome draws the tile grid: twelve item tiles around the merged
// monogram block, with the keyboard selection highlighted.
func renderHome(items []site.Item, monogram string, selected int, width int) string {
	tile := func(pos int) string {
		if pos >= len(items) {
			return tileBox.Render("")
		}
		it := items[pos]
		body := tileTitle.Render(it.Title) + "\n" + tileBlurb.Render(it.Blurb)
		if pos == selected {
			return tileBoxSelected.Render(body)
		}
		return tileBox.Render(body)
	}

	top := lipgloss.JoinHorizontal(lipgloss.Top, tile(0), tile(1), tile(2), tile(3))
	middle := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.JoinVertical(lipgloss.Left, tile(4), tile(6)),
		monogramBox.Render(monogram),
		lipgloss.JoinVertical(lipgloss.Left, tile(5), tile(7)),
	)
	bottom := lipgloss.JoinHorizontal(lipgloss.Top, tile(8), tile(9), tile(10), tile(11))

	grid := lipgloss.JoinVertical(lipgloss.Left, top, middle, bottom)
	if off := gridXOffset(width); off > 0 {
		pad := strings.Repeat(" ", off)
		lines := strings.Split(grid, "\n")
		for i := range lines {
			lines[i] = pad + lines[i]
		}
		grid = strings.Join(lines, "\n")
	}
	return grid
}

// tileAt hit-tests a pointer position against the rendered grid
// geometry and returns the navigable position under it. The center
// block and the space between tiles resolve to no position.
func tileAt(x, y, width int) (int, bool) {
	x -= gridXOffset(width)
	y -= gridTop
	if x < 0 || y < 0 {
		return 0, false
	}
	col := x / tileWidth
	row := y / tileHeight
	if row > 3 || col > 3 {
		return 0, false
	}
	return homegrid.PositionAt(row, col)
}

// monogramFor derives the center block's glyph from the site title.
func monogramFor(title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return "·"
	}
	r := []rune(title)
	return strings.ToUpper(string(r[0]))
}
