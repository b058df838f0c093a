package gallery

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// cursorMarker is the prefix shown on the selected row.
const cursorMarker = "▸ "

// GridColumns is the thumbnail grid width in cells. Key handling uses it
// to turn vertical cursor moves into index deltas.
const GridColumns = 4

var (
	titleText = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "4", Dark: "12"})

	mutedText = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "240", Dark: "245"})

	artPanel = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.AdaptiveColor{Light: "240", Dark: "240"}).
			Padding(0, 1)

	thumbCell = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.AdaptiveColor{Light: "240", Dark: "240"}).
			Padding(0, 1)

	thumbCellSelected = lipgloss.NewStyle().
				Border(lipgloss.NormalBorder()).
				BorderForeground(lipgloss.AdaptiveColor{Light: "4", Dark: "12"}).
				Padding(0, 1)
)

// View renders the gallery container for the current mode.
func (c *Controller) View(width int) string {
	switch c.mode {
	case ModeViewer:
		return c.viewPhoto(width)
	case ModeGrid:
		return c.viewGrid(width)
	default:
		return c.viewCollections()
	}
}

func (c *Controller) viewCollections() string {
	if len(c.collections) == 0 {
		return mutedText.Render("No collections yet")
	}

	var b strings.Builder
	b.WriteString(titleText.Render("Collections"))
	b.WriteString("\n\n")
	for i, col := range c.collections {
		if i > 0 {
			b.WriteByte('\n')
		}
		if i == c.listCursor {
			b.WriteString(cursorMarker)
		} else {
			b.WriteString("  ")
		}
		b.WriteString(col.Title)
		b.WriteString(mutedText.Render(fmt.Sprintf("  %d photos", len(col.Photos))))
	}
	b.WriteString("\n\n")
	b.WriteString(mutedText.Render("enter open · esc back"))
	return b.String()
}

func (c *Controller) viewPhoto(width int) string {
	if c.collection == nil {
		return c.viewCollections()
	}
	photo := c.collection.Photos[c.index]

	var b strings.Builder
	b.WriteString(titleText.Render(c.collection.Title))
	b.WriteString(mutedText.Render(fmt.Sprintf("  %d/%d", c.index+1, len(c.collection.Photos))))
	b.WriteString("\n")
	b.WriteString(artPanel.MaxWidth(width).Render(photo.Art))
	b.WriteString("\n")
	b.WriteString(photo.Caption)
	if photo.Location != "" || photo.Taken != "" {
		b.WriteString("\n")
		b.WriteString(mutedText.Render(strings.TrimSpace(photo.Location + "  " + photo.Taken)))
	}
	b.WriteString("\n\n")
	b.WriteString(mutedText.Render("←/→ browse · g grid · esc collections"))
	return b.String()
}

func (c *Controller) viewGrid(width int) string {
	if c.collection == nil {
		return c.viewCollections()
	}

	cols := GridColumns
	if w := width / 14; w > 0 && w < cols {
		cols = w
	}

	cells := make([]string, 0, len(c.collection.Photos))
	for i, photo := range c.collection.Photos {
		label := fmt.Sprintf("%d %s", i+1, truncate(photo.Caption, 8))
		if i == c.gridCursor {
			cells = append(cells, thumbCellSelected.Render(label))
		} else {
			cells = append(cells, thumbCell.Render(label))
		}
	}

	var rows []string
	for start := 0; start < len(cells); start += cols {
		end := start + cols
		if end > len(cells) {
			end = len(cells)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells[start:end]...))
	}

	var b strings.Builder
	b.WriteString(titleText.Render(c.collection.Title))
	b.WriteString(mutedText.Render("  grid"))
	b.WriteString("\n")
	b.WriteString(lipgloss.JoinVertical(lipgloss.Left, rows...))
	b.WriteString("\n")
	b.WriteString(mutedText.Render("enter select · g viewer · esc viewer"))
	return b.String()
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
