package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Theme endpoint colors for the fade blend. The text color slides toward
// the background as the level drops, which is what an opacity fade looks
// like in a cell terminal.
var (
	darkText, _  = colorful.Hex("#c8c8c8")
	darkBack, _  = colorful.Hex("#1a1a1a")
	lightText, _ = colorful.Hex("#2a2a2a")
	lightBack, _ = colorful.Hex("#f4f4f4")
)

// fadeColor returns the blended foreground for a fade level in [0, 1].
func fadeColor(level float64, dark bool) lipgloss.Color {
	if level < 0 {
		level = 0
	}
	if level > 1 {
		level = 1
	}
	text, back := lightText, lightBack
	if dark {
		text, back = darkText, darkBack
	}
	return lipgloss.Color(back.BlendLab(text, level).Clamped().Hex())
}

// applyFade renders container content at a fade level. Full brightness
// passes the styled content through untouched; any lower level recolors
// the whole block uniformly (inner styling is stripped so the blend
// actually shows), and level zero blanks the container.
func applyFade(content string, level float64, dark bool) string {
	if level >= 1 {
		return content
	}
	if level <= 0 {
		return strings.Repeat("\n", strings.Count(content, "\n"))
	}
	style := lipgloss.NewStyle().Foreground(fadeColor(level, dark))
	lines := strings.Split(stripEscapes(content), "\n")
	for i, line := range lines {
		lines[i] = style.Render(line)
	}
	return strings.Join(lines, "\n")
}

// stripEscapes removes ANSI escape sequences so the fade color applies
// cleanly over previously styled output.
func stripEscapes(s string) string {
	var out strings.Builder
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
			continue
		}
		out.WriteByte(s[i])
		i++
	}
	return out.String()
}
