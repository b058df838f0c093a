// Package markdown renders post sources to styled terminal text. It is a
// stateless collaborator: the page hands it a source and a width and gets
// back finished output.
package markdown

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
)

// minWrap is the narrowest wrap width worth asking glamour for.
const minWrap = 20

// Renderer renders markdown with a fixed style, re-wrapping per call.
type Renderer struct {
	theme string
}

// New creates a renderer for the given theme ("dark" or "light").
func New(theme string) *Renderer {
	return &Renderer{theme: theme}
}

// Render produces styled terminal output for a markdown source, wrapped
// to the given width.
func (r *Renderer) Render(source string, width int) (string, error) {
	if width < minWrap {
		width = minWrap
	}

	tr, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(r.theme),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("markdown: creating renderer: %w", err)
	}

	out, err := tr.Render(source)
	if err != nil {
		return "", fmt.Errorf("markdown: rendering: %w", err)
	}
	return strings.TrimRight(out, "\n"), nil
}
