// Package worldmap projects place markers onto a character-cell world
// map. It is a stateless collaborator: load the places once, render on
// demand at a given width.
package worldmap

import (
	"fmt"
	"io/fs"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// placesFile is the places path inside the content filesystem.
const placesFile = "places.yaml"

// Canvas dimensions in cells. 2:1 keeps the equirectangular projection
// from looking squashed in terminal cells.
const (
	canvasWidth  = 64
	canvasHeight = 20
)

// marker is the glyph drawn at each projected place.
const marker = "•"

// Place is one pin on the map.
type Place struct {
	Name string  `yaml:"name"`
	Lat  float64 `yaml:"lat"`
	Lon  float64 `yaml:"lon"`
	Note string  `yaml:"note"`
}

type placesDoc struct {
	Places []Place `yaml:"places"`
}

var (
	oceanText = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "250", Dark: "237"})

	markerText = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "1", Dark: "9"})

	legendName = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "4", Dark: "12"})

	legendNote = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "240", Dark: "245"})
)

// LoadPlaces reads and validates places.yaml from the content filesystem.
func LoadPlaces(fsys fs.FS) ([]Place, error) {
	data, err := fs.ReadFile(fsys, placesFile)
	if err != nil {
		return nil, fmt.Errorf("worldmap: reading %s: %w", placesFile, err)
	}

	var doc placesDoc
	dec := yaml.NewDecoder(strings.NewReader(string(data)))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("worldmap: parsing %s: %w", placesFile, err)
	}

	for _, p := range doc.Places {
		if p.Name == "" {
			return nil, fmt.Errorf("worldmap: place at (%v, %v) has no name", p.Lat, p.Lon)
		}
		if p.Lat < -90 || p.Lat > 90 {
			return nil, fmt.Errorf("worldmap: place %q latitude %v out of range", p.Name, p.Lat)
		}
		if p.Lon < -180 || p.Lon > 180 {
			return nil, fmt.Errorf("worldmap: place %q longitude %v out of range", p.Name, p.Lon)
		}
	}
	return doc.Places, nil
}

// Cell returns the canvas cell a place projects to. Equirectangular:
// longitude maps linearly to columns, latitude to rows, north up.
func Cell(p Place) (row, col int) {
	col = int((p.Lon + 180) / 360 * float64(canvasWidth))
	row = int((90 - p.Lat) / 180 * float64(canvasHeight))
	if col >= canvasWidth {
		col = canvasWidth - 1
	}
	if row >= canvasHeight {
		row = canvasHeight - 1
	}
	return row, col
}

// Render draws the canvas with every place marked, followed by a legend,
// centered within width.
func Render(places []Place, width int) string {
	marked := make(map[[2]int]bool, len(places))
	for _, p := range places {
		r, c := Cell(p)
		marked[[2]int{r, c}] = true
	}

	var b strings.Builder
	for r := 0; r < canvasHeight; r++ {
		var line strings.Builder
		for c := 0; c < canvasWidth; c++ {
			if marked[[2]int{r, c}] {
				line.WriteString(markerText.Render(marker))
			} else {
				line.WriteString(oceanText.Render("·"))
			}
		}
		b.WriteString(line.String())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	for _, p := range places {
		b.WriteString(markerText.Render(marker))
		b.WriteString(" ")
		b.WriteString(legendName.Render(p.Name))
		if p.Note != "" {
			b.WriteString(legendNote.Render(" — " + p.Note))
		}
		b.WriteString("\n")
	}

	block := strings.TrimRight(b.String(), "\n")
	if width > canvasWidth {
		return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(block)
	}
	return block
}
