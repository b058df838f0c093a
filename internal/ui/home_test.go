package ui

import (
	"strings"
	"testing"

	"atrium/internal/site"
)

func testItems(n int) []site.Item {
	items := make([]site.Item, n)
	for i := range items {
		items[i] = site.Item{ID: "item", Title: "Tile", Blurb: "blurb"}
	}
	return items
}

func TestRenderHome_AllTilesAndMonogram(t *testing.T) {
	out := stripANSI(renderHome(testItems(6), "A", -1, 120))

	if strings.Count(out, "Tile") != 6 {
		t.Errorf("rendered %d tiles, want 6", strings.Count(out, "Tile"))
	}
	if !strings.Contains(out, "A") {
		t.Error("monogram missing")
	}
}

func TestTileAt_CornersAndEdges(t *testing.T) {
	const width = 120
	off := gridXOffset(width)

	tests := []struct {
		name    string
		x, y    int
		wantPos int
		wantOK  bool
	}{
		{"top left tile", off + 1, gridTop + 1, 0, true},
		{"top right tile", off + 3*tileWidth + 1, gridTop + 1, 3, true},
		{"row1 left", off + 1, gridTop + tileHeight + 1, 4, true},
		{"row1 right", off + 3*tileWidth + 1, gridTop + tileHeight + 1, 5, true},
		{"bottom left", off + 1, gridTop + 3*tileHeight + 1, 8, true},
		{"bottom right", off + 3*tileWidth + 1, gridTop + 3*tileHeight + 1, 11, true},
		{"center block", off + tileWidth + 1, gridTop + tileHeight + 1, 0, false},
		{"center block lower", off + 2*tileWidth + 1, gridTop + 2*tileHeight + 1, 0, false},
		{"left of grid", off - 1, gridTop + 1, 0, false},
		{"above grid", off + 1, 0, 0, false},
		{"below grid", off + 1, gridTop + 4*tileHeight + 1, 0, false},
		{"right of grid", off + 4*tileWidth + 1, gridTop + 1, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, ok := tileAt(tt.x, tt.y, width)
			if ok != tt.wantOK {
				t.Fatalf("tileAt(%d, %d) ok = %v, want %v", tt.x, tt.y, ok, tt.wantOK)
			}
			if ok && pos != tt.wantPos {
				t.Errorf("tileAt(%d, %d) = %d, want %d", tt.x, tt.y, pos, tt.wantPos)
			}
		})
	}
}

func TestMonogramFor(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"atrium", "A"},
		{"  spaced", "S"},
		{"", "·"},
	}
	for _, tt := range tests {
		if got := monogramFor(tt.title); got != tt.want {
			t.Errorf("monogramFor(%q) = %q, want %q", tt.title, got, tt.want)
		}
	}
}
