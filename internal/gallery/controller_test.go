package gallery

import "testing"

func testCollections() []Collection {
	return []Collection{
		{
			ID:    "alps",
			Title: "Alpine Passes",
			Photos: []Photo{
				{Caption: "Ridge at dawn", Art: "/\\"},
				{Caption: "Scree field", Art: ". ."},
				{Caption: "Col in fog", Art: "~~~"},
			},
		},
		{
			ID:     "harbor",
			Title:  "Harbor Nights",
			Photos: []Photo{{Caption: "Crane silhouette", Art: "|--|"}},
		},
	}
}

func TestController_StartsOnCollections(t *testing.T) {
	c := NewController(testCollections())

	if c.Mode() != ModeCollections {
		t.Errorf("mode = %v, want ModeCollections", c.Mode())
	}
	if c.IsNested() {
		t.Error("fresh controller should not be nested")
	}
}

func TestController_OpenCollection(t *testing.T) {
	// Given: a controller on the collection list
	c := NewController(testCollections())

	// When: a collection is opened
	c.OpenCollection("alps")

	// Then: the viewer shows its first photo
	if c.Mode() != ModeViewer {
		t.Fatalf("mode = %v, want ModeViewer", c.Mode())
	}
	if c.Index() != 0 {
		t.Errorf("index = %d, want 0", c.Index())
	}
	if c.SelectedCollection() != "alps" {
		t.Errorf("collection = %q, want alps", c.SelectedCollection())
	}
}

func TestController_OpenUnknownCollectionIsNoop(t *testing.T) {
	c := NewController(testCollections())

	c.OpenCollection("nope")

	if c.Mode() != ModeCollections {
		t.Errorf("unknown id should leave controller on the list, mode = %v", c.Mode())
	}
}

func TestController_NextPrevWrap(t *testing.T) {
	// Given: a viewer on a three-photo collection
	c := NewController(testCollections())
	c.OpenCollection("alps")

	// When: stepping forward past the end
	c.Next()
	c.Next()
	c.Next()

	// Then: the index wraps to the first photo
	if c.Index() != 0 {
		t.Errorf("after 3x next: index = %d, want 0", c.Index())
	}

	// When: stepping back from the first photo
	c.Prev()

	// Then: the index wraps to the last photo
	if c.Index() != 2 {
		t.Errorf("after prev from 0: index = %d, want 2", c.Index())
	}
}

func TestController_GridToggleAndSelect(t *testing.T) {
	// Given: a viewer on photo 0
	c := NewController(testCollections())
	c.OpenCollection("alps")

	// When: toggling to the grid and selecting photo 1
	c.ToggleGrid()
	if c.Mode() != ModeGrid {
		t.Fatalf("mode = %v, want ModeGrid", c.Mode())
	}
	c.Select(1)

	// Then: the viewer shows the chosen photo
	if c.Mode() != ModeViewer {
		t.Errorf("mode = %v, want ModeViewer", c.Mode())
	}
	if c.Index() != 1 {
		t.Errorf("index = %d, want 1", c.Index())
	}
}

func TestController_SelectOutOfRangeIgnored(t *testing.T) {
	c := NewController(testCollections())
	c.OpenCollection("alps")
	c.ToggleGrid()

	c.Select(99)

	if c.Mode() != ModeGrid {
		t.Errorf("out-of-range select should stay in grid, mode = %v", c.Mode())
	}
}

func TestController_BackUnwindsOneLevel(t *testing.T) {
	// Given: a controller two levels deep in the grid
	c := NewController(testCollections())
	c.OpenCollection("alps")
	c.ToggleGrid()

	// When/Then: each back pops exactly one level
	if !c.HandleBack() {
		t.Fatal("back from grid should be handled")
	}
	if c.Mode() != ModeViewer {
		t.Fatalf("mode = %v, want ModeViewer", c.Mode())
	}

	if !c.HandleBack() {
		t.Fatal("back from viewer should be handled")
	}
	if c.Mode() != ModeCollections {
		t.Fatalf("mode = %v, want ModeCollections", c.Mode())
	}
	if c.SelectedCollection() != "" {
		t.Errorf("collection should be cleared, got %q", c.SelectedCollection())
	}

	// Then: a further back is refused so the host can leave the item
	if c.HandleBack() {
		t.Error("back from the collection list must not be handled")
	}
}

func TestController_IsNestedTracksDepth(t *testing.T) {
	c := NewController(testCollections())

	c.OpenCollection("alps")
	if !c.IsNested() {
		t.Error("viewer should report nested")
	}
	c.ToggleGrid()
	if !c.IsNested() {
		t.Error("grid should report nested")
	}
	c.Reset()
	if c.IsNested() {
		t.Error("reset controller should not report nested")
	}
}

func TestController_ResetClearsEverything(t *testing.T) {
	// Given: a controller deep in the grid with moved cursors
	c := NewController(testCollections())
	c.MoveListCursor(1)
	c.OpenCollection("alps")
	c.Next()
	c.ToggleGrid()
	c.MoveGridCursor(1)

	// When: the host leaves the gallery entirely
	c.Reset()

	// Then: a re-entry starts from scratch
	if c.Mode() != ModeCollections {
		t.Errorf("mode = %v, want ModeCollections", c.Mode())
	}
	if c.SelectedCollection() != "" || c.Index() != 0 {
		t.Errorf("stale state survived reset: %q index %d", c.SelectedCollection(), c.Index())
	}
	if c.listCursor != 0 || c.gridCursor != 0 {
		t.Errorf("cursors survived reset: list %d grid %d", c.listCursor, c.gridCursor)
	}
}

func TestController_EnterWithDeepLink(t *testing.T) {
	// Given: a controller left in the grid from a previous visit
	c := NewController(testCollections())
	c.OpenCollection("alps")
	c.ToggleGrid()

	// When: the gallery is re-entered with a deep link
	c.Enter("harbor")

	// Then: the viewer opens the linked collection at its first photo
	if c.Mode() != ModeViewer {
		t.Fatalf("mode = %v, want ModeViewer", c.Mode())
	}
	if c.SelectedCollection() != "harbor" || c.Index() != 0 {
		t.Errorf("got %q index %d, want harbor index 0", c.SelectedCollection(), c.Index())
	}
}

func TestController_EnterWithBadDeepLink(t *testing.T) {
	c := NewController(testCollections())

	c.Enter("missing")

	if c.Mode() != ModeCollections {
		t.Errorf("unresolvable deep link should land on the list, mode = %v", c.Mode())
	}
}

func TestController_ListCursorAndOpen(t *testing.T) {
	c := NewController(testCollections())

	c.MoveListCursor(1)
	c.OpenAtCursor()

	if c.SelectedCollection() != "harbor" {
		t.Errorf("opened %q, want harbor", c.SelectedCollection())
	}
}

func TestController_ListCursorClamps(t *testing.T) {
	c := NewController(testCollections())

	c.MoveListCursor(-5)
	if c.listCursor != 0 {
		t.Errorf("cursor = %d, want 0", c.listCursor)
	}
	c.MoveListCursor(10)
	if c.listCursor != 1 {
		t.Errorf("cursor = %d, want 1", c.listCursor)
	}
}

func TestController_GridCursorSelect(t *testing.T) {
	c := NewController(testCollections())
	c.OpenCollection("alps")
	c.ToggleGrid()

	c.MoveGridCursor(2)
	c.SelectAtCursor()

	if c.Mode() != ModeViewer || c.Index() != 2 {
		t.Errorf("mode %v index %d, want viewer index 2", c.Mode(), c.Index())
	}
}

// TestController_FullSession walks the whole machine the way a reader
// browsing a collection would.
func TestController_FullSession(t *testing.T) {
	c := NewController(testCollections())

	// Open a collection: viewer on photo 0.
	c.OpenCollection("alps")
	if c.Mode() != ModeViewer || c.Index() != 0 {
		t.Fatalf("open: mode %v index %d", c.Mode(), c.Index())
	}

	// Step through all three photos and wrap.
	c.Next()
	c.Next()
	c.Next()
	if c.Index() != 0 {
		t.Fatalf("wrap: index %d, want 0", c.Index())
	}

	// Jump via the grid.
	c.ToggleGrid()
	c.Select(1)
	if c.Mode() != ModeViewer || c.Index() != 1 {
		t.Fatalf("select: mode %v index %d", c.Mode(), c.Index())
	}

	// Unwind to the list, then refuse further backs.
	if !c.HandleBack() || c.Mode() != ModeCollections {
		t.Fatalf("back: mode %v", c.Mode())
	}
	if c.HandleBack() {
		t.Fatal("back on the list should be refused")
	}
}
