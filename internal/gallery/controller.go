package gallery

// Mode is the controller's position in its three-state machine.
type Mode int

const (
	ModeCollections Mode = iota // listing all collections (initial)
	ModeViewer                  // one photo with its metadata
	ModeGrid                    // thumbnail grid of the open collection
)

// Controller is the gallery's own state machine. The page hands it the
// gallery container at render time and from then on asks it three
// questions only — HandleBack, IsNested, Reset — never touching its
// internals. Everything else here is driven by keys the page routes in
// while the gallery owns the container.
type Controller struct {
	collections []Collection

	mode       Mode
	collection *Collection
	index      int

	listCursor int // collection list cursor, Collections mode
	gridCursor int // thumbnail cursor, Grid mode
}

// NewController creates a controller over an immutable collection list,
// starting in Collections mode.
func NewController(collections []Collection) *Controller {
	return &Controller{collections: collections}
}

// Mode returns the current machine state.
func (c *Controller) Mode() Mode {
	return c.mode
}

// Index returns the photo index; meaningful only in Viewer and Grid modes.
func (c *Controller) Index() int {
	return c.index
}

// SelectedCollection returns the open collection's id, or "" in
// Collections mode.
func (c *Controller) SelectedCollection() string {
	if c.collection == nil {
		return ""
	}
	return c.collection.ID
}

// Enter prepares the controller for a fresh render of the gallery item.
// It always resets; with a resolvable deep-link collection id it then
// enters the viewer directly, skipping the collection list. An
// unresolvable id is silently ignored and entry lands on the list.
func (c *Controller) Enter(collectionID string) {
	c.Reset()
	if collectionID != "" {
		c.OpenCollection(collectionID)
	}
}

// OpenCollection looks a collection up by id and enters the viewer at its
// first photo. An unknown id is a silent no-op.
func (c *Controller) OpenCollection(id string) {
	for i := range c.collections {
		if c.collections[i].ID == id {
			c.collection = &c.collections[i]
			c.index = 0
			c.mode = ModeViewer
			return
		}
	}
}

// Next advances the viewer one photo, wrapping past the last to the first.
func (c *Controller) Next() {
	if c.collection == nil {
		return
	}
	c.index = (c.index + 1) % len(c.collection.Photos)
}

// Prev moves the viewer one photo back, wrapping past the first to the last.
func (c *Controller) Prev() {
	if c.collection == nil {
		return
	}
	c.index = (c.index - 1 + len(c.collection.Photos)) % len(c.collection.Photos)
}

// ToggleGrid flips between the viewer and the thumbnail grid. The grid
// cursor starts on the photo the viewer was showing.
func (c *Controller) ToggleGrid() {
	switch c.mode {
	case ModeViewer:
		c.gridCursor = c.index
		c.mode = ModeGrid
	case ModeGrid:
		c.mode = ModeViewer
	}
}

// Select picks the photo at position k from the grid and returns to the
// viewer. Out-of-range positions are ignored.
func (c *Controller) Select(k int) {
	if c.mode != ModeGrid || c.collection == nil {
		return
	}
	if k < 0 || k >= len(c.collection.Photos) {
		return
	}
	c.index = k
	c.mode = ModeViewer
}

// HandleBack unwinds exactly one level and reports whether it handled the
// intent: Grid→Viewer, Viewer→Collections (clearing the open collection),
// and false from Collections, where the host must leave the item itself.
func (c *Controller) HandleBack() bool {
	switch c.mode {
	case ModeGrid:
		c.mode = ModeViewer
		return true
	case ModeViewer:
		c.collection = nil
		c.index = 0
		c.mode = ModeCollections
		return true
	default:
		return false
	}
}

// IsNested reports whether the controller is anywhere below the
// collection list. The host asks this before performing any top-level
// back navigation of its own.
func (c *Controller) IsNested() bool {
	return c.mode != ModeCollections
}

// Reset unconditionally restores the initial state. The host calls it
// whenever the page leaves the gallery item entirely, so no stale
// collection or index leaks into a future re-entry.
func (c *Controller) Reset() {
	c.mode = ModeCollections
	c.collection = nil
	c.index = 0
	c.listCursor = 0
	c.gridCursor = 0
}

// MoveListCursor moves the collection list cursor by delta, clamped to
// the list bounds.
func (c *Controller) MoveListCursor(delta int) {
	if c.mode != ModeCollections || len(c.collections) == 0 {
		return
	}
	c.listCursor = clamp(c.listCursor+delta, 0, len(c.collections)-1)
}

// OpenAtCursor opens the collection under the list cursor.
func (c *Controller) OpenAtCursor() {
	if c.mode != ModeCollections || len(c.collections) == 0 {
		return
	}
	c.OpenCollection(c.collections[c.listCursor].ID)
}

// MoveGridCursor moves the thumbnail cursor by delta cells, clamped to
// the photo count.
func (c *Controller) MoveGridCursor(delta int) {
	if c.mode != ModeGrid || c.collection == nil {
		return
	}
	c.gridCursor = clamp(c.gridCursor+delta, 0, len(c.collection.Photos)-1)
}

// SelectAtCursor picks the photo under the thumbnail cursor.
func (c *Controller) SelectAtCursor() {
	c.Select(c.gridCursor)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
