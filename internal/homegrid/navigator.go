package homegrid

// InputMode is the last input modality seen by the navigator.
type InputMode int

const (
	ModeMouse InputMode = iota // initial; hover drives highlighting
	ModeKeyboard
)

// Navigator holds the keyboard selection over the home layout's
// navigable positions. Positions fill in reading order, so with n bound
// tiles exactly positions 0..n-1 are reachable. The cursor starts
// cleared; the first arrow key lands it on position 0.
type Navigator struct {
	bound    int
	pos      int
	selected bool
	mode     InputMode
}

// NewNavigator creates a navigator over the first bound positions.
// Counts beyond the layout's capacity are capped.
func NewNavigator(bound int) *Navigator {
	n := &Navigator{}
	n.SetBound(bound)
	return n
}

// SetBound updates how many positions hold real content. A shrinking
// bound that strands the cursor clears the selection.
func (n *Navigator) SetBound(bound int) {
	if bound < 0 {
		bound = 0
	}
	if bound > NumPositions {
		bound = NumPositions
	}
	n.bound = bound
	if n.selected && n.pos >= bound {
		n.selected = false
		n.pos = 0
	}
}

// Step handles one arrow-key intent and reports whether the cursor
// moved. With no selection it lands on the first bound position. A move
// that clamps in place or would land on an unbound position is a no-op;
// the cursor never wraps across the grid edge.
func (n *Navigator) Step(d Direction) bool {
	if n.bound == 0 {
		return false
	}
	n.mode = ModeKeyboard
	if !n.selected {
		n.selected = true
		n.pos = 0
		return true
	}

	row, col := Coords(n.pos)
	dest, ok := positionAt(stepFrom(row, col, d))
	if !ok || dest == n.pos || dest >= n.bound {
		return false
	}
	n.pos = dest
	return true
}

// Selected returns the cursor position, with ok false when nothing is
// selected.
func (n *Navigator) Selected() (pos int, ok bool) {
	if !n.selected {
		return 0, false
	}
	return n.pos, true
}

// Activate returns the position to open when a selection exists, the
// keyboard analog of clicking that tile.
func (n *Navigator) Activate() (pos int, ok bool) {
	return n.Selected()
}

// Clear drops the selection without touching the input mode.
func (n *Navigator) Clear() {
	n.selected = false
	n.pos = 0
}

// PointerMoved records genuine pointer motion: the selection clears and
// hover takes over highlighting.
func (n *Navigator) PointerMoved() {
	n.selected = false
	n.pos = 0
	n.mode = ModeMouse
}

// Mode returns the last input modality.
func (n *Navigator) Mode() InputMode {
	return n.mode
}
