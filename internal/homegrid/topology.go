// Package homegrid implements keyboard cursor movement over the home
// screen's 4×4 tile layout. The four center cells are merged into one
// decorative block that can never hold the cursor, leaving twelve
// navigable positions numbered clockwise-ish in reading order:
//
//	 0  1  2  3
//	 4  ·  ·  5
//	 6  ·  ·  7
//	 8  9 10 11
//
// The navigator is pure cursor state. It knows nothing about what the
// tiles show or how they are drawn.
package homegrid

// gridSize is the layout's edge length in cells.
const gridSize = 4

// NumPositions is the number of navigable cells in the layout.
const NumPositions = 12

// Direction is an arrow-key movement intent.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// positionCoords maps a navigable position id to its (row, col) cell.
var positionCoords = [NumPositions][2]int{
	{0, 0}, {0, 1}, {0, 2}, {0, 3},
	{1, 0}, {1, 3},
	{2, 0}, {2, 3},
	{3, 0}, {3, 1}, {3, 2}, {3, 3},
}

// Coords returns the (row, col) cell of a navigable position.
func Coords(pos int) (row, col int) {
	return positionCoords[pos][0], positionCoords[pos][1]
}

// PositionAt resolves a cell back to its navigable position id. The
// second return is false for center-block cells and out-of-range cells.
// Layout code uses this to map a pointer hit back onto the topology.
func PositionAt(row, col int) (int, bool) {
	return positionAt(row, col)
}

// positionAt resolves a cell back to its navigable position id. The
// second return is false for center-block cells.
func positionAt(row, col int) (int, bool) {
	for pos, rc := range positionCoords {
		if rc[0] == row && rc[1] == col {
			return pos, true
		}
	}
	return 0, false
}

// inBlock reports whether a cell belongs to the merged center block.
func inBlock(row, col int) bool {
	return row >= 1 && row <= 2 && col >= 1 && col <= 2
}

// stepFrom moves one cell from (row, col) in direction d, clamping to
// the grid bounds. A move that lands inside the center block treats the
// block as transparent and continues in the same direction to the far
// edge, so the result is always a navigable cell.
func stepFrom(row, col int, d Direction) (int, int) {
	r, c := row, col
	switch d {
	case Up:
		r--
	case Down:
		r++
	case Left:
		c--
	case Right:
		c++
	}
	if r < 0 {
		r = 0
	}
	if r > gridSize-1 {
		r = gridSize - 1
	}
	if c < 0 {
		c = 0
	}
	if c > gridSize-1 {
		c = gridSize - 1
	}
	if inBlock(r, c) {
		switch d {
		case Up:
			r = 0
		case Down:
			r = gridSize - 1
		case Left:
			c = 0
		case Right:
			c = gridSize - 1
		}
	}
	return r, c
}
