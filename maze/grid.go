package maze

import "fmt"

// neighborOffsets lists the orthogonal offsets in row-major storage order.
var neighborOffsets = []struct {
	dx, dy int
	dir    Direction
}{
	{0, -1, North},
	{-1, 0, West},
	{1, 0, East},
	{0, 1, South},
}

// Grid is a fixed-size, row-major collection of cell states.
type Grid struct {
	width  int
	height int
	cells  []State
}

// newGrid allocates a grid with every cell Unvisited and the origin marked Branch.
func newGrid(width, height int) *Grid {
	g := &Grid{
		width:  width,
		height: height,
		cells:  make([]State, width*height),
	}
	g.cells[0] = Branch
	return g
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Origin is the top-left cell where carving starts.
func (g *Grid) Origin() CellPosition { return CellPosition{} }

// Goal is the bottom-right cell.
func (g *Grid) Goal() CellPosition {
	return CellPosition{X: g.width - 1, Y: g.height - 1}
}

// InBounds reports whether pos lies on the grid.
func (g *Grid) InBounds(pos CellPosition) bool {
	return pos.X >= 0 && pos.X < g.width && pos.Y >= 0 && pos.Y < g.height
}

func (g *Grid) index(pos CellPosition) int {
	if !g.InBounds(pos) {
		panic(fmt.Sprintf("maze: position %s outside %dx%d grid", pos, g.width, g.height))
	}
	return pos.Y*g.width + pos.X
}

// At returns the state of the cell at pos. It panics when pos is off the grid.
func (g *Grid) At(pos CellPosition) State {
	return g.cells[g.index(pos)]
}

// State returns the state of the cell at (x, y). It panics when the
// coordinate is off the grid.
func (g *Grid) State(x, y int) State {
	return g.At(CellPosition{X: x, Y: y})
}

// IsOpen reports whether (x, y) is carved.
func (g *Grid) IsOpen(x, y int) bool {
	return g.State(x, y).IsCarved()
}

func (g *Grid) set(pos CellPosition, s State) {
	g.cells[g.index(pos)] = s
}

// Neighbors returns the orthogonal neighbors of origin whose state satisfies
// keep, in storage order.
func (g *Grid) Neighbors(origin CellPosition, keep func(State) bool) []Neighbor {
	var result []Neighbor
	for _, off := range neighborOffsets {
		pos := CellPosition{X: origin.X + off.dx, Y: origin.Y + off.dy}
		if !g.InBounds(pos) {
			continue
		}
		if keep(g.At(pos)) {
			result = append(result, Neighbor{Pos: pos, Direction: off.dir})
		}
	}
	return result
}

// carvedNeighbors counts the carved cells adjacent to pos.
func (g *Grid) carvedNeighbors(pos CellPosition) int {
	return len(g.Neighbors(pos, State.IsCarved))
}

// CarvedCount returns how many cells are open.
func (g *Grid) CarvedCount() int {
	n := 0
	for _, s := range g.cells {
		if s.IsCarved() {
			n++
		}
	}
	return n
}

// Rows returns a copy of the states, one slice per row.
func (g *Grid) Rows() [][]State {
	rows := make([][]State, g.height)
	for y := range rows {
		rows[y] = make([]State, g.width)
		copy(rows[y], g.cells[y*g.width:(y+1)*g.width])
	}
	return rows
}

// finalize turns every non-carved cell into a Wall.
func (g *Grid) finalize() {
	for i, s := range g.cells {
		if !s.IsCarved() {
			g.cells[i] = Wall
		}
	}
}
