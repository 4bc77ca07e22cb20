package maze

// corridor is an induced path of uncarved cells from the goal towards the
// carved tree: cells[0] is the goal, the last cell borders exactly one carved
// cell and every other cell borders none. Carving along it from the tail adds
// one leaf at a time, so while it exists the goal can always be connected
// without closing a loop.
type corridor struct {
	cells []CellPosition
	index []int // grid index -> position in cells, -1 when absent
	width int
}

// newCorridor draws a random monotone staircase from the goal to a neighbor of
// the origin. Monotone paths are geodesic, hence induced.
func newCorridor(g *Grid, rng Rand) *corridor {
	c := &corridor{
		index: make([]int, len(g.cells)),
		width: g.width,
	}
	for i := range c.index {
		c.index[i] = -1
	}

	pos := g.Goal()
	for pos != g.Origin() {
		c.index[pos.Y*c.width+pos.X] = len(c.cells)
		c.cells = append(c.cells, pos)
		switch {
		case pos.X == 0:
			pos.Y--
		case pos.Y == 0:
			pos.X--
		case rng.Intn(2) == 0:
			pos.X--
		default:
			pos.Y--
		}
	}
	return c
}

func (c *corridor) position(pos CellPosition) int {
	return c.index[pos.Y*c.width+pos.X]
}

// firstTouch returns the lowest corridor position adjacent to or equal to pos.
func (c *corridor) firstTouch(g *Grid, pos CellPosition) int {
	first := c.position(pos)
	for _, n := range g.Neighbors(pos, anyState) {
		if i := c.position(n.Pos); i >= 0 && (first < 0 || i < first) {
			first = i
		}
	}
	return first
}

// allows reports whether carving pos keeps the corridor valid: pos must not
// touch the corridor's tail alone.
func (c *corridor) allows(g *Grid, pos CellPosition) bool {
	if len(c.cells) == 0 || c.position(pos) >= 0 {
		return true
	}
	return c.firstTouch(g, pos) != len(c.cells)-1
}

// absorb shortens the corridor after pos has been carved.
func (c *corridor) absorb(g *Grid, pos CellPosition) {
	if len(c.cells) == 0 {
		return
	}
	i := c.firstTouch(g, pos)
	if i < 0 {
		return
	}
	keep := i + 1
	if c.position(pos) == i {
		keep = i
	}
	c.truncate(keep)
}

func (c *corridor) truncate(keep int) {
	for _, pos := range c.cells[keep:] {
		c.index[pos.Y*c.width+pos.X] = -1
	}
	c.cells = c.cells[:keep]
}

// tail returns the remaining corridor ordered from the carved tree to the goal.
func (c *corridor) tail() []CellPosition {
	out := make([]CellPosition, 0, len(c.cells))
	for i := len(c.cells) - 1; i >= 0; i-- {
		out = append(out, c.cells[i])
	}
	return out
}

func anyState(State) bool { return true }
