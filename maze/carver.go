package maze

import "fmt"

// Rand is the source of randomness used while carving. *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Logger receives progress messages from a running generation.
type Logger interface {
	Debug(msg string)
}

// carver owns the mutable state of a single generation run: the grid being
// carved, the pending branch records and whether the goal has been reached.
type carver struct {
	grid        *Grid
	rng         Rand
	logger      Logger
	corridor    *corridor
	branches    []*Move
	goalReached bool
}

// eligible reports whether cand may be carved when entered from `from`.
// The cell must border no carved cell other than `from`, and carving it must
// leave the goal corridor intact.
func (c *carver) eligible(from, cand CellPosition) bool {
	carved := c.grid.Neighbors(cand, State.IsCarved)
	if len(carved) != 1 || carved[0].Pos != from {
		return false
	}
	return c.corridor.allows(c.grid, cand)
}

// carve opens pos and lets the corridor absorb it.
func (c *carver) carve(pos CellPosition) {
	c.grid.set(pos, CarvedPath)
	c.corridor.absorb(c.grid, pos)
}

// candidates returns the unvisited neighbors of pos that may be carved from it.
// Unvisited cells that fail eligibility are excluded on the spot.
func (c *carver) candidates(pos CellPosition) []Neighbor {
	var result []Neighbor
	for _, n := range c.grid.Neighbors(pos, isUnvisited) {
		if !c.eligible(pos, n.Pos) {
			c.grid.set(n.Pos, Excluded)
			continue
		}
		result = append(result, n)
	}
	return result
}

// extendFrom walks randomly from move until it gets stuck or reaches the
// goal, and returns the terminal move.
func (c *carver) extendFrom(move *Move) *Move {
	goal := c.grid.Goal()
	for {
		move.neighbors = c.candidates(move.Pos)
		if len(move.neighbors) == 0 {
			c.debugf("last move is %s with dir %s (dead end)", move.Pos, move.Direction)
			return move
		}

		if move.Pos == goal {
			// The goal never becomes an interior branch point.
			for _, n := range move.neighbors {
				c.grid.set(n.Pos, Excluded)
			}
			c.debugf("last move is %s with dir %s (goal)", move.Pos, move.Direction)
			return move
		}

		chosen := move.neighbors[c.rng.Intn(len(move.neighbors))]
		next := &Move{Pos: chosen.Pos, Direction: chosen.Direction}
		c.carveStep(move, next)
		move = next
	}
}

// carveStep opens next, records move as a branch when the walk turns away
// from a cell that had alternatives, and reclassifies the cells left behind.
func (c *carver) carveStep(move, next *Move) {
	c.carve(next.Pos)

	if next.Direction != move.Direction && len(move.neighbors) > 1 {
		if c.grid.At(move.Pos) != Branch {
			c.grid.set(move.Pos, Branch)
			c.branches = append(c.branches, move)
		}
	}

	goal := c.grid.Goal()
	for _, n := range c.grid.Neighbors(move.Pos, isOpenCandidate) {
		switch c.grid.At(n.Pos) {
		case Reserved:
			if n.Pos != goal {
				c.grid.set(n.Pos, Excluded)
			}
		case Unvisited:
			c.grid.set(n.Pos, Reserved)
		}
	}
}

// resume carves a reserved neighbor of a branch and walks on from it.
// It reports whether the walk ended on the goal.
func (c *carver) resume(n Neighbor) bool {
	c.carve(n.Pos)
	last := c.extendFrom(&Move{Pos: n.Pos, Direction: n.Direction})
	return last.Pos == c.grid.Goal()
}

// reservedOf returns the recorded neighbors of branch that are still reserved
// and safe to carve. Reserved cells that can no longer be carved are excluded.
func (c *carver) reservedOf(branch *Move) []Neighbor {
	var result []Neighbor
	for _, n := range branch.neighbors {
		if c.grid.At(n.Pos) != Reserved {
			continue
		}
		if !c.eligible(branch.Pos, n.Pos) {
			c.grid.set(n.Pos, Excluded)
			continue
		}
		result = append(result, n)
	}
	return result
}

// connectGoal carves what is left of the corridor when backtracking ended
// without opening the goal.
func (c *carver) connectGoal() {
	if c.grid.At(c.grid.Goal()).IsCarved() {
		return
	}
	path := c.corridor.tail()
	for _, pos := range path {
		c.carve(pos)
	}
	c.goalReached = true
	c.debugf("goal connected through %d corridor cells", len(path))
}

func (c *carver) debugf(format string, args ...any) {
	if c.logger == nil {
		return
	}
	c.logger.Debug(fmt.Sprintf(format, args...))
}

func isUnvisited(s State) bool { return s == Unvisited }

func isOpenCandidate(s State) bool { return s == Unvisited || s == Reserved }
