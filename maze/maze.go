/*
Package maze generates perfect mazes on rectangular grids.

Cells are either carved (open) or walls. Generation starts from the top-left
origin with a randomized depth-first walk; cells bordering the walk are
classified as reserved (a safe future carve target) or excluded (carving them
would close a loop). When the walk stops, recorded branch points are resumed
under a configurable BranchPolicy until none remain. The carved cells always
form a single tree that contains the bottom-right goal.

All randomness comes from the Options, so the same seed, policy and dimensions
always produce the same maze.
*/
package maze

import (
	"errors"
	"fmt"
	"math/rand"
)

var ErrInvalidDimensions = errors.New("invalid maze dimensions")

// Options configures a single maze generation.
type Options struct {
	Width  int          // Number of columns, at least 1
	Height int          // Number of rows, at least 1
	Seed   int64        // Seed for the default random source; ignored when Rand is set
	Policy BranchPolicy // How branch points are resumed
	Rand   Rand         // Optional random source overriding Seed
	Logger Logger       // Optional; receives walk terminals and a grid snapshot
}

// Maze is a finalized maze: every cell is CarvedPath, Branch or Wall.
type Maze struct {
	grid        *Grid
	seed        int64
	seeded      bool
	policy      BranchPolicy
	goalReached bool
}

// New validates opts, carves a maze and finalizes it.
func New(opts Options) (*Maze, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, opts.Width, opts.Height)
	}
	if !opts.Policy.valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPolicy, opts.Policy)
	}

	rng, seeded := opts.Rand, false
	if rng == nil {
		rng, seeded = rand.New(rand.NewSource(opts.Seed)), true
	}

	grid := newGrid(opts.Width, opts.Height)
	c := &carver{
		grid:     grid,
		rng:      rng,
		logger:   opts.Logger,
		corridor: newCorridor(grid, rng),
	}
	c.generate(opts.Policy)
	c.grid.finalize()

	m := &Maze{
		grid:        c.grid,
		seeded:      seeded,
		policy:      opts.Policy,
		goalReached: c.goalReached,
	}
	if seeded {
		m.seed = opts.Seed
	}
	return m, nil
}

// generate runs the initial walk from the origin, then drains the branches.
func (c *carver) generate(policy BranchPolicy) {
	origin := &Move{Pos: c.grid.Origin(), Direction: None}
	c.branches = append(c.branches, origin)

	last := c.extendFrom(origin)
	c.goalReached = last.Pos == c.grid.Goal()
	if c.logger != nil {
		c.logger.Debug("grid after initial walk:\n" + c.grid.Snapshot(DebugGlyphs))
	}
	c.backtrack(policy)
	c.connectGoal()
}

// Grid exposes the finalized cell states.
func (m *Maze) Grid() *Grid { return m.grid }

// Width returns the number of columns.
func (m *Maze) Width() int { return m.grid.width }

// Height returns the number of rows.
func (m *Maze) Height() int { return m.grid.height }

// Seed returns the seed the maze was generated with, or 0 when it was carved
// from an injected Rand.
func (m *Maze) Seed() int64 { return m.seed }

// Reproducible reports whether New with Seed, Policy and the same dimensions
// regenerates this maze.
func (m *Maze) Reproducible() bool { return m.seeded }

// Policy returns the branch policy the maze was generated with.
func (m *Maze) Policy() BranchPolicy { return m.policy }

// GoalReached reports whether the goal cell is open.
func (m *Maze) GoalReached() bool { return m.goalReached }
