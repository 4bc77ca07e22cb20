package maze

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCorridorIsMonotoneStaircase(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		g := newGrid(9, 6)
		c := newCorridor(g, rand.New(rand.NewSource(seed)))

		require.Len(t, c.cells, 9-1+6-1)
		assert.Equal(t, g.Goal(), c.cells[0])
		last := c.cells[len(c.cells)-1]
		assert.Equal(t, 1, last.X+last.Y, "corridor must end next to the origin")

		for i := 1; i < len(c.cells); i++ {
			prev, cur := c.cells[i-1], c.cells[i]
			assert.Equal(t, 1, (prev.X-cur.X)+(prev.Y-cur.Y), "step %d must move west or north", i)
			assert.Equal(t, i, c.position(cur))
		}
	}
}

func TestCorridorSingleCellIsEmpty(t *testing.T) {
	g := newGrid(1, 1)
	c := newCorridor(g, zeroRand{})

	assert.Empty(t, c.cells)
	assert.True(t, c.allows(g, CellPosition{}))
}

func TestCorridorBlocksTailOnlyContact(t *testing.T) {
	g := newGrid(3, 3)
	c := newCorridor(g, zeroRand{})
	// zeroRand walks west first: (2,2) (1,2) (0,2) (0,1)
	require.Equal(t, []CellPosition{{2, 2}, {1, 2}, {0, 2}, {0, 1}}, c.cells)

	assert.True(t, c.allows(g, CellPosition{X: 0, Y: 1}), "the tail itself may be carved")
	assert.True(t, c.allows(g, CellPosition{X: 1, Y: 1}), "touching an earlier cell shortens the corridor")
	assert.True(t, c.allows(g, CellPosition{X: 2, Y: 0}))

	c.truncate(1)
	assert.False(t, c.allows(g, CellPosition{X: 2, Y: 1}), "a second approach to the uncarved goal")
	assert.Equal(t, -1, c.position(CellPosition{X: 1, Y: 2}))
}

func TestCorridorAbsorb(t *testing.T) {
	g := newGrid(3, 3)
	c := newCorridor(g, zeroRand{})

	g.set(CellPosition{X: 0, Y: 1}, CarvedPath)
	c.absorb(g, CellPosition{X: 0, Y: 1})
	assert.Equal(t, []CellPosition{{2, 2}, {1, 2}, {0, 2}}, c.cells)

	g.set(CellPosition{X: 2, Y: 1}, CarvedPath)
	c.absorb(g, CellPosition{X: 2, Y: 1})
	assert.Equal(t, []CellPosition{{2, 2}}, c.cells)
	assert.Equal(t, []CellPosition{{2, 2}}, c.tail())

	g.set(CellPosition{X: 2, Y: 2}, CarvedPath)
	c.absorb(g, CellPosition{X: 2, Y: 2})
	assert.Empty(t, c.cells)
}

func TestConnectGoalCarvesCorridor(t *testing.T) {
	c := newTestCarver(4, 1, zeroRand{})

	c.connectGoal()

	assert.True(t, c.goalReached)
	for x := 0; x < 4; x++ {
		assert.True(t, c.grid.State(x, 0).IsCarved())
	}
}
