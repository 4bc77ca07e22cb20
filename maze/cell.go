package maze

import "fmt"

// State is the carving state of a single cell.
type State uint8

const (
	Unvisited  State = iota // Unvisited has not been touched by any walk.
	Reserved                // Reserved borders exactly one carved cell.
	CarvedPath              // CarvedPath is part of the maze's open space.
	Branch                  // Branch is carved and was left while other candidates remained.
	Excluded                // Excluded would close a loop if carved; terminal.
	Wall                    // Wall is what every non-carved cell becomes once generation ends.
)

// String returns the lower-case name of the state.
func (s State) String() string {
	switch s {
	case Unvisited:
		return "unvisited"
	case Reserved:
		return "reserved"
	case CarvedPath:
		return "path"
	case Branch:
		return "branch"
	case Excluded:
		return "excluded"
	case Wall:
		return "wall"
	}
	return fmt.Sprintf("state(%d)", uint8(s))
}

// IsCarved reports whether the state is part of the maze's open space.
func (s State) IsCarved() bool {
	return s == CarvedPath || s == Branch
}

// Direction is the cardinal direction a cell was entered from its predecessor.
type Direction uint8

const (
	None Direction = iota
	North
	South
	East
	West
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case South:
		return "South"
	case East:
		return "East"
	case West:
		return "West"
	}
	return "None"
}

// CellPosition represents the position of a cell in the maze grid.
type CellPosition struct {
	X int // Column index of the cell
	Y int // Row index of the cell
}

// String formats the position as "(x,y)".
func (p CellPosition) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Neighbor is an adjacent cell tagged with the direction leading to it.
type Neighbor struct {
	Pos       CellPosition
	Direction Direction
}

// Move records a cell, the direction it was entered from, and the candidate
// neighbors seen when the walk decided where to go next.
type Move struct {
	Pos       CellPosition
	Direction Direction
	neighbors []Neighbor
}

// Neighbors returns the candidates recorded at decision time.
func (m *Move) Neighbors() []Neighbor {
	return m.neighbors
}
