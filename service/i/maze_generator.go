package i

import (
	"github.com/beka-birhanu/vinom-labyrinth/maze"
	"github.com/google/uuid"
)

// MazeRequest carries the construction parameters of one maze. Empty names
// select the defaults; a nil Seed asks the generator to pick one.
type MazeRequest struct {
	Width  int
	Height int
	Seed   *int64
	Policy string
	Style  string
	Glyphs string
}

// GeneratedMaze is a finalized maze together with its identity and rendering.
type GeneratedMaze struct {
	ID        uuid.UUID
	Maze      *maze.Maze
	Rendering string
}

// MazeGenerator builds and renders mazes.
type MazeGenerator interface {
	// Generate validates the request, carves a maze and renders it.
	Generate(req MazeRequest) (*GeneratedMaze, error)
}
