package mazeapi

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/beka-birhanu/vinom-labyrinth/maze"
	"github.com/beka-birhanu/vinom-labyrinth/service/i"
	"github.com/gin-gonic/gin"
)

// MazeController serves generated mazes.
type MazeController struct {
	generator     i.MazeGenerator
	defaultWidth  int
	defaultHeight int
	maxDimension  int
}

// NewMazeController initializes a MazeController. Requests that omit a
// dimension use defaultWidth / defaultHeight; requests for a side longer than
// maxDimension are rejected.
func NewMazeController(g i.MazeGenerator, defaultWidth, defaultHeight, maxDimension int) (*MazeController, error) {
	if g == nil {
		return nil, errors.New("maze controller requires a generator")
	}
	if maxDimension <= 0 {
		return nil, fmt.Errorf("maze controller max dimension must be positive, got %d", maxDimension)
	}
	return &MazeController{
		generator:     g,
		defaultWidth:  defaultWidth,
		defaultHeight: defaultHeight,
		maxDimension:  maxDimension,
	}, nil
}

// RegisterPublic registers public routes.
func (mc *MazeController) RegisterPublic(route *gin.RouterGroup) {
	mazes := route.Group("/maze")
	{
		mazes.GET("", mc.generate)
		mazes.GET("/text", mc.generateText)
	}
}

// generate responds with the maze as JSON.
func (mc *MazeController) generate(ctx *gin.Context) {
	generated, ok := mc.build(ctx)
	if !ok {
		return
	}

	m := generated.Maze
	rows := make([][]string, m.Height())
	for y, states := range m.Grid().Rows() {
		rows[y] = make([]string, len(states))
		for x, s := range states {
			rows[y][x] = s.String()
		}
	}

	ctx.JSON(http.StatusOK, &MazeResponse{
		ID:        generated.ID.String(),
		Width:     m.Width(),
		Height:    m.Height(),
		Seed:      m.Seed(),
		Policy:    m.Policy().String(),
		Rendering: generated.Rendering,
		Rows:      rows,
	})
}

// generateText responds with the rendering only.
func (mc *MazeController) generateText(ctx *gin.Context) {
	generated, ok := mc.build(ctx)
	if !ok {
		return
	}
	ctx.Header("X-Maze-ID", generated.ID.String())
	ctx.String(http.StatusOK, generated.Rendering)
}

func (mc *MazeController) build(ctx *gin.Context) (*i.GeneratedMaze, bool) {
	var query MazeQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}

	req := i.MazeRequest{
		Width:  mc.defaultWidth,
		Height: mc.defaultHeight,
		Seed:   query.Seed,
		Policy: query.Policy,
		Style:  query.Style,
		Glyphs: query.Glyphs,
	}
	if query.Width != nil {
		req.Width = *query.Width
	}
	if query.Height != nil {
		req.Height = *query.Height
	}
	if max(req.Width, req.Height) > mc.maxDimension {
		err := fmt.Errorf("%w: %dx%d exceeds %d per side", maze.ErrInvalidDimensions, req.Width, req.Height, mc.maxDimension)
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}

	generated, err := mc.generator.Generate(req)
	if err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return nil, false
	}
	return generated, true
}

// statusFor maps generation errors to HTTP status codes.
func statusFor(err error) int {
	for _, target := range []error{
		maze.ErrInvalidDimensions,
		maze.ErrUnknownPolicy,
		maze.ErrUnknownStyle,
		maze.ErrUnknownGlyphs,
		maze.ErrGlyphWidth,
	} {
		if errors.Is(err, target) {
			return http.StatusBadRequest
		}
	}
	return http.StatusInternalServerError
}
