package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/beka-birhanu/vinom-labyrinth/maze"
	"github.com/beka-birhanu/vinom-labyrinth/service/i"
	"github.com/google/uuid"
)

var ErrNilLogger = errors.New("maze service requires a logger")

// MazeService generates mazes and keeps a record of every run in its log.
// Implements i.MazeGenerator.
type MazeService struct {
	logger     i.Logger
	seedSource func() int64
}

// Config holds the dependencies of a MazeService.
type Config struct {
	Logger     i.Logger
	SeedSource func() int64 // Picks seeds for requests without one; defaults to the clock
}

// NewMazeService creates a MazeService from c.
func NewMazeService(c *Config) (*MazeService, error) {
	if c == nil || c.Logger == nil {
		return nil, ErrNilLogger
	}

	seedSource := c.SeedSource
	if seedSource == nil {
		seedSource = func() int64 { return time.Now().UnixNano() }
	}

	return &MazeService{
		logger:     c.Logger,
		seedSource: seedSource,
	}, nil
}

// Generate validates req, carves a maze and renders it.
func (s *MazeService) Generate(req i.MazeRequest) (*i.GeneratedMaze, error) {
	policy, err := maze.ParsePolicy(req.Policy)
	if err != nil {
		return nil, err
	}
	style, err := maze.ParseStyle(req.Style)
	if err != nil {
		return nil, err
	}
	glyphs, err := maze.ParseGlyphs(req.Glyphs)
	if err != nil {
		return nil, err
	}

	seed := s.seedSource()
	if req.Seed != nil {
		seed = *req.Seed
	}

	m, err := maze.New(maze.Options{
		Width:  req.Width,
		Height: req.Height,
		Seed:   seed,
		Policy: policy,
		Logger: s.logger,
	})
	if err != nil {
		s.logger.Error(fmt.Sprintf("creating maze: %s", err))
		return nil, err
	}

	rendering, err := m.Text(maze.RenderOptions{Style: style, Glyphs: glyphs})
	if err != nil {
		return nil, err
	}

	generated := &i.GeneratedMaze{
		ID:        uuid.New(),
		Maze:      m,
		Rendering: rendering,
	}
	s.logger.Info(fmt.Sprintf("generated maze %s: %dx%d seed=%d policy=%s open=%d",
		generated.ID, m.Width(), m.Height(), m.Seed(), m.Policy(), m.Grid().CarvedCount()))
	return generated, nil
}
