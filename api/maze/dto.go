// Package mazeapi exposes maze generation over HTTP.
package mazeapi

// MazeQuery holds the query parameters of a maze request. Omitted dimensions
// fall back to the controller defaults.
type MazeQuery struct {
	Width  *int   `form:"width"`
	Height *int   `form:"height"`
	Seed   *int64 `form:"seed"`
	Policy string `form:"policy"`
	Style  string `form:"style"`
	Glyphs string `form:"glyphs"`
}

// MazeResponse describes a generated maze.
type MazeResponse struct {
	ID        string     `json:"id"`
	Width     int        `json:"width"`
	Height    int        `json:"height"`
	Seed      int64      `json:"seed"`
	Policy    string     `json:"policy"`
	Rendering string     `json:"rendering"`
	Rows      [][]string `json:"rows"` // state name per cell, row-major
}
