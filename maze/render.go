package maze

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// RenderStyle controls the framing of a rendered maze.
type RenderStyle uint8

const (
	StyleBordered RenderStyle = iota // surround the grid with a ring of wall glyphs
	StyleCompact                     // grid cells only
)

var (
	ErrUnknownStyle  = errors.New("unknown render style")
	ErrUnknownGlyphs = errors.New("unknown glyph set")
	ErrGlyphWidth    = errors.New("wall and path glyphs must be non-empty and equally wide")
)

// Glyphs are the fixed-width strings drawn for each cell.
type Glyphs struct {
	Wall string
	Path string
}

var (
	UnicodeGlyphs = Glyphs{Wall: "▓▓", Path: "▫▫"}
	ASCIIGlyphs   = Glyphs{Wall: "##", Path: "  "}
)

// RenderOptions selects the framing and glyph set. The zero value renders a
// bordered maze with UnicodeGlyphs.
type RenderOptions struct {
	Style  RenderStyle
	Glyphs Glyphs
}

// ParseStyle maps "bordered" or "compact" to a RenderStyle.
func ParseStyle(name string) (RenderStyle, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "bordered", "":
		return StyleBordered, nil
	case "compact":
		return StyleCompact, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStyle, name)
}

// ParseGlyphs maps "unicode" or "ascii" to a glyph set.
func ParseGlyphs(name string) (Glyphs, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "unicode", "":
		return UnicodeGlyphs, nil
	case "ascii":
		return ASCIIGlyphs, nil
	}
	return Glyphs{}, fmt.Errorf("%w: %q", ErrUnknownGlyphs, name)
}

func (g Glyphs) validate() error {
	wall, path := utf8.RuneCountInString(g.Wall), utf8.RuneCountInString(g.Path)
	if wall == 0 || wall != path {
		return fmt.Errorf("%w: %q/%q", ErrGlyphWidth, g.Wall, g.Path)
	}
	return nil
}

// Text renders the maze to a string.
func (m *Maze) Text(opts RenderOptions) (string, error) {
	if opts.Style > StyleCompact {
		return "", fmt.Errorf("%w: %d", ErrUnknownStyle, opts.Style)
	}
	if opts.Glyphs == (Glyphs{}) {
		opts.Glyphs = UnicodeGlyphs
	}
	if err := opts.Glyphs.validate(); err != nil {
		return "", err
	}

	var b strings.Builder
	cols := m.grid.width
	if opts.Style == StyleBordered {
		cols += 2
	}
	border := strings.Repeat(opts.Glyphs.Wall, cols) + "\n"

	if opts.Style == StyleBordered {
		b.WriteString(border)
	}
	for y := 0; y < m.grid.height; y++ {
		if opts.Style == StyleBordered {
			b.WriteString(opts.Glyphs.Wall)
		}
		for x := 0; x < m.grid.width; x++ {
			if m.grid.IsOpen(x, y) {
				b.WriteString(opts.Glyphs.Path)
			} else {
				b.WriteString(opts.Glyphs.Wall)
			}
		}
		if opts.Style == StyleBordered {
			b.WriteString(opts.Glyphs.Wall)
		}
		b.WriteByte('\n')
	}
	if opts.Style == StyleBordered {
		b.WriteString(border)
	}

	return b.String(), nil
}

// Render writes the maze to w.
func (m *Maze) Render(w io.Writer, opts RenderOptions) error {
	text, err := m.Text(opts)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, text)
	return err
}

// String provides a bordered textual representation of the maze.
func (m *Maze) String() string {
	text, _ := m.Text(RenderOptions{})
	return text
}

// StateGlyphs draws each cell state with its own glyph. Used to inspect a grid
// while it is still being carved.
type StateGlyphs map[State]string

// DebugGlyphs tells every carving state apart.
var DebugGlyphs = StateGlyphs{
	Unvisited:  "__",
	Reserved:   "ûû",
	CarvedPath: "▫▫",
	Branch:     "++",
	Excluded:   "ÛÛ",
	Wall:       "▓▓",
}

// Snapshot renders the grid with one glyph per state, framed by the Wall glyph.
// States missing from glyphs are drawn as "??".
func (g *Grid) Snapshot(glyphs StateGlyphs) string {
	glyph := func(s State) string {
		if v, ok := glyphs[s]; ok {
			return v
		}
		return "??"
	}

	var b strings.Builder
	border := strings.Repeat(glyph(Wall), g.width+2) + "\n"
	b.WriteString(border)
	for y := 0; y < g.height; y++ {
		b.WriteString(glyph(Wall))
		for x := 0; x < g.width; x++ {
			b.WriteString(glyph(g.State(x, y)))
		}
		b.WriteString(glyph(Wall))
		b.WriteByte('\n')
	}
	b.WriteString(border)
	return b.String()
}
