package model

import (
	"bufio"
	"io"
	"strings"
)

const (
	DefaultAliveGlyph = "*"
	DefaultDeadGlyph  = "-"

	cursorUp  = "\x1b[1A"
	eraseLine = "\x1b[2K"
)

// TerminalRenderer draws grids line by line and erases them again in place
type TerminalRenderer struct {
	out   *bufio.Writer
	alive string
	dead  string
	drawn int
}

// NewTerminalRenderer writes frames to w using the given glyphs; empty
// glyphs fall back to the defaults
func NewTerminalRenderer(w io.Writer, alive, dead string) *TerminalRenderer {
	if alive == "" {
		alive = DefaultAliveGlyph
	}
	if dead == "" {
		dead = DefaultDeadGlyph
	}
	return &TerminalRenderer{out: bufio.NewWriter(w), alive: alive, dead: dead}
}

// Display renders the grid, one terminal line per row
func (r *TerminalRenderer) Display(g *Grid) error {
	var line strings.Builder
	for y := range g.height {
		line.Reset()
		for x := range g.width {
			if g.cells[y][x] == Alive {
				line.WriteString(r.alive)
			} else {
				line.WriteString(r.dead)
			}
		}
		line.WriteByte('\n')
		if _, err := r.out.WriteString(line.String()); err != nil {
			return err
		}
	}
	r.drawn += g.height
	return r.out.Flush()
}

// Status prints a single line below the grid
func (r *TerminalRenderer) Status(text string) error {
	if _, err := r.out.WriteString(text + "\n"); err != nil {
		return err
	}
	r.drawn++
	return r.out.Flush()
}

// Clear moves the cursor up over everything drawn since the last Clear,
// erasing each line
func (r *TerminalRenderer) Clear() error {
	for range r.drawn {
		r.out.WriteString(cursorUp)
		r.out.WriteString(eraseLine)
	}
	r.drawn = 0
	return r.out.Flush()
}
