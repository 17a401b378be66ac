package model

import (
	"crypto/md5"
	"fmt"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/torus-life/rules"
)

// Cell is a single grid value, always Dead or Alive
type Cell = uint8

const (
	Dead  Cell = rules.Dead
	Alive Cell = rules.Alive
)

// Grid represents one generation of the board, indexed [row][column]
type Grid struct {
	width  int
	height int
	cells  [][]Cell
}

// NewGrid creates an all-dead grid with the specified dimensions
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "[NewGrid] %dx%d", width, height)
	}
	return newGrid(width, height), nil
}

func newGrid(width, height int) *Grid {
	cells := make([][]Cell, height)
	for i := range cells {
		cells[i] = make([]Cell, width)
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  cells,
	}
}

// GridFromRows builds a grid from a rectangular matrix of 0/1 values.
// The rows are copied.
func GridFromRows(rows [][]Cell) (*Grid, error) {
	width, height, err := validateMatrix(rows)
	if err != nil {
		return nil, errors.Wrap(err, "[GridFromRows]")
	}
	g := newGrid(width, height)
	for y, row := range rows {
		copy(g.cells[y], row)
	}
	return g, nil
}

// GetWidth returns the width of the grid
func (g *Grid) GetWidth() int {
	return g.width
}

// GetHeight returns the height of the grid
func (g *Grid) GetHeight() int {
	return g.height
}

// Reset resizes the grid and kills every cell
func (g *Grid) Reset(width, height int) {
	g.width = width
	g.height = height

	if len(g.cells) != height {
		g.cells = make([][]Cell, height)
	}
	for i := range g.cells {
		if len(g.cells[i]) != width {
			g.cells[i] = make([]Cell, width)
			continue
		}
		clear(g.cells[i])
	}
}

// Clear kills all cells
func (g *Grid) Clear() {
	for y := range g.height {
		clear(g.cells[y])
	}
}

// Set writes a cell value, ignoring coordinates outside the grid
func (g *Grid) Set(x, y int, cell Cell) {
	if g.contains(x, y) {
		g.cells[y][x] = cell
	}
}

// Get returns the value of a cell, Dead outside the grid
func (g *Grid) Get(x, y int) Cell {
	if !g.contains(x, y) {
		return Dead
	}
	return g.cells[y][x]
}

// IsAlive reports whether the cell at x, y is alive
func (g *Grid) IsAlive(x, y int) bool {
	return g.Get(x, y) == Alive
}

func (g *Grid) contains(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Rows returns a copy of the cell matrix
func (g *Grid) Rows() [][]Cell {
	rows := make([][]Cell, g.height)
	for y := range g.height {
		rows[y] = append([]Cell(nil), g.cells[y]...)
	}
	return rows
}

// Clone returns an independent copy of the grid
func (g *Grid) Clone() *Grid {
	return &Grid{width: g.width, height: g.height, cells: g.Rows()}
}

// Equal reports whether both grids have the same dimensions and cells
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.width != other.width || g.height != other.height {
		return false
	}
	for y := range g.height {
		for x := range g.width {
			if g.cells[y][x] != other.cells[y][x] {
				return false
			}
		}
	}
	return true
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for y := range g.height {
		for x := range g.width {
			count += int(g.cells[y][x])
		}
	}
	return
}

// GetGridHash returns an MD5 hash of the current grid state
func (g *Grid) GetGridHash() string {
	h := md5.New()
	fmt.Fprintf(h, "%dx%d:", g.width, g.height)
	for y := range g.height {
		h.Write(g.cells[y])
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// String renders the grid with '*' for living and '-' for dead cells
func (g *Grid) String() string {
	buf := make([]byte, 0, (g.width+1)*g.height)
	for y := range g.height {
		for x := range g.width {
			if g.cells[y][x] == Alive {
				buf = append(buf, '*')
			} else {
				buf = append(buf, '-')
			}
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}

// validateMatrix checks that rows is non-empty, rectangular and binary
func validateMatrix(rows [][]Cell) (width, height int, err error) {
	height = len(rows)
	if height == 0 || len(rows[0]) == 0 {
		return 0, 0, errors.Wrap(ErrInvalidPattern, "empty matrix")
	}
	width = len(rows[0])
	for y, row := range rows {
		if len(row) != width {
			return 0, 0, errors.Wrapf(ErrInvalidPattern, "row %d has %d cells, want %d", y, len(row), width)
		}
		for x, cell := range row {
			if cell != Dead && cell != Alive {
				return 0, 0, errors.Wrapf(ErrInvalidPattern, "cell (%d,%d) has value %d", x, y, cell)
			}
		}
	}
	return width, height, nil
}
