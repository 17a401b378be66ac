package model

import "github.com/sheikhrachel/torus-life/rules"

// neighborOffsets lists the eight (dx, dy) steps around a cell
var neighborOffsets = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Wrap maps any index onto [0, n) the way a torus does
func Wrap(i, n int) int {
	return ((i % n) + n) % n
}

// CountNeighbors counts the living cells around x, y with toroidal wrapping.
// On grids narrower or shorter than three cells the same cell can be counted
// more than once, including the cell itself.
func (g *Grid) CountNeighbors(x, y int) int {
	count := 0
	for _, off := range neighborOffsets {
		count += int(g.cells[Wrap(y+off[1], g.height)][Wrap(x+off[0], g.width)])
	}
	return count
}

// NextGeneration calculates the next generation into a fresh grid, taken from
// pool when one is given. The receiver is never modified.
func (g *Grid) NextGeneration(pool *GridPool) *Grid {
	var next *Grid
	if pool != nil {
		next = pool.Get(g.width, g.height)
	} else {
		next = newGrid(g.width, g.height)
	}

	for y := range g.height {
		for x := range g.width {
			next.cells[y][x] = rules.ApplyConwayRules(g.CountNeighbors(x, y), g.cells[y][x])
		}
	}
	return next
}

// Next returns the generation following g
func Next(g *Grid) *Grid {
	return g.NextGeneration(nil)
}

// Evolve advances g by steps generations and returns the last one.
// With steps <= 0 it returns a copy of g.
func Evolve(g *Grid, steps int) *Grid {
	current := g.Clone()
	for range steps {
		current = Next(current)
	}
	return current
}
