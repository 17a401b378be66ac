package model

import (
	"math/rand/v2"

	"github.com/pkg/errors"
)

// Builder composes the initial grid by stamping patterns onto a blank board
type Builder struct {
	grid     *Grid
	registry *Registry
}

// NewBuilder starts from an all-dead grid of the given size
func NewBuilder(width, height int, registry *Registry) (*Builder, error) {
	grid, err := NewGrid(width, height)
	if err != nil {
		return nil, errors.Wrap(err, "[NewBuilder]")
	}
	if registry == nil {
		registry = &Registry{patterns: map[string]Pattern{}}
	}
	return &Builder{grid: grid, registry: registry}, nil
}

// Randomize sets every cell to a random value drawn from a PCG source seeded with seed
func (b *Builder) Randomize(seed uint64) {
	rng := rand.New(rand.NewPCG(seed, 0))
	for y := range b.grid.height {
		for x := range b.grid.width {
			b.grid.cells[y][x] = Cell(rng.IntN(2))
		}
	}
}

// Place copies p onto the grid with its top-left corner at column x, row y.
// The whole footprint is checked first; on error the grid is unchanged.
func (b *Builder) Place(p Pattern, x, y int) error {
	w, h := p.GetWidth(), p.GetHeight()
	if w == 0 || h == 0 {
		return errors.Wrap(ErrInvalidPattern, "[Place] zero pattern")
	}
	if x < 0 || y < 0 || x+w > b.grid.width || y+h > b.grid.height {
		return errors.Wrapf(ErrOutOfBounds,
			"[Place] %q (%dx%d) at (%d,%d) on %dx%d grid",
			p.name, w, h, x, y, b.grid.width, b.grid.height)
	}

	for r := range h {
		copy(b.grid.cells[y+r][x:x+w], p.cells[r])
	}
	return nil
}

// PlaceNamed looks name up in the registry and places it
func (b *Builder) PlaceNamed(name string, x, y int) error {
	p, err := b.registry.Lookup(name)
	if err != nil {
		return errors.Wrap(err, "[PlaceNamed]")
	}
	return b.Place(p, x, y)
}

// AddGlider places the registered glider
func (b *Builder) AddGlider(x, y int) error {
	return b.PlaceNamed("glider", x, y)
}

// ApplyPlacements places each record in order, stopping at the first failure
func (b *Builder) ApplyPlacements(placements []Placement) error {
	for i, pl := range placements {
		if err := b.PlaceNamed(pl.Pattern, pl.X, pl.Y); err != nil {
			return errors.Wrapf(err, "[ApplyPlacements] record %d", i+1)
		}
	}
	return nil
}

// Build returns the composed grid
func (b *Builder) Build() *Grid {
	return b.grid
}
