package model

import (
	"sort"

	"github.com/pkg/errors"
)

// Pattern is a named, immutable stamp of cells
type Pattern struct {
	name  string
	cells [][]Cell
}

// NewPattern validates rows and returns a pattern holding a copy of them
func NewPattern(name string, rows [][]Cell) (Pattern, error) {
	if name == "" {
		return Pattern{}, errors.Wrap(ErrInvalidPattern, "[NewPattern] empty name")
	}
	if _, _, err := validateMatrix(rows); err != nil {
		return Pattern{}, errors.Wrapf(err, "[NewPattern] %q", name)
	}
	cells := make([][]Cell, len(rows))
	for i, row := range rows {
		cells[i] = append([]Cell(nil), row...)
	}
	return Pattern{name: name, cells: cells}, nil
}

// MustPattern is NewPattern for static tables; it panics on invalid input
func MustPattern(name string, rows [][]Cell) Pattern {
	p, err := NewPattern(name, rows)
	if err != nil {
		panic(err)
	}
	return p
}

func (p Pattern) Name() string { return p.name }

func (p Pattern) GetWidth() int {
	if len(p.cells) == 0 {
		return 0
	}
	return len(p.cells[0])
}

func (p Pattern) GetHeight() int { return len(p.cells) }

// At returns the cell at pattern column x, row y
func (p Pattern) At(x, y int) Cell { return p.cells[y][x] }

// Registry maps pattern names to patterns
type Registry struct {
	patterns map[string]Pattern
}

// NewRegistry builds a registry from the given patterns
func NewRegistry(patterns ...Pattern) (*Registry, error) {
	r := &Registry{patterns: make(map[string]Pattern, len(patterns))}
	for _, p := range patterns {
		if err := r.Register(p); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register adds a pattern; names must be unique
func (r *Registry) Register(p Pattern) error {
	if p.GetHeight() == 0 {
		return errors.Wrap(ErrInvalidPattern, "[Register] zero pattern")
	}
	if _, ok := r.patterns[p.name]; ok {
		return errors.Wrapf(ErrDuplicatePattern, "[Register] %q", p.name)
	}
	r.patterns[p.name] = p
	return nil
}

// Lookup finds a pattern by exact name
func (r *Registry) Lookup(name string) (Pattern, error) {
	p, ok := r.patterns[name]
	if !ok {
		return Pattern{}, errors.Wrapf(ErrUnknownPattern, "[Lookup] %q", name)
	}
	return p, nil
}

// Names returns the registered pattern names in sorted order
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.patterns))
	for name := range r.patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
