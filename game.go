package main

import (
	"context"
	"time"

	"github.com/sheikhrachel/torus-life/model"
	"github.com/sheikhrachel/torus-life/utils"
)

// Renderer draws generations to the terminal
type Renderer interface {
	Display(g *model.Grid) error
	Status(text string) error
	Clear() error
}

// Result summarises a finished run
type Result struct {
	Generations int
	Stagnant    bool
}

// Game drives the grid through the engine one tick at a time
type Game struct {
	grid      *model.Grid
	renderer  Renderer
	pool      *model.GridPool
	stats     *utils.Stats
	history   *model.History
	tickRate  time.Duration
	showStats bool
}

// NewGame wires the initial grid and renderer according to config
func NewGame(config utils.Config, grid *model.Grid, renderer Renderer) *Game {
	game := &Game{
		grid:      grid,
		renderer:  renderer,
		stats:     utils.NewStats(),
		tickRate:  config.TickRate,
		showStats: config.ShowStats,
	}
	if config.UseMemoryPool {
		game.pool = model.NewGridPool()
	}
	if config.StopOnStagnation {
		game.history = &model.History{}
	}
	return game
}

// Grid returns the current generation
func (g *Game) Grid() *model.Grid {
	return g.grid
}

// Run advances and draws steps generations, sleeping tickRate after each.
// It stops early when ctx is done or, if enabled, when the board stagnates.
func (g *Game) Run(ctx context.Context, steps int) (Result, error) {
	var result Result
	lastFrame := time.Now()

	for step := range steps {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		if step > 0 {
			if err := g.renderer.Clear(); err != nil {
				return result, err
			}
		}

		if g.history != nil {
			g.history.Record(g.grid)
		}
		next := g.grid.NextGeneration(g.pool)
		model.GridToPool(g.grid, g.pool)
		g.grid = next
		result.Generations++

		if err := g.renderer.Display(g.grid); err != nil {
			return result, err
		}

		now := time.Now()
		g.stats.Update(result.Generations, g.grid.CountLivingCells(), now.Sub(lastFrame))
		lastFrame = now
		if g.showStats {
			if err := g.renderer.Status(g.stats.String()); err != nil {
				return result, err
			}
		}

		if g.history != nil && g.history.IsStagnant(g.grid) {
			result.Stagnant = true
			return result, nil
		}

		if err := sleep(ctx, g.tickRate); err != nil {
			return result, err
		}
	}
	return result, nil
}

// Stats returns the running statistics
func (g *Game) Stats() *utils.Stats {
	return g.stats
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
