package main

import (
	"fmt"
	"io"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/torus-life/model"
	"github.com/sheikhrachel/torus-life/utils"
)

const banner = "Conway's Game of Life https://en.wikipedia.org/wiki/Conway%27s_Game_of_Life"

// initializeGame composes the initial grid: random fill first, then the
// glider, then the placement file records in order
func initializeGame(config utils.Config, registry *model.Registry) (*model.Grid, error) {
	builder, err := model.NewBuilder(config.Width, config.Height, registry)
	if err != nil {
		return nil, errors.Wrap(err, "[initializeGame]")
	}

	if config.Random {
		builder.Randomize(resolveSeed(config.Seed))
	}
	if config.Glider {
		if err = builder.AddGlider(1, 1); err != nil {
			return nil, errors.Wrap(err, "[initializeGame] failed to add glider")
		}
	}
	if config.PlacementFile != "" {
		placements, err := model.LoadPlacementFile(config.PlacementFile)
		if err != nil {
			return nil, errors.Wrap(err, "[initializeGame]")
		}
		if err = builder.ApplyPlacements(placements); err != nil {
			return nil, errors.Wrapf(err, "[initializeGame] placement file %s", config.PlacementFile)
		}
	}

	return builder.Build(), nil
}

// resolveSeed picks a clock-based seed when none was configured
func resolveSeed(seed int64) uint64 {
	if seed == 0 {
		return uint64(time.Now().UnixNano())
	}
	return uint64(seed)
}

// displayGameInfo shows the initial game information
func displayGameInfo(w io.Writer, config utils.Config, grid *model.Grid) {
	fmt.Fprintln(w, banner)
	if config.ShowStats {
		fmt.Fprintf(w, "Grid: %dx%d | Initial living cells: %d | Generations: %d\n",
			grid.GetWidth(), grid.GetHeight(), grid.CountLivingCells(), config.Evolutions)
	}
}

// printUsage lists the flags and the registered pattern names
func printUsage(w io.Writer, registry *model.Registry) {
	fmt.Fprintln(w, "Runs Conway's game of life in the terminal.")
	fmt.Fprintln(w)
	fs := newFlagSet(w)
	fs.PrintDefaults()
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Patterns: %v\n", registry.Names())
}
