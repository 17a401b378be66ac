package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/torus-life/model"
	"github.com/sheikhrachel/torus-life/utils"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("gol: ")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := run(ctx, os.Args[1:], os.Stdout)
	if errors.Is(err, flag.ErrHelp) {
		printUsage(os.Stderr, model.DefaultRegistry())
		return
	}
	if err != nil {
		log.Fatalf("%v", err)
	}
}

func newFlagSet(w io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("gol", flag.ContinueOnError)
	fs.SetOutput(w)
	config := utils.DefaultConfig()
	config.Bind(fs)
	return fs
}

// run loads the configuration, composes the initial grid and plays the game
// until it finishes or ctx is cancelled
func run(ctx context.Context, args []string, stdout io.Writer) error {
	config, err := utils.Load(args, nil)
	if err != nil {
		return err
	}
	if config.Auto {
		cols, lines, err := utils.TerminalSize(os.Stdout)
		if err != nil {
			log.Printf("auto size unavailable, keeping %dx%d: %v", config.Width, config.Height, err)
		} else {
			config.FitTerminal(cols, lines)
		}
	}
	if err = config.Validate(); err != nil {
		return err
	}

	grid, err := initializeGame(config, model.DefaultRegistry())
	if err != nil {
		return err
	}
	displayGameInfo(stdout, config, grid)

	renderer := model.NewTerminalRenderer(stdout, config.AliveGlyph, config.DeadGlyph)
	game := NewGame(config, grid, renderer)

	result, err := play(ctx, game, config.Evolutions)
	switch {
	case errors.Is(err, context.Canceled):
		log.Printf("stopped after %d generations", result.Generations)
		return nil
	case err != nil:
		return err
	case result.Stagnant:
		log.Printf("board stagnated after %d generations", result.Generations)
	}
	return nil
}

// play runs the game next to a watcher that reports a shutdown signal
func play(ctx context.Context, game *Game, steps int) (Result, error) {
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		eg     errgroup.Group
		result Result
	)
	eg.Go(func() error {
		defer cancel()
		var err error
		result, err = game.Run(runCtx, steps)
		return err
	})
	eg.Go(func() error {
		<-runCtx.Done()
		if ctx.Err() != nil {
			log.Printf("shutdown signal received")
		}
		return nil
	})

	err := eg.Wait()
	return result, err
}
