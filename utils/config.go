package utils

import (
	"encoding/json"
	"flag"
	"io"
	"math"
	"os"
	"strconv"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
)

// EnvPrefix is prepended to every environment variable the config reads
const EnvPrefix = "GOL_"

// ErrInvalidConfig is returned by Validate
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the configuration for the game
type Config struct {
	Width            int           `json:"width" env:"WIDTH"`
	Height           int           `json:"height" env:"HEIGHT"`
	Evolutions       int           `json:"evolutions" env:"EVOLUTIONS"`
	TickRate         time.Duration `json:"tick_rate" env:"TICK_RATE"`
	Auto             bool          `json:"auto" env:"AUTO"`
	Glider           bool          `json:"glider" env:"GLIDER"`
	Random           bool          `json:"random" env:"RANDOM"`
	Seed             int64         `json:"seed" env:"SEED"`
	PlacementFile    string        `json:"placement_file" env:"PLACEMENT_FILE"`
	StopOnStagnation bool          `json:"stop_on_stagnation" env:"STOP_ON_STAGNATION"`
	ShowStats        bool          `json:"show_stats" env:"SHOW_STATS"`
	UseMemoryPool    bool          `json:"use_memory_pool" env:"USE_MEMORY_POOL"`
	AliveGlyph       string        `json:"alive_glyph" env:"ALIVE_GLYPH"`
	DeadGlyph        string        `json:"dead_glyph" env:"DEAD_GLYPH"`

	// ConfigFile is the optional JSON file layered under env and flags
	ConfigFile string `json:"-" env:"CONFIG"`
}

// DefaultConfig returns the defaults of the command-line tool
func DefaultConfig() Config {
	return Config{
		Width:         100,
		Height:        50,
		Evolutions:    16,
		TickRate:      300 * time.Millisecond,
		UseMemoryPool: true,
		AliveGlyph:    "*",
		DeadGlyph:     "-",
	}
}

// LoadConfig loads configuration from JSON file on top of the defaults
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()
	err := config.mergeFile(filename)
	return config, err
}

func (c *Config) mergeFile(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, c); err != nil {
		return errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}
	return nil
}

// Bind attaches the configuration to the provided FlagSet
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.ConfigFile, "config", c.ConfigFile, "Optional JSON configuration file.")

	fs.IntVar(&c.Evolutions, "e", c.Evolutions, "The number of steps to run the game of life for.")
	fs.IntVar(&c.Evolutions, "evolutions", c.Evolutions, "The number of steps to run the game of life for.")

	tick := (*secondsValue)(&c.TickRate)
	fs.Var(tick, "t", "The time between ticks in seconds. Try 0.05 to watch the game evolve faster.")
	fs.Var(tick, "tick_rate", "The time between ticks in seconds. Try 0.05 to watch the game evolve faster.")

	fs.IntVar(&c.Width, "w", c.Width, "The width (number of columns) of the game.")
	fs.IntVar(&c.Width, "width", c.Width, "The width (number of columns) of the game.")
	fs.IntVar(&c.Height, "r", c.Height, "The height (number of rows) of the game.")
	fs.IntVar(&c.Height, "rows", c.Height, "The height (number of rows) of the game.")

	fs.BoolVar(&c.Auto, "a", c.Auto, "Size the game to the terminal, overrides -r and -w.")
	fs.BoolVar(&c.Auto, "auto", c.Auto, "Size the game to the terminal, overrides -r and -w.")

	fs.BoolVar(&c.Glider, "glider", c.Glider, "Adds a simple glider at (1,1).")
	fs.BoolVar(&c.Random, "random", c.Random, "Randomize the initial layout.")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "Random seed used with -random, 0 picks one from the clock.")

	fs.StringVar(&c.PlacementFile, "p", c.PlacementFile, "CSV file of pattern,x,y placements. Patterns must fit inside the grid.")
	fs.StringVar(&c.PlacementFile, "placement_file", c.PlacementFile, "CSV file of pattern,x,y placements. Patterns must fit inside the grid.")

	fs.BoolVar(&c.StopOnStagnation, "stop_on_stagnation", c.StopOnStagnation, "Stop early once the board repeats itself.")
	fs.BoolVar(&c.ShowStats, "stats", c.ShowStats, "Print a status line under every generation.")
	fs.BoolVar(&c.UseMemoryPool, "pool", c.UseMemoryPool, "Recycle generation buffers.")
	fs.StringVar(&c.AliveGlyph, "alive", c.AliveGlyph, "Glyph drawn for living cells.")
	fs.StringVar(&c.DeadGlyph, "dead", c.DeadGlyph, "Glyph drawn for dead cells.")
}

// Load layers defaults, the JSON file, GOL_ environment variables and finally
// the command-line args. environ maps variable names to values; a nil map
// reads the process environment.
func Load(args []string, environ map[string]string) (Config, error) {
	// first pass only discovers -config
	probe := DefaultConfig()
	probeFlags := flag.NewFlagSet("probe", flag.ContinueOnError)
	probeFlags.SetOutput(io.Discard)
	probe.Bind(probeFlags)
	if err := probeFlags.Parse(args); err != nil {
		return probe, errors.Wrap(err, "[Load] failed to parse flags")
	}

	if environ == nil {
		environ = env.ToMap(os.Environ())
	}
	config := DefaultConfig()
	opts := env.Options{Prefix: EnvPrefix, Environment: environ}

	configFile := probe.ConfigFile
	if configFile == "" {
		configFile = environ[EnvPrefix+"CONFIG"]
	}
	if configFile != "" {
		if err := config.mergeFile(configFile); err != nil {
			return config, err
		}
	}

	if err := env.ParseWithOptions(&config, opts); err != nil {
		return config, errors.Wrap(err, "[Load] failed to parse environment")
	}

	fs := flag.NewFlagSet("gol", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	config.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return config, errors.Wrap(err, "[Load] failed to parse flags")
	}
	config.ConfigFile = configFile
	return config, nil
}

// FitTerminal sizes the grid to a terminal of cols x lines, leaving three
// lines for the banner and prompt
func (c *Config) FitTerminal(cols, lines int) {
	c.Width = cols
	c.Height = lines - 3
}

// Validate rejects settings the game cannot run with
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return errors.Wrapf(ErrInvalidConfig, "grid size %dx%d must be positive", c.Width, c.Height)
	case c.Evolutions < 0:
		return errors.Wrapf(ErrInvalidConfig, "evolutions %d must not be negative", c.Evolutions)
	case c.TickRate < 0:
		return errors.Wrapf(ErrInvalidConfig, "tick rate %s must not be negative", c.TickRate)
	}
	return nil
}

// secondsValue is a flag.Value reading a float number of seconds into a Duration
type secondsValue time.Duration

func (s *secondsValue) String() string {
	return strconv.FormatFloat(time.Duration(*s).Seconds(), 'f', -1, 64)
}

func (s *secondsValue) Set(v string) error {
	secs, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return errors.Wrapf(err, "invalid seconds %q", v)
	}
	*s = secondsValue(time.Duration(math.Round(secs * float64(time.Second))))
	return nil
}
