package utils

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	config, err := Load(nil, map[string]string{})
	if err != nil {
		t.Fatal(err)
	}
	want := DefaultConfig()
	if config != want {
		t.Fatalf("Load() = %+v, want %+v", config, want)
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := writeConfig(t, `{"width": 40, "height": 20, "glider": true, "tick_rate": 50000000}`)
	config, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if config.Width != 40 || config.Height != 20 || !config.Glider {
		t.Fatalf("LoadConfig() = %+v", config)
	}
	if config.TickRate != 50*time.Millisecond {
		t.Fatalf("tick rate = %s", config.TickRate)
	}
	if config.Evolutions != DefaultConfig().Evolutions {
		t.Fatal("unset fields should keep their defaults")
	}

	if _, err = LoadConfig(writeConfig(t, `{"width": "wide"}`)); err == nil {
		t.Fatal("bad JSON should fail")
	}
}

func TestLoadLayering(t *testing.T) {
	path := writeConfig(t, `{"width": 40, "height": 20, "evolutions": 5}`)
	environ := map[string]string{
		"GOL_HEIGHT":     "30",
		"GOL_EVOLUTIONS": "7",
		"GOL_TICK_RATE":  "10ms",
		"GOL_RANDOM":     "true",
		"GOL_SEED":       "99",
	}
	args := []string{"-config", path, "-e", "9", "-t", "0.05", "-p", "placements.csv"}

	config, err := Load(args, environ)
	if err != nil {
		t.Fatal(err)
	}

	if config.Width != 40 {
		t.Errorf("width = %d, want 40 from file", config.Width)
	}
	if config.Height != 30 {
		t.Errorf("height = %d, want 30 from env", config.Height)
	}
	if config.Evolutions != 9 {
		t.Errorf("evolutions = %d, want 9 from flags", config.Evolutions)
	}
	if config.TickRate != 50*time.Millisecond {
		t.Errorf("tick rate = %s, want 50ms from flags", config.TickRate)
	}
	if !config.Random || config.Seed != 99 {
		t.Errorf("random = %v seed = %d", config.Random, config.Seed)
	}
	if config.PlacementFile != "placements.csv" || config.ConfigFile != path {
		t.Errorf("files = %q %q", config.PlacementFile, config.ConfigFile)
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	path := writeConfig(t, `{"width": 12}`)
	config, err := Load([]string{"-rows", "8"}, map[string]string{"GOL_CONFIG": path})
	if err != nil {
		t.Fatal(err)
	}
	if config.Width != 12 || config.Height != 8 {
		t.Fatalf("config = %dx%d, want 12x8", config.Width, config.Height)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load([]string{"-nope"}, map[string]string{}); err == nil {
		t.Fatal("unknown flag should fail")
	}
	if _, err := Load([]string{"-t", "soon"}, map[string]string{}); err == nil {
		t.Fatal("bad tick rate should fail")
	}
	if _, err := Load(nil, map[string]string{"GOL_WIDTH": "wide"}); err == nil {
		t.Fatal("bad env value should fail")
	}
	if _, err := Load([]string{"-config", filepath.Join(t.TempDir(), "missing.json")}, map[string]string{}); err == nil {
		t.Fatal("missing config file should fail")
	}
	if _, err := Load([]string{"-h"}, map[string]string{}); !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("-h err = %v, want flag.ErrHelp", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		valid  bool
	}{
		{name: "defaults", mutate: func(*Config) {}, valid: true},
		{name: "zero width", mutate: func(c *Config) { c.Width = 0 }},
		{name: "negative height", mutate: func(c *Config) { c.Height = -2 }},
		{name: "negative evolutions", mutate: func(c *Config) { c.Evolutions = -1 }},
		{name: "zero evolutions", mutate: func(c *Config) { c.Evolutions = 0 }, valid: true},
		{name: "negative tick", mutate: func(c *Config) { c.TickRate = -time.Second }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.mutate(&config)
			err := config.Validate()
			if tt.valid && err != nil {
				t.Fatalf("Validate() = %v", err)
			}
			if !tt.valid && !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("Validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestFitTerminal(t *testing.T) {
	config := DefaultConfig()
	config.FitTerminal(120, 40)
	if config.Width != 120 || config.Height != 37 {
		t.Fatalf("FitTerminal gave %dx%d", config.Width, config.Height)
	}
}
