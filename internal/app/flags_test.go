package app

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"colony/internal/core"
	"colony/internal/loader"
	"colony/internal/sims/life"
)

func TestBindParsesFlags(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	err := fs.Parse([]string{"-rows", "10", "-cols", "20", "-workers", "3", "-seed", "9", "-input", "x.txt"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Rows != 10 || cfg.Cols != 20 || cfg.Workers != 3 || cfg.Seed != 9 || cfg.Input != "x.txt" {
		t.Fatalf("cfg = %+v", cfg)
	}
	if cfg.TPS != 60 || cfg.Scale != 2 {
		t.Fatalf("untouched defaults changed: %+v", cfg)
	}
}

func TestValidate(t *testing.T) {
	if err := NewConfig().Validate(); err != nil {
		t.Fatalf("defaults invalid: %v", err)
	}
	cases := []struct {
		name   string
		mutate func(*Config)
		target error
	}{
		{"rows", func(c *Config) { c.Rows = 0 }, core.ErrInvalidDimensions},
		{"cols", func(c *Config) { c.Cols = -1 }, core.ErrInvalidDimensions},
		{"workers", func(c *Config) { c.Workers = 0 }, life.ErrInvalidWorkers},
		{"scale", func(c *Config) { c.Scale = 0 }, nil},
		{"tps", func(c *Config) { c.TPS = 0 }, nil},
		{"density", func(c *Config) { c.Density = 1.5 }, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := NewConfig()
			tc.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected an error")
			}
			if tc.target != nil && !errors.Is(err, tc.target) {
				t.Fatalf("err = %v, want %v", err, tc.target)
			}
		})
	}
}

func TestNewSimRandom(t *testing.T) {
	cfg := NewConfig()
	cfg.Rows, cfg.Cols = 30, 40
	a, err := NewSim(cfg)
	if err != nil {
		t.Fatalf("NewSim: %v", err)
	}
	b, _ := NewSim(cfg)
	if !a.Current().Equal(b.Current()) {
		t.Fatal("same seed produced different initial grids")
	}
	if s := a.Size(); s.W != 40 || s.H != 30 {
		t.Fatalf("Size() = %+v", s)
	}
}

func TestNewSimFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "glider.txt")
	content := ".X...\n..X..\nXXX..\n.....\n.....\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	cfg := NewConfig()
	cfg.Rows, cfg.Cols, cfg.Input = 5, 5, path
	sim, err := NewSim(cfg)
	if err != nil {
		t.Fatalf("NewSim: %v", err)
	}
	if sim.Current().Population() != 5 {
		t.Fatalf("population = %d, want 5", sim.Current().Population())
	}

	cfg.Rows = 6
	if _, err := NewSim(cfg); !errors.Is(err, loader.ErrMalformedInitialState) {
		t.Fatalf("err = %v, want ErrMalformedInitialState", err)
	}
}
