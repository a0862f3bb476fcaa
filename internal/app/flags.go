package app

import (
	"errors"
	"flag"
	"fmt"

	"colony/internal/core"
	"colony/internal/loader"
	"colony/internal/sims/life"
)

// Config represents the command-line parameters shared by the viewers.
type Config struct {
	Input   string
	Rows    int
	Cols    int
	Workers int
	Scale   int
	TPS     int
	Seed    int64
	Density float64
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Rows:    540,
		Cols:    960,
		Workers: life.DefaultConfig().Workers,
		Scale:   2,
		TPS:     60,
		Seed:    42,
		Density: 0.2,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Input, "input", c.Input, "initial state file ('.' dead, 'X' alive); random when empty")
	fs.IntVar(&c.Rows, "rows", c.Rows, "grid rows")
	fs.IntVar(&c.Cols, "cols", c.Cols, "grid columns")
	fs.IntVar(&c.Workers, "workers", c.Workers, "parallel units per generation")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random initial state")
	fs.Float64Var(&c.Density, "density", c.Density, "live cell probability for the random initial state")
}

// Validate reports the first unusable value.
func (c *Config) Validate() error {
	switch {
	case c.Rows <= 0 || c.Cols <= 0:
		return fmt.Errorf("%w: %dx%d", core.ErrInvalidDimensions, c.Rows, c.Cols)
	case c.Scale <= 0:
		return fmt.Errorf("scale must be positive, got %d", c.Scale)
	case c.TPS <= 0:
		return fmt.Errorf("tps must be positive, got %d", c.TPS)
	case c.Density < 0 || c.Density > 1:
		return fmt.Errorf("density must be within [0,1], got %g", c.Density)
	}
	return life.Config{Workers: c.Workers}.Validate()
}

// InitialGrid loads c.Input, or seeds a random grid when no input is set.
func (c *Config) InitialGrid() (*core.Grid, error) {
	if c.Input != "" {
		return loader.Load(c.Input, c.Rows, c.Cols)
	}
	g, err := core.NewGrid(c.Rows, c.Cols)
	if err != nil {
		return nil, err
	}
	core.NewRNG(c.Seed).Fill(g, c.Density)
	return g, nil
}

// NewSim validates c and builds the simulation it describes.
func NewSim(c *Config) (*life.Life, error) {
	if c == nil {
		return nil, errors.New("nil config")
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	engine, err := life.NewEngine(life.Config{Workers: c.Workers})
	if err != nil {
		return nil, err
	}
	initial, err := c.InitialGrid()
	if err != nil {
		return nil, err
	}
	return life.New(engine, initial), nil
}
