package app

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	loopcore "golife/internal/core"
	"golife/internal/render"
	"golife/internal/store"
	"golife/pkg/core"
	"golife/pkg/life"
	"golife/pkg/patterns"
)

// RGB is a colour written as [r, g, b] in config files.
type RGB [3]uint8

// Color converts the value to an opaque colour.
func (c RGB) Color() color.Color {
	return color.RGBA{R: c[0], G: c[1], B: c[2], A: 255}
}

// Config represents the command-line parameters for the application.
type Config struct {
	Width   int          `yaml:"width"`
	Height  int          `yaml:"height"`
	Scale   int          `yaml:"scale"`
	DelayMS int          `yaml:"delay_ms"`
	Pattern string       `yaml:"pattern"`
	File    string       `yaml:"file"`
	Seed    int64        `yaml:"seed"`
	Random  bool         `yaml:"random"`
	Store   string       `yaml:"store"`
	Format  store.Format `yaml:"format"`
	Name    string       `yaml:"name"`

	LiveColor RGB `yaml:"live_cell_color"`
	DeadColor RGB `yaml:"dead_cell_color"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Width:     30,
		Height:    30,
		Scale:     20,
		DelayMS:   int(loopcore.DefaultDelay / time.Millisecond),
		Seed:      42,
		Store:     "data/games.yaml",
		Format:    store.FormatYAML,
		LiveColor: RGB{255, 255, 255},
		DeadColor: RGB{0, 0, 0},
	}
}

// LoadFile overlays values from a YAML config file. A missing file is not an
// error.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("yaml unmarshal %s: %w", path, err)
	}
	return nil
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "w", c.Width, "board width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "board height in cells")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.DelayMS, "delay", c.DelayMS, "milliseconds between generations")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "built-in pattern to start from")
	fs.StringVar(&c.File, "file", c.File, "pattern file to start from")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random boards")
	fs.BoolVar(&c.Random, "random", c.Random, "start from a random board")
	fs.StringVar(&c.Store, "store", c.Store, "saved games file")
	fs.StringVar((*string)(&c.Format), "format", string(c.Format), "saved games format (yaml or json)")
	fs.StringVar(&c.Name, "name", c.Name, "name used to save and load games")
}

// Size returns the configured board size.
func (c *Config) Size() core.Size { return core.Size{W: c.Width, H: c.Height} }

// Delay returns the configured pause between generations.
func (c *Config) Delay() time.Duration { return time.Duration(c.DelayMS) * time.Millisecond }

// Palette returns the configured cell colours.
func (c *Config) Palette() render.Palette {
	return render.Palette{Live: c.LiveColor.Color(), Dead: c.DeadColor.Color()}
}

// Validate checks the values that cannot be clamped.
func (c *Config) Validate() error {
	if !c.Size().Valid() {
		return fmt.Errorf("board size %s must be positive", c.Size())
	}
	if c.Scale <= 0 {
		return fmt.Errorf("scale %d must be positive", c.Scale)
	}
	sources := 0
	for _, set := range []bool{c.Pattern != "", c.File != "", c.Random} {
		if set {
			sources++
		}
	}
	if sources > 1 {
		return errors.New("-pattern, -file and -random cannot be combined")
	}
	return nil
}

// NewGame builds the starting game: a built-in pattern, a pattern file, a
// random board or an empty one, in that order of preference.
func (c *Config) NewGame() (*life.Game, error) {
	switch {
	case c.Pattern != "":
		return patterns.Load(c.Pattern)
	case c.File != "":
		return life.FromFile(c.File)
	case c.Random:
		return life.Random(c.Size(), c.Seed), nil
	default:
		return life.Empty(c.Size()), nil
	}
}

// OpenStore opens the configured saved games file.
func (c *Config) OpenStore() (store.Store, error) {
	return store.Open(c.Store, c.Format)
}

// DefaultConfigPath is read when no -config flag is given.
const DefaultConfigPath = "golife.yaml"

// ParseArgs builds a Config from defaults, then the YAML file named by
// -config, then the remaining flags. extra, if not nil, binds
// command-specific flags on the same FlagSet.
func ParseArgs(name string, args []string, extra func(fs *flag.FlagSet)) (*Config, error) {
	// The first pass only discovers the config file.
	probe := flag.NewFlagSet(name, flag.ContinueOnError)
	probe.SetOutput(io.Discard)
	path := probe.String("config", DefaultConfigPath, "YAML config file")
	NewConfig().Bind(probe)
	if extra != nil {
		extra(probe)
	}
	if err := probe.Parse(args); err != nil && !errors.Is(err, flag.ErrHelp) {
		return nil, err
	}

	cfg := NewConfig()
	if err := cfg.LoadFile(*path); err != nil {
		return nil, err
	}
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.String("config", *path, "YAML config file")
	cfg.Bind(fs)
	if extra != nil {
		extra(fs)
	}
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
