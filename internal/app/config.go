package app

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"customgrid/internal/core"
	gridcore "customgrid/pkg/core"
)

var (
	// ErrUnknownScene is returned when the selected scene is not registered.
	ErrUnknownScene = errors.New("unknown scene")
	// ErrInvalidConfig wraps every validation failure.
	ErrInvalidConfig = errors.New("invalid config")
)

// Config represents the command-line parameters for the application.
type Config struct {
	Scene    string
	Width    int
	Height   int
	CellSize float64
	OffsetX  float64
	OffsetY  float64
	Seed     int64
	TPS      int
	File     string
	LogLevel string

	fs *flag.FlagSet
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Scene:    "flags",
		Width:    5,
		Height:   4,
		CellSize: 128,
		Seed:     42,
		TPS:      60,
		LogLevel: "info",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	c.fs = fs
	fs.StringVar(&c.Scene, "scene", c.Scene, "scene to run")
	fs.IntVar(&c.Width, "width", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "grid height in cells")
	fs.Float64Var(&c.CellSize, "cell", c.CellSize, "cell edge in pixels")
	fs.Float64Var(&c.OffsetX, "offset-x", c.OffsetX, "grid offset from the scene position (x)")
	fs.Float64Var(&c.OffsetY, "offset-y", c.OffsetY, "grid offset from the scene position (y)")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random scenes")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.StringVar(&c.File, "config", c.File, "optional YAML file with scene settings")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "debug, info, warn or error")
}

// File is the YAML configuration layout.
//
//	scene: numbers
//	scenes:
//	  numbers:
//	    width: 8
//	    cellSize: 64
//	    offset: {x: 32, y: 32}
type File struct {
	Scene    string                   `yaml:"scene"`
	TPS      int                      `yaml:"tps"`
	LogLevel string                   `yaml:"logLevel"`
	Scenes   map[string]SceneSettings `yaml:"scenes"`
}

// SceneSettings overrides the grid parameters of one scene. Zero fields
// keep the current value.
type SceneSettings struct {
	Width    int     `yaml:"width"`
	Height   int     `yaml:"height"`
	CellSize float64 `yaml:"cellSize"`
	Offset   *Vec2   `yaml:"offset"`
	Seed     *int64  `yaml:"seed"`
}

// Vec2 is the YAML form of a world offset.
type Vec2 struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// LoadFile reads and decodes a YAML configuration file.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	return ParseFile(data)
}

// ParseFile decodes YAML configuration. Unknown keys are rejected; an empty
// document yields an empty File.
func ParseFile(data []byte) (*File, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return &f, nil
}

// Apply merges f into c. Values given explicitly on the command line win
// over the file.
func (c *Config) Apply(f *File) {
	if f == nil {
		return
	}
	set := c.setFlags()
	if f.Scene != "" && !set["scene"] {
		c.Scene = f.Scene
	}
	if f.TPS != 0 && !set["tps"] {
		c.TPS = f.TPS
	}
	if f.LogLevel != "" && !set["log-level"] {
		c.LogLevel = f.LogLevel
	}

	s, ok := f.Scenes[c.Scene]
	if !ok {
		return
	}
	if s.Width != 0 && !set["width"] {
		c.Width = s.Width
	}
	if s.Height != 0 && !set["height"] {
		c.Height = s.Height
	}
	if s.CellSize != 0 && !set["cell"] {
		c.CellSize = s.CellSize
	}
	if s.Offset != nil {
		if !set["offset-x"] {
			c.OffsetX = s.Offset.X
		}
		if !set["offset-y"] {
			c.OffsetY = s.Offset.Y
		}
	}
	if s.Seed != nil && !set["seed"] {
		c.Seed = *s.Seed
	}
}

func (c *Config) setFlags() map[string]bool {
	set := map[string]bool{}
	if c.fs != nil {
		c.fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	}
	return set
}

// Validate checks the configuration against the scene registry.
func (c *Config) Validate() error {
	if _, ok := core.Scenes()[c.Scene]; !ok {
		return fmt.Errorf("%w %q (have %v)", ErrUnknownScene, c.Scene, core.SceneNames())
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: grid size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	}
	if !(c.CellSize > 0) {
		return fmt.Errorf("%w: cell size %v", ErrInvalidConfig, c.CellSize)
	}
	if c.TPS <= 0 {
		return fmt.Errorf("%w: tps %d", ErrInvalidConfig, c.TPS)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// SceneConfig returns the grid parameters for the selected scene.
func (c *Config) SceneConfig() core.SceneConfig {
	return core.SceneConfig{
		Width:    c.Width,
		Height:   c.Height,
		CellSize: c.CellSize,
		Offset:   gridcore.Vec2{X: c.OffsetX, Y: c.OffsetY},
		Seed:     c.Seed,
	}
}

// NewScene validates c and builds the selected scene.
func (c *Config) NewScene() (core.Scene, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return core.Scenes()[c.Scene](c.SceneConfig())
}

// ParseLevel converts a level name into a slog.Level.
func ParseLevel(name string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(name)); err != nil {
		return 0, fmt.Errorf("%w: log level %q", ErrInvalidConfig, name)
	}
	return l, nil
}
