package navigator

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Point is a grid coordinate.
type Point struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Config describes the map a Navigator is built for.
//
// Width, Height – grid dimensions (default 16×16).
// Start, End    – initial endpoints; nil means the default placement:
//
//	vertically centred, one cell in from the left and right edges.
type Config struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Start  *Point `yaml:"start,omitempty"`
	End    *Point `yaml:"end,omitempty"`
}

// Option configures a Config.
type Option func(*Config)

// WithSize sets the grid dimensions.
func WithSize(width, height int) Option {
	return func(c *Config) {
		c.Width, c.Height = width, height
	}
}

// WithStart places the start cell.
func WithStart(x, y int) Option {
	return func(c *Config) {
		c.Start = &Point{X: x, Y: y}
	}
}

// WithEnd places the end cell.
func WithEnd(x, y int) Option {
	return func(c *Config) {
		c.End = &Point{X: x, Y: y}
	}
}

// DefaultConfig returns a 16×16 map with default endpoints.
func DefaultConfig() Config {
	return Config{
		Width:  gridgraph.DefaultWidth,
		Height: gridgraph.DefaultHeight,
	}
}

// Endpoints resolves the start and end coordinates, filling in the default
// placement for the ones left nil.
func (c Config) Endpoints() (start, end Point) {
	start = Point{X: 1, Y: c.Height / 2}
	end = Point{X: c.Width - 2, Y: c.Height / 2}
	if c.Start != nil {
		start = *c.Start
	}
	if c.End != nil {
		end = *c.End
	}

	return start, end
}

// Validate checks dimensions and that both endpoints lie on the grid.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: got %d×%d", gridgraph.ErrInvalidDimensions, c.Width, c.Height)
	}
	start, end := c.Endpoints()
	if !c.contains(start) {
		return fmt.Errorf("%w: start (%d,%d) on %d×%d", ErrPointOutOfRange, start.X, start.Y, c.Width, c.Height)
	}
	if !c.contains(end) {
		return fmt.Errorf("%w: end (%d,%d) on %d×%d", ErrPointOutOfRange, end.X, end.Y, c.Width, c.Height)
	}

	return nil
}

func (c Config) contains(p Point) bool {
	return p.X >= 0 && p.X < c.Width && p.Y >= 0 && p.Y < c.Height
}

// ParseConfig decodes a YAML document on top of DefaultConfig. Fields that
// are absent keep their defaults.
//
//	width: 24
//	height: 12
//	start: {x: 2, y: 6}
//	end: {x: 21, y: 6}
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrBadConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// LoadConfig reads and parses a YAML config file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("navigator: read config %q: %w", path, err)
	}

	return ParseConfig(data)
}
