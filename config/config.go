// Package config provides configuration loading and access for field
// generation.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all field generation parameters.
type Config struct {
	Seed       uint64           `yaml:"seed"`
	Resolution ResolutionConfig `yaml:"resolution"`
	Field      FieldConfig      `yaml:"field"`
	Falloff    FalloffConfig    `yaml:"falloff"`
	Warp       WarpConfig       `yaml:"warp"`
	Parallel   ParallelConfig   `yaml:"parallel"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ResolutionConfig holds the sample grid dimensions.
type ResolutionConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// FieldConfig holds the Worley composition parameters.
type FieldConfig struct {
	Policy    string      `yaml:"policy"`     // continuous | grid
	Cells     XYConfig    `yaml:"cells"`      // continuous: sample-space units per cell
	CellCount XYIntConfig `yaml:"cell_count"` // grid: coarsest resolution
	Depth     int         `yaml:"depth"`
	Growth    float64     `yaml:"growth"`
	Boundary  string      `yaml:"boundary"` // unbounded | clamp | wrap
	Extent    XYIntConfig `yaml:"extent"`   // cells per axis for clamp/wrap (continuous policy)
}

// FalloffConfig holds distance shaping parameters for downstream consumers.
type FalloffConfig struct {
	MaxDist   float64 `yaml:"max_dist"`
	DistPower float64 `yaml:"dist_power"`
}

// WarpConfig holds domain warp parameters.
type WarpConfig struct {
	Enabled   bool    `yaml:"enabled"`
	Amplitude float64 `yaml:"amplitude"`
	Frequency float64 `yaml:"frequency"`
}

// ParallelConfig holds batch evaluation parameters.
type ParallelConfig struct {
	RowThreshold int `yaml:"row_threshold"` // minimum rows before the worker pool kicks in
}

// XYConfig is a float pair.
type XYConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// XYIntConfig is an integer pair.
type XYIntConfig struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	Samples int // Resolution.Width * Resolution.Height
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if
// path is empty. Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	// Load user config if provided
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.computeDerived()

	return cfg, nil
}

// computeDerived calculates values derived from loaded config and fills
// defaults that depend on other fields.
func (c *Config) computeDerived() {
	// A bounded grid with no explicit extent uses the cell count.
	if c.Field.Boundary != "unbounded" && c.Field.Extent.X == 0 && c.Field.Extent.Y == 0 {
		c.Field.Extent = c.Field.CellCount
	}

	c.Derived.Samples = c.Resolution.Width * c.Resolution.Height
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
