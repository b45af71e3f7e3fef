package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// World holds the generation parameters fixed at store construction.
type World struct {
	ChunkSize           uint32  `yaml:"chunk_size"`
	PlanetCircumference uint32  `yaml:"planet_circumference"`
	CrustThickness      uint32  `yaml:"crust_thickness"`
	SurfaceLevel        uint32  `yaml:"surface_level"`
	LevelThickness      float64 `yaml:"level_thickness"`
	Seed                int64   `yaml:"seed"`
	Generator           string  `yaml:"generator"`
}

// Config is the root of the on-disk configuration.
type Config struct {
	World World `yaml:"world"`
}

// Default returns the built-in configuration: 64-tile chunks over a
// 20,000km-circumference planet with a 32km crust.
func Default() Config {
	return Config{
		World: World{
			ChunkSize:           64,
			PlanetCircumference: 20000000,
			CrustThickness:      32000,
			SurfaceLevel:        1000,
			LevelThickness:      3.0,
			Seed:                1337,
			Generator:           "strata",
		},
	}
}

// Load reads a YAML config file over the defaults. An empty path yields the
// defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// Validate enforces the construction-time invariants of the world store.
func (c Config) Validate() error {
	w := c.World
	if w.ChunkSize == 0 {
		return fmt.Errorf("chunk_size must be positive")
	}
	if w.PlanetCircumference < w.ChunkSize {
		return fmt.Errorf("planet_circumference %d is smaller than one chunk", w.PlanetCircumference)
	}
	if w.CrustThickness < w.ChunkSize {
		return fmt.Errorf("crust_thickness %d is smaller than one chunk", w.CrustThickness)
	}
	if w.LevelThickness <= 0 {
		return fmt.Errorf("level_thickness must be positive")
	}
	switch w.Generator {
	case "ridge", "strata":
	default:
		return fmt.Errorf("unknown generator %q", w.Generator)
	}
	return nil
}
