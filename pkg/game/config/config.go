// Package config loads runtime configuration for the game from YAML.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultBaseSeed seeds portal selection when the config file does not
// set one. Combined with the puzzle identifier hash it fully determines
// which candidate segment a puzzle claims.
const DefaultBaseSeed int64 = 0x5E65EED

// Default tile geometry and segment bounds.
const (
	DefaultTileSize               = 16.0
	DefaultMinSegmentLength       = 4
	DefaultMaxSegmentLength       = 5
	DefaultPreferredSegmentLength = 4
)

// Config holds all game configuration.
type Config struct {
	World  WorldConfig  `yaml:"world"`
	Portal PortalConfig `yaml:"portal"`
}

// WorldConfig holds world geometry settings.
type WorldConfig struct {
	TileSize float64 `yaml:"tile_size"` // world units per grid cell
}

// PortalConfig holds portal placement settings. All of these are runtime
// values, not compile-time constants: they are tuned per build and the
// boundary cases in the test suite depend on adjusting them.
type PortalConfig struct {
	Enabled                bool  `yaml:"enabled"` // global kill-switch for portal placement
	MinSegmentLength       int   `yaml:"min_segment_length"`
	MaxSegmentLength       int   `yaml:"max_segment_length"`
	PreferredSegmentLength int   `yaml:"preferred_segment_length"`
	BaseSeed               int64 `yaml:"base_seed"`
}

// Default returns a configuration with the standard gameplay values and
// portal placement enabled.
func Default() *Config {
	return &Config{
		World: WorldConfig{
			TileSize: DefaultTileSize,
		},
		Portal: PortalConfig{
			Enabled:                true,
			MinSegmentLength:       DefaultMinSegmentLength,
			MaxSegmentLength:       DefaultMaxSegmentLength,
			PreferredSegmentLength: DefaultPreferredSegmentLength,
			BaseSeed:               DefaultBaseSeed,
		},
	}
}

// Load reads configuration from a YAML file. Omitted numeric fields fall
// back to the defaults; `portal.enabled` is taken as written, so a file
// that leaves it out disables placement.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Set defaults if not provided
	if cfg.World.TileSize == 0 {
		cfg.World.TileSize = DefaultTileSize
	}
	if cfg.Portal.MinSegmentLength == 0 {
		cfg.Portal.MinSegmentLength = DefaultMinSegmentLength
	}
	if cfg.Portal.MaxSegmentLength == 0 {
		cfg.Portal.MaxSegmentLength = DefaultMaxSegmentLength
	}
	if cfg.Portal.PreferredSegmentLength == 0 {
		cfg.Portal.PreferredSegmentLength = DefaultPreferredSegmentLength
	}
	if cfg.Portal.BaseSeed == 0 {
		cfg.Portal.BaseSeed = DefaultBaseSeed
	}

	return &cfg, nil
}
