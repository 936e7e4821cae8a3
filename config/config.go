package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"strawberry-snake/logger"
)

// Config holds everything the game reads at startup.
type Config struct {
	Width         int     `yaml:"width"`         // tiles
	Height        int     `yaml:"height"`        // tiles
	TileSize      int     `yaml:"tileSize"`      // pixels per tile on screen
	SpriteScale   float64 `yaml:"spriteScale"`   // texture scale, 16px sprites * 4 = 64px tiles
	SpriteDir     string  `yaml:"spriteDir"`     // directory holding the tile textures
	InitialLength int     `yaml:"initialLength"` // snake segments at start
	InitialFPS    float64 `yaml:"initialFPS"`    // ticks per second at start
	SpeedStep     float64 `yaml:"speedStep"`     // ticks per second gained per strawberry
	MaxFPS        float64 `yaml:"maxFPS"`        // 0 means no cap
	Seed          uint64  `yaml:"seed"`          // 0 means seed from the clock
	LogLevel      string  `yaml:"logLevel"`
	Title         string  `yaml:"title"`
}

// Default returns the settings of the classic 20x12 board.
func Default() *Config {
	return &Config{
		Width:         20,
		Height:        12,
		TileSize:      64,
		SpriteScale:   4,
		SpriteDir:     "sprites",
		InitialLength: 3,
		InitialFPS:    5,
		SpeedStep:     0.2,
		MaxFPS:        0,
		Seed:          0,
		LogLevel:      "info",
		Title:         "Snake",
	}
}

// Load reads a YAML file over the defaults. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read config file")
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(err, "failed to parse config YAML")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return cfg, nil
}

// Validate checks that the board can hold the starting snake and the loop can tick.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Errorf("board must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.InitialLength < 1 {
		return errors.Errorf("initialLength must be at least 1, got %d", c.InitialLength)
	}
	// the starting snake occupies rows 1..initialLength
	if c.Height <= c.InitialLength {
		return errors.Errorf("height %d too small for a snake of length %d", c.Height, c.InitialLength)
	}
	if c.TileSize <= 0 {
		return errors.Errorf("tileSize must be positive, got %d", c.TileSize)
	}
	if c.SpriteScale <= 0 {
		return errors.Errorf("spriteScale must be positive, got %v", c.SpriteScale)
	}
	if c.InitialFPS <= 0 {
		return errors.Errorf("initialFPS must be positive, got %v", c.InitialFPS)
	}
	if c.SpeedStep < 0 {
		return errors.Errorf("speedStep cannot be negative, got %v", c.SpeedStep)
	}
	if c.MaxFPS < 0 || (c.MaxFPS > 0 && c.MaxFPS < c.InitialFPS) {
		return errors.Errorf("maxFPS must be 0 or at least initialFPS, got %v", c.MaxFPS)
	}
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// WindowSize is the pixel size of the board.
func (c *Config) WindowSize() (int, int) {
	return c.Width * c.TileSize, c.Height * c.TileSize
}
