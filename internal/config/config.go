// Package config handles generator configuration loading and management.
package config

import (
	"errors"
	"fmt"

	"github.com/Faultbox/dungeongen/pkg/dungeon"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds all generator settings.
type Config struct {
	Generator GeneratorConfig `yaml:"generator"`
	Logging   LoggingConfig   `yaml:"logging"`
	Store     StoreConfig     `yaml:"store"`
}

// GeneratorConfig holds level size, seed and pipeline tuning.
type GeneratorConfig struct {
	Width            uint32 `yaml:"width"`
	Height           uint32 `yaml:"height"`
	Seed             string `yaml:"seed"` // Empty means a random level
	MaxRooms         int    `yaml:"max_rooms"`
	MinRoomSize      int    `yaml:"min_room_size"`
	MaxRoomSize      int    `yaml:"max_room_size"`
	SpawnMargin      int    `yaml:"spawn_margin"`
	SpawnMinDistance int    `yaml:"spawn_min_distance"`
	MergePasses      int    `yaml:"merge_passes"` // 0 merges until stable
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
	JSON    bool   `yaml:"json"`
}

// StoreConfig holds the saved-level archive settings.
type StoreConfig struct {
	AppName string `yaml:"app_name"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	opts := dungeon.DefaultOptions()
	return &Config{
		Generator: GeneratorConfig{
			Width:            96,
			Height:           48,
			Seed:             "",
			MaxRooms:         opts.MaxRooms,
			MinRoomSize:      opts.MinRoomSize,
			MaxRoomSize:      opts.MaxRoomSize,
			SpawnMargin:      opts.SpawnMargin,
			SpawnMinDistance: opts.SpawnMinDistance,
			MergePasses:      opts.MergePasses,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
		Store: StoreConfig{
			AppName: "dungeongen",
		},
	}
}

// Options converts the generator section to dungeon options.
func (g GeneratorConfig) Options() dungeon.Options {
	return dungeon.Options{
		MaxRooms:         g.MaxRooms,
		MinRoomSize:      g.MinRoomSize,
		MaxRoomSize:      g.MaxRoomSize,
		SpawnMargin:      g.SpawnMargin,
		SpawnMinDistance: g.SpawnMinDistance,
		MergePasses:      g.MergePasses,
	}
}

// Validate reports settings the generator cannot run with.
func (c *Config) Validate() error {
	g := c.Generator
	if g.Width < dungeon.MinWidth || g.Height < dungeon.MinHeight {
		return fmt.Errorf("%w: level size %dx%d below %dx%d",
			ErrInvalidConfig, g.Width, g.Height, dungeon.MinWidth, dungeon.MinHeight)
	}
	if g.Width > dungeon.MaxDimension || g.Height > dungeon.MaxDimension {
		return fmt.Errorf("%w: level size %dx%d above %dx%d",
			ErrInvalidConfig, g.Width, g.Height, dungeon.MaxDimension, dungeon.MaxDimension)
	}
	if err := g.Options().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.Store.AppName == "" {
		return fmt.Errorf("%w: empty store app name", ErrInvalidConfig)
	}
	return nil
}
