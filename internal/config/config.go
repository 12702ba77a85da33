// Package config handles terrain tool configuration loading and management.
package config

import (
	"github.com/Faultbox/midgard-terrain/internal/engine/terrain"
	"github.com/Faultbox/midgard-terrain/internal/logger"
	"github.com/Faultbox/midgard-terrain/pkg/math"
)

// Config holds all settings.
type Config struct {
	Terrain TerrainConfig `yaml:"terrain"`
	Dig     DigConfig     `yaml:"dig"`
	Logging LoggingConfig `yaml:"logging"`
}

// TerrainConfig holds generation settings.
type TerrainConfig struct {
	WorldSizeX       float32     `yaml:"world_size_x"`
	WorldSizeY       float32     `yaml:"world_size_y"`
	Scale            float32     `yaml:"scale"`
	HeightMultiplier float32     `yaml:"height_multiplier"`
	NoiseFrequency   float32     `yaml:"noise_frequency"`
	ChunkResolution  int         `yaml:"chunk_resolution"`
	Seed             int64       `yaml:"seed"`
	Origin           [3]float32  `yaml:"origin"`
	Noise            NoiseConfig `yaml:"noise"`
}

// NoiseConfig holds Perlin noise shape settings.
type NoiseConfig struct {
	Alpha   float64 `yaml:"alpha"`
	Beta    float64 `yaml:"beta"`
	Octaves int32   `yaml:"octaves"`
}

// DigConfig holds default deformation settings.
type DigConfig struct {
	Radius   float32 `yaml:"radius"`
	Strength float32 `yaml:"strength"`
}

// LoggingConfig holds logging settings. The rotation fields only apply when
// LogFile is set.
type LoggingConfig struct {
	Level      string `yaml:"level"`
	LogFile    string `yaml:"log_file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	Compress   bool   `yaml:"compress"`
}

// FileConfig converts the settings into the logger's rotating file config.
func (l LoggingConfig) FileConfig() logger.FileConfig {
	return logger.FileConfig{
		Path:       l.LogFile,
		MaxSizeMB:  l.MaxSizeMB,
		MaxBackups: l.MaxBackups,
		MaxAgeDays: l.MaxAgeDays,
		Compress:   l.Compress,
	}
}

// Default returns a Config with sensible default values.
func Default() *Config {
	t := terrain.DefaultConfig()
	f := logger.DefaultFileConfig("")
	return &Config{
		Terrain: TerrainConfig{
			WorldSizeX:       t.WorldSizeX,
			WorldSizeY:       t.WorldSizeY,
			Scale:            t.Scale,
			HeightMultiplier: t.HeightMultiplier,
			NoiseFrequency:   t.NoiseFrequency,
			ChunkResolution:  t.ChunkResolution,
			Noise: NoiseConfig{
				Alpha:   t.Noise.Alpha,
				Beta:    t.Noise.Beta,
				Octaves: t.Noise.Octaves,
			},
		},
		Dig: DigConfig{
			Radius:   terrain.DefaultDigRadius,
			Strength: terrain.DefaultDigStrength,
		},
		Logging: LoggingConfig{
			Level:      "info",
			LogFile:    "",
			MaxSizeMB:  f.MaxSizeMB,
			MaxBackups: f.MaxBackups,
			MaxAgeDays: f.MaxAgeDays,
			Compress:   f.Compress,
		},
	}
}

// TerrainSettings converts the file settings into a generation config.
func (c *Config) TerrainSettings() terrain.Config {
	t := c.Terrain
	return terrain.Config{
		WorldSizeX:       t.WorldSizeX,
		WorldSizeY:       t.WorldSizeY,
		Scale:            t.Scale,
		HeightMultiplier: t.HeightMultiplier,
		NoiseFrequency:   t.NoiseFrequency,
		ChunkResolution:  t.ChunkResolution,
		Seed:             t.Seed,
		Noise: terrain.NoiseShape{
			Alpha:   t.Noise.Alpha,
			Beta:    t.Noise.Beta,
			Octaves: t.Noise.Octaves,
		},
		Origin: math.Vec3{X: t.Origin[0], Y: t.Origin[1], Z: t.Origin[2]},
	}
}

// Validate checks the terrain and dig settings.
func (c *Config) Validate() error {
	if err := c.TerrainSettings().Validate(); err != nil {
		return err
	}
	if !(c.Dig.Radius > 0) {
		return &terrain.ConfigError{Field: "Dig.Radius", Value: c.Dig.Radius, Reason: "must be positive"}
	}
	if !(c.Dig.Strength >= 0) {
		return &terrain.ConfigError{Field: "Dig.Strength", Value: c.Dig.Strength, Reason: "must not be negative"}
	}
	return nil
}
