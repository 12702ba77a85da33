package terrain

import (
	"github.com/aquilax/go-perlin"
)

// HeightField maps a world XY position to a surface height.
// Implementations must be deterministic and free of side effects.
type HeightField interface {
	Sample(worldX, worldY float32) float32
}

// PerlinField samples Perlin noise scaled by a height multiplier.
type PerlinField struct {
	noise      *perlin.Perlin
	frequency  float64
	multiplier float32
}

// NewPerlinField creates a noise field. Fields built from the same seed and
// shape return identical heights.
func NewPerlinField(seed int64, shape NoiseShape, frequency, multiplier float32) *PerlinField {
	return &PerlinField{
		noise:      perlin.NewPerlin(shape.Alpha, shape.Beta, shape.Octaves, seed),
		frequency:  float64(frequency),
		multiplier: multiplier,
	}
}

// Sample implements HeightField.
func (f *PerlinField) Sample(worldX, worldY float32) float32 {
	n := f.noise.Noise2D(float64(worldX)*f.frequency, float64(worldY)*f.frequency)
	return float32(n) * f.multiplier
}

// FlatField is a constant-height field.
type FlatField struct {
	Height float32
}

// Sample implements HeightField.
func (f FlatField) Sample(_, _ float32) float32 {
	return f.Height
}

// NewHeightField returns the field described by cfg. A zero height
// multiplier disables noise entirely.
func NewHeightField(cfg Config) HeightField {
	if cfg.HeightMultiplier == 0 {
		return FlatField{}
	}
	return NewPerlinField(cfg.Seed, cfg.Noise, cfg.NoiseFrequency, cfg.HeightMultiplier)
}
