package terrain

import (
	"errors"
	"fmt"
	stdmath "math"
)

// ErrInvalidConfig is matched by every configuration rejection.
var ErrInvalidConfig = errors.New("invalid terrain config")

// ConfigError names the configuration field that failed validation.
type ConfigError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s = %v: %s", ErrInvalidConfig, e.Field, e.Value, e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfig
}

// Validate checks that the config can produce a well-formed grid.
func (c Config) Validate() error {
	switch {
	case !positiveFinite(float64(c.WorldSizeX)):
		return &ConfigError{Field: "WorldSizeX", Value: c.WorldSizeX, Reason: "must be positive and finite"}
	case !positiveFinite(float64(c.WorldSizeY)):
		return &ConfigError{Field: "WorldSizeY", Value: c.WorldSizeY, Reason: "must be positive and finite"}
	case !positiveFinite(float64(c.Scale)):
		return &ConfigError{Field: "Scale", Value: c.Scale, Reason: "must be positive and finite"}
	case c.ChunkResolution < MinChunkResolution:
		return &ConfigError{
			Field:  "ChunkResolution",
			Value:  c.ChunkResolution,
			Reason: fmt.Sprintf("must be at least %d", MinChunkResolution),
		}
	case !finite(float64(c.HeightMultiplier)):
		return &ConfigError{Field: "HeightMultiplier", Value: c.HeightMultiplier, Reason: "must be finite"}
	case !finite(float64(c.NoiseFrequency)) || c.NoiseFrequency < 0:
		return &ConfigError{Field: "NoiseFrequency", Value: c.NoiseFrequency, Reason: "must be finite and not negative"}
	case c.HeightMultiplier != 0 && c.Noise.Octaves < 1:
		return &ConfigError{Field: "Noise.Octaves", Value: c.Noise.Octaves, Reason: "must be at least 1"}
	case !finite(float64(c.Origin.X)) || !finite(float64(c.Origin.Y)) || !finite(float64(c.Origin.Z)):
		return &ConfigError{Field: "Origin", Value: c.Origin, Reason: "must be finite"}
	}

	size := float64(c.ChunkWorldSize())
	if !positiveFinite(size) {
		return &ConfigError{Field: "ChunkWorldSize", Value: size, Reason: "scale times resolution overflows"}
	}
	nx := stdmath.Ceil(float64(c.WorldSizeX) / size)
	ny := stdmath.Ceil(float64(c.WorldSizeY) / size)
	if nx*ny > MaxChunks {
		return &ConfigError{
			Field:  "ChunkCount",
			Value:  fmt.Sprintf("%.0fx%.0f", nx, ny),
			Reason: fmt.Sprintf("must not exceed %d chunks", MaxChunks),
		}
	}
	return nil
}

func finite(v float64) bool {
	return !stdmath.IsNaN(v) && !stdmath.IsInf(v, 0)
}

func positiveFinite(v float64) bool {
	return finite(v) && v > 0
}
