// Package terrain builds chunked procedural heightfield meshes and applies
// localized deformation to them.
//
// Positions are X/Y on the ground plane with Z as height. Normals come from
// cross(v1-v0, v2-v0) over the fixed grid winding, which points them along -Z
// on flat ground.
package terrain

import (
	stdmath "math"

	"github.com/Faultbox/midgard-terrain/pkg/math"
)

// MinChunkResolution is the smallest accepted vertices-per-chunk-edge count.
const MinChunkResolution = 8

// MaxChunks caps the number of chunks a single generation may produce.
const MaxChunks = 1 << 20

// Default dig parameters, used when a caller has no tuned values.
const (
	DefaultDigRadius   float32 = 200
	DefaultDigStrength float32 = 125
)

// NoiseShape holds the coherent noise parameters.
type NoiseShape struct {
	Alpha   float64 // Weight falloff between octaves
	Beta    float64 // Frequency step between octaves
	Octaves int32
}

// DefaultNoiseShape returns a smooth single-layer terrain noise.
func DefaultNoiseShape() NoiseShape {
	return NoiseShape{Alpha: 2, Beta: 2, Octaves: 3}
}

// Config describes one generation pass. It is not modified by the grid.
type Config struct {
	WorldSizeX       float32
	WorldSizeY       float32
	Scale            float32 // Spacing between vertices
	HeightMultiplier float32
	NoiseFrequency   float32
	ChunkResolution  int // Vertices per chunk edge
	Seed             int64
	Noise            NoiseShape

	// Origin is the placement of the terrain in the world. Vertices are
	// stored relative to it; bounds and dig locations are in world space.
	Origin math.Vec3
}

// DefaultConfig returns the stock terrain settings.
func DefaultConfig() Config {
	return Config{
		WorldSizeX:       10000,
		WorldSizeY:       10000,
		Scale:            100,
		HeightMultiplier: 500,
		NoiseFrequency:   0.0005,
		ChunkResolution:  32,
		Noise:            DefaultNoiseShape(),
	}
}

// ChunkWorldSize returns the edge length of one chunk in world units.
func (c Config) ChunkWorldSize() float32 {
	return float32(c.ChunkResolution-1) * c.Scale
}

// ChunkCounts returns how many chunks cover the world along X and Y. The
// grid may over-cover the requested extent by up to one chunk per axis. The
// result is only meaningful for a config that passes Validate.
func (c Config) ChunkCounts() (int, int) {
	size := float64(c.ChunkWorldSize())
	return int(stdmath.Ceil(float64(c.WorldSizeX) / size)),
		int(stdmath.Ceil(float64(c.WorldSizeY) / size))
}

// Bounds is an axis-aligned rectangle in the XY plane.
type Bounds struct {
	Min math.Vec2
	Max math.Vec2
}

// Center returns the midpoint of the rectangle.
func (b Bounds) Center() math.Vec2 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Expand returns b grown by d on every side.
func (b Bounds) Expand(d float32) Bounds {
	return Bounds{
		Min: math.Vec2{X: b.Min.X - d, Y: b.Min.Y - d},
		Max: math.Vec2{X: b.Max.X + d, Y: b.Max.Y + d},
	}
}

// Contains reports whether p lies inside b, edges included.
func (b Bounds) Contains(p math.Vec2) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X && p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

// ClosestPoint clamps p into b.
func (b Bounds) ClosestPoint(p math.Vec2) math.Vec2 {
	return math.Vec2{
		X: math.Clamp(p.X, b.Min.X, b.Max.X),
		Y: math.Clamp(p.Y, b.Min.Y, b.Max.Y),
	}
}

// Chunk is one independently generated and editable patch of the terrain.
type Chunk struct {
	SectionIndex int
	Bounds       Bounds    // World space footprint
	Center       math.Vec3 // Terrain-local center, Z always 0

	// Vertices are row-major over the chunk grid: i = x*resolution + y.
	// Only Z changes after generation.
	Vertices  []math.Vec3
	Normals   []math.Vec3
	UVs       []math.Vec2
	Triangles []uint32
}

// SectionData is the buffer set handed to the rendering collaborator.
type SectionData struct {
	Vertices  []math.Vec3
	Triangles []uint32
	Normals   []math.Vec3
	UVs       []math.Vec2
}

// DigResult summarizes one Modify call.
type DigResult struct {
	ChunksTested     int   // Chunks that survived both reject tests
	ChunksModified   int   // Chunks with at least one lowered vertex
	VerticesModified int   // Total vertices lowered
	Sections         []int // Section indices re-published, in grid order
}
