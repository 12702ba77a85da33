package terrain

import (
	stdmath "math"

	"go.uber.org/zap"

	"github.com/Faultbox/midgard-terrain/internal/logger"
	"github.com/Faultbox/midgard-terrain/pkg/math"
)

// Modify lowers vertices within radius of digLocation by strength scaled with
// a linear falloff: full strength at the center, none at the radius. Only
// chunks that had a vertex lowered get new normals and are re-published.
//
// digLocation is in world space; its Z is ignored. Heights are not floored,
// so repeated digs keep accumulating. A radius <= 0, a negative strength or a
// location that reaches no chunk is a no-op.
//
// Every chunk is tested linearly.
func (g *Grid) Modify(digLocation math.Vec3, radius, strength float32) DigResult {
	var result DigResult
	if !(radius > 0) || !(strength >= 0) || len(g.chunks) == 0 {
		return result
	}

	radiusSq := radius * radius
	dig := digLocation.XY()
	// Vertices are stored relative to the terrain origin.
	local := digLocation.Sub(g.config.Origin)

	for ci := range g.chunks {
		chunk := &g.chunks[ci]

		if !chunk.Bounds.Expand(radius).Contains(dig) {
			continue
		}
		if dig.DistanceSq(chunk.Bounds.ClosestPoint(dig)) > radiusSq {
			continue
		}
		result.ChunksTested++

		touched := 0
		for i := range chunk.Vertices {
			v := &chunk.Vertices[i]
			distSq := v.DistanceSq2D(local)
			if distSq > radiusSq {
				continue
			}
			distance := float32(stdmath.Sqrt(float64(distSq)))
			influence := math.Clamp(1-distance/radius, 0, 1)
			v.Z -= strength * influence
			touched++
		}

		if touched == 0 {
			continue
		}

		estimateNormalsInto(chunk.Normals, chunk.Vertices, chunk.Triangles)
		if g.sink != nil {
			g.sink.UpdateSection(chunk.SectionIndex, chunk.Vertices, chunk.Normals)
		}

		result.ChunksModified++
		result.VerticesModified += touched
		result.Sections = append(result.Sections, chunk.SectionIndex)
	}

	logger.Debug("terrain modified",
		zap.Float32("x", digLocation.X),
		zap.Float32("y", digLocation.Y),
		zap.Float32("radius", radius),
		zap.Float32("strength", strength),
		zap.Int("chunksTested", result.ChunksTested),
		zap.Int("chunksModified", result.ChunksModified),
		zap.Int("vertices", result.VerticesModified))

	return result
}
