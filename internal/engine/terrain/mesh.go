package terrain

import (
	"github.com/Faultbox/midgard-terrain/pkg/math"
)

// MeshData holds the generated buffers for one chunk.
type MeshData struct {
	Vertices  []math.Vec3
	UVs       []math.Vec2
	Triangles []uint32
}

// BuildMesh creates a regular grid of resolution x resolution vertices
// centered on center. Heights are sampled at center + local + origin but
// stored as the vertex Z; X and Y are terrain-local.
//
// Each interior cell emits idx, idx+1, idx+res+1 and idx+res+1, idx+res, idx.
// Reversing that order flips every normal.
func BuildMesh(center, origin math.Vec3, resolution int, scale float32, field HeightField) MeshData {
	total := resolution * resolution
	quads := (resolution - 1) * (resolution - 1)

	mesh := MeshData{
		Vertices:  make([]math.Vec3, 0, total),
		UVs:       make([]math.Vec2, 0, total),
		Triangles: make([]uint32, 0, quads*6),
	}

	halfExtent := float32(resolution-1) * scale * 0.5
	invEdge := 1 / float32(resolution-1)
	res := uint32(resolution)

	for x := range resolution {
		posX := float32(x)*scale - halfExtent + center.X
		worldX := posX + origin.X
		u := float32(x) * invEdge

		for y := range resolution {
			posY := float32(y)*scale - halfExtent + center.Y
			worldY := posY + origin.Y

			mesh.Vertices = append(mesh.Vertices, math.Vec3{X: posX, Y: posY, Z: field.Sample(worldX, worldY)})
			mesh.UVs = append(mesh.UVs, math.Vec2{X: u, Y: float32(y) * invEdge})

			if x < resolution-1 && y < resolution-1 {
				idx := uint32(x*resolution + y)
				mesh.Triangles = append(mesh.Triangles,
					idx, idx+1, idx+res+1,
					idx+res+1, idx+res, idx,
				)
			}
		}
	}

	return mesh
}
