package terrain

import (
	"github.com/Faultbox/midgard-terrain/pkg/math"
)

// FallbackNormal replaces a vertex normal that cannot be normalized, which
// happens when every adjacent triangle is degenerate. It is +Z, so such a
// vertex faces opposite to the -Z normals of flat ground built by BuildMesh.
var FallbackNormal = math.Up

// EstimateNormals returns smooth per-vertex normals. Each triangle adds its
// unit face normal to its three corners with equal weight; the sums are
// normalized at the end.
func EstimateNormals(vertices []math.Vec3, triangles []uint32) []math.Vec3 {
	normals := make([]math.Vec3, len(vertices))
	estimateNormalsInto(normals, vertices, triangles)
	return normals
}

// estimateNormalsInto overwrites normals, which must be len(vertices) long.
func estimateNormalsInto(normals, vertices []math.Vec3, triangles []uint32) {
	clear(normals)

	for i := 0; i+2 < len(triangles); i += 3 {
		i0, i1, i2 := triangles[i], triangles[i+1], triangles[i+2]

		edge1 := vertices[i1].Sub(vertices[i0])
		edge2 := vertices[i2].Sub(vertices[i0])
		// Zero-area faces contribute nothing.
		face := edge1.Cross(edge2).Normalize()

		normals[i0] = normals[i0].Add(face)
		normals[i1] = normals[i1].Add(face)
		normals[i2] = normals[i2].Add(face)
	}

	for i := range normals {
		normals[i] = normals[i].NormalizeOr(FallbackNormal)
	}
}
