package terrain

import (
	"github.com/Faultbox/midgard-terrain/pkg/math"
)

// flatConfig returns a noise-free config covering sizeX x sizeY.
func flatConfig(sizeX, sizeY, scale float32, resolution int) Config {
	cfg := DefaultConfig()
	cfg.WorldSizeX = sizeX
	cfg.WorldSizeY = sizeY
	cfg.Scale = scale
	cfg.ChunkResolution = resolution
	cfg.HeightMultiplier = 0
	return cfg
}

// slopeField is a plane z = a*x + b*y.
type slopeField struct{ a, b float32 }

func (f slopeField) Sample(x, y float32) float32 { return f.a*x + f.b*y }

func approxEqual(a, b, eps float32) bool {
	d := a - b
	return d <= eps && d >= -eps
}

func approxVec(a, b math.Vec3, eps float32) bool {
	return approxEqual(a.X, b.X, eps) && approxEqual(a.Y, b.Y, eps) && approxEqual(a.Z, b.Z, eps)
}
