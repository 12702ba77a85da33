package terrain

import (
	"go.uber.org/zap"

	"github.com/Faultbox/midgard-terrain/internal/logger"
	"github.com/Faultbox/midgard-terrain/pkg/math"
)

// Grid owns the chunks covering the configured world area and publishes
// their buffers to a SectionSink. It is not safe for concurrent use.
type Grid struct {
	sink   SectionSink
	config Config
	field  HeightField

	chunks         []Chunk
	countX, countY int
	chunkWorldSize float32
}

// NewGrid creates an empty grid publishing to sink.
func NewGrid(sink SectionSink) *Grid {
	return &Grid{sink: sink}
}

// Generate replaces the entire chunk set with one built from cfg. A nil field
// selects NewHeightField(cfg). An invalid cfg is reported before any existing
// chunk or published section is touched.
func (g *Grid) Generate(cfg Config, field HeightField) error {
	if err := cfg.Validate(); err != nil {
		logger.Warn("terrain config rejected", zap.Error(err))
		return err
	}
	if field == nil {
		field = NewHeightField(cfg)
	}

	g.Clear()

	chunkWorldSize := cfg.ChunkWorldSize()
	countX, countY := cfg.ChunkCounts()

	halfX := float32(countX) * chunkWorldSize * 0.5
	halfY := float32(countY) * chunkWorldSize * 0.5
	halfChunk := chunkWorldSize * 0.5

	// Neighbouring chunks compute a shared edge from the same expression, so
	// the bounds tile without float gaps.
	minX := -halfX + cfg.Origin.X
	minY := -halfY + cfg.Origin.Y

	g.config = cfg
	g.field = field
	g.countX, g.countY = countX, countY
	g.chunkWorldSize = chunkWorldSize
	g.chunks = make([]Chunk, 0, countX*countY)

	sectionIndex := 0
	for cx := range countX {
		for cy := range countY {
			center := math.Vec3{
				X: -halfX + float32(cx)*chunkWorldSize + halfChunk,
				Y: -halfY + float32(cy)*chunkWorldSize + halfChunk,
			}

			mesh := BuildMesh(center, cfg.Origin, cfg.ChunkResolution, cfg.Scale, field)
			normals := EstimateNormals(mesh.Vertices, mesh.Triangles)

			chunk := Chunk{
				SectionIndex: sectionIndex,
				Bounds: Bounds{
					Min: math.Vec2{X: chunkEdge(minX, cx, chunkWorldSize), Y: chunkEdge(minY, cy, chunkWorldSize)},
					Max: math.Vec2{X: chunkEdge(minX, cx+1, chunkWorldSize), Y: chunkEdge(minY, cy+1, chunkWorldSize)},
				},
				Center:    center,
				Vertices:  mesh.Vertices,
				Normals:   normals,
				UVs:       mesh.UVs,
				Triangles: mesh.Triangles,
			}
			g.chunks = append(g.chunks, chunk)
			g.publish(&chunk)

			sectionIndex++
		}
	}

	logger.Info("terrain generated",
		zap.Int("chunksX", countX),
		zap.Int("chunksY", countY),
		zap.Int("resolution", cfg.ChunkResolution),
		zap.Float32("chunkWorldSize", chunkWorldSize))

	return nil
}

// Regenerate is Generate for a configuration change. It exists for callers
// that react to edits of an already generated terrain.
func (g *Grid) Regenerate(cfg Config) error {
	return g.Generate(cfg, nil)
}

// Clear drops every chunk and tells the sink to drop every section.
func (g *Grid) Clear() {
	if g.sink != nil {
		g.sink.ClearAllSections()
	}
	g.chunks = nil
	g.countX, g.countY = 0, 0
}

// Chunks returns the owned chunks in section order. Callers must not retain
// them across a regeneration.
func (g *Grid) Chunks() []Chunk {
	return g.chunks
}

// Chunk returns the chunk published under sectionIndex.
func (g *Grid) Chunk(sectionIndex int) (*Chunk, bool) {
	if sectionIndex < 0 || sectionIndex >= len(g.chunks) {
		return nil, false
	}
	return &g.chunks[sectionIndex], true
}

// ChunkCount returns the number of chunks along X and Y.
func (g *Grid) ChunkCount() (int, int) {
	return g.countX, g.countY
}

// ChunkWorldSize returns the edge length of every chunk.
func (g *Grid) ChunkWorldSize() float32 {
	return g.chunkWorldSize
}

// Config returns the config of the last successful generation.
func (g *Grid) Config() Config {
	return g.config
}

// HeightAt samples the procedural height at a world position, ignoring any
// deformation applied since generation.
func (g *Grid) HeightAt(worldX, worldY float32) float32 {
	if g.field == nil {
		return 0
	}
	return g.field.Sample(worldX, worldY)
}

func (g *Grid) publish(c *Chunk) {
	if g.sink == nil {
		return
	}
	g.sink.CreateSection(c.SectionIndex, SectionData{
		Vertices:  c.Vertices,
		Triangles: c.Triangles,
		Normals:   c.Normals,
		UVs:       c.UVs,
	})
}

// chunkEdge returns the world coordinate of grid line i. The explicit
// conversion rounds the product before the add so no fused multiply-add
// can make neighbours disagree.
func chunkEdge(start float32, i int, size float32) float32 {
	return start + float32(float32(i)*size)
}
