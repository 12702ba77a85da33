package terrain

import (
	"errors"
	stdmath "math"
	"testing"

	"github.com/Faultbox/midgard-terrain/pkg/math"
)

func TestGridGenerateTiles(t *testing.T) {
	store := NewSectionStore()
	grid := NewGrid(store)

	cfg := flatConfig(1000, 700, 10, 11)
	if err := grid.Generate(cfg, nil); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	nx, ny := grid.ChunkCount()
	if nx != 10 || ny != 7 {
		t.Fatalf("chunk count = %dx%d, want 10x7", nx, ny)
	}
	chunks := grid.Chunks()
	if len(chunks) != nx*ny {
		t.Fatalf("got %d chunks, want %d", len(chunks), nx*ny)
	}
	if size := grid.ChunkWorldSize(); size != 100 {
		t.Errorf("chunk world size = %v, want 100", size)
	}

	at := func(cx, cy int) Chunk { return chunks[cx*ny+cy] }

	for cx := range nx {
		for cy := range ny {
			c := at(cx, cy)
			if c.SectionIndex != cx*ny+cy {
				t.Errorf("chunk (%d,%d) section = %d, want %d", cx, cy, c.SectionIndex, cx*ny+cy)
			}
			if cx+1 < nx && c.Bounds.Max.X != at(cx+1, cy).Bounds.Min.X {
				t.Errorf("gap along X between (%d,%d) and (%d,%d)", cx, cy, cx+1, cy)
			}
			if cy+1 < ny && c.Bounds.Max.Y != at(cx, cy+1).Bounds.Min.Y {
				t.Errorf("gap along Y between (%d,%d) and (%d,%d)", cx, cy, cx, cy+1)
			}
		}
	}

	// The whole grid is centered on the origin.
	if min := at(0, 0).Bounds.Min; min != (math.Vec2{X: -500, Y: -350}) {
		t.Errorf("grid min = %v, want (-500,-350)", min)
	}
	if max := at(nx-1, ny-1).Bounds.Max; max != (math.Vec2{X: 500, Y: 350}) {
		t.Errorf("grid max = %v, want (500,350)", max)
	}
}

func TestGridTilesWithOffsetOrigin(t *testing.T) {
	cfg := flatConfig(1000, 700, 0.7, 11)
	cfg.Origin = math.Vec3{X: 0.1, Y: 0.3}

	grid := NewGrid(nil)
	if err := grid.Generate(cfg, nil); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	nx, ny := grid.ChunkCount()
	chunks := grid.Chunks()
	at := func(cx, cy int) Chunk { return chunks[cx*ny+cy] }
	size := grid.ChunkWorldSize()

	for cx := range nx {
		for cy := range ny {
			c := at(cx, cy)
			if cx+1 < nx && c.Bounds.Max.X != at(cx+1, cy).Bounds.Min.X {
				t.Fatalf("X edge mismatch between (%d,%d) and (%d,%d): %v vs %v",
					cx, cy, cx+1, cy, c.Bounds.Max.X, at(cx+1, cy).Bounds.Min.X)
			}
			if cy+1 < ny && c.Bounds.Max.Y != at(cx, cy+1).Bounds.Min.Y {
				t.Fatalf("Y edge mismatch between (%d,%d) and (%d,%d): %v vs %v",
					cx, cy, cx, cy+1, c.Bounds.Max.Y, at(cx, cy+1).Bounds.Min.Y)
			}
			if w := c.Bounds.Max.X - c.Bounds.Min.X; !approxEqual(w, size, 1e-2) {
				t.Errorf("chunk (%d,%d) width = %v, want %v", cx, cy, w, size)
			}
		}
	}

	// The grid stays centered on the origin.
	center := at(0, 0).Bounds.Min.Add(at(nx-1, ny-1).Bounds.Max).Scale(0.5)
	if !approxEqual(center.X, 0.1, 1e-2) || !approxEqual(center.Y, 0.3, 1e-2) {
		t.Errorf("grid center = %v, want (0.1,0.3)", center)
	}
}

func TestGridChunkInvariants(t *testing.T) {
	grid := NewGrid(nil)
	cfg := DefaultConfig()
	cfg.WorldSizeX, cfg.WorldSizeY = 5000, 3000
	cfg.ChunkResolution = 16
	cfg.Seed = 3

	if err := grid.Generate(cfg, nil); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	res := cfg.ChunkResolution
	for _, c := range grid.Chunks() {
		if len(c.Vertices) != res*res {
			t.Fatalf("section %d: %d vertices, want %d", c.SectionIndex, len(c.Vertices), res*res)
		}
		if len(c.Normals) != len(c.Vertices) || len(c.UVs) != len(c.Vertices) {
			t.Fatalf("section %d: buffer lengths differ", c.SectionIndex)
		}
		if len(c.Triangles) != 6*(res-1)*(res-1) {
			t.Fatalf("section %d: %d indices, want %d", c.SectionIndex, len(c.Triangles), 6*(res-1)*(res-1))
		}
		for _, idx := range c.Triangles {
			if int(idx) >= len(c.Vertices) {
				t.Fatalf("section %d: index %d out of range", c.SectionIndex, idx)
			}
		}
		// Vertices of a chunk stay within its footprint.
		for _, v := range c.Vertices {
			if !c.Bounds.Contains(v.XY()) {
				t.Fatalf("section %d: vertex %v outside bounds %v", c.SectionIndex, v, c.Bounds)
			}
		}
	}
}

func TestGridGenerateOverCovers(t *testing.T) {
	grid := NewGrid(nil)
	if err := grid.Generate(flatConfig(200, 200, 100, 8), nil); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if nx, ny := grid.ChunkCount(); nx != 1 || ny != 1 {
		t.Fatalf("chunk count = %dx%d, want 1x1", nx, ny)
	}
	c := grid.Chunks()[0]
	if c.Bounds.Min != (math.Vec2{X: -350, Y: -350}) || c.Bounds.Max != (math.Vec2{X: 350, Y: 350}) {
		t.Errorf("bounds = %v, want [-350,350]^2", c.Bounds)
	}
	for i, v := range c.Vertices {
		if v.Z != 0 {
			t.Fatalf("vertex %d height = %v, want 0 with noise disabled", i, v.Z)
		}
	}
}

func TestGridPublishesSections(t *testing.T) {
	store := NewSectionStore()
	grid := NewGrid(store)

	if err := grid.Generate(flatConfig(300, 200, 10, 11), nil); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if store.Clears != 1 {
		t.Errorf("clears = %d, want 1", store.Clears)
	}
	if store.Creates != len(grid.Chunks()) || store.Len() != len(grid.Chunks()) {
		t.Fatalf("store has %d sections (%d creates), want %d", store.Len(), store.Creates, len(grid.Chunks()))
	}
	for i, idx := range store.Indices() {
		if idx != i {
			t.Fatalf("section indices = %v, want 0..n-1", store.Indices())
		}
		sec, _ := store.Section(idx)
		chunk, ok := grid.Chunk(idx)
		if !ok {
			t.Fatalf("grid has no chunk for section %d", idx)
		}
		if len(sec.Vertices) != len(chunk.Vertices) || len(sec.Triangles) != len(chunk.Triangles) ||
			len(sec.Normals) != len(chunk.Normals) || len(sec.UVs) != len(chunk.UVs) {
			t.Errorf("section %d buffers do not match chunk", idx)
		}
	}
}

func TestGridRegenerateReplaces(t *testing.T) {
	store := NewSectionStore()
	grid := NewGrid(store)

	if err := grid.Generate(flatConfig(1000, 1000, 10, 11), nil); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if err := grid.Regenerate(flatConfig(200, 100, 10, 11)); err != nil {
		t.Fatalf("Regenerate failed: %v", err)
	}

	if got := len(grid.Chunks()); got != 2 {
		t.Fatalf("got %d chunks after regenerate, want 2", got)
	}
	for i, c := range grid.Chunks() {
		if c.SectionIndex != i {
			t.Errorf("chunk %d has section %d, want sequential from 0", i, c.SectionIndex)
		}
	}
	if store.Clears != 2 {
		t.Errorf("clears = %d, want 2", store.Clears)
	}
	if store.Len() != 2 {
		t.Errorf("store holds %d sections, want 2", store.Len())
	}
}

func TestGridGenerateRejectsConfig(t *testing.T) {
	inf := float32(stdmath.Inf(1))
	nan := float32(stdmath.NaN())

	tests := []struct {
		name  string
		edit  func(*Config)
		field string
	}{
		{"zero scale", func(c *Config) { c.Scale = 0 }, "Scale"},
		{"negative scale", func(c *Config) { c.Scale = -10 }, "Scale"},
		{"zero world x", func(c *Config) { c.WorldSizeX = 0 }, "WorldSizeX"},
		{"negative world y", func(c *Config) { c.WorldSizeY = -1 }, "WorldSizeY"},
		{"resolution below minimum", func(c *Config) { c.ChunkResolution = MinChunkResolution - 1 }, "ChunkResolution"},
		{"negative frequency", func(c *Config) { c.NoiseFrequency = -1 }, "NoiseFrequency"},
		{"infinite world x", func(c *Config) { c.WorldSizeX = inf }, "WorldSizeX"},
		{"infinite world y", func(c *Config) { c.WorldSizeY = inf }, "WorldSizeY"},
		{"nan world x", func(c *Config) { c.WorldSizeX = nan }, "WorldSizeX"},
		{"infinite scale", func(c *Config) { c.Scale = inf }, "Scale"},
		{"nan scale", func(c *Config) { c.Scale = nan }, "Scale"},
		{"infinite height", func(c *Config) { c.HeightMultiplier = inf }, "HeightMultiplier"},
		{"nan frequency", func(c *Config) { c.NoiseFrequency = nan }, "NoiseFrequency"},
		{"infinite frequency", func(c *Config) { c.NoiseFrequency = inf }, "NoiseFrequency"},
		{"nan origin", func(c *Config) { c.Origin.Y = nan }, "Origin"},
		{"chunk size overflows", func(c *Config) { c.Scale = 3e38 }, "ChunkWorldSize"},
		{"too many chunks", func(c *Config) { c.WorldSizeX = 1e30 }, "ChunkCount"},
		{"no octaves", func(c *Config) {
			c.HeightMultiplier = 10
			c.Noise.Octaves = 0
		}, "Noise.Octaves"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewSectionStore()
			grid := NewGrid(store)
			if err := grid.Generate(flatConfig(200, 200, 10, 11), nil); err != nil {
				t.Fatalf("Generate failed: %v", err)
			}
			before := len(grid.Chunks())

			cfg := flatConfig(200, 200, 10, 11)
			tt.edit(&cfg)
			err := grid.Generate(cfg, nil)

			if !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("expected ErrInvalidConfig, got %v", err)
			}
			var cerr *ConfigError
			if !errors.As(err, &cerr) || cerr.Field != tt.field {
				t.Errorf("expected ConfigError on %s, got %v", tt.field, err)
			}

			// Nothing was cleared or published.
			if len(grid.Chunks()) != before {
				t.Errorf("chunks changed from %d to %d", before, len(grid.Chunks()))
			}
			if store.Clears != 1 || store.Len() != before {
				t.Errorf("store touched: clears=%d len=%d", store.Clears, store.Len())
			}
		})
	}
}

func TestGridClear(t *testing.T) {
	store := NewSectionStore()
	grid := NewGrid(store)
	if err := grid.Generate(flatConfig(500, 500, 10, 11), nil); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	grid.Clear()

	if len(grid.Chunks()) != 0 {
		t.Errorf("expected no chunks after Clear, got %d", len(grid.Chunks()))
	}
	if store.Len() != 0 {
		t.Errorf("expected no sections after Clear, got %d", store.Len())
	}
	if _, ok := grid.Chunk(0); ok {
		t.Error("Chunk(0) should not exist after Clear")
	}
}

func TestGridOriginOffset(t *testing.T) {
	cfg := flatConfig(200, 200, 100, 9)
	cfg.Origin = math.Vec3{X: 1000, Y: -2000, Z: 50}

	grid := NewGrid(nil)
	if err := grid.Generate(cfg, slopeField{a: 1}); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	c := grid.Chunks()[0]
	if c.Bounds.Min != (math.Vec2{X: 600, Y: -2400}) || c.Bounds.Max != (math.Vec2{X: 1400, Y: -1600}) {
		t.Errorf("bounds = %v, want world-space footprint around origin", c.Bounds)
	}
	// Positions stay terrain-local; heights come from the world position.
	center := c.Vertices[4*9+4]
	if center.X != 0 || center.Y != 0 || center.Z != 1000 {
		t.Errorf("center vertex = %v, want (0,0,1000)", center)
	}
	if h := grid.HeightAt(1000, -2000); h != 1000 {
		t.Errorf("HeightAt = %v, want 1000", h)
	}
}

func TestGridDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.WorldSizeX, cfg.WorldSizeY = 3000, 3000
	cfg.ChunkResolution = 10
	cfg.Seed = 77

	a, b := NewGrid(nil), NewGrid(nil)
	if err := a.Generate(cfg, nil); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if err := b.Generate(cfg, nil); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	for i := range a.Chunks() {
		va, vb := a.Chunks()[i].Vertices, b.Chunks()[i].Vertices
		for j := range va {
			if va[j] != vb[j] {
				t.Fatalf("section %d vertex %d differs: %v vs %v", i, j, va[j], vb[j])
			}
		}
	}
}
