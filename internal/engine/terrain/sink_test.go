package terrain

import (
	"testing"

	"github.com/Faultbox/midgard-terrain/pkg/math"
)

func TestSectionStoreCopiesBuffers(t *testing.T) {
	store := NewSectionStore()
	vertices := []math.Vec3{{X: 1}, {X: 2}, {X: 3}}

	store.CreateSection(3, SectionData{Vertices: vertices, Triangles: []uint32{0, 1, 2}})
	vertices[0].Z = -50

	sec, ok := store.Section(3)
	if !ok {
		t.Fatal("section 3 missing")
	}
	if sec.Vertices[0].Z != 0 {
		t.Error("store shares the caller's vertex buffer")
	}

	store.UpdateSection(3, vertices, []math.Vec3{math.Up, math.Up, math.Up})
	if sec.Vertices[0].Z != -50 {
		t.Errorf("updated height = %v, want -50", sec.Vertices[0].Z)
	}
	if len(sec.Triangles) != 3 {
		t.Error("update must keep the triangle buffer")
	}
}

func TestSectionStoreUnknownUpdate(t *testing.T) {
	store := NewSectionStore()
	store.UpdateSection(9, nil, nil)

	if store.Updates != 0 || store.Len() != 0 {
		t.Errorf("update of unknown section was recorded: updates=%d len=%d", store.Updates, store.Len())
	}
}

func TestSectionStoreClear(t *testing.T) {
	store := NewSectionStore()
	store.CreateSection(0, SectionData{})
	store.CreateSection(1, SectionData{})

	store.ClearAllSections()

	if store.Len() != 0 || len(store.Indices()) != 0 {
		t.Errorf("expected empty store, got %v", store.Indices())
	}
	if store.Clears != 1 {
		t.Errorf("clears = %d, want 1", store.Clears)
	}
}

func TestSectionStoreZeroValue(t *testing.T) {
	var store SectionStore
	store.UpdateSection(0, nil, nil)
	store.CreateSection(0, SectionData{Vertices: []math.Vec3{{X: 1}}})

	if store.Len() != 1 || store.Creates != 1 {
		t.Errorf("zero-value store: len=%d creates=%d, want 1/1", store.Len(), store.Creates)
	}

	grid := NewGrid(&SectionStore{})
	if err := grid.Generate(flatConfig(200, 200, 10, 11), nil); err != nil {
		t.Fatalf("Generate into zero-value store failed: %v", err)
	}
}
