package terrain

import (
	"slices"
	"sort"

	"github.com/Faultbox/midgard-terrain/pkg/math"
)

// SectionSink receives chunk buffers addressed by section index. Calls are
// synchronous; the grid does not wait on or retry them.
type SectionSink interface {
	CreateSection(index int, data SectionData)
	UpdateSection(index int, vertices, normals []math.Vec3)
	ClearAllSections()
}

// SectionStore is an in-memory SectionSink. It copies every buffer it is
// given so later in-place edits are only visible after an update. The zero
// value is ready to use.
type SectionStore struct {
	sections map[int]*SectionData

	Creates int
	Updates int
	Clears  int
}

// NewSectionStore creates an empty store.
func NewSectionStore() *SectionStore {
	return &SectionStore{sections: make(map[int]*SectionData)}
}

// CreateSection implements SectionSink.
func (s *SectionStore) CreateSection(index int, data SectionData) {
	if s.sections == nil {
		s.sections = make(map[int]*SectionData)
	}
	s.sections[index] = &SectionData{
		Vertices:  slices.Clone(data.Vertices),
		Triangles: slices.Clone(data.Triangles),
		Normals:   slices.Clone(data.Normals),
		UVs:       slices.Clone(data.UVs),
	}
	s.Creates++
}

// UpdateSection implements SectionSink. Updates to unknown sections are
// dropped.
func (s *SectionStore) UpdateSection(index int, vertices, normals []math.Vec3) {
	sec, ok := s.sections[index]
	if !ok {
		return
	}
	sec.Vertices = slices.Clone(vertices)
	sec.Normals = slices.Clone(normals)
	s.Updates++
}

// ClearAllSections implements SectionSink.
func (s *SectionStore) ClearAllSections() {
	clear(s.sections)
	s.Clears++
}

// Section returns the buffers stored under index.
func (s *SectionStore) Section(index int) (*SectionData, bool) {
	sec, ok := s.sections[index]
	return sec, ok
}

// Indices returns the stored section indices in ascending order.
func (s *SectionStore) Indices() []int {
	indices := make([]int, 0, len(s.sections))
	for i := range s.sections {
		indices = append(indices, i)
	}
	sort.Ints(indices)
	return indices
}

// Len returns the number of stored sections.
func (s *SectionStore) Len() int {
	return len(s.sections)
}
