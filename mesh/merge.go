// File: merge.go
// Role: append-only MeshMerge (spec §4.5): a single deterministic pass
// over the other Store's facets that carries configuration forward and
// resets derived state, nothing more.
package mesh

import "github.com/go-gl/mathgl/mgl64"

// Merge appends other's facets to s. It does not deduplicate vertices or
// merge coincident facets (spec §4.5). Merging invalidates s.Repaired and
// s.Vertices (the shared-vertex table and any cached edge index the
// caller holds are no longer valid) and recomputes only the bounding
// box; callers must run repair before any operation that requires
// topology.
func (s *Store) Merge(other *Store) {
	if other == nil || len(other.Facets) == 0 {
		return
	}

	s.Facets = append(s.Facets, other.Facets...)
	s.Repaired = false
	s.Vertices = nil
	s.bboxValid = false
}

// Clone returns a deep copy of the Store: facets, shared vertices, and
// Repaired flag are all copied; no state is shared with the receiver.
func (s *Store) Clone() *Store {
	clone := &Store{
		Facets:    append([]Facet(nil), s.Facets...),
		Repaired:  s.Repaired,
		bbox:      s.bbox,
		bboxValid: s.bboxValid,
	}
	if s.Vertices != nil {
		clone.Vertices = append([]mgl64.Vec3(nil), s.Vertices...)
	}
	return clone
}
