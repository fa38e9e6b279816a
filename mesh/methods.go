// File: methods.go
// Role: aggregate queries — bounding box and the recovered Analyze summary.
package mesh

import "github.com/go-gl/mathgl/mgl64"

// BoundingBox returns the axis-aligned bounding box over all facet
// vertices, recomputing and caching it if the mesh has been mutated
// since the last call.
func (s *Store) BoundingBox() BoundingBox {
	if s.bboxValid {
		return s.bbox
	}
	s.bbox = s.computeBoundingBox()
	s.bboxValid = true
	return s.bbox
}

func (s *Store) computeBoundingBox() BoundingBox {
	if len(s.Facets) == 0 {
		return BoundingBox{}
	}
	min := s.Facets[0].Vertices[0]
	max := min
	for _, f := range s.Facets {
		for _, v := range f.Vertices {
			min = componentMin(min, v)
			max = componentMax(max, v)
		}
	}
	return BoundingBox{Min: min, Max: max}
}

func componentMin(a, b mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{minF(a.X(), b.X()), minF(a.Y(), b.Y()), minF(a.Z(), b.Z())}
}

func componentMax(a, b mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{maxF(a.X(), b.X()), maxF(a.Y(), b.Y()), maxF(a.Z(), b.Z())}
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// InvalidateBoundingBox forces the next BoundingBox call to recompute.
// Used by packages (e.g. transform) that mutate vertex positions directly.
func (s *Store) InvalidateBoundingBox() {
	s.bboxValid = false
}

// RecalculateNormal recomputes facet fi's normal from its current vertex
// positions. Used by packages that mutate vertex positions directly.
func (s *Store) RecalculateNormal(fi int) {
	f := &s.Facets[fi]
	*f = newFacetKeepingIdentity(*f)
}

// newFacetKeepingIdentity recomputes a facet's normal while preserving
// its VertexIDs and Neighbour pointers (identity/topology survive a pure
// position edit; only geometry-derived fields are refreshed).
func newFacetKeepingIdentity(f Facet) Facet {
	refreshed := newFacet(f.Vertices[0], f.Vertices[1], f.Vertices[2])
	refreshed.VertexIDs = f.VertexIDs
	refreshed.Neighbour = f.Neighbour
	return refreshed
}

// Analyze returns an aggregate summary of the mesh: facet/vertex counts,
// boundary edge count, and degenerate facet count. LooksWatertight is a
// cheap signal only: every facet edge has a neighbour and no facet is
// degenerate. It is not a substitute for the repair collaborator.
func (s *Store) Analyze() Stats {
	stats := Stats{
		FacetCount:  s.FacetCount(),
		VertexCount: s.VertexCount(),
	}
	for i := range s.Facets {
		f := &s.Facets[i]
		for _, n := range f.Neighbour {
			if n == boundaryNeighbour {
				stats.BoundaryEdges++
			}
		}
		if f.Type() == FacetDegenerate {
			stats.DegenerateFacets++
		}
	}
	stats.LooksWatertight = stats.BoundaryEdges == 0 && stats.DegenerateFacets == 0
	return stats
}
