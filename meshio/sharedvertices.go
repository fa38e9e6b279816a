// File: sharedvertices.go
// Role: the shared-vertex generator collaborator (spec §6): a vertex is
// identified by a key derived from its quantized coordinate and re-used
// on every subsequent sighting instead of being re-allocated.
package meshio

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/sliceengine/sliceengine/mesh"
)

// coordKey quantizes a position to merge vertices that differ only by
// floating-point noise. 1e-9 mm is well below any printable feature size.
const coordQuantum = 1e9 // 1 / 1e-9

type coordKey struct{ x, y, z int64 }

func keyFor(v mgl64.Vec3) coordKey {
	return coordKey{
		x: int64(v.X() * coordQuantum),
		y: int64(v.Y() * coordQuantum),
		z: int64(v.Z() * coordQuantum),
	}
}

// GenerateSharedVertices populates store.Vertices and every facet's
// VertexIDs by deduplicating facet corner positions into a flat
// sequence with stable per-mesh ids. It is invalidated by any facet
// mutation (AddFacet, Merge) — callers must re-run it before building
// an edgeindex.Index on a mutated mesh.
func GenerateSharedVertices(store *mesh.Store) {
	seen := make(map[coordKey]int, store.FacetCount()*3/2)
	vertices := make([]mgl64.Vec3, 0, store.FacetCount()*3/2)

	for fi := range store.Facets {
		f := &store.Facets[fi]
		for c := 0; c < 3; c++ {
			key := keyFor(f.Vertices[c])
			id, ok := seen[key]
			if !ok {
				id = len(vertices)
				seen[key] = id
				vertices = append(vertices, f.Vertices[c])
			}
			f.VertexIDs[c] = id
		}
	}

	store.Vertices = vertices
}
