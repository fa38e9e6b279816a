// File: stl.go
// Role: the STL parsing/writing collaborator (spec §1, §6). STL format
// handling itself is out of scope for this module — it is delegated
// entirely to github.com/fulgurant/stl; this file only converts between
// its Solid/Triangle types and mesh.Store.
package meshio

import (
	"errors"
	"fmt"

	"github.com/fulgurant/stl"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/sliceengine/sliceengine/mesh"
)

// ErrIOFailure wraps any error surfaced verbatim from the I/O collaborator (spec §7).
var ErrIOFailure = errors.New("meshio: io collaborator failed")

// LoadSTL reads an STL file (ASCII or binary, auto-detected by the
// collaborator) and returns a fresh, unrepaired mesh.Store. Callers are
// expected to run repair before slicing (spec §6 precondition).
func LoadSTL(path string) (*mesh.Store, error) {
	solid, err := stl.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("meshio: read %q: %w", path, errors.Join(ErrIOFailure, err))
	}

	store := mesh.NewStore()
	for _, t := range solid.Triangles {
		store.AddFacet(toVec3(t.Vertices[0]), toVec3(t.Vertices[1]), toVec3(t.Vertices[2]))
	}
	return store, nil
}

// SaveSTL writes store's facets as a binary STL file via the
// collaborator. Shared-vertex ids, neighbours, and the Repaired flag
// carry no meaning in the STL format and are not round-tripped.
func SaveSTL(path string, store *mesh.Store) error {
	solid := &stl.Solid{}
	solid.SetTriangleCount(uint32(store.FacetCount()))
	for _, f := range store.Facets {
		solid.AppendTriangle(stl.Triangle{
			Normal: toVec3Stl(f.Normal),
			Vertices: [3]stl.Vec3{
				toVec3Stl(f.Vertices[0]),
				toVec3Stl(f.Vertices[1]),
				toVec3Stl(f.Vertices[2]),
			},
		})
	}

	if err := solid.WriteFile(path); err != nil {
		return fmt.Errorf("meshio: write %q: %w", path, errors.Join(ErrIOFailure, err))
	}
	return nil
}

func toVec3(v stl.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{float64(v[0]), float64(v[1]), float64(v[2])}
}

func toVec3Stl(v mgl64.Vec3) stl.Vec3 {
	return stl.Vec3{float32(v.X()), float32(v.Y()), float32(v.Z())}
}
