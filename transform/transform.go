// Package transform implements the affine-transform collaborators named
// in spec §6 (scale, translate, rotate, align_to_origin), backed by
// github.com/go-gl/mathgl/mgl64 for vector and quaternion math.
// bounding_box is mesh.Store.BoundingBox, not part of this package.
//
// These operate directly on mesh.Store facet vertices; unlike Merge,
// they do not invalidate Repaired or the shared-vertex table (vertex
// identity and topology are unchanged, only position), but they do
// invalidate the mesh's cached bounding box.
package transform

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/sliceengine/sliceengine/mesh"
)

// Scale multiplies every vertex position by factor, uniformly.
func Scale(store *mesh.Store, factor float64) {
	Apply(store, func(v mgl64.Vec3) mgl64.Vec3 { return v.Mul(factor) })
}

// Translate shifts every vertex position by delta.
func Translate(store *mesh.Store, delta mgl64.Vec3) {
	Apply(store, func(v mgl64.Vec3) mgl64.Vec3 { return v.Add(delta) })
}

// Rotate applies quaternion rotation q about the origin to every vertex.
func Rotate(store *mesh.Store, q mgl64.Quat) {
	Apply(store, q.Rotate)
}

// AlignToOrigin translates the mesh so its bounding-box minimum sits at
// the origin.
func AlignToOrigin(store *mesh.Store) {
	bb := store.BoundingBox()
	Translate(store, bb.Min.Mul(-1))
}

// Apply maps fn over every facet vertex position, recomputes normals,
// and invalidates the cached bounding box. It is the shared primitive
// behind Scale/Translate/Rotate; callers needing an uncommon affine
// mapping can use it directly.
func Apply(store *mesh.Store, fn func(mgl64.Vec3) mgl64.Vec3) {
	for i := range store.Facets {
		f := &store.Facets[i]
		for c := 0; c < 3; c++ {
			f.Vertices[c] = fn(f.Vertices[c])
		}
		store.RecalculateNormal(i)
	}
	store.InvalidateBoundingBox()
}
