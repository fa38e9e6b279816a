// Package meshbuilder provides deterministic fixture constructors used by
// package tests and the CLI demo: a unit cube, a tetrahedron, two
// disjoint cubes, and a non-manifold "butterfly" mesh (two tetrahedra
// sharing a single vertex and no edge, exercising the vertex-only
// junction that toposplit and repair tolerate).
//
// Each solid is a pre-sorted, deterministic vertex/face table emitted in
// stable order so tests can assert on exact VertexIDs and facet counts.
package meshbuilder

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/sliceengine/sliceengine/mesh"
	"github.com/sliceengine/sliceengine/repair"
)

// fixtureRepairer is the Repairer every fixture constructor runs before
// returning, so callers get a ready-to-slice mesh without an extra step.
var fixtureRepairer repair.Repairer = repair.NeighbourRepair{}

// cubeFaces lists the unit cube's 12 triangles as indices into
// cubeCorners, each wound CCW when viewed from outside the cube.
var cubeCorners = [8]mgl64.Vec3{
	{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}, // bottom, z=0
	{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1}, // top, z=1
}

var cubeFaces = [12][3]int{
	{0, 2, 1}, {0, 3, 2}, // bottom, z=0, normal -Z
	{4, 5, 6}, {4, 6, 7}, // top, z=1, normal +Z
	{0, 1, 5}, {0, 5, 4}, // front, y=0
	{1, 2, 6}, {1, 6, 5}, // right, x=1
	{2, 3, 7}, {2, 7, 6}, // back, y=1
	{3, 0, 4}, {3, 4, 7}, // left, x=0
}

// UnitCube returns a repaired unit cube with corners at [0,1]^3.
func UnitCube() *mesh.Store {
	return cubeAt(mgl64.Vec3{0, 0, 0})
}

// DisjointCubes returns two unit cubes separated along X by gap units
// beyond their own width, merged into one unrepaired store — the
// toposplit fixture (spec §8 "two disjoint cubes").
func DisjointCubes(gap float64) *mesh.Store {
	a := cubeAt(mgl64.Vec3{0, 0, 0})
	b := cubeAt(mgl64.Vec3{1 + gap, 0, 0})
	a.Merge(b)
	return a
}

func cubeAt(origin mgl64.Vec3) *mesh.Store {
	store := mesh.NewStore()
	for _, face := range cubeFaces {
		store.AddFacet(
			cubeCorners[face[0]].Add(origin),
			cubeCorners[face[1]].Add(origin),
			cubeCorners[face[2]].Add(origin),
		)
	}
	mustRepair(store)
	return store
}

// tetraCorners is a regular-enough tetrahedron with an axis-aligned
// base, apex above its centroid.
var tetraCorners = [4]mgl64.Vec3{
	{0, 0, 0}, {1, 0, 0}, {0.5, 1, 0}, {0.5, 0.33, 1},
}

var tetraFaces = [4][3]int{
	{0, 2, 1}, // base, z=0, normal -Z
	{0, 1, 3},
	{1, 2, 3},
	{2, 0, 3},
}

// Tetrahedron returns a repaired single tetrahedron.
func Tetrahedron() *mesh.Store {
	store := mesh.NewStore()
	for _, face := range tetraFaces {
		store.AddFacet(tetraCorners[face[0]], tetraCorners[face[1]], tetraCorners[face[2]])
	}
	mustRepair(store)
	return store
}

// Butterfly returns two tetrahedra joined at a single shared vertex —
// a non-manifold junction with no non-manifold edge (every edge is
// still used by exactly two facets), isolating the vertex-only case
// toposplit and repair must tolerate rather than reject.
func Butterfly() *mesh.Store {
	store := mesh.NewStore()
	for _, face := range tetraFaces {
		store.AddFacet(tetraCorners[face[0]], tetraCorners[face[1]], tetraCorners[face[2]])
	}
	hinge := mgl64.Vec3{0.5, 0.33, 1} // shared vertex: the first tetrahedron's apex
	for _, face := range tetraFaces {
		v := [3]mgl64.Vec3{tetraCorners[face[0]], tetraCorners[face[1]], tetraCorners[face[2]]}
		for i := range v {
			if v[i] == tetraCorners[3] {
				v[i] = hinge
			} else {
				v[i] = v[i].Add(mgl64.Vec3{2, 0, 0})
			}
		}
		store.AddFacet(v[0], v[1], v[2])
	}
	mustRepair(store)
	return store
}

func mustRepair(store *mesh.Store) {
	if err := fixtureRepairer.Repair(store); err != nil {
		panic("meshbuilder: fixture failed self-repair: " + err.Error())
	}
}
