// Package toposplit partitions a mesh into connected sub-meshes by
// flood-filling facet neighbour pointers (spec §4.4), using the same
// visited-array-plus-queue-of-indices BFS shape as a grid's connected-
// components search, generalized from a 4/8-neighbour grid cell to a
// 3-neighbour mesh facet.
package toposplit

import (
	"fmt"

	"github.com/sliceengine/sliceengine/mesh"
)

// boundaryNeighbour mirrors mesh's sentinel for "no neighbour across this edge".
const boundaryNeighbour = -1

// Split returns the sub-meshes of store such that two facets are in the
// same sub-mesh iff they are connected through Facet.Neighbour[].
// Requires a repaired parent mesh (spec §4.4 failure semantics).
func Split(store *mesh.Store) ([]*mesh.Store, error) {
	if !store.Repaired {
		return nil, fmt.Errorf("toposplit: %w", mesh.ErrInvalidState)
	}

	n := store.FacetCount()
	visited := make([]bool, n)
	var components []*mesh.Store

	for seed := 0; seed < n; seed++ {
		if visited[seed] {
			continue
		}
		components = append(components, collectComponent(store, visited, seed))
	}

	return components, nil
}

// collectComponent BFS-floods from seed, copying reachable facets into
// a new sub-mesh in discovery order.
func collectComponent(store *mesh.Store, visited []bool, seed int) *mesh.Store {
	queue := []int{seed}
	visited[seed] = true

	sub := mesh.NewStore()
	for qi := 0; qi < len(queue); qi++ {
		fi := queue[qi]
		f := store.Facets[fi]
		sub.AddFacet(f.Vertices[0], f.Vertices[1], f.Vertices[2])

		for _, nb := range f.Neighbour {
			if nb == boundaryNeighbour || visited[nb] {
				continue
			}
			visited[nb] = true
			queue = append(queue, nb)
		}
	}

	// Sub-meshes are in-memory, source-unknown: repair must re-derive
	// their topology rather than trust the parent's (spec §4.4).
	sub.Repaired = false
	return sub
}
