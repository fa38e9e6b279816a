// Package edgeindex builds the canonical undirected edge enumeration a
// slice call needs (spec §4.1): for every facet's three directed sides,
// assign an edge id such that two facets sharing a topological edge —
// regardless of which orientation each facet stores it in — receive the
// same id.
//
// An Index is a pure function of the facet→vertex-id table and lives
// only for the duration of one slice call (spec §3, Lifecycle); nothing
// here is cached on mesh.Store.
package edgeindex

import (
	"errors"

	"github.com/sliceengine/sliceengine/mesh"
)

// ErrNoSharedVertices is returned by Build when facets carry no
// VertexIDs yet (GenerateSharedVertices has not run).
var ErrNoSharedVertices = errors.New("edgeindex: mesh has no shared vertices")

// vertexPair is a directed pair of shared-vertex ids, used as a map key.
type vertexPair struct{ u, v int }

// Index is the canonical edge table for one mesh. FacetEdges[f][i] gives
// the edge id of facet f's side i (the side Vertices[i] -> Vertices[(i+1)%3]).
// EdgeCount is the number of distinct canonical edges, always
// <= 3*FacetCount.
type Index struct {
	FacetEdges [][3]int
	EdgeCount  int
}

// Build constructs the canonical edge enumeration for store. Expected
// O(F) with the map-based lookup used here (spec §4.1 complexity note).
func Build(store *mesh.Store) (*Index, error) {
	if store.VertexCount() == 0 && store.FacetCount() > 0 {
		return nil, ErrNoSharedVertices
	}

	table := make(map[vertexPair]int, store.FacetCount()*3/2)
	idx := &Index{FacetEdges: make([][3]int, store.FacetCount())}

	for fi := range store.Facets {
		f := &store.Facets[fi]
		for side := 0; side < 3; side++ {
			a := f.VertexIDs[side]
			b := f.VertexIDs[(side+1)%3]
			idx.FacetEdges[fi][side] = idx.edgeID(table, a, b)
		}
	}

	return idx, nil
}

// edgeID resolves the canonical id for directed side (a, b): reuse the
// reversed pair's id if present, else reuse the same-orientation pair's
// id (spec step 2 — required because a source mesh may legally assign
// the same topological edge to more than two facets with the same
// orientation), else allocate a fresh id.
func (idx *Index) edgeID(table map[vertexPair]int, a, b int) int {
	if id, ok := table[vertexPair{b, a}]; ok {
		return id
	}
	if id, ok := table[vertexPair{a, b}]; ok {
		return id
	}
	id := idx.EdgeCount
	idx.EdgeCount++
	table[vertexPair{a, b}] = id
	return id
}
