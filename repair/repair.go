// Package repair defines the Repairer collaborator contract (spec §6)
// and a default implementation that recomputes facet neighbour pointers
// from topology. It does not attempt hole filling or any other recovery
// of an unrepairable mesh — that stays a non-goal (spec §1, §5).
package repair

import (
	"fmt"

	"github.com/sliceengine/sliceengine/edgeindex"
	"github.com/sliceengine/sliceengine/mesh"
	"github.com/sliceengine/sliceengine/meshio"
)

// Repairer is the collaborator contract the core invokes once before
// slicing if the mesh is not already repaired (spec §6).
type Repairer interface {
	// Repair must be idempotent, set store.Repaired = true on success,
	// and guarantee facet->neighbour consistency.
	Repair(store *mesh.Store) error
}

// NeighbourRepair recomputes Facet.Neighbour[] from the mesh's own
// topology (an edgeindex.Index built after (re)running shared-vertex
// generation). It does not inspect or flag facets whose area collapsed
// to zero (Store.Analyze counts those). It never fills holes or fixes a
// genuinely non-manifold mesh; those remain non-goals.
type NeighbourRepair struct{}

// Repair implements Repairer.
func (NeighbourRepair) Repair(store *mesh.Store) error {
	meshio.GenerateSharedVertices(store)

	idx, err := edgeindex.Build(store)
	if err != nil {
		return fmt.Errorf("repair: %w", err)
	}

	// edgeUsers[edgeID] holds every (facetID, side) use; an edge
	// used by exactly two facets is an interior edge and each use's
	// facet becomes the other's neighbour across that side.
	type use struct{ facet, side int }
	edgeUsers := make(map[int][]use, idx.EdgeCount)
	for fi := range store.Facets {
		for side := 0; side < 3; side++ {
			eid := idx.FacetEdges[fi][side]
			edgeUsers[eid] = append(edgeUsers[eid], use{fi, side})
		}
	}

	for fi := range store.Facets {
		store.Facets[fi].Neighbour = [3]int{-1, -1, -1}
	}
	for _, uses := range edgeUsers {
		if len(uses) != 2 {
			continue // boundary edge, or non-manifold over-shared edge: tolerated, not repaired
		}
		a, b := uses[0], uses[1]
		store.Facets[a.facet].Neighbour[a.side] = b.facet
		store.Facets[b.facet].Neighbour[b.side] = a.facet
	}

	store.Repaired = true
	return nil
}

// EnsureRepaired runs r.Repair on store only if it is not already
// flagged Repaired, matching the "auto-invoked" precondition on slice
// (spec §6).
func EnsureRepaired(store *mesh.Store, r Repairer) error {
	if store.Repaired {
		return nil
	}
	return r.Repair(store)
}
