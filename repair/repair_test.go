package repair_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sliceengine/sliceengine/mesh"
	"github.com/sliceengine/sliceengine/repair"
)

func twoTriangleSquare() *mesh.Store {
	s := mesh.NewStore()
	s.AddFacet(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 0, 0}, mgl64.Vec3{1, 1, 0})
	s.AddFacet(mgl64.Vec3{1, 1, 0}, mgl64.Vec3{0, 1, 0}, mgl64.Vec3{0, 0, 0})
	return s
}

func TestNeighbourRepairSetsSharedEdgeNeighbours(t *testing.T) {
	s := twoTriangleSquare()

	require.NoError(t, repair.NeighbourRepair{}.Repair(s))

	assert.True(t, s.Repaired)
	assert.Equal(t, 1, s.Facets[0].Neighbour[2])
	assert.Equal(t, 0, s.Facets[1].Neighbour[2])
	// Facet 0's two outer sides stay boundary.
	assert.Equal(t, -1, s.Facets[0].Neighbour[0])
	assert.Equal(t, -1, s.Facets[0].Neighbour[1])
}

func TestNeighbourRepairIsIdempotent(t *testing.T) {
	s := twoTriangleSquare()

	require.NoError(t, repair.NeighbourRepair{}.Repair(s))
	first := s.Facets[0].Neighbour

	require.NoError(t, repair.NeighbourRepair{}.Repair(s))
	assert.Equal(t, first, s.Facets[0].Neighbour)
}

func TestEnsureRepairedSkipsWhenAlreadyRepaired(t *testing.T) {
	s := twoTriangleSquare()
	s.Repaired = true

	calls := 0
	sentinel := repairerFunc(func(*mesh.Store) error {
		calls++
		return nil
	})

	require.NoError(t, repair.EnsureRepaired(s, sentinel))
	assert.Equal(t, 0, calls, "EnsureRepaired must not invoke Repair when already repaired")
}

func TestEnsureRepairedRunsWhenNotRepaired(t *testing.T) {
	s := twoTriangleSquare()

	require.NoError(t, repair.EnsureRepaired(s, repair.NeighbourRepair{}))
	assert.True(t, s.Repaired)
}

type repairerFunc func(*mesh.Store) error

func (f repairerFunc) Repair(s *mesh.Store) error { return f(s) }
