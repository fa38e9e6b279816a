package meshbuilder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sliceengine/sliceengine/meshbuilder"
)

func TestUnitCubeIsRepairedAndClosed(t *testing.T) {
	store := meshbuilder.UnitCube()

	assert.True(t, store.Repaired)
	assert.Equal(t, 12, store.FacetCount())

	stats := store.Analyze()
	assert.True(t, stats.LooksWatertight)
	assert.Equal(t, 0, stats.BoundaryEdges)
}

func TestTetrahedronIsRepairedAndClosed(t *testing.T) {
	store := meshbuilder.Tetrahedron()

	assert.True(t, store.Repaired)
	assert.Equal(t, 4, store.FacetCount())

	stats := store.Analyze()
	assert.True(t, stats.LooksWatertight)
}

func TestDisjointCubesIsUnrepairedAfterMerge(t *testing.T) {
	store := meshbuilder.DisjointCubes(2.0)

	assert.False(t, store.Repaired)
	assert.Equal(t, 24, store.FacetCount())
}

func TestButterflySharesExactlyOneVertex(t *testing.T) {
	store := meshbuilder.Butterfly()

	assert.True(t, store.Repaired)
	assert.Equal(t, 8, store.FacetCount())

	stats := store.Analyze()
	assert.True(t, stats.LooksWatertight, "every edge is still used by exactly two facets")
}
