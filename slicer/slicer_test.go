package slicer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sliceengine/sliceengine/edgeindex"
	"github.com/sliceengine/sliceengine/loopbuilder"
	"github.com/sliceengine/sliceengine/meshbuilder"
	"github.com/sliceengine/sliceengine/slicer"
)

func TestSliceUnitCubeMidplaneProducesOneClosedLoop(t *testing.T) {
	store := meshbuilder.UnitCube()
	idx, err := edgeindex.Build(store)
	require.NoError(t, err)

	buckets, err := slicer.Slice(store, idx, []float64{0.5})
	require.NoError(t, err)
	require.Len(t, buckets, 1)

	segs := buckets[0]
	assert.Len(t, segs, 8, "4 cube sides x 2 triangles each crossing the midplane")

	loops := loopbuilder.Build(segs)
	require.Len(t, loops, 1)
	assert.Len(t, loops[0], 4, "the cube's mid-height cross section is a square")
}

func TestSliceUnitCubeAtBottomAndTopCaps(t *testing.T) {
	store := meshbuilder.UnitCube()
	idx, err := edgeindex.Build(store)
	require.NoError(t, err)

	buckets, err := slicer.Slice(store, idx, []float64{0, 1})
	require.NoError(t, err)
	require.Len(t, buckets, 2)

	for _, segs := range buckets {
		loops := loopbuilder.Build(segs)
		require.Len(t, loops, 1, "the cap plane still closes into one square loop via the side facets' edges")
		assert.Len(t, loops[0], 4)
	}
}

func TestSliceTetrahedronAtApexTouchesOnlyAtAVertex(t *testing.T) {
	store := meshbuilder.Tetrahedron()
	idx, err := edgeindex.Build(store)
	require.NoError(t, err)

	bb := store.BoundingBox()
	buckets, err := slicer.Slice(store, idx, []float64{bb.Max.Z()})
	require.NoError(t, err)

	assert.Empty(t, buckets[0], "a plane through a single vertex contributes no segment")
}

func TestSliceTetrahedronMidHeight(t *testing.T) {
	store := meshbuilder.Tetrahedron()
	idx, err := edgeindex.Build(store)
	require.NoError(t, err)

	bb := store.BoundingBox()
	mid := (bb.Min.Z() + bb.Max.Z()) / 2

	buckets, err := slicer.Slice(store, idx, []float64{mid})
	require.NoError(t, err)

	loops := loopbuilder.Build(buckets[0])
	require.Len(t, loops, 1)
	assert.GreaterOrEqual(t, len(loops[0]), 3)
}

func TestSlicePlanesOutsideBoundingBoxAreEmpty(t *testing.T) {
	store := meshbuilder.UnitCube()
	idx, err := edgeindex.Build(store)
	require.NoError(t, err)

	buckets, err := slicer.Slice(store, idx, []float64{-5, 5})
	require.NoError(t, err)
	assert.Empty(t, buckets[0])
	assert.Empty(t, buckets[1])
}

func TestSliceIsDeterministicAcrossRuns(t *testing.T) {
	store := meshbuilder.UnitCube()
	idx, err := edgeindex.Build(store)
	require.NoError(t, err)

	a, err := slicer.Slice(store, idx, []float64{0.3})
	require.NoError(t, err)
	b, err := slicer.Slice(store, idx, []float64{0.3})
	require.NoError(t, err)

	assert.Equal(t, a, b)
}
