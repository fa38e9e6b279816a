package projection_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sliceengine/sliceengine/meshbuilder"
	"github.com/sliceengine/sliceengine/projection"
	"github.com/sliceengine/sliceengine/slicer"
)

func TestConvexHullOfUnitCubeHasFourCorners(t *testing.T) {
	store := meshbuilder.UnitCube()

	hull, err := projection.ConvexHull(store, slicer.DefaultScalingFactor)
	require.NoError(t, err)

	// The cube's XY projection is a unit square: exactly 4 hull corners
	// regardless of how many of its 8 vertices share those corners.
	assert.Len(t, hull, 4)
}

func TestConvexHullOfEmptyMesh(t *testing.T) {
	store := meshbuilder.UnitCube()
	store.Facets = nil

	hull, err := projection.ConvexHull(store, slicer.DefaultScalingFactor)
	require.NoError(t, err)
	assert.Nil(t, hull)
}

func TestHorizontalProjectionOfUnitCubeReturnsOnePolygon(t *testing.T) {
	store := meshbuilder.UnitCube()

	polys, err := projection.Horizontal(store, slicer.DefaultScalingFactor)
	require.NoError(t, err)
	require.Len(t, polys, 1, "a single convex solid's footprint is one polygon")
}
